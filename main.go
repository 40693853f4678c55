package main

import "github.com/wangdayong228/flowable-admin-client/cmd"

func main() {
	cmd.Execute()
}
