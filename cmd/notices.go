package cmd

import (
	"github.com/spf13/cobra"

	flowableadminsdk "github.com/wangdayong228/flowable-admin-client/pkg/flowable-admin-sdk"
)

func init() {
	cmd := &cobra.Command{
		Use:   "notices",
		Short: "查看系统通知",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(cmd, func(c *flowableadminsdk.Client) (flowableadminsdk.Payload, error) {
				return c.Notice.FetchNotices(cmd.Context())
			})
		},
	}

	rootCmd.AddCommand(cmd)
}
