package flowableadminsdk

import (
	"context"
	"net/http"
)

type Account struct {
	http Requester
}

// FetchCurrentUser 获取当前登录用户。
func (a Account) FetchCurrentUser(ctx context.Context) (Payload, error) {
	return a.http.Request(ctx, http.MethodGet, PathAccount, nil)
}
