package flowableadminsdk

import (
	"context"
	"net/http"
)

type Notice struct {
	http Requester
}

func (n Notice) FetchNotices(ctx context.Context) (Payload, error) {
	return n.http.Request(ctx, http.MethodGet, PathNotices, nil)
}
