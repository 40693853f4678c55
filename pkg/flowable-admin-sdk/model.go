package flowableadminsdk

import (
	"context"
	"net/http"
)

// Model 聚合 `/server/rest/model` 下的流程模型接口。
type Model struct {
	http Requester
}

// FetchModules 查询可部署的流程模型分页列表。
func (m Model) FetchModules(ctx context.Context) (Payload, error) {
	return m.http.Request(ctx, http.MethodGet, PathPageModel, nil)
}

// DeployModule 部署流程模型，params 原样作为请求参数发送。
func (m Model) DeployModule(ctx context.Context, params Params) (Payload, error) {
	return m.http.Request(ctx, http.MethodPost, PathModelDeploy, params)
}
