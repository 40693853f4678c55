package flowableadminsdk

// 说明：
// - 后台管理接口的请求与响应在前端一直是 any，这里保持不透明，不做任何 schema 校验。
// - Payload 通常是 map[string]any 或 []any（encoding/json 的默认解码结果），空响应为 nil。

// Params 是透传给服务端的请求参数。
type Params map[string]any

// Payload 是服务端返回的原始 JSON 值。
type Payload = any

const (
	PathPageModel   = "/server/rest/model/page-model"
	PathModelDeploy = "/server/rest/model/deploy"
	PathAccount     = "/server/app/rest/account"
	PathNotices     = "/api/notices"
)
