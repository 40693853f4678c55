package flowableadminsdk

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// 单次请求的默认超时，可通过 WithTimeout 覆盖
const defaultTimeout = 30 * time.Second

// Requester 是所有接口共用的请求函数，负责 base URL、鉴权、cookie 与错误解析。
// 接口分组只做转发，便于在测试中替换为 fake。
type Requester interface {
	Request(ctx context.Context, method, path string, params Params) (Payload, error)
}

// HTTPClient 是最原生的 HTTP 交互层：负责 resty client、通用请求、错误解析。
type HTTPClient struct {
	http *resty.Client
}

var _ Requester = (*HTTPClient)(nil)

type Option func(*HTTPClient)

// NewHTTPClient 创建底层 HTTP 客户端。
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	baseURL = strings.TrimRight(baseURL, "/")

	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(defaultTimeout)

	c := &HTTPClient{http: rc}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WithRestyClient 替换内部 resty client；调用方需自行设置 base URL。
func WithRestyClient(rc *resty.Client) Option {
	return func(c *HTTPClient) {
		if rc != nil {
			c.http = rc
		}
	}
}

func WithBearerToken(token string) Option {
	return func(c *HTTPClient) {
		if token != "" {
			c.http.SetAuthToken(token)
		}
	}
}

func WithHeader(key, value string) Option {
	return func(c *HTTPClient) {
		if key != "" {
			c.http.SetHeader(key, value)
		}
	}
}

// WithCookie 为每个请求附带固定 cookie（例如登录后拿到的 remember-me cookie）。
// 服务端下发的 cookie 由 resty 自带的 cookie jar 维护，无需手动设置。
func WithCookie(name, value string) Option {
	return func(c *HTTPClient) {
		if name != "" {
			c.http.SetCookie(&http.Cookie{Name: name, Value: value})
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.http.SetLogger(l)
		}
	}
}

func WithDebug(debug bool) Option {
	return func(c *HTTPClient) {
		c.http.SetDebug(debug)
	}
}

// ErrorBody 对应 Spring Boot 默认的错误响应结构。
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// APIError 表示服务端返回的非 2xx 响应。
type APIError struct {
	StatusCode int
	Body       ErrorBody
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flowable admin api error: status=%d error=%q message=%q", e.StatusCode, e.Body.Error, e.Body.Message)
}

// Request 发送一次请求。params 一律作为 query string 发送；
// 成功时返回解码后的 JSON，空响应或非 JSON 响应返回 nil。
func (c *HTTPClient) Request(ctx context.Context, method, path string, params Params) (Payload, error) {
	eb := new(ErrorBody)
	req := c.http.R().
		SetContext(ctx).
		SetError(eb)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params.Values())
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		// 可能存在非 JSON 的错误响应，这里尽量返回原始内容便于排查
		if eb.Message == "" && len(resp.Body()) > 0 {
			eb.Message = string(resp.Body())
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: *eb}
	}
	return c.decodeResult(resp)
}

// decodeResult 不走 resty 的 SetResult：服务端部署成功时可能返回 200 + 空 body。
func (c *HTTPClient) decodeResult(resp *resty.Response) (Payload, error) {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || !resty.IsJSONType(resp.Header().Get("Content-Type")) {
		return nil, nil
	}
	var out Payload
	if err := c.http.JSONUnmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Values 将参数转换为 url.Values：切片展开为同名多值，[]byte 按字符串发送，nil 值被忽略。
func (p Params) Values() url.Values {
	vals := make(url.Values, len(p))
	for k, v := range p {
		switch x := v.(type) {
		case nil:
			continue
		case []byte:
			vals.Add(k, string(x))
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				vals.Add(k, fmt.Sprint(rv.Index(i).Interface()))
			}
			continue
		}
		vals.Add(k, fmt.Sprint(v))
	}
	return vals
}
