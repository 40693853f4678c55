package flowableadminsdk

// Client 是 SDK 对外入口，按资源分组（Model / Account / Notice）。
type Client struct {
	Model   Model
	Account Account
	Notice  Notice
}

func New(baseURL string, opts ...Option) *Client {
	return NewWithRequester(NewHTTPClient(baseURL, opts...))
}

// NewWithRequester 使用自定义 Requester 构造 Client，所有分组共用同一个 Requester。
func NewWithRequester(r Requester) *Client {
	return &Client{
		Model:   Model{http: r},
		Account: Account{http: r},
		Notice:  Notice{http: r},
	}
}
