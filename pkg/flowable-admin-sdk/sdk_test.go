package flowableadminsdk

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	Method string
	Path   string
	Params Params
}

// fakeRequester 记录每次调用，并返回预设的结果。
type fakeRequester struct {
	calls []recordedCall
	out   Payload
	err   error
}

func (f *fakeRequester) Request(_ context.Context, method, path string, params Params) (Payload, error) {
	f.calls = append(f.calls, recordedCall{Method: method, Path: path, Params: params})
	return f.out, f.err
}

func TestOperations_IssueOneCallWithMethodAndPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		call   func(c *Client) (Payload, error)
		method string
		path   string
	}{
		{"FetchModules", func(c *Client) (Payload, error) { return c.Model.FetchModules(context.Background()) }, http.MethodGet, PathPageModel},
		{"DeployModule", func(c *Client) (Payload, error) { return c.Model.DeployModule(context.Background(), Params{"modelId": "m1"}) }, http.MethodPost, PathModelDeploy},
		{"FetchCurrentUser", func(c *Client) (Payload, error) { return c.Account.FetchCurrentUser(context.Background()) }, http.MethodGet, PathAccount},
		{"FetchNotices", func(c *Client) (Payload, error) { return c.Notice.FetchNotices(context.Background()) }, http.MethodGet, PathNotices},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := &fakeRequester{}
			_, err := tc.call(NewWithRequester(f))
			require.NoError(t, err)
			require.Len(t, f.calls, 1)
			assert.Equal(t, tc.method, f.calls[0].Method)
			assert.Equal(t, tc.path, f.calls[0].Path)
		})
	}
}

func TestOperations_NoParamCallsPassNilParams(t *testing.T) {
	t.Parallel()

	f := &fakeRequester{}
	c := NewWithRequester(f)
	ctx := context.Background()

	_, _ = c.Model.FetchModules(ctx)
	_, _ = c.Account.FetchCurrentUser(ctx)
	_, _ = c.Notice.FetchNotices(ctx)

	require.Len(t, f.calls, 3)
	for _, call := range f.calls {
		assert.Nil(t, call.Params, "path=%s", call.Path)
	}
}

func TestDeployModule_ForwardsParamsUnmodified(t *testing.T) {
	t.Parallel()

	f := &fakeRequester{}
	params := Params{
		"modelId": "leave-process",
		"tenant":  map[string]any{"id": 7},
		"tags":    []string{"a", "b"},
	}
	want := Params{
		"modelId": "leave-process",
		"tenant":  map[string]any{"id": 7},
		"tags":    []string{"a", "b"},
	}

	_, err := NewWithRequester(f).Model.DeployModule(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
	assert.Equal(t, want, f.calls[0].Params)
	assert.Equal(t, want, params)
}

func TestFetchModules_ReturnsTransportPayload(t *testing.T) {
	t.Parallel()

	payload := map[string]any{"data": []any{map[string]any{"id": 1}}}
	f := &fakeRequester{out: payload}

	got, err := NewWithRequester(f).Model.FetchModules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"data": []any{map[string]any{"id": 1}}}, got)
}

func TestOperations_PropagateTransportError(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection refused")
	f := &fakeRequester{out: "ignored", err: transportErr}
	c := NewWithRequester(f)
	ctx := context.Background()

	calls := []func() (Payload, error){
		func() (Payload, error) { return c.Model.FetchModules(ctx) },
		func() (Payload, error) { return c.Model.DeployModule(ctx, Params{"id": 1}) },
		func() (Payload, error) { return c.Account.FetchCurrentUser(ctx) },
		func() (Payload, error) { return c.Notice.FetchNotices(ctx) },
	}
	for _, call := range calls {
		_, err := call()
		assert.Same(t, transportErr, err)
	}
	assert.Len(t, f.calls, 4)
}
