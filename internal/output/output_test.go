package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangdayong228/flowable-admin-client/internal/constants/enums"
)

func TestRender_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, enums.OutputFormatJSON, map[string]any{"data": []any{map[string]any{"id": 1}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[{"id":1}]}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestRender_TableObjectSortedKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, enums.OutputFormatTable, map[string]any{
		"total": float64(2),
		"admin": true,
		"data":  []any{map[string]any{"id": "m1"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, `[{"id":"m1"}]`)
	adminIdx := strings.Index(out, "admin")
	dataIdx := strings.Index(out, "data")
	totalIdx := strings.Index(out, "total")
	assert.True(t, adminIdx < dataIdx && dataIdx < totalIdx, out)
}

func TestRender_TableArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Render(&buf, enums.OutputFormatTable, []any{"系统维护通知", nil})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "INDEX")
	assert.Contains(t, buf.String(), "系统维护通知")
}

func TestRender_TableScalar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, enums.OutputFormatTable, float64(42)))
	assert.Contains(t, buf.String(), "42")
}
