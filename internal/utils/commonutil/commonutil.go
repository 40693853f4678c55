package commonutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ParseParams 将 key=value 形式的命令行参数解析为请求参数。
// 同一个 key 出现多次时，值收集为 []string，保持出现顺序。
func ParseParams(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok {
			return nil, errors.Errorf("参数格式应为 key=value: %q", kv)
		}
		if key == "" {
			return nil, errors.Errorf("参数 key 不能为空: %q", kv)
		}

		switch prev := out[key].(type) {
		case nil:
			out[key] = value
		case string:
			out[key] = []string{prev, value}
		case []string:
			out[key] = append(prev, value)
		}
	}
	return out, nil
}

// ExpandHome 将以 ~ 开头的路径展开为用户 home 目录下的绝对路径。
func ExpandHome(path string) (string, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "获取 home 目录失败")
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	return filepath.Join(home, rest), nil
}
