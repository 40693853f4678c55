package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/wangdayong228/flowable-admin-client/internal/constants/enums"
)

// Render 按指定格式输出接口返回的原始 payload。
func Render(w io.Writer, format enums.OutputFormat, payload any) error {
	switch format {
	case enums.OutputFormatTable:
		return renderTable(w, payload)
	case enums.OutputFormatJSON, 0:
		return renderJSON(w, payload)
	default:
		return fmt.Errorf("不支持的输出格式: %d", format)
	}
}

func renderJSON(w io.Writer, payload any) error {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化输出失败: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// renderTable 对象按 key 排序输出 KEY/VALUE，数组输出 INDEX/VALUE，其余输出单行 VALUE。
func renderTable(w io.Writer, payload any) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)

	switch v := payload.(type) {
	case map[string]any:
		table.SetHeader([]string{"KEY", "VALUE"})
		for _, k := range slices.Sorted(maps.Keys(v)) {
			cell, err := formatCell(v[k])
			if err != nil {
				return err
			}
			table.Append([]string{k, cell})
		}
	case []any:
		table.SetHeader([]string{"INDEX", "VALUE"})
		for i, item := range v {
			cell, err := formatCell(item)
			if err != nil {
				return err
			}
			table.Append([]string{strconv.Itoa(i), cell})
		}
	default:
		table.SetHeader([]string{"VALUE"})
		cell, err := formatCell(v)
		if err != nil {
			return err
		}
		table.Append([]string{cell})
	}

	table.Render()
	return nil
}

func formatCell(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("序列化字段失败: %w", err)
	}
	return string(b), nil
}
