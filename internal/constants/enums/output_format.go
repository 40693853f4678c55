package enums

import (
	"github.com/nft-rainbow/rainbow-goutils/utils/enumutils"
)

// OutputFormat 表示命令行输出格式，配置文件与 --output 参数中使用其字符串形式。
type OutputFormat int8

const (
	OutputFormatJSON OutputFormat = iota + 1
	OutputFormatTable
)

var OutputFormatEb enumutils.EnumBase[OutputFormat]

func init() {
	OutputFormatEb = enumutils.NewEnumBase("OutputFormat", map[OutputFormat]string{
		OutputFormatJSON:  "json",
		OutputFormatTable: "table",
	})
}

func (b OutputFormat) MarshalText() ([]byte, error) {
	return OutputFormatEb.MarshalText(b)
}

func (b *OutputFormat) UnmarshalText(data []byte) error {
	val, err := OutputFormatEb.UnmarshalText(data)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

func (b OutputFormat) String() string {
	return OutputFormatEb.String(b)
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	return OutputFormatEb.Parse(s)
}
