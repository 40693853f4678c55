package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/wangdayong228/flowable-admin-client/internal/utils/commonutil"
	flowableadminsdk "github.com/wangdayong228/flowable-admin-client/pkg/flowable-admin-sdk"
)

var deployParams []string

func init() {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "流程模型管理",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "查询流程模型分页列表",
		Args:  cobra.NoArgs,
		RunE:  runModelsList,
	}

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "部署流程模型",
		Long:  "部署流程模型：-p 传入的 key=value 参数原样作为请求参数发送给 /server/rest/model/deploy，可重复指定。",
		Args:  cobra.NoArgs,
		RunE:  runModelsDeploy,
	}
	deployCmd.Flags().StringArrayVarP(&deployParams, "param", "p", nil, "部署参数，格式 key=value（例如 -p modelId=xxx）")

	modelsCmd.AddCommand(listCmd, deployCmd)
	rootCmd.AddCommand(modelsCmd)
}

func runModelsList(cmd *cobra.Command, args []string) error {
	return runWithClient(cmd, func(c *flowableadminsdk.Client) (flowableadminsdk.Payload, error) {
		return c.Model.FetchModules(cmd.Context())
	})
}

func runModelsDeploy(cmd *cobra.Command, args []string) error {
	params, err := commonutil.ParseParams(deployParams)
	if err != nil {
		return errors.WithMessage(err, "解析部署参数失败")
	}

	return runWithClient(cmd, func(c *flowableadminsdk.Client) (flowableadminsdk.Payload, error) {
		return c.Model.DeployModule(cmd.Context(), params)
	})
}
