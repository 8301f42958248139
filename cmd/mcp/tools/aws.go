package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/aws-forecast/model"
	"github.com/elC0mpa/aws-forecast/response"
	"github.com/elC0mpa/aws-forecast/service"
	awsconfig "github.com/elC0mpa/aws-forecast/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-forecast/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-forecast/service/aws/sts"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Services builds the AWS services a tool call needs
type Services interface {
	Identity(ctx context.Context) (service.IdentityService, error)
	Forecast(ctx context.Context) (service.ForecastService, error)
}

type awsServices struct {
	opts awsconfig.Options
}

func (a awsServices) Identity(ctx context.Context) (service.IdentityService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, a.opts)
	if err != nil {
		return nil, err
	}
	return awssts.NewService(awsCfg), nil
}

func (a awsServices) Forecast(ctx context.Context) (service.ForecastService, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, a.opts)
	if err != nil {
		return nil, err
	}
	return awscostexplorer.NewService(awsCfg, zap.NewNop()), nil
}

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, opts awsconfig.Options) {
	registerTools(s, awsServices{opts: opts})
}

func registerTools(s *server.MCPServer, svc Services) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAWSAccountInfoHandler(svc),
	)

	// Remaining month forecast
	s.AddTool(newCostForecastTool(), makeAWSCostForecastHandler(svc))
}

func newCostForecastTool() mcp.Tool {
	return mcp.NewTool("aws_get_cost_forecast",
		mcp.WithDescription("Forecast AWS blended cost from today through the end of the current month, optionally for a single service"),
		mcp.WithString("service",
			mcp.Description("Service to forecast. ALL forecasts the whole account."),
			mcp.Enum(serviceKeyNames()...),
		),
	)
}

func serviceKeyNames() []string {
	keys := awscostexplorer.KnownServiceKeys()
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, string(key))
	}
	return names
}

func makeAWSAccountInfoHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		identity, err := svc.Identity(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		info, err := identity.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAWSCostForecastHandler(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		forecast, err := svc.Forecast(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		key := model.NormalizeServiceKey(request.GetString("service", string(model.ServiceKeyAll)))
		result := forecast.GetRemainingMonthForecast(ctx, key)

		resp := response.ConvertForecastDetail(result)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
