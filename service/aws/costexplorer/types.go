package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-forecast/model"
	"go.uber.org/zap"
)

// ForecastAPI is the subset of the Cost Explorer client the forecast needs
type ForecastAPI interface {
	GetCostForecast(ctx context.Context, params *costexplorer.GetCostForecastInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostForecastOutput, error)
}

type service struct {
	client ForecastAPI
	log    *zap.Logger
	now    func() time.Time
}

type ForecastService interface {
	GetRemainingMonthForecast(ctx context.Context, key model.ServiceKey) model.ForecastResult
}
