package service

import (
	"context"

	"github.com/elC0mpa/aws-forecast/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// ForecastService provides the remaining month cost forecast
type ForecastService interface {
	GetRemainingMonthForecast(ctx context.Context, key model.ServiceKey) model.ForecastResult
}
