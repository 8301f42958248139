package awscostexplorer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const defaultUnit = "USD"

func NewService(awsconfig aws.Config, log *zap.Logger) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return NewServiceWithClient(client, log, time.Now)
}

func NewServiceWithClient(client ForecastAPI, log *zap.Logger, now func() time.Time) *service {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	return &service{
		client: client,
		log:    log,
		now:    now,
	}
}

// GetRemainingMonthForecast never fails: any error yields a zero USD result
// tagged with ForecastOutcomeFailure.
func (s *service) GetRemainingMonthForecast(ctx context.Context, key model.ServiceKey) model.ForecastResult {
	window := RemainingMonthWindow(s.now())

	amount, unit, err := s.getForecast(ctx, key, window)
	if err != nil {
		s.logForecastError(key, window, err)
		return model.ForecastResult{
			Service: key,
			Amount:  decimal.Zero,
			Unit:    defaultUnit,
			Window:  window,
			Outcome: model.ForecastOutcomeFailure,
			Err:     err,
		}
	}

	return model.ForecastResult{
		Service: key,
		Amount:  amount,
		Unit:    unit,
		Window:  window,
		Outcome: model.ForecastOutcomeSuccess,
	}
}

func (s *service) getForecast(ctx context.Context, key model.ServiceKey, window model.ForecastWindow) (decimal.Decimal, string, error) {
	output, err := s.client.GetCostForecast(ctx, BuildForecastInput(key, window))
	if err != nil {
		return decimal.Zero, "", err
	}

	return extractForecast(output)
}

// BuildForecastInput attaches a SERVICE dimension filter only for keys that
// resolve to a service name.
func BuildForecastInput(key model.ServiceKey, window model.ForecastWindow) *costexplorer.GetCostForecastInput {
	input := &costexplorer.GetCostForecastInput{
		Granularity: types.GranularityMonthly,
		Metric:      types.MetricBlendedCost,
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.Start),
			End:   aws.String(window.End),
		},
	}

	if name := ResolveServiceName(key); name != nil {
		input.Filter = &types.Expression{
			Dimensions: &types.DimensionValues{
				Key:    types.DimensionService,
				Values: []string{*name},
			},
		}
	}

	return input
}

// ForecastResult elements carry no unit, so the currency comes from Total.
func extractForecast(output *costexplorer.GetCostForecastOutput) (decimal.Decimal, string, error) {
	amount := decimal.Zero
	unit := defaultUnit

	if output == nil {
		return amount, unit, nil
	}

	if len(output.ForecastResultsByTime) > 0 {
		if mean := output.ForecastResultsByTime[0].MeanValue; mean != nil && *mean != "" {
			parsed, err := decimal.NewFromString(*mean)
			if err != nil {
				return decimal.Zero, "", fmt.Errorf("could not parse forecast mean value %q: %w", *mean, err)
			}
			if math.IsInf(parsed.InexactFloat64(), 0) {
				return decimal.Zero, "", fmt.Errorf("forecast mean value %q is out of range", *mean)
			}
			amount = parsed
		}
	}

	if output.Total != nil && aws.ToString(output.Total.Unit) != "" {
		unit = *output.Total.Unit
	}

	return amount, unit, nil
}

func (s *service) logForecastError(key model.ServiceKey, window model.ForecastWindow, err error) {
	fields := []zap.Field{
		zap.String("service", string(key)),
		zap.String("start", window.Start),
		zap.String("end", window.End),
		zap.Error(err),
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields = append(fields, zap.String("code", apiErr.ErrorCode()))
	}

	s.log.Error("forecast error", fields...)
}
