package awscostexplorer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/smithy-go"
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeForecastClient struct {
	output *costexplorer.GetCostForecastOutput
	err    error
	inputs []*costexplorer.GetCostForecastInput
}

func (f *fakeForecastClient) GetCostForecast(ctx context.Context, params *costexplorer.GetCostForecastInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostForecastOutput, error) {
	f.inputs = append(f.inputs, params)
	return f.output, f.err
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}
}

func forecastOutput(mean, unit string) *costexplorer.GetCostForecastOutput {
	return &costexplorer.GetCostForecastOutput{
		ForecastResultsByTime: []types.ForecastResult{
			{MeanValue: aws.String(mean)},
		},
		Total: &types.MetricValue{
			Amount: aws.String(mean),
			Unit:   aws.String(unit),
		},
	}
}

func TestGetRemainingMonthForecast(t *testing.T) {
	t.Run("when the forecast succeeds", func(t *testing.T) {
		client := &fakeForecastClient{output: forecastOutput("123.45", "USD")}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyEC2)

		assert.Equal(t, model.ServiceKeyEC2, result.Service)
		assert.True(t, decimal.RequireFromString("123.45").Equal(result.Amount))
		assert.Equal(t, "USD", result.Unit)
		assert.Equal(t, model.ForecastOutcomeSuccess, result.Outcome)
		assert.False(t, result.Failed())
		assert.NoError(t, result.Err)
		assert.Equal(t, model.ForecastWindow{Start: "2024-03-15", End: "2024-04-01"}, result.Window)
	})

	t.Run("when the results list is empty", func(t *testing.T) {
		client := &fakeForecastClient{output: &costexplorer.GetCostForecastOutput{}}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyAll)

		assert.True(t, result.Amount.IsZero())
		assert.Equal(t, "USD", result.Unit)
		assert.Equal(t, model.ForecastOutcomeSuccess, result.Outcome)
	})

	t.Run("when the mean value is missing", func(t *testing.T) {
		client := &fakeForecastClient{output: &costexplorer.GetCostForecastOutput{
			ForecastResultsByTime: []types.ForecastResult{{}},
			Total:                 &types.MetricValue{Unit: aws.String("EUR")},
		}}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyS3)

		assert.True(t, result.Amount.IsZero())
		assert.Equal(t, "EUR", result.Unit)
		assert.Equal(t, model.ForecastOutcomeSuccess, result.Outcome)
	})

	t.Run("when the remote call fails", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		client := &fakeForecastClient{err: &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "denied"}}
		s := NewServiceWithClient(client, zap.New(core), fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyRDS)

		assert.Equal(t, model.ServiceKeyRDS, result.Service)
		assert.True(t, result.Amount.IsZero())
		assert.Equal(t, "USD", result.Unit)
		assert.Equal(t, model.ForecastOutcomeFailure, result.Outcome)
		assert.True(t, result.Failed())
		assert.Error(t, result.Err)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "forecast error", entry.Message)
		assert.Equal(t, "AccessDeniedException", entry.ContextMap()["code"])
		assert.Equal(t, "RDS", entry.ContextMap()["service"])
	})

	t.Run("when the mean value is not a number", func(t *testing.T) {
		client := &fakeForecastClient{output: forecastOutput("not-a-number", "USD")}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyEC2)

		assert.True(t, result.Amount.IsZero())
		assert.Equal(t, "USD", result.Unit)
		assert.Equal(t, model.ForecastOutcomeFailure, result.Outcome)
	})

	t.Run("when the mean value overflows a float", func(t *testing.T) {
		client := &fakeForecastClient{output: forecastOutput("1e400", "USD")}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyEC2)

		assert.True(t, result.Amount.IsZero())
		assert.Equal(t, "USD", result.Unit)
		assert.Equal(t, model.ForecastOutcomeFailure, result.Outcome)
		assert.Error(t, result.Err)
	})

	t.Run("when a network error occurs", func(t *testing.T) {
		client := &fakeForecastClient{err: errors.New("dial tcp: i/o timeout")}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.March, 15))

		result := s.GetRemainingMonthForecast(context.Background(), model.ServiceKey("FOO"))

		assert.Equal(t, model.ServiceKey("FOO"), result.Service)
		assert.True(t, result.Amount.IsZero())
		assert.True(t, result.Failed())
	})

	t.Run("sends the request for the remaining month", func(t *testing.T) {
		client := &fakeForecastClient{output: forecastOutput("1", "USD")}
		s := NewServiceWithClient(client, nil, fixedClock(2024, time.December, 31))

		s.GetRemainingMonthForecast(context.Background(), model.ServiceKeyVPC)

		require.Len(t, client.inputs, 1)
		input := client.inputs[0]
		assert.Equal(t, "2024-12-31", aws.ToString(input.TimePeriod.Start))
		assert.Equal(t, "2025-01-01", aws.ToString(input.TimePeriod.End))
		assert.Equal(t, types.MetricBlendedCost, input.Metric)
		assert.Equal(t, types.GranularityMonthly, input.Granularity)
		require.NotNil(t, input.Filter)
		assert.Equal(t, types.DimensionService, input.Filter.Dimensions.Key)
		assert.Equal(t, []string{"Amazon Virtual Private Cloud"}, input.Filter.Dimensions.Values)
	})
}

func TestBuildForecastInput(t *testing.T) {
	window := model.ForecastWindow{Start: "2024-03-15", End: "2024-04-01"}

	t.Run("omits the filter for ALL", func(t *testing.T) {
		input := BuildForecastInput(model.ServiceKeyAll, window)
		assert.Nil(t, input.Filter)
	})

	t.Run("omits the filter for unknown keys", func(t *testing.T) {
		input := BuildForecastInput(model.ServiceKey("LAMBDA"), window)
		assert.Nil(t, input.Filter)
	})

	t.Run("filters on a single service", func(t *testing.T) {
		input := BuildForecastInput(model.ServiceKeyS3, window)
		require.NotNil(t, input.Filter)
		require.NotNil(t, input.Filter.Dimensions)
		assert.Equal(t, []string{"Amazon Simple Storage Service"}, input.Filter.Dimensions.Values)
		assert.Nil(t, input.Filter.And)
		assert.Nil(t, input.Filter.Or)
	})
}
