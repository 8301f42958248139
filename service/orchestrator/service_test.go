package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/aws-forecast/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentity struct {
	err error
}

func (f fakeIdentity) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &model.AccountInfo{Provider: "aws", AccountID: "123456789012"}, nil
}

type fakeForecast struct {
	keys []model.ServiceKey
}

func (f *fakeForecast) GetRemainingMonthForecast(ctx context.Context, key model.ServiceKey) model.ForecastResult {
	f.keys = append(f.keys, key)
	return model.ForecastResult{Service: key, Amount: decimal.NewFromInt(10), Unit: "USD", Outcome: model.ForecastOutcomeSuccess}
}

type recordingRenderer struct {
	tables []Report
	charts []Report
}

func (r *recordingRenderer) Table(report Report) { r.tables = append(r.tables, report) }
func (r *recordingRenderer) Chart(report Report) { r.charts = append(r.charts, report) }

func TestOrchestrate(t *testing.T) {
	t.Run("single service as a table", func(t *testing.T) {
		forecast := &fakeForecast{}
		render := &recordingRenderer{}

		err := NewService(fakeIdentity{}, forecast, render).Orchestrate(model.Flags{Service: "rds"})
		require.NoError(t, err)

		assert.Equal(t, []model.ServiceKey{model.ServiceKeyRDS}, forecast.keys)
		require.Len(t, render.tables, 1)
		assert.Empty(t, render.charts)
		assert.Equal(t, "123456789012", render.tables[0].AccountID)
		assert.Len(t, render.tables[0].Results, 1)
	})

	t.Run("every service as a chart", func(t *testing.T) {
		forecast := &fakeForecast{}
		render := &recordingRenderer{}

		err := NewService(fakeIdentity{}, forecast, render).Orchestrate(model.Flags{All: true, Chart: true})
		require.NoError(t, err)

		assert.Equal(t, []model.ServiceKey{"ALL", "EC2", "RDS", "VPC", "S3"}, forecast.keys)
		require.Len(t, render.charts, 1)
		assert.Len(t, render.charts[0].Results, 5)
	})

	t.Run("when the identity cannot be resolved", func(t *testing.T) {
		render := &recordingRenderer{}
		cause := errors.New("no credentials")

		err := NewService(fakeIdentity{err: cause}, &fakeForecast{}, render).Orchestrate(model.Flags{})
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, render.tables)
	})
}
