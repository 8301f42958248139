package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-forecast/model"
	"github.com/elC0mpa/aws-forecast/service"
	awscostexplorer "github.com/elC0mpa/aws-forecast/service/aws/costexplorer"
	"github.com/elC0mpa/aws-forecast/utils"
)

func NewService(identityService service.IdentityService, forecastService service.ForecastService, render Renderer) *orchestratorService {
	if render == nil {
		render = terminalRenderer{}
	}

	return &orchestratorService{
		identityService: identityService,
		forecastService: forecastService,
		render:          render,
	}
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	report, err := s.collect(context.Background(), flags)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	if flags.Chart {
		s.render.Chart(report)
		return nil
	}

	s.render.Table(report)
	return nil
}

func (s *orchestratorService) collect(ctx context.Context, flags model.Flags) (Report, error) {
	keys := []model.ServiceKey{model.NormalizeServiceKey(flags.Service)}
	if flags.All {
		keys = awscostexplorer.KnownServiceKeys()
	}

	results := make([]model.ForecastResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, s.forecastService.GetRemainingMonthForecast(ctx, key))
	}

	info, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return Report{}, err
	}

	return Report{
		AccountID: info.AccountID,
		Results:   results,
	}, nil
}

type terminalRenderer struct{}

func (terminalRenderer) Table(report Report) {
	utils.DrawForecastTable(report.AccountID, report.Results)
}

func (terminalRenderer) Chart(report Report) {
	utils.DrawForecastChart(report.AccountID, report.Results)
}
