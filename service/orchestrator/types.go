package orchestrator

import (
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/elC0mpa/aws-forecast/service"
)

type orchestratorService struct {
	identityService service.IdentityService
	forecastService service.ForecastService
	render          Renderer
}

// Report is everything a forecast workflow needs to draw
type Report struct {
	AccountID string
	Results   []model.ForecastResult
}

type Renderer interface {
	Table(report Report)
	Chart(report Report)
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
}
