package response

import (
	"github.com/elC0mpa/aws-forecast/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertForecast converts model.ForecastResult to response.Forecast
func ConvertForecast(result model.ForecastResult) Forecast {
	unit := result.Unit
	if unit == "" {
		unit = "USD"
	}

	return Forecast{
		Service: string(result.Service),
		Amount:  result.Amount.InexactFloat64(),
		Unit:    unit,
	}
}

// ConvertForecastDetail converts model.ForecastResult to response.ForecastDetail
func ConvertForecastDetail(result model.ForecastResult) ForecastDetail {
	detail := ForecastDetail{
		Forecast:  ConvertForecast(result),
		StartDate: result.Window.Start,
		EndDate:   result.Window.End,
		Outcome:   string(result.Outcome),
	}

	if result.Err != nil {
		detail.Error = result.Err.Error()
	}

	return detail
}
