package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// Forecast is the public shape of a forecast result
type Forecast struct {
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
	Unit    string  `json:"unit"`
}

// ForecastDetail adds the window and outcome for tool consumers
type ForecastDetail struct {
	Forecast
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
}
