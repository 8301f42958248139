package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ServiceKey is the short identifier a caller supplies to scope a forecast
type ServiceKey string

const (
	ServiceKeyAll ServiceKey = "ALL"
	ServiceKeyEC2 ServiceKey = "EC2"
	ServiceKeyRDS ServiceKey = "RDS"
	ServiceKeyVPC ServiceKey = "VPC"
	ServiceKeyS3  ServiceKey = "S3"
)

// NormalizeServiceKey uppercases the raw key. Unknown keys are kept as-is so they
// echo back to the caller; an empty key means ALL.
func NormalizeServiceKey(raw string) ServiceKey {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return ServiceKeyAll
	}
	return ServiceKey(key)
}

// ForecastWindow is the [Start, End) date range of a forecast, formatted YYYY-MM-DD
type ForecastWindow struct {
	Start string
	End   string
}

type ForecastOutcome string

const (
	ForecastOutcomeSuccess ForecastOutcome = "success"
	ForecastOutcomeFailure ForecastOutcome = "failure"
)

// ForecastResult is the normalized answer of a single forecast request.
// A failed request still carries a usable zero amount; Outcome and Err tell
// it apart from a genuine zero forecast.
type ForecastResult struct {
	Service ServiceKey
	Amount  decimal.Decimal
	Unit    string
	Window  ForecastWindow
	Outcome ForecastOutcome
	Err     error
}

func (r ForecastResult) Failed() bool {
	return r.Outcome == ForecastOutcomeFailure
}
