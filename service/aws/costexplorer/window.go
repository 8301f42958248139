package awscostexplorer

import (
	"time"

	"github.com/elC0mpa/aws-forecast/model"
)

const dateLayout = "2006-01-02"

// RemainingMonthWindow spans from the UTC date of now up to the first day of the
// following UTC month.
func RemainingMonthWindow(now time.Time) model.ForecastWindow {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return model.ForecastWindow{
		Start: start.Format(dateLayout),
		End:   getFirstDayOfNextMonth(start).Format(dateLayout),
	}
}

func getFirstDayOfNextMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month()+1, 1, 0, 0, 0, 0, month.Location())
}
