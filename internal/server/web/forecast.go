package web

import (
	"context"
	"net/http"
	"time"

	"github.com/elC0mpa/aws-forecast/internal/telemetry/prometheus"
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/elC0mpa/aws-forecast/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const forecastOutcomeHeader = "X-Forecast-Outcome"

// The handler always answers 200; a failed forecast is only visible in the
// outcome header.
func getGetForecastHandler(fp ForecastProvider, metrics *prometheus.Client, log *zap.Logger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := model.NormalizeServiceKey(c.Query("service"))

		ctx := c.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		start := time.Now()
		result := fp.GetRemainingMonthForecast(ctx, key)
		metrics.ObserveForecast(result, time.Since(start))

		if result.Failed() {
			log.Debug("serving fallback forecast",
				zap.String(correlationId, c.GetString(correlationId)),
				zap.String("service", string(key)),
			)
		}

		c.Header(forecastOutcomeHeader, string(result.Outcome))
		c.JSON(http.StatusOK, response.ConvertForecast(result))
	}
}
