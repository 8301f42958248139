package prometheus

import (
	"net/http"
	"time"

	"github.com/elC0mpa/aws-forecast/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "forecast"

type Client struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewClient() *Client {
	c := &Client{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Forecast requests by service key and outcome.",
			},
			[]string{"service", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Latency of forecast requests against the billing API.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"service"},
		),
	}

	c.registry.MustRegister(c.requests, c.duration)

	return c
}

func (c *Client) ObserveForecast(result model.ForecastResult, elapsed time.Duration) {
	if c == nil {
		return
	}

	service := string(result.Service)
	c.requests.WithLabelValues(service, string(result.Outcome)).Inc()
	c.duration.WithLabelValues(service).Observe(elapsed.Seconds())
}

func (c *Client) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
