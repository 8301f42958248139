package web

import (
	"context"
	"net/http"
	"time"

	"github.com/elC0mpa/aws-forecast/internal/telemetry/prometheus"
	"github.com/elC0mpa/aws-forecast/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	correlationId string = "correlationId"
)

type ForecastProvider interface {
	GetRemainingMonthForecast(ctx context.Context, key model.ServiceKey) model.ForecastResult
}

type Options struct {
	Port            string
	StaticDir       string
	Mode            string
	ForecastTimeout time.Duration
}

type ForecastServer struct {
	server *http.Server
	log    *zap.Logger
	port   string
}

func NewForecastServer(log *zap.Logger, fp ForecastProvider, metrics *prometheus.Client, opts Options) *ForecastServer {
	return &ForecastServer{
		log:  log,
		port: opts.Port,
		server: &http.Server{
			Addr:    ":" + opts.Port,
			Handler: NewRouter(log, fp, metrics, opts),
		},
	}
}

func NewRouter(log *zap.Logger, fp ForecastProvider, metrics *prometheus.Client, opts Options) *gin.Engine {
	router := gin.New()

	prod := opts.Mode == "production"
	router.Use(getLoggerMiddleware(log, prod))
	router.Use(gin.Recovery())

	router.GET("/api/health", getGetHealthCheckHandler())
	router.GET("/forecast", getGetForecastHandler(fp, metrics, log, opts.ForecastTimeout))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	router.NoRoute(getStaticHandler(opts.StaticDir))

	return router
}

func (fs *ForecastServer) Run() {
	go func() {
		fs.log.Sugar().Infof("forecast server listening at %s", fs.port)
		fs.log.Sugar().Infof("PORT %s | GET   | /forecast is set up for the remaining month cost forecast using a query param called service", fs.port)
		fs.log.Sugar().Infof("PORT %s | GET   | /api/health is set up for health checking the forecast server", fs.port)
		fs.log.Sugar().Infof("PORT %s | GET   | /metrics is set up for prometheus scraping", fs.port)

		if err := fs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fs.log.Sugar().Fatalf("error forecast server listening: %v", err)
		}
	}()
}

func (fs *ForecastServer) Shutdown(ctx context.Context) error {
	if err := fs.server.Shutdown(ctx); err != nil {
		fs.log.Sugar().Infof("error shutting down forecast server: %v", err)
		return err
	}

	return nil
}

// getStaticHandler serves files for GET and HEAD only.
func getStaticHandler(dir string) gin.HandlerFunc {
	files := http.FileServer(http.Dir(dir))

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}

		files.ServeHTTP(c.Writer, c.Request)
	}
}

func getGetHealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
}
