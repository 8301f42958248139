package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elC0mpa/aws-forecast/internal/config"
	"github.com/elC0mpa/aws-forecast/internal/logger/zap"
	"github.com/elC0mpa/aws-forecast/internal/server/web"
	"github.com/elC0mpa/aws-forecast/internal/telemetry/prometheus"
	awsconfig "github.com/elC0mpa/aws-forecast/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-forecast/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-forecast/service/aws/sts"
	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		panic(err)
	}

	cfg, err := config.ParseEnvVariables()
	if err != nil {
		panic(err)
	}

	lg := zap.NewLogger(cfg.LogMode)
	defer lg.Sync()

	gin.SetMode(gin.ReleaseMode)

	lg.Sugar().Infof("env check: %v", cfg.Redacted())

	awsCfg, err := awsconfig.NewService().GetAWSCfg(context.Background(), awsconfig.Options{
		Region:          cfg.AwsRegion,
		Profile:         cfg.AwsProfile,
		AccessKeyID:     cfg.AwsAccessKeyId,
		SecretAccessKey: cfg.AwsSecretAccessKey,
	})
	if err != nil {
		lg.Sugar().Fatalf("cannot configure aws client: %v", err)
	}

	checkIdentity(lg, awssts.NewService(awsCfg))

	fs := awscostexplorer.NewService(awsCfg, lg)
	srv := web.NewForecastServer(lg, fs, prometheus.NewClient(), web.Options{
		Port:            cfg.Port,
		StaticDir:       cfg.StaticDir,
		Mode:            cfg.LogMode,
		ForecastTimeout: cfg.ForecastTimeout,
	})

	srv.Run()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Sugar().Debugf("forecast server shutdown: %v", err)
	}

	lg.Info("server exited")
}
