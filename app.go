package main

import (
	"context"

	awsconfig "github.com/elC0mpa/aws-forecast/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-forecast/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-forecast/service/aws/sts"
	"github.com/elC0mpa/aws-forecast/service/flag"
	"github.com/elC0mpa/aws-forecast/service/orchestrator"
	"github.com/elC0mpa/aws-forecast/utils"
	"go.uber.org/zap"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	utils.StartSpinner()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(context.Background(), awsconfig.Options{
		Region:  flags.Region,
		Profile: flags.Profile,
	})
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}

	forecastService := awscostexplorer.NewService(awsCfg, zap.NewNop())
	stsService := awssts.NewService(awsCfg)

	orchestratorService := orchestrator.NewService(stsService, forecastService, nil)

	err = orchestratorService.Orchestrate(flags)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}
}
