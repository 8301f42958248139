package main

import (
	"context"
	"time"

	awssts "github.com/elC0mpa/aws-forecast/service/aws/sts"
	"go.uber.org/zap"
)

// checkIdentity only reports whether credentials resolve; forecasts are still
// served (as zero fallbacks) when they do not.
func checkIdentity(lg *zap.Logger, identity awssts.STSService) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := identity.GetAccountInfo(ctx)
	if err != nil {
		lg.Warn("aws credentials could not be verified", zap.Error(err))
		return
	}

	lg.Info("aws credentials verified", zap.String("account", info.AccountID))
}
