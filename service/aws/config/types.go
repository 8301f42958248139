package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type service struct{}

// Options selects how AWS credentials are resolved. Static keys win when both
// are present; otherwise the default chain (optionally scoped to Profile) is used.
type Options struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
}

type ConfigService interface {
	GetAWSCfg(ctx context.Context, opts Options) (aws.Config, error)
}
