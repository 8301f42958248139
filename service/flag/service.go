package flag

import (
	"flag"
	"os"

	"github.com/elC0mpa/aws-forecast/model"
)

func NewService() *service {
	return &service{}
}

type service struct{}

func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.parse(flag.CommandLine, os.Args[1:])
}

func (s *service) parse(fs *flag.FlagSet, args []string) (model.Flags, error) {
	region := fs.String("region", "us-east-1", "AWS region")
	profile := fs.String("profile", "", "AWS profile configuration")
	svc := fs.String("service", "ALL", "Service to forecast: ALL, EC2, RDS, VPC or S3")
	all := fs.Bool("all", false, "Forecast every known service")
	chart := fs.Bool("chart", false, "Display the forecast as a bar chart")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, err
	}

	return model.Flags{
		Region:  *region,
		Profile: *profile,
		Service: *svc,
		All:     *all,
		Chart:   *chart,
	}, nil
}
