package awscostexplorer

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/aws-forecast/model"
)

// Values of the Cost Explorer SERVICE dimension
var serviceNames = map[model.ServiceKey]string{
	model.ServiceKeyEC2: "Amazon Elastic Compute Cloud - Compute",
	model.ServiceKeyRDS: "Amazon Relational Database Service",
	model.ServiceKeyVPC: "Amazon Virtual Private Cloud",
	model.ServiceKeyS3:  "Amazon Simple Storage Service",
}

// ResolveServiceName returns the SERVICE dimension value for key, or nil when the
// forecast should cover the whole account. ALL and unknown keys both return nil.
func ResolveServiceName(key model.ServiceKey) *string {
	name, ok := serviceNames[key]
	if !ok {
		return nil
	}
	return aws.String(name)
}

func KnownServiceKeys() []model.ServiceKey {
	return []model.ServiceKey{
		model.ServiceKeyAll,
		model.ServiceKeyEC2,
		model.ServiceKeyRDS,
		model.ServiceKeyVPC,
		model.ServiceKeyS3,
	}
}
