package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_PROFILE", "billing")

	cfg := LoadConfig()

	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "billing", cfg.AWSProfile)
}
