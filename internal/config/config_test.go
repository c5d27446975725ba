package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault_ReturnsHardcodedValues(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "sig(%d)> ", cfg.Prompt)
	assert.True(t, cfg.Color)
	assert.NotEmpty(t, cfg.Banner)
}

func TestLoad_NoFileReturnsDefault(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
}
