package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigModels(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
}

func TestGetModelUnknownTierFallsBack(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, config.GetModel(TierStandard), config.GetModel(ModelTier("experimental")))
}
