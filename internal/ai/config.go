// Package ai provides the gateway to the hosted model behind the four
// resume tasks: content optimization, ATS checking, cover-letter
// generation, and skill-gap analysis.
package ai

// ModelTier represents the complexity level of a model.
type ModelTier string

const (
	// TierLite is for simple generation such as the cover letter.
	TierLite ModelTier = "lite"
	// TierStandard is for structured-output tasks.
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the gateway.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}
