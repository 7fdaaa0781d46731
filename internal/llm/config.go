// Package llm holds the AI provider abstraction used by the optional
// AI generation path. The engine core never imports this package; callers
// obtain a structured rewrite result here and hand it to the assembly step.
package llm

// ModelTier represents the capability level requested for a task.
type ModelTier string

const (
	// TierLite is for short free-text tasks such as fit assessments.
	TierLite ModelTier = "lite"
	// TierStandard is for structured JSON output such as the tailored rewrite.
	TierStandard ModelTier = "standard"
	// TierAdvanced is reserved for heavier rewriting work.
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM backend.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back through standard
// and lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[tier] = model
	return next
}
