package llm

// Parameters contains the optional configuration parameters for LLM services.
//
// Not every parameter is supported by every provider; unsupported fields are
// ignored by the provider that receives them.
type Parameters struct {
	Temperature      *float32 `yaml:"temperature"`
	TopP             *float32 `yaml:"topP"`
	FrequencyPenalty *float32 `yaml:"frequencyPenalty"`
	PresencePenalty  *float32 `yaml:"presencePenalty"`
	Seed             *int     `yaml:"seed"`
	MaxTokens        *int     `yaml:"maxTokens"`
	Stop             []string `yaml:"stop"`

	// JSONOutput asks the provider to constrain the response to a single
	// JSON value, on providers that support such a mode. Callers that
	// decode structured output should set this.
	JSONOutput bool `yaml:"jsonOutput"`
}
