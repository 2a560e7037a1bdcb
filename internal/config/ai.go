package config

import "os"

// OpenAIModels defines which models to use for different tasks
type OpenAIModels struct {
	// Question is for dynamic question rewording (needs to be fast)
	Question string `json:"question"`

	// Recommendation is for enriching the final result text (quality over speed)
	Recommendation string `json:"recommendation"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    OpenAIModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Models: OpenAIModels{
			Question:       getEnvOrDefault("OPENAI_MODEL_QUESTION", "gpt-4o-mini"),
			Recommendation: getEnvOrDefault("OPENAI_MODEL_RECOMMENDATION", "gpt-4o-mini"),
		},
		TimeoutMS: 10000, // 10 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat completions endpoint
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
