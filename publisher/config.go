package publisher

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the X credentials and run mode, loaded from the environment.
type Config struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string

	// APIBase overrides the default X API endpoint. Useful for gateways
	// and test servers; empty means the public endpoint.
	APIBase string

	DryRun          bool
	Verbose         bool
	LinkedInPreview bool
	NotePath        string

	LLM *LLMConfig
}

// LLMConfig carries the model settings handed to the generation stage.
type LLMConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// LoadConfig reads the configuration from environment variables. Publishing
// credentials are only required when dry-run mode is off; the model key is
// only required for providers that need one.
func LoadConfig() (Config, error) {
	dryRun, err := envBool("DRY_RUN", true)
	if err != nil {
		return Config{}, err
	}
	verbose, err := envBool("VERBOSE", false)
	if err != nil {
		return Config{}, err
	}
	linkedIn, err := envBool("LINKEDIN_PREVIEW", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIKey:       os.Getenv("X_API_KEY"),
		APISecret:    os.Getenv("X_API_SECRET"),
		AccessToken:  os.Getenv("X_ACCESS_TOKEN"),
		AccessSecret: os.Getenv("X_ACCESS_SECRET"),
		APIBase:      os.Getenv("X_API_BASE"),

		DryRun:          dryRun,
		Verbose:         verbose,
		LinkedInPreview: linkedIn,
		NotePath:        envOr("NOTE_FILE", "text.txt"),
	}

	llm := &LLMConfig{
		Provider: envOr("LLM_PROVIDER", "gemini"),
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
	}
	switch llm.Provider {
	case "gemini":
		key, err := requireEnv("GEMINI_API_KEY")
		if err != nil {
			return Config{}, err
		}
		llm.APIKey = key
	case "openai", "deepseek":
		key, err := requireEnv("OPENAI_API_KEY")
		if err != nil {
			return Config{}, err
		}
		llm.APIKey = key
	}
	cfg.LLM = llm

	if !cfg.DryRun {
		for _, name := range []string{"X_API_KEY", "X_API_SECRET", "X_ACCESS_TOKEN", "X_ACCESS_SECRET"} {
			if _, err := requireEnv(name); err != nil {
				return Config{}, err
			}
		}
	}

	return cfg, nil
}

func requireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("missing required environment variable: %s", name)
	}
	return v, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string, fallback bool) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q for %s", v, name)
	}
	return parsed, nil
}
