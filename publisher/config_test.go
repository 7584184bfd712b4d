package publisher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so tests start from a
// known state regardless of the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY",
		"X_API_KEY", "X_API_SECRET", "X_ACCESS_TOKEN", "X_ACCESS_SECRET", "X_API_BASE",
		"DRY_RUN", "VERBOSE", "LINKEDIN_PREVIEW",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "NOTE_FILE",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.DryRun, "dry run must default to on")
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.LinkedInPreview)
	assert.Equal(t, "text.txt", cfg.NotePath)
	assert.Empty(t, cfg.APIBase, "the public endpoint is the default")
	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
}

func TestLoadConfigAPIBaseOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("X_API_BASE", "http://127.0.0.1:8900/2")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8900/2", cfg.APIBase)
}

func TestLoadConfigRequiresGeminiKey(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadConfigLiveRequiresCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DRY_RUN", "false")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "X_API_KEY")
}

func TestLoadConfigLiveWithCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DRY_RUN", "false")
	t.Setenv("X_API_KEY", "ck")
	t.Setenv("X_API_SECRET", "cs")
	t.Setenv("X_ACCESS_TOKEN", "at")
	t.Setenv("X_ACCESS_SECRET", "as")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, "ck", cfg.APIKey)
	assert.Equal(t, "cs", cfg.APISecret)
	assert.Equal(t, "at", cfg.AccessToken)
	assert.Equal(t, "as", cfg.AccessSecret)
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DRY_RUN", "banana")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRY_RUN")
}

func TestLoadConfigMockProviderNeedsNoKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "mock")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.APIKey)
}

func TestLoadConfigOpenAIProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	t.Setenv("OPENAI_API_KEY", "oa-key")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "oa-key", cfg.LLM.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadConfigDeepseekPassesBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "deepseek")
	t.Setenv("OPENAI_API_KEY", "ds-key")
	t.Setenv("LLM_MODEL", "deepseek-chat")
	t.Setenv("LLM_BASE_URL", "https://api.deepseek.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "https://api.deepseek.com", cfg.LLM.BaseURL)
}

func TestLoadConfigNoteFileOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("NOTE_FILE", "notes/today.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "notes/today.txt", cfg.NotePath)
}
