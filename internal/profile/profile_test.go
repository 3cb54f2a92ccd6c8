package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearAIEnvVars(t *testing.T) {
	for _, key := range []string{
		"CODEMENTOR_AI_BASE_URL",
		"CODEMENTOR_AI_API_KEY",
		"CODEMENTOR_AI_MODEL",
		"CODEMENTOR_AI_MAX_TOKENS",
		"CODEMENTOR_AI_TEMPERATURE",
		"CODEMENTOR_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestAIProfileDefaults(t *testing.T) {
	clearAIEnvVars(t)

	p := &Profile{}
	p.FromEnv()

	require.Equal(t, "https://openrouter.ai/api/v1", p.AIBaseURL)
	require.Equal(t, "google/gemini-2.0-flash-exp:free", p.AIModel)
	require.Equal(t, 2000, p.AIMaxTokens)
	require.InDelta(t, 0.7, p.AITemperature, 0.001)
	require.False(t, p.IsAIEnabled())
}

func TestAIProfileFromEnv(t *testing.T) {
	clearAIEnvVars(t)
	t.Setenv("CODEMENTOR_AI_API_KEY", "sk-test")
	t.Setenv("CODEMENTOR_AI_MODEL", "openai/gpt-4o-mini")
	t.Setenv("CODEMENTOR_AI_MAX_TOKENS", "4096")

	p := &Profile{}
	p.FromEnv()

	require.True(t, p.IsAIEnabled())
	require.Equal(t, "openai/gpt-4o-mini", p.AIModel)
	require.Equal(t, 4096, p.AIMaxTokens)
}

func TestValidate(t *testing.T) {
	t.Run("unknown mode falls back to demo", func(t *testing.T) {
		p := &Profile{Mode: "staging", Data: t.TempDir()}
		require.NoError(t, p.Validate())
		require.Equal(t, "demo", p.Mode)
		require.Equal(t, "sqlite", p.Driver)
		require.Contains(t, p.DSN, "codementor_demo.db")
	})

	t.Run("prod requires secret", func(t *testing.T) {
		p := &Profile{Mode: "prod", Data: t.TempDir()}
		require.Error(t, p.Validate())
	})

	t.Run("dev gets default secret", func(t *testing.T) {
		p := &Profile{Mode: "dev", Data: t.TempDir()}
		require.NoError(t, p.Validate())
		require.NotEmpty(t, p.Secret)
	})
}
