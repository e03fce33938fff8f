package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.ListenAddr)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "gemini", cfg.AssistantBackend)
	assert.NotEmpty(t, cfg.GeminiModel)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("DB_PATH", "/custom/wecare.db")
	t.Setenv("ASSISTANT_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test123")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "/custom/wecare.db", cfg.DBPath)
	assert.Equal(t, "openai", cfg.AssistantBackend)
	assert.Equal(t, "sk-test123", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}
