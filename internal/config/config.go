package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr       string
	DBPath           string
	PhotoPath        string
	AssistantBackend string
	GeminiAPIKey     string
	GeminiModel      string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	AdviceURL        string
	LogLevel         string
	LogFile          string
}

// Load reads configuration from the environment, after loading a .env file if
// one is present. Missing keys fall back to defaults; a missing assistant
// credential is allowed and simply means every capability call fails over to
// the canned fallbacks.
func Load() *Config {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	return &Config{
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DBPath:           getEnv("DB_PATH", "/data/wecare.db"),
		PhotoPath:        getEnv("PHOTO_PATH", "/data/photos"),
		AssistantBackend: getEnv("ASSISTANT_BACKEND", "gemini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AdviceURL:        getEnv("ADVICE_URL", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
