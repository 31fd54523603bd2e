package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Load environment variables and handle errors

func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead:", err)
		// Don't call Fatal here - continue execution
	}
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port is the port the web front listens on.
func Port() string {
	return getEnv("PORT", "3000")
}

// Chat model settings. The key may be empty; chat replies then fall back
// to a canned message.
func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func OpenAIBaseURL() string {
	return getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
}

func OpenAIModel() string {
	return getEnv("OPENAI_MODEL", "gpt-3.5-turbo")
}

func AllowedOrigin() string {
	return getEnv("ALLOWED_ORIGIN", "*")
}

// CookieSecure marks the session cookie Secure. Turn it on behind HTTPS.
func CookieSecure() bool {
	return os.Getenv("COOKIE_SECURE") == "true"
}
