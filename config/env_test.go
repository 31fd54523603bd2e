package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestPortDefault(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "3000", Port())
}

func TestPortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")
	assert.Equal(t, "9090", Port())
}

func TestOpenAIDefaults(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")
	assert.Equal(t, "https://api.openai.com/v1", OpenAIBaseURL())
	assert.Equal(t, "gpt-3.5-turbo", OpenAIModel())

	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	assert.Equal(t, "gpt-4o-mini", OpenAIModel())
}

func TestCookieSecure(t *testing.T) {
	t.Setenv("COOKIE_SECURE", "")
	assert.False(t, CookieSecure())
	t.Setenv("COOKIE_SECURE", "true")
	assert.True(t, CookieSecure())
}

func TestInitLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	InitLogger()
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	t.Setenv("LOG_LEVEL", "nonsense")
	InitLogger()
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
