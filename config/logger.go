// config/logger.go
package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func InitLogger() {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		Logger.Warnf("Unknown LOG_LEVEL %q, using info", os.Getenv("LOG_LEVEL"))
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}
