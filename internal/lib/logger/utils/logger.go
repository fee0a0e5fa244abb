// internal/lib/logger/utils/logger.go
package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until InitLogger succeeds.
var Logger = zap.NewNop()

func InitLogger() error {
	return InitLoggerLevel("debug")
}

// InitLoggerLevel builds the development logger with the given minimum level.
func InitLoggerLevel(level string) error {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return err
	}
	Logger = logger
	return nil
}
