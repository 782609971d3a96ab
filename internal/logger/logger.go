package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is usable before Init so callers like the config watcher can
// adjust it at any time without panicking.
var level = zap.NewAtomicLevel()

// Init builds the global zap logger for the given environment
// and installs it via zap.ReplaceGlobals.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch environment {
	case "production":
		cfg := zap.NewProductionConfig()
		level.SetLevel(zap.InfoLevel)
		cfg.Level = level
		logger, err = cfg.Build()
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level.SetLevel(zap.DebugLevel)
		cfg.Level = level
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("zap build -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// SetLevel adjusts the level of the running logger, used by config hot-reload.
func SetLevel(l string) error {
	parsed, err := zapcore.ParseLevel(l)
	if err != nil {
		return fmt.Errorf("parse level %q -> %w", l, err)
	}

	level.SetLevel(parsed)

	return nil
}
