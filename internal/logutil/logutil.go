package logutil

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"strings"
)

// New - Builds a logger writing to stderr.
//   - level is one of debug, info, warn or error, empty means info
//   - format is console or json, empty means console
func New(level, format string) (logger *zap.Logger, err error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		lvl, err = zapcore.ParseLevel(level)
		if err != nil {
			return
		}
	}

	var encoderConfig zapcore.EncoderConfig
	switch strings.ToLower(format) {
	case "", "console":
		format = "console"
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	case "json":
		format = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
	default:
		err = fmt.Errorf("unknown log format %q, should be console or json", format)
		return
	}

	loggerConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err = loggerConfig.Build()
	return
}

// OrNop - Returns logger, or a no-op logger if logger is nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
