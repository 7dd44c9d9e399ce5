package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. level is one of debug, info, warn,
// error; encoding is json or console.
func New(level, encoding string) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevel()
	if level == "" {
		level = "info"
	}
	if err := atomic.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if encoding != "console" {
		encoding = "json"
	}

	cfg := zap.Config{
		Level:            atomic,
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
