// Package logger builds the application logger: zap for structure,
// otelzap so log lines attach to the active trace.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

func New(appEnv string, level string) (*otelzap.Logger, error) {
	parsedLevel, err := zapcore.ParseLevel(level)

	if err != nil {
		parsedLevel = zapcore.InfoLevel
	}

	var cfg zap.Config

	if appEnv == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(parsedLevel)

	zapLogger, err := cfg.Build()

	if err != nil {
		return nil, err
	}

	return otelzap.New(zapLogger, otelzap.WithMinLevel(parsedLevel)), nil
}

// NewNop returns a logger that drops everything. Test suites use it.
func NewNop() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}
