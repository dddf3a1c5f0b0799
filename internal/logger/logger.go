// Package logger builds the zap logger used by geoquiz.
package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/corbin/geoquiz/internal/config"
)

// New builds a production (JSON) or development logger depending on
// cfg.Env. The terminal belongs to the UI, so output only ever goes to
// cfg.Log.File; with no file configured a no-op logger is returned.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.File == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}

	if cfg.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = level
	}
	zc.OutputPaths = []string{cfg.Log.File}
	zc.ErrorOutputPaths = []string{cfg.Log.File}

	return zc.Build()
}
