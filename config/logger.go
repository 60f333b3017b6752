package config

import "go.uber.org/zap"

// NewLogger builds a JSON logger in production and a console logger elsewhere.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
