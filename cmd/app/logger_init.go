package main

import (
	"github.com/osse101/MinesBot_Go/internal/config"
	"github.com/osse101/MinesBot_Go/internal/logger"
)

// initLogger installs the process logger. Source locations are only logged
// in development.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.IsDevelopment(),
	})
}
