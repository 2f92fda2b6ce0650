// Package main is the entry point for the quad viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quadview/internal/app"
	"github.com/Faultbox/quadview/internal/config"
	"github.com/Faultbox/quadview/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config write error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Config written to", config.ConfigDir())
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Quad Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("render loop error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
