package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/logger"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/config"
	"github.com/VarnikaSingh27/AI-VoiceCallingAgent/src/server"
)

// @title Voice Dashboard Gateway API
// @version 1.0
// @description Gateway for the AI voice-calling outreach dashboard

func main() {
	cfg := loadConfig()
	setupLogging(cfg)

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Run(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.GlobalConfig {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func setupLogging(cfg *config.GlobalConfig) {
	logger.Init(cfg.GetLogLevel())

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)
}
