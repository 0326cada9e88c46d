package main

import (
	"go.uber.org/zap"

	_ "taskbox/docs"
	"taskbox/internal/config"
	"taskbox/internal/server"
)

// @title           Taskbox API
// @version         1.0
// @description     Personal task management API.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		logger.Fatal("server initialization failed", zap.Error(err))
	}

	s.Run()
}
