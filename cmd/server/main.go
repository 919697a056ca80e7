package main

import (
	"flag"
	"os"

	"alocacoes-admin/internal/api"
	"alocacoes-admin/internal/config"
	"alocacoes-admin/internal/handlers"
	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/session"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "archivo de configuración")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		_ = logger.Init("info")
		logger.L().Fatal("config", zap.Error(err))
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Cliente de la API remota
	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	store := session.NewStore(api.NewResources(client), cfg.SessionTTL)

	r := handlers.NewAdminRouter(store)

	logger.L().Info("allocation admin listening",
		zap.String("listen", cfg.Listen),
		zap.String("api", cfg.APIBaseURL),
	)
	if err := r.Run(cfg.Listen); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
