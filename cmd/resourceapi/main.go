package main

import (
	"flag"
	"os"

	"alocacoes-admin/internal/config"
	"alocacoes-admin/internal/database"
	"alocacoes-admin/internal/handlers"
	"alocacoes-admin/internal/logger"
	"alocacoes-admin/internal/repository"

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

	// Inicializar Base de Datos
	db, err := database.InitDB(cfg.ResourceAPI.DBPath)
	if err != nil {
		logger.L().Fatal("database", zap.Error(err), zap.String("path", cfg.ResourceAPI.DBPath))
	}
	defer db.Close()

	h := handlers.NewResourceHandler(
		repository.NewAllocationRepository(db),
		repository.NewReferenceRepository(db),
	)
	r := handlers.NewResourceRouter(h)

	logger.L().Info("resource api listening", zap.String("listen", cfg.ResourceAPI.Listen))
	if err := r.Run(cfg.ResourceAPI.Listen); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
