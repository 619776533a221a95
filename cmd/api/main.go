package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mmm-explorer/infrastructure/loader"
	"github.com/vfg2006/mmm-explorer/internal/api"
	"github.com/vfg2006/mmm-explorer/internal/config"
	"github.com/vfg2006/mmm-explorer/internal/scheduler"
	"github.com/vfg2006/mmm-explorer/internal/usecases/exploring"
	"github.com/vfg2006/mmm-explorer/internal/usecases/sessioning"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetLoader, closeLoader, err := loader.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a origem do dataset")
	}
	defer closeLoader()

	// A primeira sessão começa a carregar antes do servidor subir
	sessionManager := sessioning.NewManager(datasetLoader, cfg.Dataset.Timeout)
	session := sessionManager.Start(ctx)
	logrus.WithFields(logrus.Fields{
		"session_id": session.ID(),
		"source":     datasetLoader.Source(),
	}).Info("Sessão inicial criada")

	explorer := exploring.NewService(sessionManager)

	reloadService := scheduler.NewDatasetReloadService(sessionManager, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, explorer, sessionManager, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
