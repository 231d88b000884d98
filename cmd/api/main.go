package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/api"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.SetEnvironment(cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := app.NewSalesDataRepository(ctx, cfg)
	if err != nil {
		logrus.WithError(err).WithField("driver", cfg.Storage.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	application, err := app.NewWithRepository(cfg, repo)
	if err != nil {
		_ = repo.Close()
		logrus.Fatal(err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com o banco de dados")
		}
	}()

	server := api.New(cfg, application.Handler)

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
