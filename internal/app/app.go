// Package app monta as dependências do endpoint de vendas a partir da configuração
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/firestoredb"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/mongodb"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/infrastructure/migration"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/api"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledger"
)

type App struct {
	Config     *config.Config
	Repository repository.SalesDataRepository
	Service    ledger.LedgerService
	Handler    http.Handler
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	repo, err := NewSalesDataRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	application, err := NewWithRepository(cfg, repo)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	return application, nil
}

// NewWithRepository monta o app sobre um repositório já criado
func NewWithRepository(cfg *config.Config, repo repository.SalesDataRepository) (*App, error) {
	service := ledger.NewService(repo)

	h, err := api.NewHandler(cfg, service)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Repository: repo,
		Service:    service,
		Handler:    h,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.Repository == nil {
		return nil
	}
	return a.Repository.Close()
}

// NewSalesDataRepository escolhe o banco pelo STORAGE_DRIVER
func NewSalesDataRepository(ctx context.Context, cfg *config.Config) (repository.SalesDataRepository, error) {
	collection := cfg.Storage.Collection

	switch cfg.Storage.Driver {
	case config.StorageFirestore, "":
		conn, err := firestoredb.NewConnection(ctx, cfg.Firebase)
		if err != nil {
			return nil, err
		}
		logrus.WithField("project_id", conn.ProjectID).Info("Conexão com Firestore estabelecida com sucesso")
		return repository.NewSalesDataFirestoreRepository(conn, collection), nil

	case config.StorageMongo:
		conn, err := mongodb.NewConnection(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logrus.WithField("database", cfg.Mongo.Database).Info("Conexão com MongoDB estabelecida com sucesso")
		return repository.NewSalesDataMongoRepository(conn, collection), nil

	case config.StoragePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		if err := migration.EnsureSalesData(ctx, conn.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewSalesDataPostgresRepository(conn), nil

	case config.StorageMemory:
		logrus.Warn("Usando armazenamento em memória, os dados serão perdidos ao reiniciar")
		return repository.NewSalesDataMemoryRepository(), nil
	}

	return nil, fmt.Errorf("driver de armazenamento desconhecido: %q", cfg.Storage.Driver)
}
