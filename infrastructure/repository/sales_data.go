// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

//go:generate mockgen -source=sales_data.go -destination=mocks/sales_data.go -package=mocks

// SalesDataRepository lê e grava os documentos diários de vendas, um por data.
// GetByDate retorna (nil, nil) quando a data ainda não tem documento.
// MergeByDate cria o documento se necessário e sobrescreve só as folhas enviadas;
// um objeto vazio é folha e substitui o valor gravado.
type SalesDataRepository interface {
	GetByDate(ctx context.Context, date string) (domain.Document, error)
	MergeByDate(ctx context.Context, date string, data domain.Document) error
	Ping(ctx context.Context) error
	Close() error
}
