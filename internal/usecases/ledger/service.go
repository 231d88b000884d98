package ledger

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
)

type LedgerService interface {
	GetSalesData(ctx context.Context, date string) (domain.Document, error)
	SaveSalesData(ctx context.Context, input domain.SaveSalesInput) error
	Ping(ctx context.Context) error
}

type SalesLedgerService struct {
	SalesDataRepository repository.SalesDataRepository
}

func NewService(salesDataRepository repository.SalesDataRepository) LedgerService {
	return &SalesLedgerService{
		SalesDataRepository: salesDataRepository,
	}
}

// GetSalesData retorna o documento da data. Datas sem dados devolvem o registro
// zerado, assim o cliente nunca precisa tratar "ainda não existe".
func (s *SalesLedgerService) GetSalesData(ctx context.Context, date string) (domain.Document, error) {
	if date == "" {
		return nil, NewLedgerError(ErrDateRequired, apiErrors.ErrMissingRequiredData, "")
	}

	doc, err := s.SalesDataRepository.GetByDate(ctx, date)
	if err != nil {
		return nil, NewLedgerErrorWithDate(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, date, err.Error())
	}

	if doc == nil {
		logrus.WithField("date", date).Debug("Data sem registro, retornando valores zerados")
		return domain.EmptySalesRecord().Document(), nil
	}

	return doc, nil
}

// SaveSalesData grava os dados dos dois vendedores com merge no documento da data
func (s *SalesLedgerService) SaveSalesData(ctx context.Context, input domain.SaveSalesInput) error {
	if domain.IsFalsy(input.Date) || domain.IsFalsy(input.ThauanData) || domain.IsFalsy(input.FrancoData) {
		return NewLedgerError(ErrIncompleteData, apiErrors.ErrMissingRequiredData, "")
	}

	date, ok := input.Date.(string)
	if !ok {
		return NewLedgerError(ErrInvalidDate, apiErrors.ErrInternalServer, "")
	}

	if err := s.SalesDataRepository.MergeByDate(ctx, date, input.Document()); err != nil {
		return NewLedgerErrorWithDate(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, date, err.Error())
	}

	return nil
}

// Ping verifica se o banco de vendas responde
func (s *SalesLedgerService) Ping(ctx context.Context) error {
	if err := s.SalesDataRepository.Ping(ctx); err != nil {
		return NewLedgerError(ErrStoreUnavailable, apiErrors.ErrStoreUnavailable, err.Error())
	}
	return nil
}
