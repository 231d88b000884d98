package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestSalesLedgerService_GetSalesData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesDataRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	stored := domain.Document{
		"thauan": map[string]any{"totalGerado": 100.0, "totalPago": 80.0},
		"franco": map[string]any{"totalGerado": 50.0, "totalPago": 40.0},
		"extra":  "campo gravado por outro cliente",
	}

	tests := []struct {
		name     string
		date     string
		setup    func()
		expected domain.Document
		errIs    error
		errCode  string
	}{
		{
			name:    "Data vazia - deve retornar erro de validação",
			date:    "",
			setup:   func() {},
			errIs:   ErrDateRequired,
			errCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Data sem registro - deve retornar valores zerados",
			date: "2024-01-02",
			setup: func() {
				mockRepo.EXPECT().GetByDate(gomock.Any(), "2024-01-02").Return(nil, nil)
			},
			expected: domain.EmptySalesRecord().Document(),
		},
		{
			name: "Data com registro - deve retornar o documento sem alterações",
			date: "2024-01-01",
			setup: func() {
				mockRepo.EXPECT().GetByDate(gomock.Any(), "2024-01-01").Return(stored, nil)
			},
			expected: stored,
		},
		{
			name: "Falha no banco - deve retornar erro de banco",
			date: "2024-01-03",
			setup: func() {
				mockRepo.EXPECT().GetByDate(gomock.Any(), "2024-01-03").Return(nil, errors.New("deadline exceeded"))
			},
			errIs:   ErrDatabaseOperation,
			errCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			doc, err := service.GetSalesData(ctx, tt.date)

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)

				var ledgerErr *LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, tt.errCode, ledgerErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, doc)
		})
	}
}

func TestSalesLedgerService_SaveSalesData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesDataRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	thauan := map[string]any{"totalGerado": 100.0, "totalPago": 80.0}
	franco := map[string]any{"totalGerado": 50.0, "totalPago": 40.0}

	tests := []struct {
		name    string
		input   domain.SaveSalesInput
		setup   func()
		errIs   error
		errCode string
	}{
		{
			name:  "Payload completo - deve gravar com merge",
			input: domain.SaveSalesInput{Date: "2024-01-01", ThauanData: thauan, FrancoData: franco},
			setup: func() {
				mockRepo.EXPECT().
					MergeByDate(gomock.Any(), "2024-01-01", domain.Document{"thauan": thauan, "franco": franco}).
					Return(nil)
			},
		},
		{
			name:    "Sem data - deve retornar dados incompletos",
			input:   domain.SaveSalesInput{ThauanData: thauan, FrancoData: franco},
			setup:   func() {},
			errIs:   ErrIncompleteData,
			errCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Sem dados do franco - deve retornar dados incompletos",
			input:   domain.SaveSalesInput{Date: "2024-01-01", ThauanData: thauan},
			setup:   func() {},
			errIs:   ErrIncompleteData,
			errCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Dados do thauan falsos - deve retornar dados incompletos",
			input:   domain.SaveSalesInput{Date: "2024-01-01", ThauanData: false, FrancoData: franco},
			setup:   func() {},
			errIs:   ErrIncompleteData,
			errCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Data numérica - não endereça documento",
			input:   domain.SaveSalesInput{Date: 20240101.0, ThauanData: thauan, FrancoData: franco},
			setup:   func() {},
			errIs:   ErrInvalidDate,
			errCode: apiErrors.ErrInternalServer,
		},
		{
			name:  "Falha no banco - deve retornar erro de banco",
			input: domain.SaveSalesInput{Date: "2024-01-01", ThauanData: thauan, FrancoData: franco},
			setup: func() {
				mockRepo.EXPECT().
					MergeByDate(gomock.Any(), "2024-01-01", gomock.Any()).
					Return(errors.New("permission denied"))
			},
			errIs:   ErrDatabaseOperation,
			errCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.SaveSalesData(ctx, tt.input)

			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)

				var ledgerErr *LedgerError
				require.True(t, errors.As(err, &ledgerErr))
				assert.Equal(t, tt.errCode, ledgerErr.Code)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSalesLedgerService_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSalesDataRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.NoError(t, service.Ping(ctx))

	mockRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	err := service.Ping(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var ledgerErr *LedgerError
	require.True(t, errors.As(err, &ledgerErr))
	assert.Equal(t, apiErrors.ErrStoreUnavailable, ledgerErr.Code)
}
