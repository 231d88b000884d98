package ledger

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação
	ErrDateRequired   = errors.New("date is required")
	ErrIncompleteData = errors.New("date, thauanData and francoData are required")
	ErrInvalidDate    = errors.New("date must be a string")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrStoreUnavailable  = errors.New("database unavailable")
)

// LedgerError é um erro com contexto adicional para as operações de vendas
type LedgerError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Date    string // Data envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *LedgerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError cria um novo LedgerError
func NewLedgerError(err error, code string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewLedgerErrorWithDate cria um novo LedgerError com a data do documento
func NewLedgerErrorWithDate(err error, code string, date string, details string) *LedgerError {
	return &LedgerError{
		Err:     err,
		Code:    code,
		Date:    date,
		Details: details,
	}
}
