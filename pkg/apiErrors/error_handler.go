package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros de protocolo (4000-4999)
	ErrMethodNotAllowed = "HTTP_405" // Método HTTP não suportado

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrStoreUnavailable  = "SRV_003" // Banco de dados indisponível
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrStoreUnavailable:    http.StatusServiceUnavailable,
}

// APIError é o corpo JSON devolvido nos erros internos. A causa real nunca vai para o cliente.
type APIError struct {
	Error string `json:"error"`
}

// Status retorna o status HTTP de um código de erro; códigos desconhecidos viram 500
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro como JSON {"error": message}
func WriteError(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(APIError{Error: message})
}

// WriteText escreve o erro como texto simples, usado nos erros de entrada do cliente
func WriteText(w http.ResponseWriter, code string, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(Status(code))
	w.Write([]byte(message))
}
