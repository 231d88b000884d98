package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mensagens devolvidas ao cliente
const (
	MsgDateRequired     = `Parâmetro "date" é obrigatório.`
	MsgIncompleteData   = "Dados incompletos."
	MsgMethodNotAllowed = "Método não permitido."
	MsgFetchError       = "Erro ao buscar dados."
	MsgSaveError        = "Erro ao salvar dados."
	MsgSaved            = "Dados salvos com sucesso!"
)

var (
	errBodyIsEmpty = errors.New("corpo da requisição vazio")
	errBodyIsNull  = errors.New("corpo da requisição é null")
)

type SaveSalesResponse struct {
	Message string `json:"message"`
}

// GetSalesData retorna os totais dos vendedores na data informada em ?date=
func GetSalesData(service ledger.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")

		doc, err := service.GetSalesData(r.Context(), date)
		if err != nil {
			writeLedgerError(w, r, err, MsgFetchError, "Erro no GET")
			return
		}

		writeJSON(w, r, doc)
	}
}

// SaveSalesData grava com merge os dados de thauan e franco na data do corpo
func SaveSalesData(service ledger.LedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeSaveSalesInput(r.Body)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro no POST: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, MsgSaveError)
			return
		}

		if err := service.SaveSalesData(r.Context(), input); err != nil {
			writeLedgerError(w, r, err, MsgSaveError, "Erro no POST")
			return
		}

		writeJSON(w, r, SaveSalesResponse{Message: MsgSaved})
	}
}

// MethodNotAllowed responde aos métodos que o endpoint não suporta
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteText(w, apiErrors.ErrMethodNotAllowed, MsgMethodNotAllowed)
	})
}

// decodeSaveSalesInput aceita qualquer JSON válido. Um corpo que não é objeto
// resulta em campos ausentes (e portanto 400); null e JSON malformado são erro.
func decodeSaveSalesInput(body io.Reader) (domain.SaveSalesInput, error) {
	var input domain.SaveSalesInput

	raw, err := io.ReadAll(body)
	if err != nil {
		return input, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return input, errBodyIsEmpty
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return input, err
	}

	switch v := payload.(type) {
	case nil:
		return input, errBodyIsNull
	case map[string]any:
		input.Date = v["date"]
		input.ThauanData = v["thauanData"]
		input.FrancoData = v["francoData"]
	}

	return input, nil
}

func writeLedgerError(w http.ResponseWriter, r *http.Request, err error, internalMessage string, logMessage string) {
	code := apiErrors.ErrInternalServer

	var ledgerErr *ledger.LedgerError
	if errors.As(err, &ledgerErr) {
		code = ledgerErr.Code
	}

	if apiErrors.Status(code) < http.StatusInternalServerError {
		message := MsgIncompleteData
		if errors.Is(err, ledger.ErrDateRequired) {
			message = MsgDateRequired
		}
		apiErrors.WriteText(w, code, message)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(logMessage)
	apiErrors.WriteError(w, code, internalMessage)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta")
	}
}
