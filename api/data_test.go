package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-ledger-api/internal/app"
)

func TestHandler_ArmazenamentoEmMemoria(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SALES_ROUTE_PATH", "/api/data")

	rec := httptest.NewRecorder()
	Handler(rec, httptest.NewRequest(http.MethodPost, "/api/data", strings.NewReader(
		`{"date":"2024-01-01","thauanData":{"totalGerado":100,"totalPago":80},"francoData":{"totalGerado":50,"totalPago":40}}`,
	)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Dados salvos com sucesso!"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Handler(rec, httptest.NewRequest(http.MethodGet, "/api/data?date=2024-01-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"thauan":{"totalGerado":100,"totalPago":80},"franco":{"totalGerado":50,"totalPago":40}}`,
		rec.Body.String())

	first, err := instance.Get(context.Background())
	require.NoError(t, err)
	second, err := instance.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInitFailure(t *testing.T) {
	tests := []struct {
		method       string
		expectedCode int
		expectedBody string
	}{
		{http.MethodGet, http.StatusInternalServerError, `{"error":"Erro ao buscar dados."}`},
		{http.MethodPost, http.StatusInternalServerError, `{"error":"Erro ao salvar dados."}`},
		{http.MethodDelete, http.StatusMethodNotAllowed, "Método não permitido."},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			initFailure().ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/data", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusInternalServerError {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			} else {
				assert.Equal(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_CaminhoSemBarra(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SALES_ROUTE_PATH", "api/data")

	lazy := app.NewLazy(build)

	tests := []struct {
		method       string
		expectedCode int
	}{
		{http.MethodGet, http.StatusInternalServerError},
		{http.MethodPost, http.StatusInternalServerError},
		{http.MethodOptions, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()

			assert.NotPanics(t, func() {
				serve(lazy, rec, httptest.NewRequest(tt.method, "/api/data?date=2024-01-01", nil))
			})

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
