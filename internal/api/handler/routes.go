package handler

import (
	"net/http"

	"github.com/vfg2006/sales-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/middleware"
)

func Healthcheck(pinger Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(pinger),
		},
	}
}

// SalesData registra o endpoint de vendas diárias no caminho configurado
func SalesData(service ledger.LedgerService, path string, maxBodyBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    path,
			Method:  http.MethodGet,
			Handler: GetSalesData(service),
		},
		{
			Path:    path,
			Method:  http.MethodPost,
			Handler: SaveSalesData(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.MaxBodySize(maxBodyBytes),
			},
		},
	}
}
