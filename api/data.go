// Package api é o ponto de entrada serverless: o provedor chama Handler a cada requisição.
package api

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/api/handler"
	"github.com/vfg2006/sales-ledger-api/internal/app"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
	"github.com/vfg2006/sales-ledger-api/pkg/middleware"
)

// O cliente do banco é criado na primeira invocação e reaproveitado enquanto a instância estiver quente
var instance = app.NewLazy(build)

func build(ctx context.Context) (*app.App, error) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}
	log.SetEnvironment(cfg.App.Env)

	return app.New(ctx, cfg)
}

// Handler atende OPTIONS, GET e POST do endpoint de vendas diárias
func Handler(w http.ResponseWriter, r *http.Request) {
	serve(instance, w, r)
}

func serve(lazy *app.Lazy, w http.ResponseWriter, r *http.Request) {
	// O contexto da requisição não é usado: o cliente sobrevive à invocação
	application, err := lazy.Get(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Erro ao inicializar o endpoint de vendas")
		middleware.Cors()(initFailure()).ServeHTTP(w, r)
		return
	}

	application.Handler.ServeHTTP(w, r)
}

// initFailure responde como o endpoint responderia a uma falha de banco
func initFailure() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, handler.MsgFetchError)
		case http.MethodPost:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, handler.MsgSaveError)
		default:
			handler.MethodNotAllowed().ServeHTTP(w, r)
		}
	})
}
