package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/internal/api/handler"
	"github.com/vfg2006/sales-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/ledger"
	"github.com/vfg2006/sales-ledger-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router do endpoint de vendas com a cadeia de middlewares.
// É o mesmo handler usado pelo servidor e pela função serverless.
func NewHandler(cfg *config.Config, ledgerService ledger.LedgerService) (http.Handler, error) {
	if cfg.Server.SalesPath == "" || cfg.Server.SalesPath[0] != '/' {
		return nil, fmt.Errorf("caminho do endpoint de vendas inválido: %q", cfg.Server.SalesPath)
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(ledgerService)...),
		router.WithRoutes(handler.SalesData(ledgerService, cfg.Server.SalesPath, cfg.Server.MaxBodyBytes)...),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt), nil
}

func New(cfg *config.Config, h http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           h,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
