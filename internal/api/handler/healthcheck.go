package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-ledger-api/pkg/apiErrors"
	"github.com/vfg2006/sales-ledger-api/pkg/log"
)

const MsgStoreUnavailable = "Banco de dados indisponível."

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde com o horário atual quando o banco responde ao ping
func HealthcheckHandler(pinger Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := pinger.Ping(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Healthcheck: banco de dados indisponível")
			apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, MsgStoreUnavailable)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(time.Now().Format(time.RFC3339))); err != nil {
			logrus.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
