package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"google.golang.org/api/option"
)

type Connection struct {
	*firestore.Client
	ProjectID string
}

// NewConnection inicializa o app do Firebase com a conta de serviço da configuração
// e abre o cliente do Firestore.
func NewConnection(ctx context.Context, cfg config.Firebase) (*Connection, error) {
	credentials, err := cfg.CredentialsJSON()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao inicializar o app do Firebase")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar cliente do Firestore (projeto %s)", cfg.ProjectID)
	}

	return &Connection{Client: client, ProjectID: cfg.ProjectID}, nil
}

// Ping faz uma leitura simples, o Firestore não expõe um endpoint de ping
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Client == nil {
		return errors.New("cliente do Firestore não inicializado")
	}

	if _, err := c.Client.Collections(ctx).GetAll(); err != nil {
		return errors.Wrap(err, "falha no ping do Firestore")
	}
	return nil
}

func (c *Connection) Close() error {
	if c == nil || c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
