package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/internal/config"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Connection struct {
	client *mongo.Client
	*mongo.Database
}

// NewConnection conecta ao MongoDB. Subdocumentos são decodificados como bson.M
// para que a leitura devolva mapas simples.
func NewConnection(ctx context.Context, cfg config.Mongo) (*Connection, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao MongoDB")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "erro ao testar conexão com MongoDB")
	}

	return &Connection{client: client, Database: client.Database(cfg.Database)}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Connection) Close() error {
	return c.client.Disconnect(context.Background())
}
