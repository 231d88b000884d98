package repository

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/mongodb"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type salesDataMongoRepository struct {
	conn       *mongodb.Connection
	collection string
}

func NewSalesDataMongoRepository(conn *mongodb.Connection, collection string) SalesDataRepository {
	return &salesDataMongoRepository{
		conn:       conn,
		collection: collection,
	}
}

func (r *salesDataMongoRepository) GetByDate(ctx context.Context, date string) (domain.Document, error) {
	var raw bson.M

	err := r.conn.Collection(r.collection).
		FindOne(ctx, bson.M{"_id": date}).
		Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrapf(err, "erro ao buscar documento %s", date)
	}

	delete(raw, "_id")
	return domain.Document(fromBSON(raw).(map[string]any)), nil
}

// MergeByDate usa $set com caminhos pontuados para manter os campos não enviados
func (r *salesDataMongoRepository) MergeByDate(ctx context.Context, date string, data domain.Document) error {
	set := bson.M{}
	flattenPaths("", map[string]any(data), set)

	_, err := r.conn.Collection(r.collection).UpdateOne(
		ctx,
		bson.M{"_id": date},
		bson.M{"$set": set},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return pkgerrors.Wrapf(err, "erro ao gravar documento %s", date)
	}
	return nil
}

func (r *salesDataMongoRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func (r *salesDataMongoRepository) Close() error {
	return r.conn.Close()
}

// flattenPaths transforma {"thauan": {"totalPago": 1}} em {"thauan.totalPago": 1}.
// Um objeto vazio é folha e substitui o valor gravado.
func flattenPaths(prefix string, src map[string]any, dst bson.M) {
	for k, v := range src {
		path := escapeKey(k)
		if prefix != "" {
			path = prefix + "." + path
		}

		if m, ok := v.(map[string]any); ok && len(m) > 0 {
			flattenPaths(path, m, dst)
			continue
		}
		dst[path] = escapeKeys(v)
	}
}

// O MongoDB não endereça com $set campos com "." ou "$" no nome, então as chaves
// são gravadas codificadas e decodificadas na leitura.
var (
	keyEscaper   = strings.NewReplacer("%", "%25", ".", "%2E", "$", "%24")
	keyUnescaper = strings.NewReplacer("%25", "%", "%2E", ".", "%24", "$")
)

const emptyKey = "%00"

func escapeKey(k string) string {
	if k == "" {
		return emptyKey
	}
	return keyEscaper.Replace(k)
}

func unescapeKey(k string) string {
	if k == emptyKey {
		return ""
	}
	return keyUnescaper.Replace(k)
}

func escapeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[escapeKey(k)] = escapeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = escapeKeys(val)
		}
		return out
	default:
		return v
	}
}

// fromBSON converte os tipos do driver em mapas e listas simples, com as chaves decodificadas
func fromBSON(v any) any {
	switch t := v.(type) {
	case bson.M:
		return fromBSON(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[unescapeKey(k)] = fromBSON(val)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[unescapeKey(e.Key)] = fromBSON(e.Value)
		}
		return out
	case bson.A:
		return fromBSON([]any(t))
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = fromBSON(val)
		}
		return out
	default:
		return v
	}
}
