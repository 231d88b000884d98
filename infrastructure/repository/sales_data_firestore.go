package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/firestoredb"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrInvalidDocumentID = errors.New("data inválida como ID de documento")

type salesDataFirestoreRepository struct {
	conn       *firestoredb.Connection
	collection string
}

func NewSalesDataFirestoreRepository(conn *firestoredb.Connection, collection string) SalesDataRepository {
	return &salesDataFirestoreRepository{
		conn:       conn,
		collection: collection,
	}
}

// validateDocumentID recusa datas que o Firestore interpretaria como caminho
// (com "/") ou que ele não aceita como ID ("." , ".." e "__nome__").
func validateDocumentID(date string) error {
	switch {
	case strings.Contains(date, "/"),
		date == "." || date == "..",
		len(date) >= 4 && strings.HasPrefix(date, "__") && strings.HasSuffix(date, "__"):
		return errors.Wrapf(ErrInvalidDocumentID, "%q", date)
	}
	return nil
}

func (r *salesDataFirestoreRepository) doc(date string) (*firestore.DocumentRef, error) {
	if err := validateDocumentID(date); err != nil {
		return nil, err
	}

	col := r.conn.Collection(r.collection)
	if col == nil {
		return nil, errors.Errorf("coleção inválida: %q", r.collection)
	}
	return col.Doc(date), nil
}

func (r *salesDataFirestoreRepository) GetByDate(ctx context.Context, date string) (domain.Document, error) {
	ref, err := r.doc(date)
	if err != nil {
		return nil, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar documento %s", date)
	}

	if !snap.Exists() {
		return nil, nil
	}

	return domain.Document(snap.Data()), nil
}

// MergeByDate grava só as folhas enviadas. Os caminhos são montados aqui porque o
// MergeAll do cliente ignora objetos vazios, e aqui um objeto vazio substitui o valor.
func (r *salesDataFirestoreRepository) MergeByDate(ctx context.Context, date string, data domain.Document) error {
	ref, err := r.doc(date)
	if err != nil {
		return err
	}

	paths := leafPaths(nil, map[string]any(data))
	if len(paths) == 0 {
		_, err = ref.Set(ctx, map[string]any{}, firestore.MergeAll)
	} else {
		_, err = ref.Set(ctx, map[string]any(data), firestore.Merge(paths...))
	}
	if err != nil {
		return errors.Wrapf(err, "erro ao gravar documento %s", date)
	}
	return nil
}

func (r *salesDataFirestoreRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func (r *salesDataFirestoreRepository) Close() error {
	return r.conn.Close()
}

// leafPaths lista os caminhos até cada folha; objetos vazios contam como folha
func leafPaths(prefix firestore.FieldPath, src map[string]any) []firestore.FieldPath {
	var paths []firestore.FieldPath
	for k, v := range src {
		path := append(append(firestore.FieldPath{}, prefix...), k)

		if m, ok := v.(map[string]any); ok && len(m) > 0 {
			paths = append(paths, leafPaths(path, m)...)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
