package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-ledger-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-ledger-api/internal/domain"
)

const (
	salesDataTable = "sales_data"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type salesDataPostgresRepository struct {
	conn postgres.Conn
}

// NewSalesDataPostgresRepository guarda cada data como um documento JSONB.
// A tabela e a função jsonb_merge_deep são criadas por migration.EnsureSalesData.
func NewSalesDataPostgresRepository(conn postgres.Conn) SalesDataRepository {
	return &salesDataPostgresRepository{
		conn: conn,
	}
}

func (r *salesDataPostgresRepository) GetByDate(ctx context.Context, date string) (domain.Document, error) {
	query, args, err := selectSalesDataQuery(date)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var raw []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar documento %s", date)
	}

	doc := domain.Document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar documento %s", date)
	}
	return doc, nil
}

func (r *salesDataPostgresRepository) MergeByDate(ctx context.Context, date string, data domain.Document) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar documento")
	}

	query, args, err := upsertSalesDataQuery(date, payload)
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de inserção")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar documento %s", date)
	}
	return nil
}

func (r *salesDataPostgresRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func (r *salesDataPostgresRepository) Close() error {
	return r.conn.Close()
}

func selectSalesDataQuery(date string) (string, []any, error) {
	return squirrel.
		Select("data").
		From(salesDataTable).
		Where(squirrel.Eq{"date": date}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertSalesDataQuery(date string, payload []byte) (string, []any, error) {
	return squirrel.StatementBuilder.
		Insert(salesDataTable).
		Columns("date", "data").
		Values(date, squirrel.Expr("?::jsonb", string(payload))).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				data = jsonb_merge_deep(sales_data.data, EXCLUDED.data),
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
