package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
)

type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) squirrel.RowScanner
}
