// Package migration cria as estruturas usadas pelo armazenamento em Postgres
package migration

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const createSalesDataTable = `
	CREATE TABLE IF NOT EXISTS sales_data (
		date       TEXT PRIMARY KEY,
		data       JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// jsonb_merge_deep aplica em "a" as folhas de "b". Um objeto vazio dentro de "b" é folha.
const createMergeFunction = `
	CREATE OR REPLACE FUNCTION jsonb_merge_deep(a JSONB, b JSONB) RETURNS JSONB AS $$
	BEGIN
		IF jsonb_typeof(a) = 'object' AND jsonb_typeof(b) = 'object' THEN
			RETURN COALESCE((
				SELECT jsonb_object_agg(
					k,
					CASE
						WHEN a ? k AND b ? k AND b -> k <> '{}'::jsonb THEN jsonb_merge_deep(a -> k, b -> k)
						WHEN b ? k THEN b -> k
						ELSE a -> k
					END
				)
				FROM (SELECT jsonb_object_keys(a) UNION SELECT jsonb_object_keys(b)) AS keys(k)
			), '{}'::jsonb);
		END IF;
		RETURN b;
	END;
	$$ LANGUAGE plpgsql IMMUTABLE
`

// EnsureSalesData cria a tabela e a função de merge quando ainda não existem
func EnsureSalesData(ctx context.Context, db *sql.DB) error {
	var tableExists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = 'sales_data'
		)
	`).Scan(&tableExists)
	if err != nil {
		return errors.Wrap(err, "erro ao verificar tabela sales_data")
	}

	if !tableExists {
		logrus.Info("Criando tabela sales_data")
		if _, err := db.ExecContext(ctx, createSalesDataTable); err != nil {
			return errors.Wrap(err, "erro ao criar tabela sales_data")
		}
	}

	if _, err := db.ExecContext(ctx, createMergeFunction); err != nil {
		return errors.Wrap(err, "erro ao criar função jsonb_merge_deep")
	}

	return nil
}
