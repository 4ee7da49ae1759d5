package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
)

// queryFetchViews is the view-dump query template, with the catalog
// prefix on information_schema applied only when catalog is set (some
// warehouses expose information_schema unprefixed per-connection).
const queryFetchViews = `SELECT table_name, view_definition FROM %sinformation_schema.views WHERE table_catalog = $1 AND table_schema = $2 ORDER BY table_name`

// PostgresSource connects to a Postgres-wire-compatible catalog front
// door and issues the view-dump query.
type PostgresSource struct {
	Pool *pgxpool.Pool
}

// Connect opens a pooled connection to connString.
func Connect(ctx context.Context, connString string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, errors.Wrap(err, "connect to warehouse")
	}
	return &PostgresSource{Pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresSource) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// FetchViews issues the view-dump query for catalog.schema and returns one
// View per row, fully qualified as "<catalog>.<schema>.<table_name>". It
// fails with NoViewsFoundError if zero rows come back.
func (s *PostgresSource) FetchViews(ctx context.Context, catalog, schema string) ([]View, error) {
	prefix := ""
	if catalog != "" {
		prefix = catalog + "."
	}
	query := fmt.Sprintf(queryFetchViews, prefix)

	rows, err := s.Pool.Query(ctx, query, catalog, schema)
	if err != nil {
		return nil, errors.Wrap(err, "fetch views")
	}
	defer rows.Close()

	var views []View
	for rows.Next() {
		var tableName, definition string
		if err := rows.Scan(&tableName, &definition); err != nil {
			return nil, errors.Wrap(err, "scan view row")
		}
		views = append(views, View{
			Name: fmt.Sprintf("%s.%s.%s", catalog, schema, tableName),
			SQL:  definition,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate view rows")
	}

	if len(views) == 0 {
		logrus.WithFields(logrus.Fields{"catalog": catalog, "schema": schema}).Warn("no views found")
		return nil, apperrors.NewNoViewsFound(catalog, schema)
	}

	logrus.WithFields(logrus.Fields{"catalog": catalog, "schema": schema, "count": len(views)}).Info("fetched views")
	return views, nil
}
