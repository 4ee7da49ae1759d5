package warehouse

import (
	"context"

	"github.com/pkg/errors"

	"github.com/robfromboulder/viewmapper/internal/apperrors"
)

// CatalogProvider is the discovery interface: two read-only operations,
// neither touching the core graph.
type CatalogProvider interface {
	ListCatalogs(ctx context.Context) ([]string, error)
	ListSchemas(ctx context.Context, catalog string) ([]string, error)
}

// SyntheticProvider backs file-loaded datasets: a single synthetic
// catalog named "test" whose schemas are the packaged dataset names.
type SyntheticProvider struct {
	DatasetNames []string
}

func (p SyntheticProvider) ListCatalogs(ctx context.Context) ([]string, error) {
	return []string{"test"}, nil
}

func (p SyntheticProvider) ListSchemas(ctx context.Context, catalog string) ([]string, error) {
	if catalog == "" {
		return nil, apperrors.NewInvalidArgument("catalog", catalog)
	}
	return p.DatasetNames, nil
}

// WarehouseProvider issues SHOW CATALOGS / SHOW SCHEMAS FROM <catalog>
// against a connected warehouse. BoundCatalog, when non-empty, means the
// connection is pinned to one catalog; ListSchemas called with an empty
// catalog then lists that bound catalog's schemas. With an empty catalog
// and no BoundCatalog, ListSchemas fails with InvalidArgument.
type WarehouseProvider struct {
	Source      *PostgresSource
	BoundCatalog string
}

func (p WarehouseProvider) ListCatalogs(ctx context.Context) ([]string, error) {
	rows, err := p.Source.Pool.Query(ctx, "SHOW CATALOGS")
	if err != nil {
		return nil, errors.Wrap(err, "show catalogs")
	}
	defer rows.Close()

	var catalogs []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scan catalog row")
		}
		catalogs = append(catalogs, name)
	}
	return catalogs, rows.Err()
}

func (p WarehouseProvider) ListSchemas(ctx context.Context, catalog string) ([]string, error) {
	if catalog == "" {
		if p.BoundCatalog == "" {
			return nil, apperrors.NewInvalidArgument("catalog", catalog)
		}
		catalog = p.BoundCatalog
	}

	rows, err := p.Source.Pool.Query(ctx, "SHOW SCHEMAS FROM "+catalog)
	if err != nil {
		return nil, errors.Wrap(err, "show schemas")
	}
	defer rows.Close()

	var schemas []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "scan schema row")
		}
		schemas = append(schemas, name)
	}
	return schemas, rows.Err()
}
