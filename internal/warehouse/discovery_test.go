package warehouse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntheticProviderListCatalogsReturnsTest(t *testing.T) {
	p := SyntheticProvider{DatasetNames: []string{"simple_ecommerce"}}
	catalogs, err := p.ListCatalogs(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"test"}, catalogs)
}

func TestSyntheticProviderListSchemasReturnsDatasetNames(t *testing.T) {
	p := SyntheticProvider{DatasetNames: []string{"a", "b"}}
	schemas, err := p.ListSchemas(context.Background(), "test")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, schemas)
}

func TestSyntheticProviderListSchemasRequiresCatalog(t *testing.T) {
	p := SyntheticProvider{DatasetNames: []string{"a"}}
	_, err := p.ListSchemas(context.Background(), "")
	require.Error(t, err)
}
