package sqlast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleSelect(t *testing.T) {
	q, err := Parse(`SELECT a, b FROM raw.orders`)
	require.NoError(t, err)
	require.NotNil(t, q.Body.Left.Select)
	require.Len(t, q.Body.Left.Select.Items, 2)
}

func TestParseTrailingSemicolonTolerated(t *testing.T) {
	_, err := Parse(`SELECT 1;`)
	require.NoError(t, err)
}

func TestParseJoinWithAliasAndOn(t *testing.T) {
	q, err := Parse(`
		SELECT o.id
		FROM raw.orders AS o
		JOIN raw.customers AS c ON o.customer_id = c.id
	`)
	require.NoError(t, err)
	from := q.Body.Left.Select.From
	require.NotNil(t, from)
	require.Len(t, from.Tables[0].Joins, 1)
}

func TestParseCTE(t *testing.T) {
	q, err := Parse(`
		WITH recent AS (SELECT id FROM raw.orders WHERE created_at > '2024-01-01')
		SELECT id FROM recent
	`)
	require.NoError(t, err)
	require.NotNil(t, q.With)
	require.Len(t, q.With.CTEs, 1)
	require.Equal(t, "recent", q.With.CTEs[0].Name)
}

func TestParseCaseWhenDoesNotSwallowKeywordsAsIdents(t *testing.T) {
	_, err := Parse(`
		SELECT CASE WHEN status = 'open' THEN 1 ELSE 0 END AS is_open
		FROM raw.orders
		WHERE status IS NOT NULL
	`)
	require.NoError(t, err)
}

func TestParseWindowFunction(t *testing.T) {
	_, err := Parse(`
		SELECT id, ROW_NUMBER() OVER (PARTITION BY customer_id ORDER BY created_at DESC) AS rn
		FROM raw.orders
	`)
	require.NoError(t, err)
}

func TestParseUnionOfTwoSelects(t *testing.T) {
	q, err := Parse(`
		SELECT id FROM raw.orders
		UNION ALL
		SELECT id FROM raw.returns
	`)
	require.NoError(t, err)
	require.Len(t, q.Body.Rest, 1)
	require.True(t, q.Body.Rest[0].Union)
	require.True(t, q.Body.Rest[0].All)
}

func TestParseInSubquery(t *testing.T) {
	_, err := Parse(`
		SELECT id FROM raw.orders
		WHERE customer_id IN (SELECT id FROM raw.customers WHERE active = TRUE)
	`)
	require.NoError(t, err)
}

func TestParseQuotedIdentPreservesCase(t *testing.T) {
	q, err := Parse(`SELECT 1 FROM "Raw"."Orders"`)
	require.NoError(t, err)
	tbl := q.Body.Left.Select.From.Tables[0].Primary.Name
	require.Equal(t, []string{"Raw", "Orders"}, tbl.Name.Strings())
}
