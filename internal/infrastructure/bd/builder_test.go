package db

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saha-servis/pkg/types"
)

var testMap = map[string]string{
	"status":      "wo.status",
	"customer_id": "wo.customer_id",
	"created_at":  "wo.created_at",
}

func baseSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("wo.id").From("work_orders wo")
}

func TestApplyListParams_FiltersSortPagination(t *testing.T) {
	filter := types.Filter{
		Filter:         map[string]interface{}{"status": "beklemede,devam_ediyor", "customer_id": "7", "unknown": "x"},
		Sort:           map[string]string{"created_at": "desc", "hack; DROP": "asc"},
		Page:           2,
		PerPage:        10,
		Offset:         10,
		WithPagination: true,
	}

	query, args, err := ApplyListParams(baseSelect(), filter, testMap).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT wo.id FROM work_orders wo WHERE wo.customer_id = $1 AND wo.status IN ($2,$3) ORDER BY wo.created_at DESC LIMIT 10 OFFSET 10",
		query)
	assert.Equal(t, []interface{}{"7", "beklemede", "devam_ediyor"}, args)
}

func TestApplyListParams_CountFilterDropsPagination(t *testing.T) {
	filter := types.Filter{
		Filter:         map[string]interface{}{"status": "iptal"},
		Sort:           map[string]string{"created_at": "asc"},
		PerPage:        10,
		WithPagination: true,
	}

	query, _, err := ApplyListParams(sq.Select("COUNT(*)").From("work_orders wo"), CountFilter(filter), testMap).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM work_orders wo WHERE wo.status = ?", query)
	assert.True(t, HasSort(filter, testMap))
}

func TestApplySearchAndArrayFilters(t *testing.T) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).Select("e.id").From("employees e")
	builder = ApplySearch(builder, " ali ", []string{"e.first_name", "e.last_name"})
	builder = ApplyArrayFilters(builder, types.Filter{Filter: map[string]interface{}{"skill": "elektrik"}},
		map[string]string{"skill": "e.skills"})

	query, args, err := builder.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT e.id FROM employees e WHERE (e.first_name ILIKE $1 OR e.last_name ILIKE $2) AND e.skills @> $3::text[]",
		query)
	assert.Equal(t, []interface{}{"%ali%", "%ali%", []string{"elektrik"}}, args)
}

func TestApplyArrayFilters_ValueIsSingleElement(t *testing.T) {
	for _, val := range []string{"kombi,klima", `a"b`, `x\y}`} {
		builder := ApplyArrayFilters(baseSelect(), types.Filter{Filter: map[string]interface{}{"skill": val}},
			map[string]string{"skill": "e.skills"})

		_, args, err := builder.ToSql()
		require.NoError(t, err)
		assert.Equal(t, []interface{}{[]string{val}}, args)
	}
}

func TestApplySearch_EmptyIsNoop(t *testing.T) {
	query, _, err := ApplySearch(baseSelect(), "   ", []string{"wo.title"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT wo.id FROM work_orders wo", query)
}
