package db

import (
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"saha-servis/pkg/types"
)

// ApplySearch добавляет ILIKE по колонкам, объединённым через OR.
func ApplySearch(builder sq.SelectBuilder, search string, columns []string) sq.SelectBuilder {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return builder
	}
	pat := "%" + search + "%"
	or := make(sq.Or, 0, len(columns))
	for _, col := range columns {
		or = append(or, sq.ILike{col: pat})
	}
	return builder.Where(or)
}

// ApplyArrayFilters - фильтр по text[] колонке: skills=elektrik -> skills @> ARRAY['elektrik'].
// Значение уходит одним элементом массива, запятые и кавычки не разбираются.
func ApplyArrayFilters(builder sq.SelectBuilder, filter types.Filter, arrayMap map[string]string) sq.SelectBuilder {
	for _, key := range sortedKeys(arrayMap) {
		val, ok := filter.Value(key)
		if !ok {
			continue
		}
		builder = builder.Where(sq.Expr(arrayMap[key]+" @> ?::text[]", []string{val}))
	}
	return builder
}

// ApplyListParams применяет фильтры (=, IN для значений через запятую), сортировку и пагинацию.
// Ключи, которых нет в allowedMap, игнорируются.
func ApplyListParams(builder sq.SelectBuilder, filter types.Filter, allowedMap map[string]string) sq.SelectBuilder {
	filterKeys := make([]string, 0, len(filter.Filter))
	for k := range filter.Filter {
		filterKeys = append(filterKeys, k)
	}
	sort.Strings(filterKeys)

	for _, jsonField := range filterKeys {
		dbCol, ok := allowedMap[jsonField]
		if !ok {
			continue
		}
		val := filter.Filter[jsonField]
		if s, ok := val.(string); ok && strings.Contains(s, ",") {
			builder = builder.Where(sq.Eq{dbCol: strings.Split(s, ",")})
		} else {
			builder = builder.Where(sq.Eq{dbCol: val})
		}
	}

	if len(filter.Sort) > 0 {
		for _, jsonField := range sortedKeys(filter.Sort) {
			dbCol, ok := allowedMap[jsonField]
			if !ok {
				continue
			}
			sqlDir := "ASC"
			if strings.ToLower(filter.Sort[jsonField]) == "desc" {
				sqlDir = "DESC"
			}
			builder = builder.OrderBy(fmt.Sprintf("%s %s", dbCol, sqlDir))
		}
	}

	if filter.WithPagination {
		if filter.PerPage > 0 {
			builder = builder.Limit(uint64(filter.PerPage))
		}
		if filter.Offset >= 0 {
			builder = builder.Offset(uint64(filter.Offset))
		}
	}

	return builder
}

// CountFilter - копия фильтра для COUNT: без сортировки и пагинации.
func CountFilter(filter types.Filter) types.Filter {
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	return countFilter
}

// HasSort - задана ли хотя бы одна допустимая сортировка.
func HasSort(filter types.Filter, allowedMap map[string]string) bool {
	for k := range filter.Sort {
		if _, ok := allowedMap[k]; ok {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
