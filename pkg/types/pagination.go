package types

type Pagination struct {
	TotalCount uint64 `json:"count"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
}

func NewPagination(total uint64, page, perPage int) Pagination {
	return Pagination{
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: TotalPages(total, perPage),
	}
}

// TotalPages = ceil(count / perPage).
func TotalPages(count uint64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pp := uint64(perPage)
	return int((count + pp - 1) / pp)
}
