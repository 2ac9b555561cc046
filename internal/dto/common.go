package dto

import "saha-servis/pkg/types"

type PaginatedResponse[T any] struct {
	List       []T              `json:"list"`
	Pagination types.Pagination `json:"pagination"`
}

func NewPaginatedResponse[T any](list []T, total uint64, filter types.Filter) *PaginatedResponse[T] {
	if list == nil {
		list = []T{}
	}
	return &PaginatedResponse[T]{
		List:       list,
		Pagination: types.NewPagination(total, filter.Page, filter.PerPage),
	}
}

// StatusChangeDTO - смена статуса (iş emri, alet).
type StatusChangeDTO struct {
	Status string `json:"status" validate:"required"`
}
