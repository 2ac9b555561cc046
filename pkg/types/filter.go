package types

// Filter - параметры списка из query string.
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Page           int                    `json:"page"`
	PerPage        int                    `json:"per_page"`
	Offset         int                    `json:"offset"`
	WithPagination bool                   `json:"with_pagination"`
}

// RangeEnd - индекс последней строки страницы (включительно).
func (f Filter) RangeEnd() int {
	return f.Offset + f.PerPage - 1
}

// Value возвращает значение фильтра как строку.
func (f Filter) Value(key string) (string, bool) {
	v, ok := f.Filter[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}

// Set переопределяет фильтр, например для ограничения выборки по текущему пользователю.
func (f *Filter) Set(key string, value interface{}) {
	if f.Filter == nil {
		f.Filter = make(map[string]interface{})
	}
	f.Filter[key] = value
}

// http://localhost:8080/musteri?search=Ankara&sort[created_at]=desc&filter[city]=Ankara&page=2&perPage=10
