package dto

// ListQuery - общие параметры списочных запросов
type ListQuery struct {
	Skip      int    `form:"skip" validate:"omitempty,min=0"`
	Limit     int    `form:"limit" validate:"omitempty,min=1,max=100"`
	SortOrder string `form:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// Normalize подставляет значения по умолчанию
func (q *ListQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
}
