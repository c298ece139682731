package model

// Pagination is the listing envelope reported alongside page results.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// ClampPageSize bounds a requested page size to [1, max].
func ClampPageSize(perPage, max int) int {
	if perPage < 1 {
		return 1
	}
	if max > 0 && perPage > max {
		return max
	}
	return perPage
}

// NewPagination computes the page count with ceiling division.
func NewPagination(page, perPage, total int) Pagination {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}
}

type ListPublications struct {
	Publications []Publication `json:"publications"`
	Pagination   Pagination    `json:"pagination"`
}

// PublicationFilter composes the optional catalog filters conjunctively.
type PublicationFilter struct {
	Search    string
	Type      string
	LabID     *int
	Available bool
	Page      int
	PerPage   int
}
