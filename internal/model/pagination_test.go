package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liris-lib/library-service/internal/model"
)

func TestClampPageSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		perPage int
		max     int
		want    int
	}{
		{"within bounds", 20, 100, 20},
		{"above max", 5000, 100, 100},
		{"at max", 100, 100, 100},
		{"zero floors to one", 0, 100, 1},
		{"negative floors to one", -5, 100, 1},
		{"unlimited when max unset", 5000, 0, 5000},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.ClampPageSize(tt.perPage, tt.max))
		})
	}
}

func TestNewPagination(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		page    int
		perPage int
		total   int
		want    model.Pagination
	}{
		{"exact fit", 1, 10, 30, model.Pagination{Page: 1, PerPage: 10, Total: 30, Pages: 3}},
		{"partial last page", 2, 10, 31, model.Pagination{Page: 2, PerPage: 10, Total: 31, Pages: 4}},
		{"empty result", 1, 10, 0, model.Pagination{Page: 1, PerPage: 10, Total: 0, Pages: 0}},
		{"single item", 1, 10, 1, model.Pagination{Page: 1, PerPage: 10, Total: 1, Pages: 1}},
		{"zero per page", 1, 0, 5, model.Pagination{Page: 1, PerPage: 0, Total: 5, Pages: 0}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, model.NewPagination(tt.page, tt.perPage, tt.total))
		})
	}
}
