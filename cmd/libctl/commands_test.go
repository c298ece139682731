package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateDatabaseStmt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		dbName string
		want   string
	}{
		{"plain", "library_db", `create database "library_db"`},
		{"embedded quote doubled", `lib"rary`, `create database "lib""rary"`},
		{"mixed case preserved", "LibraryDB", `create database "LibraryDB"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, createDatabaseStmt(tt.dbName))
		})
	}
}
