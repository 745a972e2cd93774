package repository

import (
	"database/sql"
	"strings"
)

// isUniqueViolation detects SQLite UNIQUE and PRIMARY KEY constraint errors.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

func nullableHandle(h *int64) sql.NullInt64 {
	if h == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *h, Valid: true}
}

func handlePtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
