package store

import (
	"strings"

	"gorm.io/gorm"
)

// TextSearch matches q as a case-insensitive substring of any of the given
// columns. LOWER on both sides keeps the behavior independent of SQLite's
// ASCII-only LIKE collation.
func TextSearch(q string, columns ...string) Scope {
	pattern := "%" + strings.ToLower(q) + "%"
	exprs := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		exprs[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	cond := strings.Join(exprs, " OR ")
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(cond, args...)
	}
}

// Eq matches column = value exactly.
func Eq(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// In matches column against any of the given values.
func In(column string, values []string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN ?", values)
	}
}

// GTE and LTE bound a column inclusively; used for hearing date ranges.

func GTE(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ?", value)
	}
}

func LTE(column string, value interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" <= ?", value)
	}
}

// OrderBy applies an ORDER BY expression.
func OrderBy(expr string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(expr)
	}
}

// Limit caps the number of returned rows.
func Limit(n int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Limit(n)
	}
}
