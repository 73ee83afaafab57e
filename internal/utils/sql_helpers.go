package utils

import (
	"database/sql"
)

// NullStringToString convertit sql.NullString en string
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullInt64ToInt convertit sql.NullInt64 en int
func NullInt64ToInt(ni sql.NullInt64) int {
	if ni.Valid {
		return int(ni.Int64)
	}
	return 0
}

// NullInt64ToPointer convertit sql.NullInt64 en *int
func NullInt64ToPointer(ni sql.NullInt64) *int {
	if ni.Valid {
		val := int(ni.Int64)
		return &val
	}
	return nil
}

// NullFloat64ToPointer convertit sql.NullFloat64 en *float64
func NullFloat64ToPointer(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		return &nf.Float64
	}
	return nil
}
