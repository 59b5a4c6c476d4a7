package util

import (
	"database/sql"
	"time"
)

// NullableString converts *string to sql.NullString.
// An empty string is also stored as NULL.
func NullableString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullableFloat64 converts *float64 to sql.NullFloat64.
func NullableFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// NullableInt64 converts *int64 to sql.NullInt64.
// Useful for nullable foreign keys.
func NullableInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// NullableTime converts *time.Time to sql.NullTime.
func NullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// NilIfEmpty maps "" to nil so empty strings become NULL downstream.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringOrEmpty unwraps sql.NullString for JSON responses.
func StringOrEmpty(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// FloatOrZero unwraps sql.NullFloat64 for JSON responses.
func FloatOrZero(nf sql.NullFloat64) float64 {
	if !nf.Valid {
		return 0
	}
	return nf.Float64
}

// FloatPtr unwraps sql.NullFloat64 to a pointer, nil when NULL.
func FloatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	v := nf.Float64
	return &v
}

// StringPtr unwraps sql.NullString to a pointer, nil when NULL.
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
