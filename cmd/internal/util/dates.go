package util

import (
	"database/sql"
	"time"
)

// dateLayouts lists the formats accepted for dates arriving from NF-e XML
// files and API payloads, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate tries the known layouts and returns a NullTime; an empty or
// unparseable string yields Valid=false.
func ParseDate(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{Valid: false}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{Valid: false}
}
