package db

import "strings"

// DefaultDSN is the fixed local store used when DATABASE_DSN is unset.
const DefaultDSN = "ev_motors.db"

// NormalizeDSN accepts either a postgres URL (postgres://...) or a sqlite
// file path and returns it cleaned of quotes and whitespace. An empty value
// falls back to the default local database file.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return DefaultDSN
	}
	return s
}

// IsPostgresDSN reports whether the DSN selects the postgres driver rather
// than the default sqlite file driver.
func IsPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
