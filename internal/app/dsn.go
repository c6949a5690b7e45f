package app

import (
	"net/url"
	"strings"
)

const preparedBinaryParam = "disable_prepared_binary_result"

// NormalizeDBURL appends disable_prepared_binary_result=yes to a postgres URL
// or key=value DSN when disable is set. A value already present in the DSN is
// left alone.
func NormalizeDBURL(raw string, disable bool) string {
	trimmed := strings.TrimSpace(raw)
	if !disable || trimmed == "" || dsnParam(trimmed, preparedBinaryParam) != "" {
		return raw
	}

	if isURLDSN(trimmed) {
		sep := "?"
		if strings.Contains(trimmed, "?") {
			sep = "&"
		}
		return trimmed + sep + preparedBinaryParam + "=yes"
	}
	return trimmed + " " + preparedBinaryParam + "=yes"
}

// DBNameFromURL returns the database a DSN points at, or "" when it names none.
func DBNameFromURL(raw string) string {
	return dsnParam(raw, "dbname")
}

func isURLDSN(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

// dsnParam reads one connection parameter. For URLs dbname comes from the
// path, falling back to the query string.
func dsnParam(raw, key string) string {
	raw = strings.TrimSpace(raw)
	if isURLDSN(raw) {
		parsed, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		if key == "dbname" {
			if name := strings.Trim(parsed.Path, "/"); name != "" {
				return name
			}
		}
		return parsed.Query().Get(key)
	}

	for _, field := range strings.Fields(raw) {
		k, v, ok := strings.Cut(field, "=")
		if ok && k == key {
			return strings.Trim(v, `"'`)
		}
	}
	return ""
}
