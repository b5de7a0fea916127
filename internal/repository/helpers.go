package repository

import (
	"strings"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isBlank reports whether data holds only whitespace.
func isBlank(data []byte) bool {
	return strings.TrimSpace(string(data)) == ""
}

// isNotADatabase matches SQLite's SQLITE_NOTADB message.
func isNotADatabase(err error) bool {
	return err != nil && strings.Contains(err.Error(), "not a database")
}
