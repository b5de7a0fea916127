package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/alexanderramin/clistudy/internal/domain"
)

// FixedNow is a stable clock reading for tests: Sunday 2025-06-15 10:00 UTC.
var FixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Session options
type SessionOption func(*domain.Session)

func WithDate(d domain.Date) SessionOption {
	return func(s *domain.Session) {
		s.Date = d
	}
}

// WithDaysAgo dates the session n calendar days before FixedNow.
func WithDaysAgo(n int) SessionOption {
	return func(s *domain.Session) {
		s.Date = domain.DateOf(FixedNow).AddDays(-n)
	}
}

func NewTestSession(topic string, minutes int, opts ...SessionOption) domain.Session {
	s := domain.Session{
		Date:    domain.DateOf(FixedNow),
		Minutes: minutes,
		Topic:   topic,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WriteFile writes content to path and fails the test on error.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// ReadFile returns the content at path and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
