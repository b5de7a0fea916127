package service

import (
	"context"

	"github.com/alexanderramin/clistudy/internal/domain"
	"github.com/alexanderramin/clistudy/internal/report"
)

type SessionService interface {
	// LogSession appends a session dated today. Invalid minutes fail with
	// domain.ErrValidation before the store is touched.
	LogSession(ctx context.Context, minutes int, topic string) (domain.Session, error)
	Today(ctx context.Context) (report.Summary, error)
	Week(ctx context.Context) (report.Summary, error)
}
