package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/clistudy/internal/domain"
	"github.com/alexanderramin/clistudy/internal/report"
	"github.com/alexanderramin/clistudy/internal/repository"
)

type sessionService struct {
	store    repository.SessionStore
	now      func() time.Time
	observer UseCaseObserver
}

// NewSessionService wires the store. now defaults to time.Now and is read
// once per use case, so "today" is fixed for the whole operation.
func NewSessionService(store repository.SessionStore, now func() time.Time, observers ...UseCaseObserver) SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionService{
		store:    store,
		now:      now,
		observer: combineObservers(observers),
	}
}

func (s *sessionService) LogSession(ctx context.Context, minutes int, topic string) (session domain.Session, err error) {
	startedAt := time.Now()
	fields := map[string]any{"minutes": minutes}
	defer func() {
		s.observe(ctx, "log_session", startedAt, fields, err)
	}()

	session, err = domain.NewSession(minutes, topic, s.now())
	if err != nil {
		return domain.Session{}, err
	}

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("loading sessions: %w", err)
	}
	sessions = append(sessions, session)
	fields["sessions"] = len(sessions)

	if err = s.store.Save(ctx, sessions); err != nil {
		return domain.Session{}, fmt.Errorf("saving sessions: %w", err)
	}
	return session, nil
}

func (s *sessionService) Today(ctx context.Context) (report.Summary, error) {
	return s.summarize(ctx, report.Today(s.now()))
}

func (s *sessionService) Week(ctx context.Context) (report.Summary, error) {
	return s.summarize(ctx, report.Week(s.now()))
}

func (s *sessionService) summarize(ctx context.Context, w report.Window) (summary report.Summary, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"window": w.Name,
		"from":   w.From.String(),
		"to":     w.To.String(),
	}
	defer func() {
		s.observe(ctx, "summarize", startedAt, fields, err)
	}()

	sessions, err := s.store.Load(ctx)
	if err != nil {
		return report.Summary{}, fmt.Errorf("loading sessions: %w", err)
	}
	fields["sessions"] = len(sessions)

	summary = report.Build(sessions, w)
	fields["topics"] = len(summary.Topics)
	return summary, nil
}

func (s *sessionService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
