package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/alexanderramin/clistudy/internal/domain"
)

// UseCaseEvent describes one finished log or summary operation.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// fanOut forwards every event to each observer in order.
type fanOut []UseCaseObserver

func (f fanOut) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range f {
		obs.ObserveUseCase(ctx, event)
	}
}

func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var live fanOut
	for _, obs := range observers {
		if obs != nil {
			live = append(live, obs)
		}
	}
	switch len(live) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return live[0]
	default:
		return live
	}
}

type slogObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each operation as one slog text line on w.
// attrs (backend, path) are attached to every line. Rejected input is
// logged at WARN, store failures at ERROR.
func NewLogUseCaseObserver(w io.Writer, attrs ...any) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	logger := slog.New(slog.NewTextHandler(w, nil)).With(attrs...)
	return &slogObserver{logger: logger}
}

func (o *slogObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("op", event.Name),
		slog.Duration("took", event.Duration),
	}

	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
		if errors.Is(event.Err, domain.ErrValidation) {
			level = slog.LevelWarn
		}
	}
	o.logger.LogAttrs(ctx, level, "study", attrs...)
}
