package application

import (
	"context"
	"errors"
	"time"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
	"turfbot/pkg/metrics"
)

// failurePolicy decides how a swallowed platform failure is reported.
// Failures are never retried and never reach the user.
type failurePolicy struct {
	err  error
	kind string
	warn bool
}

var failurePolicies = []failurePolicy{
	{err: output.ErrMessageNotFound, kind: "not_found", warn: true},
	{err: domain.ErrPlatformUnavailable, kind: "unavailable"},
}

var unknownFailure = failurePolicy{kind: "unknown"}

func policyFor(err error) failurePolicy {
	for _, p := range failurePolicies {
		if errors.Is(err, p.err) {
			return p
		}
	}
	return unknownFailure
}

// ViewSynchronizer pushes freshly rendered views of an event to the platform.
type ViewSynchronizer struct {
	platform output.MessagingPlatform
	renderer *view.Renderer
	log      logger.Logger
	metrics  *metrics.Manager
}

func NewViewSynchronizer(platform output.MessagingPlatform, renderer *view.Renderer, log logger.Logger, m *metrics.Manager) *ViewSynchronizer {
	return &ViewSynchronizer{platform: platform, renderer: renderer, log: log, metrics: m}
}

// Refresh re-renders the announcement and, when present, the assignment board.
func (s *ViewSynchronizer) Refresh(ctx context.Context, ev *entities.Event) {
	s.push(ctx, ev.ID, ev.Announce, s.renderer.Announce(ev))
	if ev.HasAssignmentBoard() {
		s.push(ctx, ev.ID, *ev.Assignment, s.renderer.Assignment(ev))
	}
}

func (s *ViewSynchronizer) push(ctx context.Context, eventID string, loc entities.Location, v view.View) {
	start := time.Now()
	err := s.platform.EditMessage(ctx, loc, v)
	s.metrics.ObserveViewPush(string(v.Kind), time.Since(start).Seconds())
	if err != nil {
		s.report(ctx, "edit", eventID, loc, err)
	}
}

// Cleanup deletes rendered messages. A message that can no longer be fetched
// is considered gone already.
func (s *ViewSynchronizer) Cleanup(ctx context.Context, locs ...entities.Location) {
	for _, loc := range locs {
		if loc.IsZero() {
			continue
		}
		if err := s.platform.FetchMessage(ctx, loc); err != nil {
			s.report(ctx, "fetch", "", loc, err)
			continue
		}
		if err := s.platform.DeleteMessage(ctx, loc); err != nil {
			s.report(ctx, "delete", "", loc, err)
		}
	}
}

func (s *ViewSynchronizer) report(ctx context.Context, op, eventID string, loc entities.Location, err error) {
	p := policyFor(err)
	s.metrics.PlatformFailure(op, p.kind)
	fields := []logger.Field{
		logger.String("op", op),
		logger.String("kind", p.kind),
		logger.String("channel_id", loc.ChannelID),
		logger.String("message_id", loc.MessageID),
		logger.Error(err),
	}
	if eventID != "" {
		fields = append(fields, logger.String("event_id", eventID))
	}
	if p.warn {
		s.log.Warn(ctx, "view out of sync", fields...)
		return
	}
	s.log.Error(ctx, "platform call failed", fields...)
}
