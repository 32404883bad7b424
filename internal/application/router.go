package application

import (
	"context"
	"errors"
	"slices"

	"turfbot/internal/domain"
	"turfbot/internal/domain/entities"
	"turfbot/internal/domain/view"
	"turfbot/internal/ports/input"
	"turfbot/internal/ports/output"
	"turfbot/pkg/logger"
	"turfbot/pkg/metrics"
)

// Action is one activation of an event component.
type Action struct {
	Kind        view.Action
	EventID     string
	GuildID     string
	UserID      string
	DisplayName string
	Category    entities.Category // assign only
	Values      []string          // assign only
}

// Localized marks reply data that is itself a catalog key.
type Localized string

// Reply is the private acknowledgment sent back to the acting user.
type Reply struct {
	Key  string
	Data map[string]any
}

// InteractionRouter turns component activations into state machine calls.
// Admin-only actions are checked here, before anything is mutated.
type InteractionRouter struct {
	events  input.EventUseCase
	auth    output.Authorizer
	log     logger.Logger
	metrics *metrics.Manager
}

func NewInteractionRouter(events input.EventUseCase, auth output.Authorizer, log logger.Logger, m *metrics.Manager) *InteractionRouter {
	if log == nil {
		log = logger.Nop()
	}
	return &InteractionRouter{events: events, auth: auth, log: log, metrics: m}
}

func (r *InteractionRouter) Route(ctx context.Context, a Action) Reply {
	reply, outcome := r.route(ctx, a)
	r.metrics.ActionHandled(string(a.Kind), outcome)
	r.log.Debug(ctx, "action handled",
		logger.String("action", string(a.Kind)),
		logger.String("event_id", a.EventID),
		logger.String("user_id", a.UserID),
		logger.String("outcome", outcome))
	return reply
}

func (r *InteractionRouter) route(ctx context.Context, a Action) (Reply, string) {
	switch a.Kind {
	case view.ActionJoin:
		_, err := r.events.Join(ctx, a.EventID, a.UserID, a.DisplayName)
		return r.result(ctx, a, err, Reply{Key: "reply_joined"})

	case view.ActionLeave:
		_, err := r.events.Leave(ctx, a.EventID, a.UserID)
		return r.result(ctx, a, err, Reply{Key: "reply_left"})

	case view.ActionDelete:
		if !r.isAdmin(ctx, a) {
			return Reply{Key: "reply_delete_denied"}, metrics.OutcomeDenied
		}
		removed, err := r.events.DeleteEvent(ctx, a.EventID, a.UserID)
		if err == nil && !removed {
			err = domain.ErrEventNotFound
		}
		return r.result(ctx, a, err, Reply{Key: "reply_deleted"})

	case view.ActionAssign:
		if !r.isAdmin(ctx, a) {
			return Reply{Key: "reply_assign_denied"}, metrics.OutcomeDenied
		}
		if len(a.Values) == 0 || slices.Contains(a.Values, view.NoneOptionValue) {
			return Reply{Key: "reply_assign_nothing"}, metrics.OutcomeNoop
		}
		_, err := r.events.Assign(ctx, a.EventID, a.Category, a.Values)
		return r.result(ctx, a, err, Reply{
			Key:  "reply_assigned",
			Data: map[string]any{"Category": Localized("category_" + string(a.Category))},
		})
	}
	r.log.Warn(ctx, "unknown action", logger.String("action", string(a.Kind)))
	return Reply{Key: "errors_generic"}, metrics.OutcomeError
}

func (r *InteractionRouter) result(ctx context.Context, a Action, err error, ok Reply) (Reply, string) {
	switch {
	case err == nil:
		return ok, metrics.OutcomeOK
	case errors.Is(err, domain.ErrEventNotFound):
		return Reply{Key: "reply_event_gone"}, metrics.OutcomeEventMissing
	}
	r.log.Error(ctx, "action failed",
		logger.String("action", string(a.Kind)),
		logger.String("event_id", a.EventID),
		logger.Error(err))
	if code := domain.Code(err); code != "" {
		return Reply{Key: "errors_" + code}, metrics.OutcomeError
	}
	return Reply{Key: "errors_generic"}, metrics.OutcomeError
}

// isAdmin fails closed when the platform cannot answer.
func (r *InteractionRouter) isAdmin(ctx context.Context, a Action) bool {
	ok, err := r.auth.IsAdmin(ctx, a.GuildID, a.UserID)
	if err != nil {
		r.log.Warn(ctx, "admin check failed",
			logger.String("guild_id", a.GuildID),
			logger.String("user_id", a.UserID),
			logger.Error(err))
		return false
	}
	return ok
}
