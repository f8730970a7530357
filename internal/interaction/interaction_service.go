package interaction

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/internal/metrics"
	"github.com/RyanLee0396/SVDiscordBot/internal/scrim"
)

// DefaultTTL bounds how long a prompt waits for its follow-up.
const DefaultTTL = 60 * time.Second

// Coordinator runs two-phase interactions: Begin validates the caller and
// returns the choices to offer, Submit commits a validated answer.
type Coordinator struct {
	svc   *scrim.Service
	store Store
	ttl   time.Duration
	now   func() time.Time
	log   *zap.Logger
}

// NewCoordinator creates a coordinator; a non-positive ttl means DefaultTTL.
func NewCoordinator(svc *scrim.Service, store Store, ttl time.Duration, log *zap.Logger) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{svc: svc, store: store, ttl: ttl, now: time.Now, log: log}
}

// Begin opens a session of the given kind for who.
func (c *Coordinator) Begin(ctx context.Context, who common.Identity, kind Kind) (*Session, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !who.Valid() {
		return nil, fmt.Errorf("%w: identity id and name are required", scrim.ErrInvalidInput)
	}

	options, err := c.optionsFor(ctx, who, kind)
	if err != nil {
		metrics.RecordInteraction(string(kind), "rejected")
		return nil, err
	}

	now := c.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		Identity:  who,
		Options:   options,
		MinValues: 1,
		MaxValues: 1,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	if kind == KindSignup || kind == KindCancelSignup {
		sess.MaxValues = len(options)
	}
	if err := c.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	metrics.RecordInteraction(string(kind), "begun")
	c.log.Debug("interaction begun", zap.String("id", sess.ID), zap.String("kind", string(kind)), zap.String("identity", who.ID))
	return sess, nil
}

func (c *Coordinator) optionsFor(ctx context.Context, who common.Identity, kind Kind) ([]string, error) {
	switch kind {
	case KindCreateTeam:
		return nil, c.svc.EnsureCanCreateTeam(ctx, who)
	case KindJoinTeam:
		if err := c.svc.EnsureCanJoin(ctx, who); err != nil {
			return nil, err
		}
		names, err := c.svc.TeamNames(ctx)
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, scrim.ErrNoSuchTeam
		}
		return names, nil
	case KindSignup:
		periods, err := c.svc.AvailableSignupPeriods(ctx, who.ID)
		if err != nil {
			return nil, err
		}
		if len(periods) == 0 {
			return nil, ErrNothingToSelect
		}
		return periods, nil
	case KindCancelSignup:
		periods, err := c.svc.RegisteredPeriodsFor(ctx, who.ID)
		if err != nil {
			return nil, err
		}
		if len(periods) == 0 {
			return nil, ErrNothingToSelect
		}
		return periods, nil
	}
	return nil, ErrUnknownKind
}

// Submit validates values against the session and, if they fit, consumes the
// session and runs the underlying operation. Invalid values leave the session
// open so the caller can answer again before it expires.
func (c *Coordinator) Submit(ctx context.Context, who common.Identity, id string, values []string) (*Result, error) {
	sess, err := c.open(ctx, who, id)
	if err != nil {
		return nil, err
	}
	if err := c.validate(sess, values); err != nil {
		metrics.RecordInteraction(string(sess.Kind), "rejected")
		return nil, err
	}
	if _, err := c.store.Take(ctx, id); err != nil {
		metrics.RecordInteraction(string(sess.Kind), "expired")
		return nil, err
	}

	res, err := c.apply(ctx, sess, values)
	if err != nil {
		metrics.RecordInteraction(string(sess.Kind), "failed")
		return nil, err
	}
	metrics.RecordInteraction(string(sess.Kind), "submitted")
	c.log.Debug("interaction submitted", zap.String("id", id), zap.String("kind", string(sess.Kind)))
	return res, nil
}

// Cancel abandons a session without side effects.
func (c *Coordinator) Cancel(ctx context.Context, who common.Identity, id string) error {
	sess, err := c.open(ctx, who, id)
	if err != nil {
		return err
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	metrics.RecordInteraction(string(sess.Kind), "cancelled")
	return nil
}

// open loads a live session owned by who.
func (c *Coordinator) open(ctx context.Context, who common.Identity, id string) (*Session, error) {
	sess, err := c.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			metrics.RecordInteraction("unknown", "expired")
		}
		return nil, err
	}
	if sess.Expired(c.now()) {
		_ = c.store.Delete(ctx, id)
		metrics.RecordInteraction(string(sess.Kind), "expired")
		return nil, ErrSessionExpired
	}
	if sess.Identity.ID != who.ID {
		return nil, ErrForeignSession
	}
	return sess, nil
}

func (c *Coordinator) validate(sess *Session, values []string) error {
	if len(values) < sess.MinValues || len(values) > sess.MaxValues {
		return fmt.Errorf("%w: expected between %d and %d values, got %d",
			scrim.ErrInvalidInput, sess.MinValues, sess.MaxValues, len(values))
	}
	if sess.FreeText() {
		_, err := c.svc.NormalizeTeamName(values[0])
		return err
	}
	for _, v := range values {
		if !slices.Contains(sess.Options, v) {
			return fmt.Errorf("%w: %q is not one of the offered options", scrim.ErrInvalidInput, v)
		}
	}
	return nil
}

func (c *Coordinator) apply(ctx context.Context, sess *Session, values []string) (*Result, error) {
	res := &Result{Kind: sess.Kind}
	switch sess.Kind {
	case KindCreateTeam:
		team, err := c.svc.CreateTeam(ctx, sess.Identity, values[0])
		if err != nil {
			return nil, err
		}
		res.TeamID, res.TeamName = team.ID, team.Name
	case KindJoinTeam:
		team, err := c.svc.JoinTeam(ctx, sess.Identity, values[0])
		if err != nil {
			return nil, err
		}
		res.TeamName = team.Name
	case KindSignup:
		outcomes, err := c.svc.Signup(ctx, sess.Identity.ID, values)
		if err != nil {
			return nil, err
		}
		res.Outcomes = outcomes
	case KindCancelSignup:
		removed, err := c.svc.CancelSignup(ctx, sess.Identity.ID, values)
		if err != nil {
			return nil, err
		}
		res.Removed = removed
	default:
		return nil, ErrUnknownKind
	}
	return res, nil
}
