package interaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/internal/scrim"
)

// Kind names the operation a session collects input for.
type Kind string

const (
	KindCreateTeam   Kind = "create_team"
	KindJoinTeam     Kind = "join_team"
	KindSignup       Kind = "signup"
	KindCancelSignup Kind = "cancel_signup"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCreateTeam, KindJoinTeam, KindSignup, KindCancelSignup:
		return true
	}
	return false
}

var (
	ErrSessionExpired  = errors.New("interaction expired or does not exist")
	ErrForeignSession  = errors.New("interaction belongs to another identity")
	ErrNothingToSelect = errors.New("there is nothing to choose from")
	ErrUnknownKind     = errors.New("unknown interaction kind")
)

const (
	CodeSessionExpired  = "SessionExpired"
	CodeForeignSession  = "ForeignSession"
	CodeNothingToSelect = "NothingToSelect"
)

// Session is a pending prompt waiting for the identity's follow-up input.
// Nothing is written to the store of record until a valid submission arrives.
type Session struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Identity  common.Identity `json:"identity"`
	Options   []string        `json:"options,omitempty"`
	MinValues int             `json:"min_values"`
	MaxValues int             `json:"max_values"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// FreeText reports whether the session expects typed input rather than a choice of Options.
func (s *Session) FreeText() bool { return s.Kind == KindCreateTeam }

// Expired reports whether the session is past its deadline at now.
func (s *Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// Result is the outcome of a submitted session.
type Result struct {
	Kind     Kind                `json:"kind"`
	TeamID   uint                `json:"team_id,omitempty"`
	TeamName string              `json:"team_name,omitempty"`
	Outcomes []scrim.SlotOutcome `json:"outcomes,omitempty"`
	Removed  []string            `json:"removed,omitempty"`
}

var errorTable = []struct {
	err    error
	code   string
	status int
}{
	{ErrSessionExpired, CodeSessionExpired, http.StatusGone},
	{ErrForeignSession, CodeForeignSession, http.StatusForbidden},
	{ErrNothingToSelect, CodeNothingToSelect, http.StatusConflict},
	{ErrUnknownKind, scrim.CodeInvalidInput, http.StatusBadRequest},
}

func lookup(err error) (string, int, bool) {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.code, e.status, true
		}
	}
	return "", 0, false
}
