package scrim

import (
	"errors"
	"net/http"

	"github.com/RyanLee0396/SVDiscordBot/internal/storage"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyLeader      = errors.New("identity already leads a team")
	ErrAlreadyMember      = errors.New("identity is already a member of a team")
	ErrNameTaken          = errors.New("team name is already taken")
	ErrNoSuchTeam         = errors.New("team does not exist")
	ErrNotALeader         = errors.New("identity does not lead a team")
	ErrNotAMember         = errors.New("identity is not a member of any team")
	ErrIsLeader           = errors.New("team leaders cannot quit their own team")
	ErrTeamFull           = errors.New("team is full")
	ErrNotInATeam         = errors.New("identity is not part of any team")
	ErrStorageUnavailable = storage.ErrUnavailable
)

// Error codes as seen by the presentation adapter.
const (
	CodeInvalidInput       = "InvalidInput"
	CodeAlreadyLeader      = "AlreadyLeader"
	CodeAlreadyMember      = "AlreadyMember"
	CodeNameTaken          = "NameTaken"
	CodeNoSuchTeam         = "NoSuchTeam"
	CodeNotALeader         = "NotALeader"
	CodeNotAMember         = "NotAMember"
	CodeIsLeader           = "IsLeader"
	CodeTeamFull           = "TeamFull"
	CodeNotInATeam         = "NotInATeam"
	CodeStorageUnavailable = "StorageUnavailable"
	CodeInternal           = "Internal"
)

var errorTable = []struct {
	err    error
	code   string
	status int
}{
	{ErrInvalidInput, CodeInvalidInput, http.StatusBadRequest},
	{ErrAlreadyLeader, CodeAlreadyLeader, http.StatusConflict},
	{ErrAlreadyMember, CodeAlreadyMember, http.StatusConflict},
	{ErrNameTaken, CodeNameTaken, http.StatusConflict},
	{ErrNoSuchTeam, CodeNoSuchTeam, http.StatusNotFound},
	{ErrNotALeader, CodeNotALeader, http.StatusForbidden},
	{ErrNotAMember, CodeNotAMember, http.StatusNotFound},
	{ErrIsLeader, CodeIsLeader, http.StatusConflict},
	{ErrTeamFull, CodeTeamFull, http.StatusConflict},
	{ErrNotInATeam, CodeNotInATeam, http.StatusNotFound},
	{ErrStorageUnavailable, CodeStorageUnavailable, http.StatusServiceUnavailable},
}

// CodeOf maps an error returned by the service to its taxonomy code.
func CodeOf(err error) string {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return CodeInternal
}

// StatusOf maps an error returned by the service to an HTTP status.
func StatusOf(err error) int {
	for _, e := range errorTable {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
