package scrim

import (
	"context"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
)

// Participants is one day of the rolling window with the teams signed up for it.
type Participants struct {
	Offset   int      `json:"day_offset"`
	Period   string   `json:"period"`
	Teams    []string `json:"teams"`
	Capacity int      `json:"capacity"`
	Prev     *int     `json:"prev_offset"`
	Next     *int     `json:"next_offset"`
}

// Slots returns availability for every day of the window.
func (s *Service) Slots(ctx context.Context) ([]SlotAvailability, error) {
	periods := s.window.Periods()
	counts, err := s.repo.CountRegistrationsByPeriod(ctx, periods)
	if err != nil {
		return nil, err
	}
	out := make([]SlotAvailability, 0, len(periods))
	for _, p := range periods {
		n := counts[p]
		out = append(out, SlotAvailability{
			Period:     p,
			Registered: n,
			Capacity:   s.settings.SlotCapacity,
			Full:       n >= int64(s.settings.SlotCapacity),
		})
	}
	return out, nil
}

// SeededSlots lists every slot row in creation order, flagging the ones in the current window.
func (s *Service) SeededSlots(ctx context.Context) ([]SeededSlot, error) {
	slots, err := s.repo.ListSlots(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SeededSlot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, SeededSlot{Period: sl.Period, InWindow: s.window.Contains(sl.Period)})
	}
	return out, nil
}

// AvailableSignupPeriods lists window days the leader's team could still sign up for.
func (s *Service) AvailableSignupPeriods(ctx context.Context, leaderID string) ([]string, error) {
	team, err := s.repo.GetTeamByLeader(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotALeader
	}
	registered, err := s.repo.RegisteredPeriods(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	mine := make(map[string]struct{}, len(registered))
	for _, p := range registered {
		mine[p] = struct{}{}
	}
	slots, err := s.Slots(ctx)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, sl := range slots {
		if _, ok := mine[sl.Period]; ok || sl.Full {
			continue
		}
		out = append(out, sl.Period)
	}
	return out, nil
}

// RegisteredPeriodsFor lists the periods the leader's team is signed up for.
func (s *Service) RegisteredPeriodsFor(ctx context.Context, leaderID string) ([]string, error) {
	team, err := s.repo.GetTeamByLeader(ctx, leaderID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotALeader
	}
	return s.repo.RegisteredPeriods(ctx, team.ID)
}

// TeamNames lists every team name in creation order.
func (s *Service) TeamNames(ctx context.Context) ([]string, error) {
	return s.repo.TeamNames(ctx)
}

// Participants returns the teams for the window day at offset along with
// the neighbouring offsets, nil at either end of the window.
func (s *Service) Participants(ctx context.Context, offset int) (*Participants, error) {
	period, err := s.window.PeriodAt(offset)
	if err != nil {
		return nil, err
	}
	teams, err := s.repo.TeamNamesForSlot(ctx, period)
	if err != nil {
		return nil, err
	}
	view := &Participants{
		Offset:   offset,
		Period:   period,
		Teams:    teams,
		Capacity: s.settings.SlotCapacity,
	}
	if offset > 0 {
		prev := offset - 1
		view.Prev = &prev
	}
	if offset < s.window.Days()-1 {
		next := offset + 1
		view.Next = &next
	}
	return view, nil
}

// EnsureCanCreateTeam runs the identity checks of CreateTeam without writing.
func (s *Service) EnsureCanCreateTeam(ctx context.Context, who common.Identity) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	owned, err := s.repo.GetTeamByLeader(ctx, who.ID)
	if err != nil {
		return err
	}
	if owned != nil {
		return ErrAlreadyLeader
	}
	membership, err := s.repo.GetMembershipByName(ctx, who.Name)
	if err != nil {
		return err
	}
	if membership != nil {
		return ErrAlreadyMember
	}
	return nil
}

// EnsureCanJoin runs the identity checks of JoinTeam without writing.
func (s *Service) EnsureCanJoin(ctx context.Context, who common.Identity) error {
	return s.EnsureCanCreateTeam(ctx, who)
}
