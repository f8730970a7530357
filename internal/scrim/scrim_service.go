package scrim

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/internal/metrics"
	"github.com/RyanLee0396/SVDiscordBot/internal/storage"
	"github.com/RyanLee0396/SVDiscordBot/pkg/keymutex"
)

const (
	DefaultSlotCapacity   = 12
	DefaultMaxMembers     = 4
	DefaultTeamNameMaxLen = 3
	maxPeriodLen          = 32
)

// Settings are the numeric limits enforced by the service.
type Settings struct {
	SlotCapacity   int
	MaxMembers     int
	TeamNameMaxLen int
}

// Service is the registration core. Every mutation runs in one transaction
// and is additionally serialized in-process per slot, team, leader and member.
// Row locks taken inside the transactions keep the invariants across processes.
type Service struct {
	repo     ScrimRepository
	locks    *keymutex.KeyMutex
	settings Settings
	window   *Window
	log      *zap.Logger
}

type Option func(*Service)

func WithSettings(s Settings) Option {
	return func(svc *Service) {
		if s.SlotCapacity > 0 {
			svc.settings.SlotCapacity = s.SlotCapacity
		}
		if s.MaxMembers > 0 {
			svc.settings.MaxMembers = s.MaxMembers
		}
		if s.TeamNameMaxLen > 0 {
			svc.settings.TeamNameMaxLen = s.TeamNameMaxLen
		}
	}
}

func WithWindow(w *Window) Option {
	return func(svc *Service) { svc.window = w }
}

func WithLogger(log *zap.Logger) Option {
	return func(svc *Service) { svc.log = log }
}

// NewService creates the registration core on top of repo.
func NewService(repo ScrimRepository, opts ...Option) *Service {
	svc := &Service{
		repo:  repo,
		locks: keymutex.New(),
		settings: Settings{
			SlotCapacity:   DefaultSlotCapacity,
			MaxMembers:     DefaultMaxMembers,
			TeamNameMaxLen: DefaultTeamNameMaxLen,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.window == nil {
		w, err := NewWindow("UTC", 7, DefaultPeriodLayout)
		if err != nil {
			panic(err)
		}
		svc.window = w
	}
	return svc
}

// Settings returns the limits in effect.
func (s *Service) Settings() Settings { return s.settings }

// Window returns the rolling signup window.
func (s *Service) Window() *Window { return s.window }

// --- Input normalization ---

// NormalizeTeamName trims and uppercases raw and checks its length.
func (s *Service) NormalizeTeamName(raw string) (string, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	n := utf8.RuneCountInString(name)
	if n == 0 || n > s.settings.TeamNameMaxLen {
		return "", fmt.Errorf("%w: team name must be 1 to %d characters", ErrInvalidInput, s.settings.TeamNameMaxLen)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: team name must not contain spaces", ErrInvalidInput)
	}
	return name, nil
}

func normalizePeriod(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" || len(p) > maxPeriodLen {
		return "", fmt.Errorf("%w: period must be 1 to %d bytes", ErrInvalidInput, maxPeriodLen)
	}
	if strings.IndexFunc(p, unicode.IsControl) >= 0 {
		return "", fmt.Errorf("%w: period contains control characters", ErrInvalidInput)
	}
	return p, nil
}

// normalizePeriods trims, validates and de-duplicates while keeping request order.
func normalizePeriods(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		p, err := normalizePeriod(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func requireIdentity(who common.Identity) error {
	if !who.Valid() {
		return fmt.Errorf("%w: identity id and name are required", ErrInvalidInput)
	}
	return nil
}

func (s *Service) lock(ctx context.Context, keys ...string) (func(), error) {
	return s.locks.LockAll(ctx, keys...)
}

func leaderKey(id string) string  { return "leader:" + id }
func memberKey(name string) string { return "member:" + name }
func teamKey(name string) string   { return "team:" + name }
func slotKey(period string) string { return "slot:" + period }

// identityKeys are the keys of both roles who could hold: leader by id, member by name.
func identityKeys(who common.Identity) []string {
	return []string{leaderKey(who.ID), memberKey(who.Name)}
}

// --- Team operations ---

// CreateTeam registers a new team led by leader.
func (s *Service) CreateTeam(ctx context.Context, leader common.Identity, rawName string) (*Team, error) {
	if err := requireIdentity(leader); err != nil {
		return nil, err
	}
	name, err := s.NormalizeTeamName(rawName)
	if err != nil {
		return nil, err
	}

	release, err := s.lock(ctx, leaderKey(leader.ID), memberKey(leader.Name), teamKey(name))
	if err != nil {
		return nil, err
	}
	defer release()

	team := &Team{Name: name, LeaderID: leader.ID}
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		if err := repo.LockIdentities(ctx, identityKeys(leader)...); err != nil {
			return err
		}
		owned, err := repo.GetTeamByLeader(ctx, leader.ID)
		if err != nil {
			return err
		}
		if owned != nil {
			return ErrAlreadyLeader
		}
		membership, err := repo.GetMembershipByName(ctx, leader.Name)
		if err != nil {
			return err
		}
		if membership != nil {
			return ErrAlreadyMember
		}
		existing, err := repo.GetTeamByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrNameTaken
		}
		return repo.CreateTeam(ctx, team)
	})
	if storage.IsDuplicate(err) {
		err = s.classifyTeamConflict(ctx, leader.ID)
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("team created", zap.String("team", team.Name), zap.String("leader_id", leader.ID))
	return team, nil
}

// classifyTeamConflict decides which unique index a concurrent createTeam lost on.
func (s *Service) classifyTeamConflict(ctx context.Context, leaderID string) error {
	owned, err := s.repo.GetTeamByLeader(ctx, leaderID)
	if err != nil {
		return err
	}
	if owned != nil {
		return ErrAlreadyLeader
	}
	return ErrNameTaken
}

// JoinTeam adds who as a member of the named team.
func (s *Service) JoinTeam(ctx context.Context, who common.Identity, teamName string) (*Team, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	name := strings.ToUpper(strings.TrimSpace(teamName))

	release, err := s.lock(ctx, leaderKey(who.ID), memberKey(who.Name), teamKey(name))
	if err != nil {
		return nil, err
	}
	defer release()

	var joined *Team
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		if err := repo.LockIdentities(ctx, identityKeys(who)...); err != nil {
			return err
		}
		owned, err := repo.GetTeamByLeader(ctx, who.ID)
		if err != nil {
			return err
		}
		if owned != nil {
			return ErrAlreadyLeader
		}
		membership, err := repo.GetMembershipByName(ctx, who.Name)
		if err != nil {
			return err
		}
		if membership != nil {
			return ErrAlreadyMember
		}
		team, err := repo.GetTeamByName(ctx, name)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrNoSuchTeam
		}
		found, err := repo.LockTeam(ctx, team.ID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNoSuchTeam
		}
		count, err := repo.CountMembers(ctx, team.ID)
		if err != nil {
			return err
		}
		if count >= int64(s.settings.MaxMembers) {
			return ErrTeamFull
		}
		joined = team
		return repo.AddMember(ctx, &Membership{
			TeamID:     team.ID,
			MemberID:   who.ID,
			MemberName: who.Name,
			JoinedAt:   time.Now().UTC(),
		})
	})
	if storage.IsDuplicate(err) {
		err = ErrAlreadyMember
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("member joined team", zap.String("team", joined.Name), zap.String("member", who.Name))
	return joined, nil
}

// QuitTeam removes who's membership and returns the team they left.
func (s *Service) QuitTeam(ctx context.Context, who common.Identity) (string, error) {
	if err := requireIdentity(who); err != nil {
		return "", err
	}

	release, err := s.lock(ctx, leaderKey(who.ID), memberKey(who.Name))
	if err != nil {
		return "", err
	}
	defer release()

	var teamName string
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		owned, err := repo.GetTeamByLeader(ctx, who.ID)
		if err != nil {
			return err
		}
		if owned != nil {
			return ErrIsLeader
		}
		membership, err := repo.GetMembershipByName(ctx, who.Name)
		if err != nil {
			return err
		}
		if membership == nil {
			return ErrNotAMember
		}
		team, err := repo.GetTeamByID(ctx, membership.TeamID)
		if err != nil {
			return err
		}
		if team != nil {
			teamName = team.Name
		}
		return repo.RemoveMember(ctx, membership.ID)
	})
	if err != nil {
		return "", err
	}

	s.log.Info("member quit team", zap.String("team", teamName), zap.String("member", who.Name))
	return teamName, nil
}

// DiscardTeam deletes the team led by leaderID together with its memberships
// and registrations, and returns the discarded name for adapter-side cleanup.
func (s *Service) DiscardTeam(ctx context.Context, leaderID string) (string, error) {
	release, err := s.lock(ctx, leaderKey(leaderID))
	if err != nil {
		return "", err
	}
	defer release()

	var teamName string
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		team, err := repo.GetTeamByLeader(ctx, leaderID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrNotALeader
		}
		if _, err := repo.LockTeam(ctx, team.ID); err != nil {
			return err
		}
		teamName = team.Name
		return repo.DeleteTeamCascade(ctx, team.ID)
	})
	if err != nil {
		return "", err
	}

	s.log.Info("team discarded", zap.String("team", teamName), zap.String("leader_id", leaderID))
	return teamName, nil
}

// --- Slot operations ---

// Signup registers the leader's team for each period in one transaction.
// A full or already held slot is reported in its outcome and does not fail
// the batch; any error rolls back every period of the call.
func (s *Service) Signup(ctx context.Context, leaderID string, periods []string) ([]SlotOutcome, error) {
	requested, err := normalizePeriods(periods)
	if err != nil {
		return nil, err
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("%w: at least one period is required", ErrInvalidInput)
	}

	keys := make([]string, 0, len(requested))
	for _, p := range requested {
		keys = append(keys, slotKey(p))
	}
	release, err := s.lock(ctx, keys...)
	if err != nil {
		return nil, err
	}
	defer release()

	// Slot rows are locked in sorted order, outcomes keep request order.
	lockOrder := slices.Clone(requested)
	slices.Sort(lockOrder)

	var (
		teamName string
		outcomes []SlotOutcome
	)
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		team, err := repo.GetTeamByLeader(ctx, leaderID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrNotALeader
		}
		found, err := repo.LockTeam(ctx, team.ID)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotALeader
		}
		for _, period := range lockOrder {
			if err := repo.LockSlot(ctx, period); err != nil {
				return err
			}
		}

		batch := make([]SlotOutcome, 0, len(requested))
		for _, period := range requested {
			status, err := s.signupSlot(ctx, repo, team.ID, period)
			if err != nil {
				return err
			}
			batch = append(batch, SlotOutcome{Period: period, Status: status})
		}
		teamName, outcomes = team.Name, batch
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		metrics.RecordSignupOutcome(string(o.Status))
		s.log.Info("signup processed",
			zap.String("team", teamName),
			zap.String("period", o.Period),
			zap.String("status", string(o.Status)))
	}
	return outcomes, nil
}

// signupSlot checks and inserts one period. The slot row must already be locked.
func (s *Service) signupSlot(ctx context.Context, repo ScrimRepository, teamID uint, period string) (SignupStatus, error) {
	already, err := repo.HasRegistration(ctx, teamID, period)
	if err != nil {
		return "", err
	}
	if already {
		return StatusAlreadySignedUp, nil
	}
	count, err := repo.CountRegistrations(ctx, period)
	if err != nil {
		return "", err
	}
	if count >= int64(s.settings.SlotCapacity) {
		return StatusSlotFull, nil
	}
	created, err := repo.CreateRegistration(ctx, &Registration{TeamID: teamID, Period: period})
	if err != nil {
		return "", err
	}
	if !created {
		return StatusAlreadySignedUp, nil
	}
	return StatusAccepted, nil
}

// CancelSignup removes the team's registrations for the given periods.
// Periods the team is not signed up for are ignored.
func (s *Service) CancelSignup(ctx context.Context, leaderID string, periods []string) ([]string, error) {
	requested, err := normalizePeriods(periods)
	if err != nil {
		return nil, err
	}

	var removed []string
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		team, err := repo.GetTeamByLeader(ctx, leaderID)
		if err != nil {
			return err
		}
		if team == nil {
			return ErrNotALeader
		}
		removed, err = repo.DeleteRegistrations(ctx, team.ID, requested)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("signups cancelled", zap.String("leader_id", leaderID), zap.Strings("periods", removed))
	return removed, nil
}

// ListTeamsForSlot returns team names signed up for period, in signup order.
func (s *Service) ListTeamsForSlot(ctx context.Context, period string) ([]string, error) {
	p, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	return s.repo.TeamNamesForSlot(ctx, p)
}

// ListAllTeams returns every team with its leader and members.
func (s *Service) ListAllTeams(ctx context.Context) ([]TeamSummary, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		members := make([]string, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, m.MemberName)
		}
		out = append(out, TeamSummary{TeamName: t.Name, LeaderID: t.LeaderID, Members: members})
	}
	return out, nil
}

// GetSchedule returns the periods of the team who leads or belongs to.
func (s *Service) GetSchedule(ctx context.Context, who common.Identity) (*Schedule, error) {
	team, err := s.teamOf(ctx, who)
	if err != nil {
		return nil, err
	}
	periods, err := s.repo.RegisteredPeriods(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	return &Schedule{TeamName: team.Name, Periods: periods}, nil
}

func (s *Service) teamOf(ctx context.Context, who common.Identity) (*Team, error) {
	if who.ID != "" {
		team, err := s.repo.GetTeamByLeader(ctx, who.ID)
		if err != nil {
			return nil, err
		}
		if team != nil {
			return team, nil
		}
	}
	if who.Name != "" {
		membership, err := s.repo.GetMembershipByName(ctx, who.Name)
		if err != nil {
			return nil, err
		}
		if membership != nil {
			team, err := s.repo.GetTeamByID(ctx, membership.TeamID)
			if err != nil {
				return nil, err
			}
			if team != nil {
				return team, nil
			}
		}
	}
	return nil, ErrNotInATeam
}

// ResetAll empties slots, teams, memberships and registrations in one transaction.
func (s *Service) ResetAll(ctx context.Context) error {
	err := s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		return repo.ResetAll(ctx)
	})
	if err != nil {
		return err
	}
	s.log.Warn("all scrim data reset")
	return nil
}

// AddScrimTime seeds a slot. It returns false, not an error, when the period already exists.
func (s *Service) AddScrimTime(ctx context.Context, period string) (bool, error) {
	p, err := normalizePeriod(period)
	if err != nil {
		return false, err
	}
	var created bool
	err = s.repo.WithTransaction(ctx, func(repo ScrimRepository) error {
		created, err = repo.CreateSlot(ctx, p)
		return err
	})
	if storage.IsDuplicate(err) {
		return false, nil
	}
	return created, err
}
