package scrim

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/RyanLee0396/SVDiscordBot/internal/common"
	"github.com/RyanLee0396/SVDiscordBot/internal/storage"
	"github.com/RyanLee0396/SVDiscordBot/internal/storage/storagetest"
)

func newTestRepo(t *testing.T) ScrimRepository {
	t.Helper()
	db := storagetest.OpenSQLite(t)
	require.NoError(t, Migrate(db))
	tr := storage.NewTransactor(db, storage.Policy{
		MaxAttempts:     5,
		InitialInterval: time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
	}, nil)
	return NewScrimRepository(tr)
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	return NewService(newTestRepo(t), opts...)
}

func user(n int) common.Identity {
	return common.Identity{ID: fmt.Sprintf("%d", 1000+n), Name: fmt.Sprintf("player%d", n)}
}

func mustCreateTeam(t *testing.T, svc *Service, leader common.Identity, name string) *Team {
	t.Helper()
	team, err := svc.CreateTeam(context.Background(), leader, name)
	require.NoError(t, err)
	return team
}

func registeredCount(t *testing.T, svc *Service, period string) int {
	t.Helper()
	teams, err := svc.ListTeamsForSlot(context.Background(), period)
	require.NoError(t, err)
	return len(teams)
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	team, err := svc.CreateTeam(ctx, user(1), " abc ")
	require.NoError(t, err)
	assert.NotZero(t, team.ID)
	assert.Equal(t, "ABC", team.Name)

	_, err = svc.CreateTeam(ctx, user(1), "XYZ")
	assert.ErrorIs(t, err, ErrAlreadyLeader)

	_, err = svc.CreateTeam(ctx, user(2), "Abc")
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = svc.CreateTeam(ctx, user(3), "ABCD")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreateTeam(ctx, user(3), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreateTeam(ctx, user(3), "A B")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreateTeam(ctx, common.Identity{}, "QQ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateTeamRejectsMembers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(1), "AAA")
	_, err := svc.JoinTeam(ctx, user(2), "aaa")
	require.NoError(t, err)

	_, err = svc.CreateTeam(ctx, user(2), "BBB")
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestCreateTeamConcurrentSameName(t *testing.T) {
	svc := newTestService(t)

	const n = 10
	var ok, taken atomic.Int32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		who := user(i)
		g.Go(func() error {
			_, err := svc.CreateTeam(context.Background(), who, "DUP")
			switch {
			case err == nil:
				ok.Add(1)
			case CodeOf(err) == CodeNameTaken:
				taken.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, n-1, taken.Load())

	teams, err := svc.ListAllTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestJoinTeam(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "RED")
	mustCreateTeam(t, svc, user(9), "BLU")

	for i := 1; i <= DefaultMaxMembers; i++ {
		team, err := svc.JoinTeam(ctx, user(i), "red")
		require.NoError(t, err)
		assert.Equal(t, "RED", team.Name)
	}

	_, err := svc.JoinTeam(ctx, user(5), "RED")
	assert.ErrorIs(t, err, ErrTeamFull)

	_, err = svc.JoinTeam(ctx, user(1), "BLU")
	assert.ErrorIs(t, err, ErrAlreadyMember)

	_, err = svc.JoinTeam(ctx, user(0), "BLU")
	assert.ErrorIs(t, err, ErrAlreadyLeader)

	_, err = svc.JoinTeam(ctx, user(6), "GRN")
	assert.ErrorIs(t, err, ErrNoSuchTeam)

	_, err = svc.JoinTeam(ctx, user(6), "")
	assert.ErrorIs(t, err, ErrNoSuchTeam)
}

func TestJoinTeamConcurrentNeverOverfills(t *testing.T) {
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "CAP")

	var joined, full atomic.Int32
	var g errgroup.Group
	for i := 1; i <= 10; i++ {
		who := user(i)
		g.Go(func() error {
			_, err := svc.JoinTeam(context.Background(), who, "CAP")
			switch {
			case err == nil:
				joined.Add(1)
			case CodeOf(err) == CodeTeamFull:
				full.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, DefaultMaxMembers, joined.Load())
	assert.EqualValues(t, 10-DefaultMaxMembers, full.Load())
}

func TestJoinThenQuitRestoresMembership(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "ONE")
	_, err := svc.JoinTeam(ctx, user(1), "ONE")
	require.NoError(t, err)

	before, err := svc.ListAllTeams(ctx)
	require.NoError(t, err)

	_, err = svc.JoinTeam(ctx, user(2), "ONE")
	require.NoError(t, err)
	name, err := svc.QuitTeam(ctx, user(2))
	require.NoError(t, err)
	assert.Equal(t, "ONE", name)

	after, err := svc.ListAllTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestQuitTeamErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "TWO")

	_, err := svc.QuitTeam(ctx, user(0))
	assert.ErrorIs(t, err, ErrIsLeader)

	_, err = svc.QuitTeam(ctx, user(1))
	assert.ErrorIs(t, err, ErrNotAMember)
}

func TestDiscardTeamCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "BYE")
	mustCreateTeam(t, svc, user(9), "STA")
	_, err := svc.JoinTeam(ctx, user(1), "BYE")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, user(0).ID, []string{"05/06", "06/06"})
	require.NoError(t, err)

	name, err := svc.DiscardTeam(ctx, user(0).ID)
	require.NoError(t, err)
	assert.Equal(t, "BYE", name)

	teams, err := svc.ListAllTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "STA", teams[0].TeamName)

	_, err = svc.GetSchedule(ctx, user(0))
	assert.ErrorIs(t, err, ErrNotInATeam)
	_, err = svc.GetSchedule(ctx, user(1))
	assert.ErrorIs(t, err, ErrNotInATeam)
	assert.Zero(t, registeredCount(t, svc, "05/06"))

	// the former member is free to join elsewhere
	_, err = svc.JoinTeam(ctx, user(1), "STA")
	assert.NoError(t, err)

	_, err = svc.DiscardTeam(ctx, user(0).ID)
	assert.ErrorIs(t, err, ErrNotALeader)
}

func TestSignupOutcomes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "SIG")

	out, err := svc.Signup(ctx, user(0).ID, []string{"05/06", " 06/06", "05/06"})
	require.NoError(t, err)
	assert.Equal(t, []SlotOutcome{
		{Period: "05/06", Status: StatusAccepted},
		{Period: "06/06", Status: StatusAccepted},
	}, out)

	out, err = svc.Signup(ctx, user(0).ID, []string{"05/06"})
	require.NoError(t, err)
	assert.Equal(t, []SlotOutcome{{Period: "05/06", Status: StatusAlreadySignedUp}}, out)

	sched, err := svc.GetSchedule(ctx, user(0))
	require.NoError(t, err)
	assert.Equal(t, "SIG", sched.TeamName)
	assert.Equal(t, []string{"05/06", "06/06"}, sched.Periods)

	_, err = svc.Signup(ctx, user(1).ID, []string{"05/06"})
	assert.ErrorIs(t, err, ErrNotALeader)
	_, err = svc.Signup(ctx, user(0).ID, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignupThirteenthTeamIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for i := 0; i < DefaultSlotCapacity; i++ {
		mustCreateTeam(t, svc, user(i), fmt.Sprintf("T%d", i))
		out, err := svc.Signup(ctx, user(i).ID, []string{"05/06"})
		require.NoError(t, err)
		require.Equal(t, StatusAccepted, out[0].Status)
	}
	mustCreateTeam(t, svc, user(99), "LAT")

	out, err := svc.Signup(ctx, user(99).ID, []string{"05/06", "06/06"})
	require.NoError(t, err)
	assert.Equal(t, []SlotOutcome{
		{Period: "05/06", Status: StatusSlotFull},
		{Period: "06/06", Status: StatusAccepted},
	}, out)
	assert.Equal(t, DefaultSlotCapacity, registeredCount(t, svc, "05/06"))
}

func TestSignupConcurrentNeverExceedsCapacity(t *testing.T) {
	svc := newTestService(t)
	const leaders = 30
	for i := 0; i < leaders; i++ {
		mustCreateTeam(t, svc, user(i), fmt.Sprintf("C%d", i))
	}

	var accepted, full atomic.Int32
	var g errgroup.Group
	for i := 0; i < leaders; i++ {
		id := user(i).ID
		g.Go(func() error {
			out, err := svc.Signup(context.Background(), id, []string{"05/06"})
			if err != nil {
				return err
			}
			switch out[0].Status {
			case StatusAccepted:
				accepted.Add(1)
			case StatusSlotFull:
				full.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, DefaultSlotCapacity, accepted.Load())
	assert.EqualValues(t, leaders-DefaultSlotCapacity, full.Load())
	assert.Equal(t, DefaultSlotCapacity, registeredCount(t, svc, "05/06"))
}

func TestSignupCancelRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "RT")
	mustCreateTeam(t, svc, user(1), "XX")
	_, err := svc.Signup(ctx, user(1).ID, []string{"05/06"})
	require.NoError(t, err)

	before := registeredCount(t, svc, "05/06")
	_, err = svc.Signup(ctx, user(0).ID, []string{"05/06"})
	require.NoError(t, err)
	assert.Equal(t, before+1, registeredCount(t, svc, "05/06"))

	removed, err := svc.CancelSignup(ctx, user(0).ID, []string{"05/06", "07/06"})
	require.NoError(t, err)
	assert.Equal(t, []string{"05/06"}, removed)
	assert.Equal(t, before, registeredCount(t, svc, "05/06"))

	removed, err = svc.CancelSignup(ctx, user(0).ID, []string{"05/06"})
	require.NoError(t, err)
	assert.Empty(t, removed)

	_, err = svc.CancelSignup(ctx, user(5).ID, []string{"05/06"})
	assert.ErrorIs(t, err, ErrNotALeader)
}

func TestListTeamsForSlotKeepsSignupOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for i, name := range []string{"ZZZ", "AAA", "MMM"} {
		mustCreateTeam(t, svc, user(i), name)
	}
	for _, i := range []int{2, 0, 1} {
		_, err := svc.Signup(ctx, user(i).ID, []string{"01/07"})
		require.NoError(t, err)
	}
	teams, err := svc.ListTeamsForSlot(ctx, "01/07")
	require.NoError(t, err)
	assert.Equal(t, []string{"MMM", "ZZZ", "AAA"}, teams)

	teams, err = svc.ListTeamsForSlot(ctx, "02/07")
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestGetScheduleForMember(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "MEM")
	_, err := svc.JoinTeam(ctx, user(1), "MEM")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, user(0).ID, []string{"10/06"})
	require.NoError(t, err)

	sched, err := svc.GetSchedule(ctx, user(1))
	require.NoError(t, err)
	assert.Equal(t, &Schedule{TeamName: "MEM", Periods: []string{"10/06"}}, sched)
}

func TestResetAll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.ResetAll(ctx))

	mustCreateTeam(t, svc, user(0), "RST")
	_, err := svc.JoinTeam(ctx, user(1), "RST")
	require.NoError(t, err)
	_, err = svc.Signup(ctx, user(0).ID, []string{"05/06"})
	require.NoError(t, err)
	_, err = svc.AddScrimTime(ctx, "12/06")
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(ctx))

	teams, err := svc.ListAllTeams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
	slots, err := svc.SeededSlots(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Zero(t, registeredCount(t, svc, "05/06"))
}

func TestAddScrimTime(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, WithWindow(fixedWindow(t, time.Date(2025, 6, 5, 3, 0, 0, 0, time.UTC))))

	created, err := svc.AddScrimTime(ctx, "20/06")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.AddScrimTime(ctx, "20/06")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.AddScrimTime(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err = svc.AddScrimTime(ctx, "07/06")
	require.NoError(t, err)
	assert.True(t, created)

	slots, err := svc.SeededSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []SeededSlot{
		{Period: "20/06", InWindow: false},
		{Period: "07/06", InWindow: true},
	}, slots)
}

func TestWindowViews(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, WithWindow(fixedWindow(t, time.Date(2025, 6, 5, 3, 0, 0, 0, time.UTC))),
		WithSettings(Settings{SlotCapacity: 2}))
	mustCreateTeam(t, svc, user(0), "AAA")
	mustCreateTeam(t, svc, user(1), "BBB")
	mustCreateTeam(t, svc, user(2), "CCC")

	_, err := svc.Signup(ctx, user(0).ID, []string{"05/06", "06/06"})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, user(1).ID, []string{"05/06"})
	require.NoError(t, err)

	slots, err := svc.Slots(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 7)
	assert.Equal(t, SlotAvailability{Period: "05/06", Registered: 2, Capacity: 2, Full: true}, slots[0])
	assert.Equal(t, SlotAvailability{Period: "06/06", Registered: 1, Capacity: 2}, slots[1])

	avail, err := svc.AvailableSignupPeriods(ctx, user(2).ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"06/06", "07/06", "08/06", "09/06", "10/06", "11/06"}, avail)

	avail, err = svc.AvailableSignupPeriods(ctx, user(0).ID)
	require.NoError(t, err)
	assert.NotContains(t, avail, "05/06")
	assert.NotContains(t, avail, "06/06")

	mine, err := svc.RegisteredPeriodsFor(ctx, user(0).ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"05/06", "06/06"}, mine)

	view, err := svc.Participants(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "05/06", view.Period)
	assert.Equal(t, []string{"AAA", "BBB"}, view.Teams)
	assert.Nil(t, view.Prev)
	require.NotNil(t, view.Next)
	assert.Equal(t, 1, *view.Next)

	view, err = svc.Participants(ctx, 6)
	require.NoError(t, err)
	assert.Nil(t, view.Next)
	require.NotNil(t, view.Prev)
	assert.Equal(t, 5, *view.Prev)

	_, err = svc.Participants(ctx, 7)
	assert.ErrorIs(t, err, ErrInvalidInput)

	names, err := svc.TeamNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, names)
}

func TestEnsureChecks(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	mustCreateTeam(t, svc, user(0), "ENS")
	_, err := svc.JoinTeam(ctx, user(1), "ENS")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.EnsureCanCreateTeam(ctx, user(0)), ErrAlreadyLeader)
	assert.ErrorIs(t, svc.EnsureCanJoin(ctx, user(1)), ErrAlreadyMember)
	assert.NoError(t, svc.EnsureCanCreateTeam(ctx, user(2)))
}

func TestErrorTaxonomy(t *testing.T) {
	assert.Equal(t, CodeTeamFull, CodeOf(fmt.Errorf("join: %w", ErrTeamFull)))
	assert.Equal(t, CodeStorageUnavailable, CodeOf(fmt.Errorf("%w: busy", storage.ErrUnavailable)))
	assert.Equal(t, 503, StatusOf(storage.ErrUnavailable))
	assert.Equal(t, CodeInternal, CodeOf(assert.AnError))
	assert.Equal(t, 500, StatusOf(assert.AnError))
}
