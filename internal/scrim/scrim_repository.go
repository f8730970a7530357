package scrim

import (
	"context"
	"errors"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RyanLee0396/SVDiscordBot/internal/storage"
)

// ScrimRepository defines the data operations the registration core needs.
// Lookups return nil, nil when the row does not exist.
type ScrimRepository interface {
	// Team operations
	GetTeamByID(ctx context.Context, id uint) (*Team, error)
	GetTeamByName(ctx context.Context, name string) (*Team, error)
	GetTeamByLeader(ctx context.Context, leaderID string) (*Team, error)
	LockTeam(ctx context.Context, id uint) (bool, error)
	CreateTeam(ctx context.Context, team *Team) error
	DeleteTeamCascade(ctx context.Context, id uint) error
	ListTeams(ctx context.Context) ([]Team, error)
	TeamNames(ctx context.Context) ([]string, error)

	// Identity operations
	LockIdentities(ctx context.Context, keys ...string) error

	// Membership operations
	GetMembershipByName(ctx context.Context, memberName string) (*Membership, error)
	CountMembers(ctx context.Context, teamID uint) (int64, error)
	AddMember(ctx context.Context, member *Membership) error
	RemoveMember(ctx context.Context, id uint) error

	// Slot and registration operations
	CreateSlot(ctx context.Context, period string) (bool, error)
	LockSlot(ctx context.Context, period string) error
	ListSlots(ctx context.Context) ([]Slot, error)
	CountRegistrations(ctx context.Context, period string) (int64, error)
	CountRegistrationsByPeriod(ctx context.Context, periods []string) (map[string]int64, error)
	HasRegistration(ctx context.Context, teamID uint, period string) (bool, error)
	CreateRegistration(ctx context.Context, reg *Registration) (bool, error)
	DeleteRegistrations(ctx context.Context, teamID uint, periods []string) ([]string, error)
	RegisteredPeriods(ctx context.Context, teamID uint) ([]string, error)
	TeamNamesForSlot(ctx context.Context, period string) ([]string, error)

	ResetAll(ctx context.Context) error
	WithTransaction(ctx context.Context, txFunc func(ScrimRepository) error) error
}

type scrimRepository struct {
	db         *gorm.DB
	transactor *storage.Transactor
}

// NewScrimRepository creates a repository whose transactions go through transactor.
func NewScrimRepository(transactor *storage.Transactor) ScrimRepository {
	return &scrimRepository{db: transactor.DB(context.Background()), transactor: transactor}
}

func (r *scrimRepository) WithTransaction(ctx context.Context, txFunc func(ScrimRepository) error) error {
	return r.transactor.Do(ctx, func(tx *gorm.DB) error {
		txRepo := &scrimRepository{db: tx, transactor: r.transactor}
		return txFunc(txRepo)
	})
}

// rowLocks reports whether the dialect supports SELECT ... FOR UPDATE.
// SQLite serializes writers on its own.
func (r *scrimRepository) rowLocks() bool {
	return r.transactor.Dialect() == "postgres"
}

func first[T any](q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

// --- Team Operations ---

func (r *scrimRepository) GetTeamByID(ctx context.Context, id uint) (*Team, error) {
	return first[Team](r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *scrimRepository) GetTeamByName(ctx context.Context, name string) (*Team, error) {
	return first[Team](r.db.WithContext(ctx).Where("name = ?", name))
}

func (r *scrimRepository) GetTeamByLeader(ctx context.Context, leaderID string) (*Team, error) {
	return first[Team](r.db.WithContext(ctx).Where("leader_id = ?", leaderID))
}

func (r *scrimRepository) LockTeam(ctx context.Context, id uint) (bool, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if r.rowLocks() {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	team, err := first[Team](q)
	return team != nil, err
}

func (r *scrimRepository) CreateTeam(ctx context.Context, team *Team) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(team).Error
}

func (r *scrimRepository) DeleteTeamCascade(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("team_id = ?", id).Delete(&Registration{}).Error; err != nil {
		return err
	}
	if err := db.Where("team_id = ?", id).Delete(&Membership{}).Error; err != nil {
		return err
	}
	return db.Delete(&Team{}, id).Error
}

func (r *scrimRepository) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("memberships.id asc")
		}).
		Order("teams.id asc").
		Find(&teams).Error
	return teams, err
}

func (r *scrimRepository) TeamNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).Model(&Team{}).Order("id asc").Pluck("name", &names).Error
	return names, err
}

// --- Identity Operations ---

// LockIdentities makes sure a lock row exists for every key and, where
// supported, holds a row lock on each until the transaction ends. Keys are
// taken in sorted order so overlapping transactions cannot deadlock.
func (r *scrimRepository) LockIdentities(ctx context.Context, keys ...string) error {
	keys = slices.Clone(keys)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	db := r.db.WithContext(ctx)
	for _, key := range keys {
		err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "lock_key"}}, DoNothing: true}).
			Create(&IdentityLock{LockKey: key}).Error
		if err != nil {
			return err
		}
		if !r.rowLocks() {
			continue
		}
		var row IdentityLock
		err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("lock_key = ?", key).
			First(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// --- Membership Operations ---

func (r *scrimRepository) GetMembershipByName(ctx context.Context, memberName string) (*Membership, error) {
	return first[Membership](r.db.WithContext(ctx).Where("member_name = ?", memberName))
}

func (r *scrimRepository) CountMembers(ctx context.Context, teamID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Membership{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

func (r *scrimRepository) AddMember(ctx context.Context, member *Membership) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *scrimRepository) RemoveMember(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Membership{}, id).Error
}

// --- Slot and Registration Operations ---

// CreateSlot inserts the period unless it already exists and reports whether a row was added.
func (r *scrimRepository) CreateSlot(ctx context.Context, period string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "period"}}, DoNothing: true}).
		Create(&Slot{Period: period})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// LockSlot makes sure the slot row exists and, where supported, holds a row
// lock on it until the surrounding transaction ends.
func (r *scrimRepository) LockSlot(ctx context.Context, period string) error {
	if _, err := r.CreateSlot(ctx, period); err != nil {
		return err
	}
	if !r.rowLocks() {
		return nil
	}
	var slot Slot
	return r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("period = ?", period).
		First(&slot).Error
}

func (r *scrimRepository) ListSlots(ctx context.Context) ([]Slot, error) {
	var slots []Slot
	err := r.db.WithContext(ctx).Order("id asc").Find(&slots).Error
	return slots, err
}

func (r *scrimRepository) CountRegistrations(ctx context.Context, period string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registration{}).Where("period = ?", period).Count(&count).Error
	return count, err
}

func (r *scrimRepository) CountRegistrationsByPeriod(ctx context.Context, periods []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(periods))
	if len(periods) == 0 {
		return counts, nil
	}
	var rows []struct {
		Period string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Select("period, count(*) AS count").
		Where("period IN ?", periods).
		Group("period").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.Period] = row.Count
	}
	return counts, nil
}

func (r *scrimRepository) HasRegistration(ctx context.Context, teamID uint, period string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("team_id = ? AND period = ?", teamID, period).
		Count(&count).Error
	return count > 0, err
}

func (r *scrimRepository) CreateRegistration(ctx context.Context, reg *Registration) (bool, error) {
	return r.db.WithContext(ctx).Create(reg).Error
}

// DeleteRegistrations removes the team's rows for the given periods and returns the periods that existed.
func (r *scrimRepository) DeleteRegistrations(ctx context.Context, teamID uint, periods []string) ([]string, error) {
	removed := []string{}
	if len(periods) == 0 {
		return removed, nil
	}
	db := r.db.WithContext(ctx)
	err := db.Model(&Registration{}).
		Where("team_id = ? AND period IN ?", teamID, periods).
		Order("id asc").
		Pluck("period", &removed).Error
	if err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := db.Where("team_id = ? AND period IN ?", teamID, removed).Delete(&Registration{}).Error; err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *scrimRepository) RegisteredPeriods(ctx context.Context, teamID uint) ([]string, error) {
	periods := []string{}
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Where("team_id = ?", teamID).
		Order("id asc").
		Pluck("period", &periods).Error
	return periods, err
}

func (r *scrimRepository) TeamNamesForSlot(ctx context.Context, period string) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).Model(&Registration{}).
		Joins("JOIN teams ON teams.id = registrations.team_id").
		Where("registrations.period = ?", period).
		Order("registrations.id asc").
		Pluck("teams.name", &names).Error
	return names, err
}

// ResetAll empties every scrim table. Children go first so foreign keys hold throughout.
func (r *scrimRepository) ResetAll(ctx context.Context) error {
	db := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&Registration{}, &Membership{}, &Team{}, &Slot{}, &IdentityLock{}} {
		if err := db.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
