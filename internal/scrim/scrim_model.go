// scrim/model.go
package scrim

import (
	"time"

	"gorm.io/gorm"
)

// Slot is a registrable period such as "05/06".
type Slot struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Period    string    `json:"period" gorm:"size:32;not null;uniqueIndex:idx_slots_period"`
	CreatedAt time.Time `json:"created_at"`
}

// Team is a named group owned by exactly one leader.
type Team struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:16;not null;uniqueIndex:idx_teams_name"`
	LeaderID      string         `json:"leader_id" gorm:"size:64;not null;uniqueIndex:idx_teams_leader_id"`
	CreatedAt     time.Time      `json:"created_at"`
	Members       []Membership   `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Registrations []Registration `json:"registrations,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// Membership associates a non-leader identity with a team.
type Membership struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TeamID     uint      `json:"team_id" gorm:"not null;index"`
	MemberID   string    `json:"member_id" gorm:"size:64;index"`
	MemberName string    `json:"member_name" gorm:"size:100;not null;uniqueIndex:idx_memberships_member_name"`
	JoinedAt   time.Time `json:"joined_at"`
}

// Registration is one team's signup for one slot period.
type Registration struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;uniqueIndex:idx_registrations_team_period"`
	Period    string    `json:"period" gorm:"size:32;not null;uniqueIndex:idx_registrations_team_period;index:idx_registrations_period"`
	CreatedAt time.Time `json:"created_at"`
}

// IdentityLock is one row per leader or member key. Team and membership
// writes lock the rows of the identity they touch before checking it.
type IdentityLock struct {
	LockKey string `gorm:"primaryKey;size:192"`
}

// SignupStatus is the per-slot result of a signup request.
type SignupStatus string

const (
	StatusAccepted        SignupStatus = "Accepted"
	StatusSlotFull        SignupStatus = "SlotFull"
	StatusAlreadySignedUp SignupStatus = "AlreadySignedUp"
)

// SlotOutcome reports what happened to one requested period.
type SlotOutcome struct {
	Period string       `json:"period"`
	Status SignupStatus `json:"status"`
}

// TeamSummary is the read model returned by ListAllTeams.
type TeamSummary struct {
	TeamName string   `json:"team_name"`
	LeaderID string   `json:"leader_id"`
	Members  []string `json:"members"`
}

// Schedule lists the periods a team is signed up for.
type Schedule struct {
	TeamName string   `json:"team_name"`
	Periods  []string `json:"periods"`
}

// SeededSlot is a stored slot row and whether it falls inside the current window.
type SeededSlot struct {
	Period   string `json:"period"`
	InWindow bool   `json:"in_window"`
}

// SlotAvailability is a period with its current registration count.
type SlotAvailability struct {
	Period     string `json:"period"`
	Registered int64  `json:"registered"`
	Capacity   int    `json:"capacity"`
	Full       bool   `json:"full"`
}

// Migrate creates or updates the scrim tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Slot{}, &Team{}, &Membership{}, &Registration{}, &IdentityLock{})
}
