// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Level is a user's progression tier, derived from points.
type Level string

// Progression tiers in ascending order.
const (
	LevelNovice Level = "Novice"
	LevelExpert Level = "Expert"
	LevelGuru   Level = "Guru"
)

// Point thresholds for progression tiers.
const (
	ExpertThreshold = 100
	GuruThreshold   = 200
)

// LevelFor returns the tier for the given point total. Highest threshold wins.
func LevelFor(points int) Level {
	switch {
	case points >= GuruThreshold:
		return LevelGuru
	case points >= ExpertThreshold:
		return LevelExpert
	default:
		return LevelNovice
	}
}

// Roles carried in the session token for privileged-operation gating.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// SubmissionStatus is the review state of a quest submission.
type SubmissionStatus string

const (
	StatusCompleted SubmissionStatus = "completed"
	StatusPending   SubmissionStatus = "pending"
	StatusRejected  SubmissionStatus = "rejected"
)

// Valid reports whether s is one of the known submission statuses.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusRejected:
		return true
	}
	return false
}

// User represents an account. PwdHash is nil for passwordless (Telegram)
// accounts. Level is always LevelFor(Points) and is never set independently.
type User struct {
	ID        uuid.UUID // PK
	Contact   string    // unique; email or @handle
	PwdHash   []byte    // bcrypt digest, nil if passwordless
	Consent   bool      // personal-data processing consent
	Points    int       // non-negative
	Level     Level
	Interests string // free-form, empty if unset
	Role      string // RoleUser or RoleAdmin
	CreatedAt time.Time
}

// Quest is an engagement task created by an admin; immutable thereafter.
type Quest struct {
	ID           uuid.UUID
	Title        string
	Description  string
	RewardPoints int // positive
	QuestType    string
	CreatedAt    time.Time
}

// Submission links one user to one quest; at most one exists per (user, quest).
type Submission struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	QuestID     uuid.UUID
	Status      SubmissionStatus
	Metadata    string // optional payload (photo URL, answers); empty if unset
	SubmittedAt time.Time
}

// Tokens collects the issued access token and its expiry (for diagnostics).
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Profile is the outward view of a user: progression plus completed-quest
// count. CompletedQuests counts only submissions with status "completed".
type Profile struct {
	ID              uuid.UUID
	Contact         string
	Points          int
	Level           Level
	Interests       string
	CompletedQuests int
}
