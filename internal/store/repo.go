package store

import (
	"context"
	"time"
)

// ScorePoint is a member's most recent recorded score.
type ScorePoint struct {
	Score      int
	RecordedAt time.Time
}

// Member is the store's view of a roster member, carrying the latest
// score record when one exists.
type Member struct {
	ID              int
	Name            string
	FirstObservedAt time.Time
	LastObservedAt  time.Time
	Active          bool
	LastScore       *ScorePoint // nil when no score has been recorded yet
}

// NewMember describes a member to create during plan application,
// together with its first score record.
type NewMember struct {
	Name  string
	Score int
}

// ScoreAppend describes a score record to append for an existing member.
type ScoreAppend struct {
	MemberID int
	Score    int
}

// ReconcilePlan is the complete set of mutations one reconciliation
// produces. Apply executes it in a single transaction so a persistence
// failure leaves no partial state visible.
type ReconcilePlan struct {
	Now time.Time

	Create       []NewMember
	Touch        []int // member IDs whose last_observed_at advances
	Reactivate   []int // member IDs returning from inactive
	AppendScores []ScoreAppend
	Depart       []int // member IDs absent from the snapshot
}

// IsZero reports whether the plan mutates nothing.
func (p *ReconcilePlan) IsZero() bool {
	return len(p.Create) == 0 && len(p.Touch) == 0 && len(p.Reactivate) == 0 &&
		len(p.AppendScores) == 0 && len(p.Depart) == 0
}

// ArchivePolicy selects what happens to a departed member.
type ArchivePolicy int

const (
	// ArchiveDelete removes the member row, cascading its score history.
	ArchiveDelete ArchivePolicy = iota
	// ArchiveDeactivate flags the member inactive and keeps its history,
	// so a later rejoin is classified as returning.
	ArchiveDeactivate
)

// RosterRepo owns persisted members and their score history.
type RosterRepo interface {
	// Snapshot returns every stored member ordered by name, each with
	// its most recent score record if any.
	Snapshot(ctx context.Context) ([]Member, error)

	// HasHistory reports whether any member row exists.
	HasHistory(ctx context.Context) (bool, error)

	// Apply executes a reconciliation plan in one transaction.
	Apply(ctx context.Context, plan *ReconcilePlan) error

	// History returns up to limit score records for the named member,
	// newest first. A member with no history yields an empty slice.
	History(ctx context.Context, name string, limit int) ([]ScorePoint, error)
}
