// Package roster implements the reconciliation engine: it diffs a scraped
// snapshot of the clan hiscores against the persisted roster and produces
// the minimal set of score changes, joins and departures for the cycle.
package roster

import "time"

// Observation is one (name, score) pair scraped from the hiscores page.
// Observations live for a single cycle and are never persisted directly.
type Observation struct {
	Name       string
	Score      int
	ObservedAt time.Time
}

// ChangeEvent describes a score movement for a member that already had
// recorded history. It is emitted only when a prior score record existed
// and the new observation differs from it.
type ChangeEvent struct {
	Name     string
	OldScore int
	NewScore int
	Delta    int
	Date     time.Time
}

// CycleResult is the outcome of one reconciliation.
//
// Changes is ordered by absolute delta descending, ties kept in snapshot
// order. Joined holds members newly created or reactivated this cycle;
// Departed holds members present in the store but absent from the
// snapshot. The two are always disjoint.
type CycleResult struct {
	Changes  []ChangeEvent
	Joined   []string
	Departed []string
}

// Empty reports whether the reconciliation produced no visible change.
func (r *CycleResult) Empty() bool {
	return len(r.Changes) == 0 && len(r.Joined) == 0 && len(r.Departed) == 0
}
