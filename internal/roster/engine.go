package roster

import (
	"context"
	"sort"
	"time"

	"github.com/clanwatch/clanwatch/internal/store"
)

// Engine reconciles a scraped snapshot against the stored roster.
//
// Reconcile is a pure diff followed by a single transactional write: it
// never talks to the notifier, and the departure policy lives entirely
// inside the repo's Apply.
type Engine struct {
	repo store.RosterRepo
	now  func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an Engine over the given roster repo.
func NewEngine(repo store.RosterRepo, opts ...Option) *Engine {
	e := &Engine{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile diffs observations against stored state, persists the
// resulting mutations in one transaction, and reports what changed.
//
// An empty snapshot is a no-op: it means "no data this cycle", never
// "everyone departed". A score change event is emitted iff a prior score
// record existed and differs; brand-new members join without an event.
// Rerunning with an identical snapshot yields an empty result.
func (e *Engine) Reconcile(ctx context.Context, observations []Observation) (*CycleResult, error) {
	result := &CycleResult{}
	if len(observations) == 0 {
		return result, nil
	}

	stored, err := e.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*store.Member, len(stored))
	for i := range stored {
		byName[stored[i].Name] = &stored[i]
	}

	now := e.now()
	plan := &store.ReconcilePlan{Now: now}
	seen := make(map[string]bool, len(observations))

	for _, obs := range observations {
		// The page occasionally repeats a row; first occurrence wins.
		if seen[obs.Name] {
			continue
		}
		seen[obs.Name] = true

		m, ok := byName[obs.Name]
		if !ok {
			plan.Create = append(plan.Create, store.NewMember{Name: obs.Name, Score: obs.Score})
			result.Joined = append(result.Joined, obs.Name)
			continue
		}

		if !m.Active {
			plan.Reactivate = append(plan.Reactivate, m.ID)
			result.Joined = append(result.Joined, obs.Name)
		}
		plan.Touch = append(plan.Touch, m.ID)

		switch {
		case m.LastScore == nil:
			plan.AppendScores = append(plan.AppendScores, store.ScoreAppend{MemberID: m.ID, Score: obs.Score})
		case m.LastScore.Score != obs.Score:
			plan.AppendScores = append(plan.AppendScores, store.ScoreAppend{MemberID: m.ID, Score: obs.Score})
			result.Changes = append(result.Changes, ChangeEvent{
				Name:     obs.Name,
				OldScore: m.LastScore.Score,
				NewScore: obs.Score,
				Delta:    obs.Score - m.LastScore.Score,
				Date:     now,
			})
		}
	}

	// Stored members missing from the snapshot depart. Only active ones:
	// under the deactivation policy a member already archived must not be
	// reported departed again every cycle. Iterate the name-ordered
	// slice, not the map, so the result order is stable.
	for i := range stored {
		if !seen[stored[i].Name] && stored[i].Active {
			plan.Depart = append(plan.Depart, stored[i].ID)
			result.Departed = append(result.Departed, stored[i].Name)
		}
	}

	sort.SliceStable(result.Changes, func(i, j int) bool {
		return abs(result.Changes[i].Delta) > abs(result.Changes[j].Delta)
	})

	if err := e.repo.Apply(ctx, plan); err != nil {
		return nil, err
	}
	return result, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
