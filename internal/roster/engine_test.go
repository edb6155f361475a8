package roster

import (
	"context"
	"testing"
	"time"

	"github.com/clanwatch/clanwatch/internal/store"
)

// fakeRepo implements store.RosterRepo in memory, applying plans the
// same way the real repo does so reconciliation can be rerun.
type fakeRepo struct {
	members    []store.Member
	nextID     int
	applied    []*store.ReconcilePlan
	failApply  error
	deactivate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (f *fakeRepo) seed(name string, score int, active bool) {
	m := store.Member{
		ID:     f.nextID,
		Name:   name,
		Active: active,
		LastScore: &store.ScorePoint{
			Score: score,
		},
	}
	f.nextID++
	f.members = append(f.members, m)
}

func (f *fakeRepo) Snapshot(ctx context.Context) ([]store.Member, error) {
	out := make([]store.Member, len(f.members))
	copy(out, f.members)
	return out, nil
}

func (f *fakeRepo) HasHistory(ctx context.Context) (bool, error) {
	return len(f.members) > 0, nil
}

func (f *fakeRepo) History(ctx context.Context, name string, limit int) ([]store.ScorePoint, error) {
	return nil, nil
}

func (f *fakeRepo) Apply(ctx context.Context, plan *store.ReconcilePlan) error {
	if f.failApply != nil {
		return f.failApply
	}
	f.applied = append(f.applied, plan)

	byID := make(map[int]*store.Member)
	for i := range f.members {
		byID[f.members[i].ID] = &f.members[i]
	}
	for _, n := range plan.Create {
		f.members = append(f.members, store.Member{
			ID:        f.nextID,
			Name:      n.Name,
			Active:    true,
			LastScore: &store.ScorePoint{Score: n.Score, RecordedAt: plan.Now},
		})
		f.nextID++
	}
	for _, id := range plan.Reactivate {
		if m := byID[id]; m != nil {
			m.Active = true
		}
	}
	for _, a := range plan.AppendScores {
		if m := byID[a.MemberID]; m != nil {
			m.LastScore = &store.ScorePoint{Score: a.Score, RecordedAt: plan.Now}
		}
	}
	if len(plan.Depart) > 0 {
		departed := make(map[int]bool, len(plan.Depart))
		for _, id := range plan.Depart {
			departed[id] = true
		}
		if f.deactivate {
			for i := range f.members {
				if departed[f.members[i].ID] {
					f.members[i].Active = false
				}
			}
		} else {
			var kept []store.Member
			for _, m := range f.members {
				if !departed[m.ID] {
					kept = append(kept, m)
				}
			}
			f.members = kept
		}
	}
	return nil
}

func obs(pairs ...any) []Observation {
	var out []Observation
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Observation{Name: pairs[i].(string), Score: pairs[i+1].(int)})
	}
	return out
}

func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func TestReconcileEmptySnapshotIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	repo.seed("Alice", 100, true)
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), nil)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !result.Empty() {
		t.Errorf("expected empty result, got %+v", result)
	}
	if len(repo.applied) != 0 {
		t.Error("empty snapshot must not touch the store")
	}
	if len(repo.members) != 1 {
		t.Error("empty snapshot must never be treated as everyone departing")
	}
}

func TestReconcileFirstRun(t *testing.T) {
	repo := newFakeRepo()
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 100, "Bob", 200))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if got := result.Joined; len(got) != 2 || got[0] != "Alice" || got[1] != "Bob" {
		t.Errorf("joined = %v, want [Alice Bob]", got)
	}
	if len(result.Changes) != 0 {
		t.Errorf("brand-new members must not emit change events, got %v", result.Changes)
	}
	if len(result.Departed) != 0 {
		t.Errorf("departed = %v, want none", result.Departed)
	}
	if len(repo.members) != 2 {
		t.Fatalf("stored %d members, want 2", len(repo.members))
	}
}

func TestReconcileScoreChange(t *testing.T) {
	repo := newFakeRepo()
	repo.seed("Alice", 1000, true)
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 1200))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Changes) != 1 {
		t.Fatalf("changes = %v, want exactly one", result.Changes)
	}
	c := result.Changes[0]
	if c.OldScore != 1000 || c.NewScore != 1200 || c.Delta != 200 {
		t.Errorf("change = {old:%d new:%d delta:%d}, want {old:1000 new:1200 delta:200}",
			c.OldScore, c.NewScore, c.Delta)
	}
	if len(result.Joined) != 0 || len(result.Departed) != 0 {
		t.Errorf("unexpected joins/departures: %v / %v", result.Joined, result.Departed)
	}
}

func TestReconcileChangesSortedByMagnitude(t *testing.T) {
	repo := newFakeRepo()
	repo.seed("Alice", 1000, true)
	repo.seed("Bob", 1200, true)
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 800, "Bob", 1250))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Changes) != 2 {
		t.Fatalf("changes = %v, want two", result.Changes)
	}
	if result.Changes[0].Name != "Alice" || result.Changes[0].Delta != -200 {
		t.Errorf("first change = %+v, want Alice delta -200", result.Changes[0])
	}
	if result.Changes[1].Name != "Bob" || result.Changes[1].Delta != 50 {
		t.Errorf("second change = %+v, want Bob delta 50", result.Changes[1])
	}
}

func TestReconcileDeparture(t *testing.T) {
	repo := newFakeRepo()
	repo.seed("Alice", 100, true)
	repo.seed("Carol", 300, true)
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 100))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Departed) != 1 || result.Departed[0] != "Carol" {
		t.Fatalf("departed = %v, want [Carol]", result.Departed)
	}
	for _, m := range repo.members {
		if m.Name == "Carol" {
			t.Error("Carol should no longer appear in store reads")
		}
	}
}

func TestReconcileReactivation(t *testing.T) {
	repo := newFakeRepo()
	repo.deactivate = true
	repo.seed("Alice", 100, false)
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 100))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Joined) != 1 || result.Joined[0] != "Alice" {
		t.Errorf("joined = %v, want [Alice] (returning member)", result.Joined)
	}
	if len(result.Changes) != 0 {
		t.Errorf("unchanged score must not emit an event, got %v", result.Changes)
	}
	if !repo.members[0].Active {
		t.Error("Alice should be active again")
	}
}

func TestReconcileIdempotent(t *testing.T) {
	repo := newFakeRepo()
	engine := NewEngine(repo, WithClock(fixedClock()))
	snapshot := obs("Alice", 100, "Bob", 200)

	if _, err := engine.Reconcile(context.Background(), snapshot); err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	result, err := engine.Reconcile(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}

	if !result.Empty() {
		t.Errorf("second identical reconcile must be empty, got %+v", result)
	}
	second := repo.applied[1]
	if len(second.Create) != 0 || len(second.AppendScores) != 0 || len(second.Depart) != 0 || len(second.Reactivate) != 0 {
		t.Errorf("second plan should only touch last_observed_at, got %+v", second)
	}
}

func TestReconcileDuplicateObservationIgnored(t *testing.T) {
	repo := newFakeRepo()
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 100, "Alice", 999))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Joined) != 1 {
		t.Errorf("joined = %v, want single Alice", result.Joined)
	}
	if repo.members[0].LastScore.Score != 100 {
		t.Errorf("score = %d, first occurrence (100) should win", repo.members[0].LastScore.Score)
	}
}

func TestReconcileInactiveMemberDoesNotDepartAgain(t *testing.T) {
	repo := newFakeRepo()
	repo.deactivate = true
	repo.seed("Alice", 100, true)
	repo.seed("Gone", 200, false) // archived in an earlier cycle
	engine := NewEngine(repo, WithClock(fixedClock()))

	result, err := engine.Reconcile(context.Background(), obs("Alice", 100))
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if len(result.Departed) != 0 {
		t.Errorf("departed = %v, departure is a transition and must not repeat", result.Departed)
	}
}

func TestReconcilePersistFailurePropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.failApply = &store.PersistError{Op: "apply reconciliation", Err: context.DeadlineExceeded}
	engine := NewEngine(repo, WithClock(fixedClock()))

	_, err := engine.Reconcile(context.Background(), obs("Alice", 100))
	if err == nil {
		t.Fatal("expected persistence error to surface")
	}
}
