package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testNow() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotEmpty(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	ctx := context.Background()

	members, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("members = %v, want none", members)
	}

	has, err := repo.HasHistory(ctx)
	if err != nil {
		t.Fatalf("has history: %v", err)
	}
	if has {
		t.Error("fresh store must report no history")
	}
}

func TestApplyCreateAndRead(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	ctx := context.Background()

	err := repo.Apply(ctx, &ReconcilePlan{
		Now: testNow(),
		Create: []NewMember{
			{Name: "Alice", Score: 100},
			{Name: "Bob", Score: 200},
		},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	members, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	// Ordered by name.
	if members[0].Name != "Alice" || members[1].Name != "Bob" {
		t.Errorf("order = [%s %s], want [Alice Bob]", members[0].Name, members[1].Name)
	}
	for _, m := range members {
		if !m.Active {
			t.Errorf("%s should be active", m.Name)
		}
		if m.LastScore == nil {
			t.Fatalf("%s has no score record", m.Name)
		}
	}
	if members[0].LastScore.Score != 100 || members[1].LastScore.Score != 200 {
		t.Errorf("scores = %d/%d, want 100/200", members[0].LastScore.Score, members[1].LastScore.Score)
	}

	has, err := repo.HasHistory(ctx)
	if err != nil {
		t.Fatalf("has history: %v", err)
	}
	if !has {
		t.Error("store with members must report history")
	}
}

func TestApplyAppendScoreKeepsHistory(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	ctx := context.Background()

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow(),
		Create: []NewMember{{Name: "Alice", Score: 100}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	members, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:          testNow().Add(time.Hour),
		Touch:        []int{members[0].ID},
		AppendScores: []ScoreAppend{{MemberID: members[0].ID, Score: 150}},
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := repo.History(ctx, "Alice", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (append-only)", len(history))
	}
	if history[0].Score != 150 || history[1].Score != 100 {
		t.Errorf("history = [%d %d], want newest first [150 100]", history[0].Score, history[1].Score)
	}

	members, _ = repo.Snapshot(ctx)
	if members[0].LastScore.Score != 150 {
		t.Errorf("latest score = %d, want 150", members[0].LastScore.Score)
	}
	if !members[0].LastObservedAt.After(testNow()) {
		t.Error("last_observed_at should have advanced")
	}
}

func TestApplyDeleteCascadesHistory(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	ctx := context.Background()

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow(),
		Create: []NewMember{{Name: "Carol", Score: 300}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	members, _ := repo.Snapshot(ctx)

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow().Add(time.Hour),
		Depart: []int{members[0].ID},
	}); err != nil {
		t.Fatalf("depart: %v", err)
	}

	members, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("members = %v, want Carol gone", members)
	}
	history, err := repo.History(ctx, "Carol", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history = %v, want cascaded away", history)
	}
}

func TestApplyDeactivatePreservesHistory(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDeactivate)
	ctx := context.Background()

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow(),
		Create: []NewMember{{Name: "Dan", Score: 400}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	members, _ := repo.Snapshot(ctx)

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow().Add(time.Hour),
		Depart: []int{members[0].ID},
	}); err != nil {
		t.Fatalf("depart: %v", err)
	}

	members, _ = repo.Snapshot(ctx)
	if len(members) != 1 {
		t.Fatalf("members = %d, want Dan retained", len(members))
	}
	if members[0].Active {
		t.Error("Dan should be inactive")
	}
	history, _ := repo.History(ctx, "Dan", 0)
	if len(history) != 1 {
		t.Errorf("history length = %d, want preserved", len(history))
	}

	// Reactivation path used when Dan rejoins.
	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:        testNow().Add(2 * time.Hour),
		Reactivate: []int{members[0].ID},
		Touch:      []int{members[0].ID},
	}); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	members, _ = repo.Snapshot(ctx)
	if !members[0].Active {
		t.Error("Dan should be active after rejoining")
	}
}

func TestApplyZeroPlanIsNoOp(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	if err := repo.Apply(context.Background(), &ReconcilePlan{Now: testNow()}); err != nil {
		t.Fatalf("zero plan: %v", err)
	}
}

func TestApplyDuplicateNameRollsBack(t *testing.T) {
	repo := openTestStore(t).Roster(ArchiveDelete)
	ctx := context.Background()

	if err := repo.Apply(ctx, &ReconcilePlan{
		Now:    testNow(),
		Create: []NewMember{{Name: "Alice", Score: 100}},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Second create of the same name violates the unique constraint;
	// the whole plan, including the valid Bob, must roll back.
	err := repo.Apply(ctx, &ReconcilePlan{
		Now: testNow().Add(time.Hour),
		Create: []NewMember{
			{Name: "Bob", Score: 200},
			{Name: "Alice", Score: 300},
		},
	})
	if err == nil {
		t.Fatal("expected unique constraint violation")
	}

	members, _ := repo.Snapshot(ctx)
	if len(members) != 1 {
		t.Errorf("members = %d, want only the original Alice (plan rolled back)", len(members))
	}
}
