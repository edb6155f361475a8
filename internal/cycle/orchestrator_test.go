package cycle

import (
	"context"
	"errors"
	"testing"

	"github.com/clanwatch/clanwatch/internal/roster"
)

type fakeSource struct {
	observations []roster.Observation
	err          error
}

func (f *fakeSource) Fetch(ctx context.Context) ([]roster.Observation, error) {
	return f.observations, f.err
}

type fakeReconciler struct {
	result *roster.CycleResult
	err    error
	calls  int
}

func (f *fakeReconciler) Reconcile(ctx context.Context, observations []roster.Observation) (*roster.CycleResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return &roster.CycleResult{}, nil
	}
	return f.result, nil
}

type fakeHistory struct {
	has bool
	err error
}

func (f *fakeHistory) HasHistory(ctx context.Context) (bool, error) {
	return f.has, f.err
}

type fakeNotifier struct {
	changeSummaries  int
	initialSnapshots int
	publishErr       error

	granted    []string
	revoked    []string
	grantFail  map[string]error
	revokeFail map[string]error
}

func (f *fakeNotifier) PublishChangeSummary(ctx context.Context, changes []roster.ChangeEvent) error {
	f.changeSummaries++
	return f.publishErr
}

func (f *fakeNotifier) PublishInitialSnapshot(ctx context.Context, observations []roster.Observation) error {
	f.initialSnapshots++
	return f.publishErr
}

func (f *fakeNotifier) GrantMarker(ctx context.Context, name string) error {
	if err := f.grantFail[name]; err != nil {
		return err
	}
	f.granted = append(f.granted, name)
	return nil
}

func (f *fakeNotifier) RevokeMarker(ctx context.Context, name string) error {
	if err := f.revokeFail[name]; err != nil {
		return err
	}
	f.revoked = append(f.revoked, name)
	return nil
}

func observations(names ...string) []roster.Observation {
	out := make([]roster.Observation, 0, len(names))
	for i, n := range names {
		out = append(out, roster.Observation{Name: n, Score: (i + 1) * 100})
	}
	return out
}

func TestRunCycleFirstRunPublishesInitialSnapshot(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := &fakeReconciler{result: &roster.CycleResult{Joined: []string{"Alice", "Bob"}}}
	orch := New(&fakeSource{observations: observations("Alice", "Bob")}, engine, &fakeHistory{has: false}, notifier)

	summary, err := orch.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if notifier.initialSnapshots != 1 {
		t.Errorf("initial snapshots = %d, want 1", notifier.initialSnapshots)
	}
	if notifier.changeSummaries != 0 {
		t.Errorf("change summaries = %d, want 0 (decision is mutually exclusive)", notifier.changeSummaries)
	}
	if summary.Joined != 2 || summary.Observed != 2 {
		t.Errorf("summary = %+v, want joined=2 observed=2", summary)
	}
	if len(notifier.granted) != 2 {
		t.Errorf("granted = %v, want both joiners marked", notifier.granted)
	}
}

func TestRunCycleChangesTakePriorityOverInitialSnapshot(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := &fakeReconciler{result: &roster.CycleResult{
		Changes: []roster.ChangeEvent{{Name: "Alice", OldScore: 100, NewScore: 200, Delta: 100}},
	}}
	orch := New(&fakeSource{observations: observations("Alice")}, engine, &fakeHistory{has: false}, notifier)

	if _, err := orch.RunCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if notifier.changeSummaries != 1 || notifier.initialSnapshots != 0 {
		t.Errorf("summaries=%d snapshots=%d, want change summary only",
			notifier.changeSummaries, notifier.initialSnapshots)
	}
}

func TestRunCycleUnchangedRerunPublishesNothing(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := &fakeReconciler{result: &roster.CycleResult{}}
	orch := New(&fakeSource{observations: observations("Alice")}, engine, &fakeHistory{has: true}, notifier)

	if _, err := orch.RunCycle(context.Background()); err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if notifier.changeSummaries != 0 || notifier.initialSnapshots != 0 {
		t.Error("an unchanged rerun with existing history must not notify")
	}
}

func TestRunCycleEmptySnapshotShortCircuits(t *testing.T) {
	notifier := &fakeNotifier{}
	engine := &fakeReconciler{}
	orch := New(&fakeSource{}, engine, &fakeHistory{has: true}, notifier)

	summary, err := orch.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}

	if engine.calls != 0 {
		t.Error("empty snapshot must skip reconciliation entirely")
	}
	if notifier.changeSummaries+notifier.initialSnapshots != 0 {
		t.Error("empty snapshot must not notify")
	}
	if summary.Observed != 0 {
		t.Errorf("observed = %d, want 0", summary.Observed)
	}
}

func TestRunCycleFetchErrorIsFatal(t *testing.T) {
	wantErr := errors.New("fetch exploded")
	orch := New(&fakeSource{err: wantErr}, &fakeReconciler{}, &fakeHistory{}, &fakeNotifier{})

	if _, err := orch.RunCycle(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want fetch error propagated", err)
	}
}

func TestRunCycleReconcileErrorIsFatal(t *testing.T) {
	wantErr := errors.New("db gone")
	engine := &fakeReconciler{err: wantErr}
	orch := New(&fakeSource{observations: observations("Alice")}, engine, &fakeHistory{}, &fakeNotifier{})

	if _, err := orch.RunCycle(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want reconcile error propagated", err)
	}
}

func TestRunCyclePublishErrorIsFatal(t *testing.T) {
	wantErr := errors.New("forbidden")
	notifier := &fakeNotifier{publishErr: wantErr}
	engine := &fakeReconciler{result: &roster.CycleResult{
		Changes: []roster.ChangeEvent{{Name: "Alice", Delta: 5}},
	}}
	orch := New(&fakeSource{observations: observations("Alice")}, engine, &fakeHistory{has: true}, notifier)

	if _, err := orch.RunCycle(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want publish error propagated", err)
	}
}

func TestRunCycleMarkerFailuresAreIsolated(t *testing.T) {
	notifier := &fakeNotifier{
		grantFail:  map[string]error{"X": errors.New("no such guild member")},
		revokeFail: map[string]error{"Gone": errors.New("rate limited")},
	}
	engine := &fakeReconciler{result: &roster.CycleResult{
		Joined:   []string{"X", "Y"},
		Departed: []string{"Gone", "Left"},
	}}
	orch := New(&fakeSource{observations: observations("X", "Y")}, engine, &fakeHistory{has: true}, notifier)

	summary, err := orch.RunCycle(context.Background())
	if err != nil {
		t.Fatalf("marker failures must not abort the cycle: %v", err)
	}

	if summary.GrantsOK != 1 || summary.GrantsFailed != 1 {
		t.Errorf("grants ok/failed = %d/%d, want 1/1", summary.GrantsOK, summary.GrantsFailed)
	}
	if summary.RevokesOK != 1 || summary.RevokesFailed != 1 {
		t.Errorf("revokes ok/failed = %d/%d, want 1/1", summary.RevokesOK, summary.RevokesFailed)
	}
	if len(notifier.granted) != 1 || notifier.granted[0] != "Y" {
		t.Errorf("granted = %v, want [Y]", notifier.granted)
	}
	if len(notifier.revoked) != 1 || notifier.revoked[0] != "Left" {
		t.Errorf("revoked = %v, want [Left]", notifier.revoked)
	}
}

func TestRunCycleHistoryProbeErrorIsFatal(t *testing.T) {
	wantErr := errors.New("db locked")
	orch := New(&fakeSource{observations: observations("Alice")}, &fakeReconciler{}, &fakeHistory{err: wantErr}, &fakeNotifier{})

	if _, err := orch.RunCycle(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want history probe error propagated", err)
	}
}
