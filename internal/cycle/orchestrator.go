// Package cycle sequences one full run: fetch, reconcile, notify,
// marker sync. The process is invoked once per scheduled trigger and
// exits; no state survives a cycle except what the store persists.
package cycle

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clanwatch/clanwatch/internal/notify"
	"github.com/clanwatch/clanwatch/internal/roster"
)

// Source produces the snapshot for the current cycle. An empty slice
// means "no data", never an error.
type Source interface {
	Fetch(ctx context.Context) ([]roster.Observation, error)
}

// Reconciler diffs a snapshot against stored state and persists the
// outcome.
type Reconciler interface {
	Reconcile(ctx context.Context, observations []roster.Observation) (*roster.CycleResult, error)
}

// History answers whether any member has ever been recorded.
type History interface {
	HasHistory(ctx context.Context) (bool, error)
}

// Summary aggregates the audit counters for one cycle.
type Summary struct {
	CycleID       string
	Observed      int
	Changed       int
	Joined        int
	Departed      int
	GrantsOK      int
	GrantsFailed  int
	RevokesOK     int
	RevokesFailed int
}

// MarkerOutcome is the isolated result of one grant or revoke attempt.
type MarkerOutcome struct {
	Name string
	Err  error
}

// Orchestrator runs the fetch → reconcile → notify → marker pipeline.
type Orchestrator struct {
	source   Source
	engine   Reconciler
	history  History
	notifier notify.Notifier
	log      *logrus.Entry
}

// New creates an Orchestrator over the given collaborators.
func New(source Source, engine Reconciler, history History, notifier notify.Notifier) *Orchestrator {
	return &Orchestrator{
		source:   source,
		engine:   engine,
		history:  history,
		notifier: notifier,
		log:      logrus.WithField("component", "cycle"),
	}
}

// RunCycle executes one full cycle and returns its audit summary.
//
// Fetch and reconcile failures are fatal and propagate, as is a
// failure of the mandatory publish step.
// Individual marker grant/revoke failures are counted, logged and
// otherwise ignored so one bad entity cannot abort the batch.
func (o *Orchestrator) RunCycle(ctx context.Context) (*Summary, error) {
	summary := &Summary{CycleID: uuid.NewString()}
	log := o.log.WithField("cycle_id", summary.CycleID)

	observations, err := o.source.Fetch(ctx)
	if err != nil {
		return summary, err
	}
	summary.Observed = len(observations)

	if len(observations) == 0 {
		log.Info("empty snapshot, skipping reconciliation")
		return summary, nil
	}

	// Probed before reconciling: the first-ever cycle both creates the
	// roster and must still announce it as the initial snapshot.
	hasHistory, err := o.history.HasHistory(ctx)
	if err != nil {
		return summary, err
	}

	result, err := o.engine.Reconcile(ctx, observations)
	if err != nil {
		return summary, err
	}
	summary.Changed = len(result.Changes)
	summary.Joined = len(result.Joined)
	summary.Departed = len(result.Departed)

	if err := o.announce(ctx, log, hasHistory, result, observations); err != nil {
		return summary, err
	}

	grants := o.applyMarkers(ctx, result.Joined, o.notifier.GrantMarker)
	for _, out := range grants {
		if out.Err != nil {
			summary.GrantsFailed++
			log.WithField("name", out.Name).WithError(out.Err).Warn("grant marker failed")
		} else {
			summary.GrantsOK++
		}
	}

	revokes := o.applyMarkers(ctx, result.Departed, o.notifier.RevokeMarker)
	for _, out := range revokes {
		if out.Err != nil {
			summary.RevokesFailed++
			log.WithField("name", out.Name).WithError(out.Err).Warn("revoke marker failed")
		} else {
			summary.RevokesOK++
		}
	}

	log.WithFields(logrus.Fields{
		"observed": summary.Observed,
		"changed":  summary.Changed,
		"joined":   summary.Joined,
		"departed": summary.Departed,
		"grants":   summary.GrantsOK,
		"revokes":  summary.RevokesOK,
	}).Info("cycle complete")
	return summary, nil
}

// announce picks exactly one of: change summary, initial snapshot, or
// nothing. Publishing nothing on an unchanged re-run is what keeps the
// channel free of repeated identical messages.
func (o *Orchestrator) announce(ctx context.Context, log *logrus.Entry, hasHistory bool, result *roster.CycleResult, observations []roster.Observation) error {
	switch {
	case len(result.Changes) > 0:
		return o.notifier.PublishChangeSummary(ctx, result.Changes)
	case !hasHistory:
		return o.notifier.PublishInitialSnapshot(ctx, observations)
	default:
		log.Debug("no changes and history exists, nothing to announce")
		return nil
	}
}

// applyMarkers runs op for each name, collecting per-entity outcomes
// instead of failing fast.
func (o *Orchestrator) applyMarkers(ctx context.Context, names []string, op func(context.Context, string) error) []MarkerOutcome {
	outcomes := make([]MarkerOutcome, 0, len(names))
	for _, name := range names {
		outcomes = append(outcomes, MarkerOutcome{Name: name, Err: op(ctx, name)})
	}
	return outcomes
}
