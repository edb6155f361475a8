package store

import (
	"context"
	"fmt"

	"github.com/clanwatch/clanwatch/ent"
	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// rosterRepo implements RosterRepo using the ent client.
type rosterRepo struct {
	client *ent.Client
	policy ArchivePolicy
}

func (r *rosterRepo) Snapshot(ctx context.Context) ([]Member, error) {
	rows, err := r.client.Member.Query().
		Order(ent.Asc(member.FieldName)).
		All(ctx)
	if err != nil {
		return nil, &PersistError{Op: "load roster", Err: err}
	}

	members := make([]Member, 0, len(rows))
	for _, m := range rows {
		out := Member{
			ID:              m.ID,
			Name:            m.Name,
			FirstObservedAt: m.FirstObservedAt,
			LastObservedAt:  m.LastObservedAt,
			Active:          m.Active,
		}

		latest, err := m.QueryScores().
			Order(ent.Desc(scorerecord.FieldRecordedAt), ent.Desc(scorerecord.FieldID)).
			First(ctx)
		switch {
		case err == nil:
			out.LastScore = &ScorePoint{Score: latest.Score, RecordedAt: latest.RecordedAt}
		case ent.IsNotFound(err):
			// Member created but no score recorded yet.
		default:
			return nil, &PersistError{Op: fmt.Sprintf("load latest score for %q", m.Name), Err: err}
		}

		members = append(members, out)
	}
	return members, nil
}

func (r *rosterRepo) HasHistory(ctx context.Context) (bool, error) {
	exists, err := r.client.Member.Query().Exist(ctx)
	if err != nil {
		return false, &PersistError{Op: "check history", Err: err}
	}
	return exists, nil
}

func (r *rosterRepo) Apply(ctx context.Context, plan *ReconcilePlan) error {
	if plan.IsZero() {
		return nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return &PersistError{Op: "begin transaction", Err: err}
	}

	if err := r.applyTx(ctx, tx, plan); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return &PersistError{Op: "apply reconciliation", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &PersistError{Op: "commit reconciliation", Err: err}
	}
	return nil
}

func (r *rosterRepo) applyTx(ctx context.Context, tx *ent.Tx, plan *ReconcilePlan) error {
	for _, n := range plan.Create {
		m, err := tx.Member.Create().
			SetName(n.Name).
			SetFirstObservedAt(plan.Now).
			SetLastObservedAt(plan.Now).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create member %q: %w", n.Name, err)
		}
		_, err = tx.ScoreRecord.Create().
			SetMember(m).
			SetScore(n.Score).
			SetRecordedAt(plan.Now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("first score for %q: %w", n.Name, err)
		}
	}

	if len(plan.Touch) > 0 {
		_, err := tx.Member.Update().
			Where(member.IDIn(plan.Touch...)).
			SetLastObservedAt(plan.Now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("touch members: %w", err)
		}
	}

	if len(plan.Reactivate) > 0 {
		_, err := tx.Member.Update().
			Where(member.IDIn(plan.Reactivate...)).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reactivate members: %w", err)
		}
	}

	for _, a := range plan.AppendScores {
		_, err := tx.ScoreRecord.Create().
			SetMemberID(a.MemberID).
			SetScore(a.Score).
			SetRecordedAt(plan.Now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("append score for member %d: %w", a.MemberID, err)
		}
	}

	if len(plan.Depart) > 0 {
		if err := r.archive(ctx, tx, plan); err != nil {
			return err
		}
	}

	return nil
}

// archive applies the configured departure policy. Deletion cascades the
// member's score records via the schema's ON DELETE annotation.
func (r *rosterRepo) archive(ctx context.Context, tx *ent.Tx, plan *ReconcilePlan) error {
	switch r.policy {
	case ArchiveDeactivate:
		_, err := tx.Member.Update().
			Where(member.IDIn(plan.Depart...)).
			SetActive(false).
			SetLastObservedAt(plan.Now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("deactivate departed members: %w", err)
		}
	default:
		_, err := tx.Member.Delete().
			Where(member.IDIn(plan.Depart...)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete departed members: %w", err)
		}
	}
	return nil
}

func (r *rosterRepo) History(ctx context.Context, name string, limit int) ([]ScorePoint, error) {
	q := r.client.ScoreRecord.Query().
		Where(scorerecord.HasMemberWith(member.NameEQ(name))).
		Order(ent.Desc(scorerecord.FieldRecordedAt), ent.Desc(scorerecord.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, &PersistError{Op: fmt.Sprintf("load history for %q", name), Err: err}
	}

	points := make([]ScorePoint, 0, len(rows))
	for _, rec := range rows {
		points = append(points, ScorePoint{Score: rec.Score, RecordedAt: rec.RecordedAt})
	}
	return points, nil
}
