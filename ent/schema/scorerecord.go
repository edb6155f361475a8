package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreRecord is a single historical score observation for a member.
// Records are append-only: one is written whenever a member's score
// changes, never updated, and removed only by cascading member deletion.
type ScoreRecord struct {
	ent.Schema
}

func (ScoreRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("score"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ScoreRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("member", Member.Type).
			Ref("scores").
			Unique().
			Required(),
	}
}

func (ScoreRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recorded_at"),
	}
}
