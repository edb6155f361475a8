package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Member is a tracked clan roster member.
type Member struct {
	ent.Schema
}

func (Member) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name as it appears on the hiscores page"),
		field.Time("first_observed_at").
			Default(time.Now).
			Immutable().
			Comment("First cycle this member appeared in"),
		field.Time("last_observed_at").
			Default(time.Now).
			Comment("Most recent cycle this member appeared in"),
		field.Bool("active").
			Default(true).
			Comment("False once the member departs, when deactivation is the archive policy"),
	}
}

func (Member) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scores", ScoreRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Member) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
