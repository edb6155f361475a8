// Code generated by ent, DO NOT EDIT.

package member

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clanwatch/clanwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldName, v))
}

// FirstObservedAt applies equality check predicate on the "first_observed_at" field. It's identical to FirstObservedAtEQ.
func FirstObservedAt(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldFirstObservedAt, v))
}

// LastObservedAt applies equality check predicate on the "last_observed_at" field. It's identical to LastObservedAtEQ.
func LastObservedAt(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldLastObservedAt, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldActive, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Member {
	return predicate.Member(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Member {
	return predicate.Member(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Member {
	return predicate.Member(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Member {
	return predicate.Member(sql.FieldContainsFold(FieldName, v))
}

// FirstObservedAtEQ applies the EQ predicate on the "first_observed_at" field.
func FirstObservedAtEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldFirstObservedAt, v))
}

// FirstObservedAtNEQ applies the NEQ predicate on the "first_observed_at" field.
func FirstObservedAtNEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldFirstObservedAt, v))
}

// FirstObservedAtIn applies the In predicate on the "first_observed_at" field.
func FirstObservedAtIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldFirstObservedAt, vs...))
}

// FirstObservedAtNotIn applies the NotIn predicate on the "first_observed_at" field.
func FirstObservedAtNotIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldFirstObservedAt, vs...))
}

// FirstObservedAtGT applies the GT predicate on the "first_observed_at" field.
func FirstObservedAtGT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldFirstObservedAt, v))
}

// FirstObservedAtGTE applies the GTE predicate on the "first_observed_at" field.
func FirstObservedAtGTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldFirstObservedAt, v))
}

// FirstObservedAtLT applies the LT predicate on the "first_observed_at" field.
func FirstObservedAtLT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldFirstObservedAt, v))
}

// FirstObservedAtLTE applies the LTE predicate on the "first_observed_at" field.
func FirstObservedAtLTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldFirstObservedAt, v))
}

// LastObservedAtEQ applies the EQ predicate on the "last_observed_at" field.
func LastObservedAtEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldLastObservedAt, v))
}

// LastObservedAtNEQ applies the NEQ predicate on the "last_observed_at" field.
func LastObservedAtNEQ(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldLastObservedAt, v))
}

// LastObservedAtIn applies the In predicate on the "last_observed_at" field.
func LastObservedAtIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldIn(FieldLastObservedAt, vs...))
}

// LastObservedAtNotIn applies the NotIn predicate on the "last_observed_at" field.
func LastObservedAtNotIn(vs ...time.Time) predicate.Member {
	return predicate.Member(sql.FieldNotIn(FieldLastObservedAt, vs...))
}

// LastObservedAtGT applies the GT predicate on the "last_observed_at" field.
func LastObservedAtGT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGT(FieldLastObservedAt, v))
}

// LastObservedAtGTE applies the GTE predicate on the "last_observed_at" field.
func LastObservedAtGTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldGTE(FieldLastObservedAt, v))
}

// LastObservedAtLT applies the LT predicate on the "last_observed_at" field.
func LastObservedAtLT(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLT(FieldLastObservedAt, v))
}

// LastObservedAtLTE applies the LTE predicate on the "last_observed_at" field.
func LastObservedAtLTE(v time.Time) predicate.Member {
	return predicate.Member(sql.FieldLTE(FieldLastObservedAt, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Member {
	return predicate.Member(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Member {
	return predicate.Member(sql.FieldNEQ(FieldActive, v))
}

// HasScores applies the HasEdge predicate on the "scores" edge.
func HasScores() predicate.Member {
	return predicate.Member(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScoresWith applies the HasEdge predicate on the "scores" edge with a given conditions (other predicates).
func HasScoresWith(preds ...predicate.ScoreRecord) predicate.Member {
	return predicate.Member(func(s *sql.Selector) {
		step := newScoresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Member) predicate.Member {
	return predicate.Member(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Member) predicate.Member {
	return predicate.Member(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Member) predicate.Member {
	return predicate.Member(sql.NotPredicates(p))
}
