// Code generated by ent, DO NOT EDIT.

package member

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the member type in the database.
	Label = "member"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFirstObservedAt holds the string denoting the first_observed_at field in the database.
	FieldFirstObservedAt = "first_observed_at"
	// FieldLastObservedAt holds the string denoting the last_observed_at field in the database.
	FieldLastObservedAt = "last_observed_at"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// EdgeScores holds the string denoting the scores edge name in mutations.
	EdgeScores = "scores"
	// Table holds the table name of the member in the database.
	Table = "members"
	// ScoresTable is the table that holds the scores relation/edge.
	ScoresTable = "score_records"
	// ScoresInverseTable is the table name for the ScoreRecord entity.
	// It exists in this package in order to avoid circular dependency with the "scorerecord" package.
	ScoresInverseTable = "score_records"
	// ScoresColumn is the table column denoting the scores relation/edge.
	ScoresColumn = "member_scores"
)

// Columns holds all SQL columns for member fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldFirstObservedAt,
	FieldLastObservedAt,
	FieldActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultFirstObservedAt holds the default value on creation for the "first_observed_at" field.
	DefaultFirstObservedAt func() time.Time
	// DefaultLastObservedAt holds the default value on creation for the "last_observed_at" field.
	DefaultLastObservedAt func() time.Time
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
)

// OrderOption defines the ordering options for the Member queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFirstObservedAt orders the results by the first_observed_at field.
func ByFirstObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstObservedAt, opts...).ToFunc()
}

// ByLastObservedAt orders the results by the last_observed_at field.
func ByLastObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastObservedAt, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByScoresCount orders the results by scores count.
func ByScoresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScoresStep(), opts...)
	}
}

// ByScores orders the results by scores terms.
func ByScores(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScoresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
	)
}
