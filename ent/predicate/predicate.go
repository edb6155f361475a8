// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)

// ScoreRecord is the predicate function for scorerecord builders.
type ScoreRecord func(*sql.Selector)
