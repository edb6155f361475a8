// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// ScoreRecord is the model entity for the ScoreRecord schema.
type ScoreRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScoreRecordQuery when eager-loading is set.
	Edges         ScoreRecordEdges `json:"edges"`
	member_scores *int
	selectValues  sql.SelectValues
}

// ScoreRecordEdges holds the relations/edges for other nodes in the graph.
type ScoreRecordEdges struct {
	// Member holds the value of the member edge.
	Member *Member `json:"member,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MemberOrErr returns the Member value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScoreRecordEdges) MemberOrErr() (*Member, error) {
	if e.Member != nil {
		return e.Member, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: member.Label}
	}
	return nil, &NotLoadedError{edge: "member"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scorerecord.FieldID, scorerecord.FieldScore:
			values[i] = new(sql.NullInt64)
		case scorerecord.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case scorerecord.ForeignKeys[0]: // member_scores
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreRecord fields.
func (_m *ScoreRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scorerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scorerecord.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case scorerecord.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case scorerecord.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field member_scores", value)
			} else if value.Valid {
				_m.member_scores = new(int)
				*_m.member_scores = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMember queries the "member" edge of the ScoreRecord entity.
func (_m *ScoreRecord) QueryMember() *MemberQuery {
	return NewScoreRecordClient(_m.config).QueryMember(_m)
}

// Update returns a builder for updating this ScoreRecord.
// Note that you need to call ScoreRecord.Unwrap() before calling this method if this ScoreRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreRecord) Update() *ScoreRecordUpdateOne {
	return NewScoreRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreRecord) Unwrap() *ScoreRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreRecords is a parsable slice of ScoreRecord.
type ScoreRecords []*ScoreRecord
