// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/schema"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	memberFields := schema.Member{}.Fields()
	_ = memberFields
	// memberDescName is the schema descriptor for name field.
	memberDescName := memberFields[0].Descriptor()
	// member.NameValidator is a validator for the "name" field. It is called by the builders before save.
	member.NameValidator = memberDescName.Validators[0].(func(string) error)
	// memberDescFirstObservedAt is the schema descriptor for first_observed_at field.
	memberDescFirstObservedAt := memberFields[1].Descriptor()
	// member.DefaultFirstObservedAt holds the default value on creation for the first_observed_at field.
	member.DefaultFirstObservedAt = memberDescFirstObservedAt.Default.(func() time.Time)
	// memberDescLastObservedAt is the schema descriptor for last_observed_at field.
	memberDescLastObservedAt := memberFields[2].Descriptor()
	// member.DefaultLastObservedAt holds the default value on creation for the last_observed_at field.
	member.DefaultLastObservedAt = memberDescLastObservedAt.Default.(func() time.Time)
	// memberDescActive is the schema descriptor for active field.
	memberDescActive := memberFields[3].Descriptor()
	// member.DefaultActive holds the default value on creation for the active field.
	member.DefaultActive = memberDescActive.Default.(bool)
	scorerecordFields := schema.ScoreRecord{}.Fields()
	_ = scorerecordFields
	// scorerecordDescRecordedAt is the schema descriptor for recorded_at field.
	scorerecordDescRecordedAt := scorerecordFields[1].Descriptor()
	// scorerecord.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	scorerecord.DefaultRecordedAt = scorerecordDescRecordedAt.Default.(func() time.Time)
}
