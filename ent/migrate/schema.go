// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MembersColumns holds the columns for the "members" table.
	MembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "first_observed_at", Type: field.TypeTime},
		{Name: "last_observed_at", Type: field.TypeTime},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// MembersTable holds the schema information for the "members" table.
	MembersTable = &schema.Table{
		Name:       "members",
		Columns:    MembersColumns,
		PrimaryKey: []*schema.Column{MembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "member_active",
				Unique:  false,
				Columns: []*schema.Column{MembersColumns[4]},
			},
		},
	}
	// ScoreRecordsColumns holds the columns for the "score_records" table.
	ScoreRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "member_scores", Type: field.TypeInt},
	}
	// ScoreRecordsTable holds the schema information for the "score_records" table.
	ScoreRecordsTable = &schema.Table{
		Name:       "score_records",
		Columns:    ScoreRecordsColumns,
		PrimaryKey: []*schema.Column{ScoreRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "score_records_members_scores",
				Columns:    []*schema.Column{ScoreRecordsColumns[3]},
				RefColumns: []*schema.Column{MembersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scorerecord_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{ScoreRecordsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MembersTable,
		ScoreRecordsTable,
	}
)

func init() {
	ScoreRecordsTable.ForeignKeys[0].RefTable = MembersTable
}
