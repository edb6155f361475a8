// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// ScoreRecordCreate is the builder for creating a ScoreRecord entity.
type ScoreRecordCreate struct {
	config
	mutation *ScoreRecordMutation
	hooks    []Hook
}

// SetScore sets the "score" field.
func (_c *ScoreRecordCreate) SetScore(v int) *ScoreRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *ScoreRecordCreate) SetRecordedAt(v time.Time) *ScoreRecordCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *ScoreRecordCreate) SetNillableRecordedAt(v *time.Time) *ScoreRecordCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetMemberID sets the "member" edge to the Member entity by ID.
func (_c *ScoreRecordCreate) SetMemberID(id int) *ScoreRecordCreate {
	_c.mutation.SetMemberID(id)
	return _c
}

// SetMember sets the "member" edge to the Member entity.
func (_c *ScoreRecordCreate) SetMember(v *Member) *ScoreRecordCreate {
	return _c.SetMemberID(v.ID)
}

// Mutation returns the ScoreRecordMutation object of the builder.
func (_c *ScoreRecordCreate) Mutation() *ScoreRecordMutation {
	return _c.mutation
}

// Save creates the ScoreRecord in the database.
func (_c *ScoreRecordCreate) Save(ctx context.Context) (*ScoreRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreRecordCreate) SaveX(ctx context.Context) *ScoreRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreRecordCreate) defaults() {
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := scorerecord.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreRecordCreate) check() error {
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ScoreRecord.score"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "ScoreRecord.recorded_at"`)}
	}
	if len(_c.mutation.MemberIDs()) == 0 {
		return &ValidationError{Name: "member", err: errors.New(`ent: missing required edge "ScoreRecord.member"`)}
	}
	return nil
}

func (_c *ScoreRecordCreate) sqlSave(ctx context.Context) (*ScoreRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreRecordCreate) createSpec() (*ScoreRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scorerecord.Table, sqlgraph.NewFieldSpec(scorerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(scorerecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(scorerecord.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.MemberIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scorerecord.MemberTable,
			Columns: []string{scorerecord.MemberColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.member_scores = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScoreRecordCreateBulk is the builder for creating many ScoreRecord entities in bulk.
type ScoreRecordCreateBulk struct {
	config
	err      error
	builders []*ScoreRecordCreate
}

// Save creates the ScoreRecord entities in the database.
func (_c *ScoreRecordCreateBulk) Save(ctx context.Context) ([]*ScoreRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreRecordCreateBulk) SaveX(ctx context.Context) []*ScoreRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
