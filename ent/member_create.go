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

// MemberCreate is the builder for creating a Member entity.
type MemberCreate struct {
	config
	mutation *MemberMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *MemberCreate) SetName(v string) *MemberCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFirstObservedAt sets the "first_observed_at" field.
func (_c *MemberCreate) SetFirstObservedAt(v time.Time) *MemberCreate {
	_c.mutation.SetFirstObservedAt(v)
	return _c
}

// SetNillableFirstObservedAt sets the "first_observed_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableFirstObservedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetFirstObservedAt(*v)
	}
	return _c
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_c *MemberCreate) SetLastObservedAt(v time.Time) *MemberCreate {
	_c.mutation.SetLastObservedAt(v)
	return _c
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_c *MemberCreate) SetNillableLastObservedAt(v *time.Time) *MemberCreate {
	if v != nil {
		_c.SetLastObservedAt(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *MemberCreate) SetActive(v bool) *MemberCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *MemberCreate) SetNillableActive(v *bool) *MemberCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// AddScoreIDs adds the "scores" edge to the ScoreRecord entity by IDs.
func (_c *MemberCreate) AddScoreIDs(ids ...int) *MemberCreate {
	_c.mutation.AddScoreIDs(ids...)
	return _c
}

// AddScores adds the "scores" edges to the ScoreRecord entity.
func (_c *MemberCreate) AddScores(v ...*ScoreRecord) *MemberCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScoreIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_c *MemberCreate) Mutation() *MemberMutation {
	return _c.mutation
}

// Save creates the Member in the database.
func (_c *MemberCreate) Save(ctx context.Context) (*Member, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MemberCreate) SaveX(ctx context.Context) *Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MemberCreate) defaults() {
	if _, ok := _c.mutation.FirstObservedAt(); !ok {
		v := member.DefaultFirstObservedAt()
		_c.mutation.SetFirstObservedAt(v)
	}
	if _, ok := _c.mutation.LastObservedAt(); !ok {
		v := member.DefaultLastObservedAt()
		_c.mutation.SetLastObservedAt(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := member.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MemberCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Member.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Member.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstObservedAt(); !ok {
		return &ValidationError{Name: "first_observed_at", err: errors.New(`ent: missing required field "Member.first_observed_at"`)}
	}
	if _, ok := _c.mutation.LastObservedAt(); !ok {
		return &ValidationError{Name: "last_observed_at", err: errors.New(`ent: missing required field "Member.last_observed_at"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Member.active"`)}
	}
	return nil
}

func (_c *MemberCreate) sqlSave(ctx context.Context) (*Member, error) {
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

func (_c *MemberCreate) createSpec() (*Member, *sqlgraph.CreateSpec) {
	var (
		_node = &Member{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(member.Table, sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FirstObservedAt(); ok {
		_spec.SetField(member.FieldFirstObservedAt, field.TypeTime, value)
		_node.FirstObservedAt = value
	}
	if value, ok := _c.mutation.LastObservedAt(); ok {
		_spec.SetField(member.FieldLastObservedAt, field.TypeTime, value)
		_node.LastObservedAt = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(member.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if nodes := _c.mutation.ScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   member.ScoresTable,
			Columns: []string{member.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scorerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MemberCreateBulk is the builder for creating many Member entities in bulk.
type MemberCreateBulk struct {
	config
	err      error
	builders []*MemberCreate
}

// Save creates the Member entities in the database.
func (_c *MemberCreateBulk) Save(ctx context.Context) ([]*Member, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Member, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MemberMutation)
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
func (_c *MemberCreateBulk) SaveX(ctx context.Context) []*Member {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MemberCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MemberCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
