// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/predicate"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// MemberUpdate is the builder for updating Member entities.
type MemberUpdate struct {
	config
	hooks    []Hook
	mutation *MemberMutation
}

// Where appends a list predicates to the MemberUpdate builder.
func (_u *MemberUpdate) Where(ps ...predicate.Member) *MemberUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MemberUpdate) SetName(v string) *MemberUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableName(v *string) *MemberUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *MemberUpdate) SetLastObservedAt(v time.Time) *MemberUpdate {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableLastObservedAt(v *time.Time) *MemberUpdate {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *MemberUpdate) SetActive(v bool) *MemberUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *MemberUpdate) SetNillableActive(v *bool) *MemberUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddScoreIDs adds the "scores" edge to the ScoreRecord entity by IDs.
func (_u *MemberUpdate) AddScoreIDs(ids ...int) *MemberUpdate {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ScoreRecord entity.
func (_u *MemberUpdate) AddScores(v ...*ScoreRecord) *MemberUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_u *MemberUpdate) Mutation() *MemberMutation {
	return _u.mutation
}

// ClearScores clears all "scores" edges to the ScoreRecord entity.
func (_u *MemberUpdate) ClearScores() *MemberUpdate {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ScoreRecord entities by IDs.
func (_u *MemberUpdate) RemoveScoreIDs(ids ...int) *MemberUpdate {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ScoreRecord entities.
func (_u *MemberUpdate) RemoveScores(v ...*ScoreRecord) *MemberUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemberUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemberUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemberUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemberUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemberUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Member.name": %w`, err)}
		}
	}
	return nil
}

func (_u *MemberUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(member.Table, member.Columns, sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(member.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(member.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{member.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemberUpdateOne is the builder for updating a single Member entity.
type MemberUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemberMutation
}

// SetName sets the "name" field.
func (_u *MemberUpdateOne) SetName(v string) *MemberUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableName(v *string) *MemberUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLastObservedAt sets the "last_observed_at" field.
func (_u *MemberUpdateOne) SetLastObservedAt(v time.Time) *MemberUpdateOne {
	_u.mutation.SetLastObservedAt(v)
	return _u
}

// SetNillableLastObservedAt sets the "last_observed_at" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableLastObservedAt(v *time.Time) *MemberUpdateOne {
	if v != nil {
		_u.SetLastObservedAt(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *MemberUpdateOne) SetActive(v bool) *MemberUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *MemberUpdateOne) SetNillableActive(v *bool) *MemberUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// AddScoreIDs adds the "scores" edge to the ScoreRecord entity by IDs.
func (_u *MemberUpdateOne) AddScoreIDs(ids ...int) *MemberUpdateOne {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ScoreRecord entity.
func (_u *MemberUpdateOne) AddScores(v ...*ScoreRecord) *MemberUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the MemberMutation object of the builder.
func (_u *MemberUpdateOne) Mutation() *MemberMutation {
	return _u.mutation
}

// ClearScores clears all "scores" edges to the ScoreRecord entity.
func (_u *MemberUpdateOne) ClearScores() *MemberUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ScoreRecord entities by IDs.
func (_u *MemberUpdateOne) RemoveScoreIDs(ids ...int) *MemberUpdateOne {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ScoreRecord entities.
func (_u *MemberUpdateOne) RemoveScores(v ...*ScoreRecord) *MemberUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Where appends a list predicates to the MemberUpdate builder.
func (_u *MemberUpdateOne) Where(ps ...predicate.Member) *MemberUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemberUpdateOne) Select(field string, fields ...string) *MemberUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Member entity.
func (_u *MemberUpdateOne) Save(ctx context.Context) (*Member, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemberUpdateOne) SaveX(ctx context.Context) *Member {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemberUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemberUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemberUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := member.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Member.name": %w`, err)}
		}
	}
	return nil
}

func (_u *MemberUpdateOne) sqlSave(ctx context.Context) (_node *Member, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(member.Table, member.Columns, sqlgraph.NewFieldSpec(member.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Member.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, member.FieldID)
		for _, f := range fields {
			if !member.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != member.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(member.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastObservedAt(); ok {
		_spec.SetField(member.FieldLastObservedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(member.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Member{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{member.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
