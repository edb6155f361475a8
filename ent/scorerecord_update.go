// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clanwatch/clanwatch/ent/member"
	"github.com/clanwatch/clanwatch/ent/predicate"
	"github.com/clanwatch/clanwatch/ent/scorerecord"
)

// ScoreRecordUpdate is the builder for updating ScoreRecord entities.
type ScoreRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreRecordMutation
}

// Where appends a list predicates to the ScoreRecordUpdate builder.
func (_u *ScoreRecordUpdate) Where(ps ...predicate.ScoreRecord) *ScoreRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreRecordUpdate) SetScore(v int) *ScoreRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreRecordUpdate) SetNillableScore(v *int) *ScoreRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreRecordUpdate) AddScore(v int) *ScoreRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMemberID sets the "member" edge to the Member entity by ID.
func (_u *ScoreRecordUpdate) SetMemberID(id int) *ScoreRecordUpdate {
	_u.mutation.SetMemberID(id)
	return _u
}

// SetMember sets the "member" edge to the Member entity.
func (_u *ScoreRecordUpdate) SetMember(v *Member) *ScoreRecordUpdate {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the ScoreRecordMutation object of the builder.
func (_u *ScoreRecordUpdate) Mutation() *ScoreRecordMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the Member entity.
func (_u *ScoreRecordUpdate) ClearMember() *ScoreRecordUpdate {
	_u.mutation.ClearMember()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreRecordUpdate) check() error {
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreRecord.member"`)
	}
	return nil
}

func (_u *ScoreRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorerecord.Table, scorerecord.Columns, sqlgraph.NewFieldSpec(scorerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scorerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scorerecord.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreRecordUpdateOne is the builder for updating a single ScoreRecord entity.
type ScoreRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreRecordMutation
}

// SetScore sets the "score" field.
func (_u *ScoreRecordUpdateOne) SetScore(v int) *ScoreRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreRecordUpdateOne) SetNillableScore(v *int) *ScoreRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreRecordUpdateOne) AddScore(v int) *ScoreRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMemberID sets the "member" edge to the Member entity by ID.
func (_u *ScoreRecordUpdateOne) SetMemberID(id int) *ScoreRecordUpdateOne {
	_u.mutation.SetMemberID(id)
	return _u
}

// SetMember sets the "member" edge to the Member entity.
func (_u *ScoreRecordUpdateOne) SetMember(v *Member) *ScoreRecordUpdateOne {
	return _u.SetMemberID(v.ID)
}

// Mutation returns the ScoreRecordMutation object of the builder.
func (_u *ScoreRecordUpdateOne) Mutation() *ScoreRecordMutation {
	return _u.mutation
}

// ClearMember clears the "member" edge to the Member entity.
func (_u *ScoreRecordUpdateOne) ClearMember() *ScoreRecordUpdateOne {
	_u.mutation.ClearMember()
	return _u
}

// Where appends a list predicates to the ScoreRecordUpdate builder.
func (_u *ScoreRecordUpdateOne) Where(ps ...predicate.ScoreRecord) *ScoreRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreRecordUpdateOne) Select(field string, fields ...string) *ScoreRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreRecord entity.
func (_u *ScoreRecordUpdateOne) Save(ctx context.Context) (*ScoreRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreRecordUpdateOne) SaveX(ctx context.Context) *ScoreRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreRecordUpdateOne) check() error {
	if _u.mutation.MemberCleared() && len(_u.mutation.MemberIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreRecord.member"`)
	}
	return nil
}

func (_u *ScoreRecordUpdateOne) sqlSave(ctx context.Context) (_node *ScoreRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorerecord.Table, scorerecord.Columns, sqlgraph.NewFieldSpec(scorerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scorerecord.FieldID)
		for _, f := range fields {
			if !scorerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scorerecord.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scorerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scorerecord.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.MemberCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MemberIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScoreRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
