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
	"github.com/mizutori/kioku/ent/predicate"
	"github.com/mizutori/kioku/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdate) SetItemID(v string) *ReviewEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableItemID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ReviewEventUpdate) SetTrack(v string) *ReviewEventUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableTrack(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdate) SetDifficulty(v string) *ReviewEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableDifficulty(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdate) SetQuality(v int) *ReviewEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableQuality(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdate) AddQuality(v int) *ReviewEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFromStage sets the "from_stage" field.
func (_u *ReviewEventUpdate) SetFromStage(v int) *ReviewEventUpdate {
	_u.mutation.ResetFromStage()
	_u.mutation.SetFromStage(v)
	return _u
}

// SetNillableFromStage sets the "from_stage" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableFromStage(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetFromStage(*v)
	}
	return _u
}

// AddFromStage adds value to the "from_stage" field.
func (_u *ReviewEventUpdate) AddFromStage(v int) *ReviewEventUpdate {
	_u.mutation.AddFromStage(v)
	return _u
}

// SetToStage sets the "to_stage" field.
func (_u *ReviewEventUpdate) SetToStage(v int) *ReviewEventUpdate {
	_u.mutation.ResetToStage()
	_u.mutation.SetToStage(v)
	return _u
}

// SetNillableToStage sets the "to_stage" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableToStage(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetToStage(*v)
	}
	return _u
}

// AddToStage adds value to the "to_stage" field.
func (_u *ReviewEventUpdate) AddToStage(v int) *ReviewEventUpdate {
	_u.mutation.AddToStage(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewEventUpdate) SetNextReviewAt(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ReviewEventUpdate) ClearNextReviewAt() *ReviewEventUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(reviewevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromStage(); ok {
		_spec.SetField(reviewevent.FieldFromStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromStage(); ok {
		_spec.AddField(reviewevent.FieldFromStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToStage(); ok {
		_spec.SetField(reviewevent.FieldToStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToStage(); ok {
		_spec.AddField(reviewevent.FieldToStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewevent.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(reviewevent.FieldNextReviewAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetItemID sets the "item_id" field.
func (_u *ReviewEventUpdateOne) SetItemID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableItemID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ReviewEventUpdateOne) SetTrack(v string) *ReviewEventUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableTrack(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ReviewEventUpdateOne) SetDifficulty(v string) *ReviewEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableDifficulty(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdateOne) SetQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableQuality(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdateOne) AddQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetFromStage sets the "from_stage" field.
func (_u *ReviewEventUpdateOne) SetFromStage(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetFromStage()
	_u.mutation.SetFromStage(v)
	return _u
}

// SetNillableFromStage sets the "from_stage" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableFromStage(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetFromStage(*v)
	}
	return _u
}

// AddFromStage adds value to the "from_stage" field.
func (_u *ReviewEventUpdateOne) AddFromStage(v int) *ReviewEventUpdateOne {
	_u.mutation.AddFromStage(v)
	return _u
}

// SetToStage sets the "to_stage" field.
func (_u *ReviewEventUpdateOne) SetToStage(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetToStage()
	_u.mutation.SetToStage(v)
	return _u
}

// SetNillableToStage sets the "to_stage" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableToStage(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetToStage(*v)
	}
	return _u
}

// AddToStage adds value to the "to_stage" field.
func (_u *ReviewEventUpdateOne) AddToStage(v int) *ReviewEventUpdateOne {
	_u.mutation.AddToStage(v)
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewEventUpdateOne) SetNextReviewAt(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ReviewEventUpdateOne) ClearNextReviewAt() *ReviewEventUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(reviewevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(reviewevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FromStage(); ok {
		_spec.SetField(reviewevent.FieldFromStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFromStage(); ok {
		_spec.AddField(reviewevent.FieldFromStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToStage(); ok {
		_spec.SetField(reviewevent.FieldToStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToStage(); ok {
		_spec.AddField(reviewevent.FieldToStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewevent.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(reviewevent.FieldNextReviewAt, field.TypeTime)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
