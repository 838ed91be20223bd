// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mizutori/kioku/ent/item"
	"github.com/mizutori/kioku/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ItemUpdate) SetKind(v string) *ItemUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableKind(v *string) *ItemUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ItemUpdate) SetPrompt(v string) *ItemUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ItemUpdate) SetNillablePrompt(v *string) *ItemUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *ItemUpdate) SetMeaning(v string) *ItemUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMeaning(v *string) *ItemUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetReading sets the "reading" field.
func (_u *ItemUpdate) SetReading(v string) *ItemUpdate {
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableReading(v *string) *ItemUpdate {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ItemUpdate) SetLevel(v int) *ItemUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLevel(v *int) *ItemUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ItemUpdate) AddLevel(v int) *ItemUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ItemUpdate) SetPrerequisites(v []string) *ItemUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ItemUpdate) AppendPrerequisites(v []string) *ItemUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ItemUpdate) ClearPrerequisites() *ItemUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItemUpdate) SetStatus(v string) *ItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableStatus(v *string) *ItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ItemUpdate) SetStage(v int) *ItemUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableStage(v *int) *ItemUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ItemUpdate) AddStage(v int) *ItemUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ItemUpdate) SetCorrectCount(v int) *ItemUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableCorrectCount(v *int) *ItemUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ItemUpdate) AddCorrectCount(v int) *ItemUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *ItemUpdate) SetWrongCount(v int) *ItemUpdate {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableWrongCount(v *int) *ItemUpdate {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *ItemUpdate) AddWrongCount(v int) *ItemUpdate {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemUpdate) SetStreak(v int) *ItemUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableStreak(v *int) *ItemUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemUpdate) AddStreak(v int) *ItemUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemUpdate) SetLastReviewedAt(v time.Time) *ItemUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableLastReviewedAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemUpdate) ClearLastReviewedAt() *ItemUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ItemUpdate) SetNextReviewAt(v time.Time) *ItemUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableNextReviewAt(v *time.Time) *ItemUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ItemUpdate) ClearNextReviewAt() *ItemUpdate {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ItemUpdate) SetMastery(v int) *ItemUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMastery(v *int) *ItemUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *ItemUpdate) AddMastery(v int) *ItemUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ItemUpdate) SetEaseFactor(v float64) *ItemUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableEaseFactor(v *float64) *ItemUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ItemUpdate) AddEaseFactor(v float64) *ItemUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetition sets the "repetition" field.
func (_u *ItemUpdate) SetRepetition(v int) *ItemUpdate {
	_u.mutation.ResetRepetition()
	_u.mutation.SetRepetition(v)
	return _u
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableRepetition(v *int) *ItemUpdate {
	if v != nil {
		_u.SetRepetition(*v)
	}
	return _u
}

// AddRepetition adds value to the "repetition" field.
func (_u *ItemUpdate) AddRepetition(v int) *ItemUpdate {
	_u.mutation.AddRepetition(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemUpdate) SetIntervalDays(v int) *ItemUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableIntervalDays(v *int) *ItemUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemUpdate) AddIntervalDays(v int) *ItemUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetMeaningCorrect sets the "meaning_correct" field.
func (_u *ItemUpdate) SetMeaningCorrect(v int) *ItemUpdate {
	_u.mutation.ResetMeaningCorrect()
	_u.mutation.SetMeaningCorrect(v)
	return _u
}

// SetNillableMeaningCorrect sets the "meaning_correct" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableMeaningCorrect(v *int) *ItemUpdate {
	if v != nil {
		_u.SetMeaningCorrect(*v)
	}
	return _u
}

// AddMeaningCorrect adds value to the "meaning_correct" field.
func (_u *ItemUpdate) AddMeaningCorrect(v int) *ItemUpdate {
	_u.mutation.AddMeaningCorrect(v)
	return _u
}

// SetReadingCorrect sets the "reading_correct" field.
func (_u *ItemUpdate) SetReadingCorrect(v int) *ItemUpdate {
	_u.mutation.ResetReadingCorrect()
	_u.mutation.SetReadingCorrect(v)
	return _u
}

// SetNillableReadingCorrect sets the "reading_correct" field if the given value is not nil.
func (_u *ItemUpdate) SetNillableReadingCorrect(v *int) *ItemUpdate {
	if v != nil {
		_u.SetReadingCorrect(*v)
	}
	return _u
}

// AddReadingCorrect adds value to the "reading_correct" field.
func (_u *ItemUpdate) AddReadingCorrect(v int) *ItemUpdate {
	_u.mutation.AddReadingCorrect(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdate) Mutation() *ItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := item.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Item.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := item.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Item.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(item.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(item.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(item.FieldReading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(item.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(item.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(item.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(item.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(item.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(item.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(item.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(item.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(item.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(item.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(item.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(item.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(item.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(item.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(item.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(item.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetition(); ok {
		_spec.SetField(item.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetition(); ok {
		_spec.AddField(item.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeaningCorrect(); ok {
		_spec.SetField(item.FieldMeaningCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMeaningCorrect(); ok {
		_spec.AddField(item.FieldMeaningCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingCorrect(); ok {
		_spec.SetField(item.FieldReadingCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingCorrect(); ok {
		_spec.AddField(item.FieldReadingCorrect, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetKind sets the "kind" field.
func (_u *ItemUpdateOne) SetKind(v string) *ItemUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableKind(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ItemUpdateOne) SetPrompt(v string) *ItemUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillablePrompt(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *ItemUpdateOne) SetMeaning(v string) *ItemUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMeaning(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetReading sets the "reading" field.
func (_u *ItemUpdateOne) SetReading(v string) *ItemUpdateOne {
	_u.mutation.SetReading(v)
	return _u
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableReading(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetReading(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ItemUpdateOne) SetLevel(v int) *ItemUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLevel(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ItemUpdateOne) AddLevel(v int) *ItemUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ItemUpdateOne) SetPrerequisites(v []string) *ItemUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ItemUpdateOne) AppendPrerequisites(v []string) *ItemUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ItemUpdateOne) ClearPrerequisites() *ItemUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ItemUpdateOne) SetStatus(v string) *ItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableStatus(v *string) *ItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ItemUpdateOne) SetStage(v int) *ItemUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableStage(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *ItemUpdateOne) AddStage(v int) *ItemUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ItemUpdateOne) SetCorrectCount(v int) *ItemUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableCorrectCount(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ItemUpdateOne) AddCorrectCount(v int) *ItemUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetWrongCount sets the "wrong_count" field.
func (_u *ItemUpdateOne) SetWrongCount(v int) *ItemUpdateOne {
	_u.mutation.ResetWrongCount()
	_u.mutation.SetWrongCount(v)
	return _u
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableWrongCount(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetWrongCount(*v)
	}
	return _u
}

// AddWrongCount adds value to the "wrong_count" field.
func (_u *ItemUpdateOne) AddWrongCount(v int) *ItemUpdateOne {
	_u.mutation.AddWrongCount(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemUpdateOne) SetStreak(v int) *ItemUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableStreak(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemUpdateOne) AddStreak(v int) *ItemUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ItemUpdateOne) SetLastReviewedAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ItemUpdateOne) ClearLastReviewedAt() *ItemUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ItemUpdateOne) SetNextReviewAt(v time.Time) *ItemUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableNextReviewAt(v *time.Time) *ItemUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// ClearNextReviewAt clears the value of the "next_review_at" field.
func (_u *ItemUpdateOne) ClearNextReviewAt() *ItemUpdateOne {
	_u.mutation.ClearNextReviewAt()
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *ItemUpdateOne) SetMastery(v int) *ItemUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMastery(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *ItemUpdateOne) AddMastery(v int) *ItemUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ItemUpdateOne) SetEaseFactor(v float64) *ItemUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableEaseFactor(v *float64) *ItemUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ItemUpdateOne) AddEaseFactor(v float64) *ItemUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetition sets the "repetition" field.
func (_u *ItemUpdateOne) SetRepetition(v int) *ItemUpdateOne {
	_u.mutation.ResetRepetition()
	_u.mutation.SetRepetition(v)
	return _u
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableRepetition(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetRepetition(*v)
	}
	return _u
}

// AddRepetition adds value to the "repetition" field.
func (_u *ItemUpdateOne) AddRepetition(v int) *ItemUpdateOne {
	_u.mutation.AddRepetition(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ItemUpdateOne) SetIntervalDays(v int) *ItemUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableIntervalDays(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ItemUpdateOne) AddIntervalDays(v int) *ItemUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetMeaningCorrect sets the "meaning_correct" field.
func (_u *ItemUpdateOne) SetMeaningCorrect(v int) *ItemUpdateOne {
	_u.mutation.ResetMeaningCorrect()
	_u.mutation.SetMeaningCorrect(v)
	return _u
}

// SetNillableMeaningCorrect sets the "meaning_correct" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableMeaningCorrect(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetMeaningCorrect(*v)
	}
	return _u
}

// AddMeaningCorrect adds value to the "meaning_correct" field.
func (_u *ItemUpdateOne) AddMeaningCorrect(v int) *ItemUpdateOne {
	_u.mutation.AddMeaningCorrect(v)
	return _u
}

// SetReadingCorrect sets the "reading_correct" field.
func (_u *ItemUpdateOne) SetReadingCorrect(v int) *ItemUpdateOne {
	_u.mutation.ResetReadingCorrect()
	_u.mutation.SetReadingCorrect(v)
	return _u
}

// SetNillableReadingCorrect sets the "reading_correct" field if the given value is not nil.
func (_u *ItemUpdateOne) SetNillableReadingCorrect(v *int) *ItemUpdateOne {
	if v != nil {
		_u.SetReadingCorrect(*v)
	}
	return _u
}

// AddReadingCorrect adds value to the "reading_correct" field.
func (_u *ItemUpdateOne) AddReadingCorrect(v int) *ItemUpdateOne {
	_u.mutation.AddReadingCorrect(v)
	return _u
}

// Mutation returns the ItemMutation object of the builder.
func (_u *ItemUpdateOne) Mutation() *ItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (_u *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Item entity.
func (_u *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := item.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Item.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := item.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Item.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(item.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(item.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reading(); ok {
		_spec.SetField(item.FieldReading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(item.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(item.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(item.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, item.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(item.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(item.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(item.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(item.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(item.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongCount(); ok {
		_spec.SetField(item.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongCount(); ok {
		_spec.AddField(item.FieldWrongCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(item.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(item.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(item.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(item.FieldNextReviewAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewAtCleared() {
		_spec.ClearField(item.FieldNextReviewAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(item.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(item.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetition(); ok {
		_spec.SetField(item.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetition(); ok {
		_spec.AddField(item.FieldRepetition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(item.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MeaningCorrect(); ok {
		_spec.SetField(item.FieldMeaningCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMeaningCorrect(); ok {
		_spec.AddField(item.FieldMeaningCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReadingCorrect(); ok {
		_spec.SetField(item.FieldReadingCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingCorrect(); ok {
		_spec.AddField(item.FieldReadingCorrect, field.TypeInt, value)
	}
	_node = &Item{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
