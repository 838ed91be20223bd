// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mizutori/kioku/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *ItemCreate) SetItemID(v string) *ItemCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ItemCreate) SetKind(v string) *ItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ItemCreate) SetPrompt(v string) *ItemCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *ItemCreate) SetMeaning(v string) *ItemCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMeaning(v *string) *ItemCreate {
	if v != nil {
		_c.SetMeaning(*v)
	}
	return _c
}

// SetReading sets the "reading" field.
func (_c *ItemCreate) SetReading(v string) *ItemCreate {
	_c.mutation.SetReading(v)
	return _c
}

// SetNillableReading sets the "reading" field if the given value is not nil.
func (_c *ItemCreate) SetNillableReading(v *string) *ItemCreate {
	if v != nil {
		_c.SetReading(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ItemCreate) SetLevel(v int) *ItemCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLevel(v *int) *ItemCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *ItemCreate) SetPrerequisites(v []string) *ItemCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ItemCreate) SetStatus(v string) *ItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ItemCreate) SetNillableStatus(v *string) *ItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *ItemCreate) SetStage(v int) *ItemCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ItemCreate) SetNillableStage(v *int) *ItemCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ItemCreate) SetCorrectCount(v int) *ItemCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *ItemCreate) SetNillableCorrectCount(v *int) *ItemCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetWrongCount sets the "wrong_count" field.
func (_c *ItemCreate) SetWrongCount(v int) *ItemCreate {
	_c.mutation.SetWrongCount(v)
	return _c
}

// SetNillableWrongCount sets the "wrong_count" field if the given value is not nil.
func (_c *ItemCreate) SetNillableWrongCount(v *int) *ItemCreate {
	if v != nil {
		_c.SetWrongCount(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ItemCreate) SetStreak(v int) *ItemCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ItemCreate) SetNillableStreak(v *int) *ItemCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ItemCreate) SetLastReviewedAt(v time.Time) *ItemCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableLastReviewedAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ItemCreate) SetNextReviewAt(v time.Time) *ItemCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_c *ItemCreate) SetNillableNextReviewAt(v *time.Time) *ItemCreate {
	if v != nil {
		_c.SetNextReviewAt(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *ItemCreate) SetMastery(v int) *ItemCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMastery(v *int) *ItemCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ItemCreate) SetEaseFactor(v float64) *ItemCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ItemCreate) SetNillableEaseFactor(v *float64) *ItemCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetRepetition sets the "repetition" field.
func (_c *ItemCreate) SetRepetition(v int) *ItemCreate {
	_c.mutation.SetRepetition(v)
	return _c
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (_c *ItemCreate) SetNillableRepetition(v *int) *ItemCreate {
	if v != nil {
		_c.SetRepetition(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ItemCreate) SetIntervalDays(v int) *ItemCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ItemCreate) SetNillableIntervalDays(v *int) *ItemCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetMeaningCorrect sets the "meaning_correct" field.
func (_c *ItemCreate) SetMeaningCorrect(v int) *ItemCreate {
	_c.mutation.SetMeaningCorrect(v)
	return _c
}

// SetNillableMeaningCorrect sets the "meaning_correct" field if the given value is not nil.
func (_c *ItemCreate) SetNillableMeaningCorrect(v *int) *ItemCreate {
	if v != nil {
		_c.SetMeaningCorrect(*v)
	}
	return _c
}

// SetReadingCorrect sets the "reading_correct" field.
func (_c *ItemCreate) SetReadingCorrect(v int) *ItemCreate {
	_c.mutation.SetReadingCorrect(v)
	return _c
}

// SetNillableReadingCorrect sets the "reading_correct" field if the given value is not nil.
func (_c *ItemCreate) SetNillableReadingCorrect(v *int) *ItemCreate {
	if v != nil {
		_c.SetReadingCorrect(*v)
	}
	return _c
}

// Mutation returns the ItemMutation object of the builder.
func (_c *ItemCreate) Mutation() *ItemMutation {
	return _c.mutation
}

// Save creates the Item in the database.
func (_c *ItemCreate) Save(ctx context.Context) (*Item, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemCreate) defaults() {
	if _, ok := _c.mutation.Meaning(); !ok {
		v := item.DefaultMeaning
		_c.mutation.SetMeaning(v)
	}
	if _, ok := _c.mutation.Reading(); !ok {
		v := item.DefaultReading
		_c.mutation.SetReading(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := item.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := item.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := item.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := item.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.WrongCount(); !ok {
		v := item.DefaultWrongCount
		_c.mutation.SetWrongCount(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := item.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := item.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := item.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Repetition(); !ok {
		v := item.DefaultRepetition
		_c.mutation.SetRepetition(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := item.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.MeaningCorrect(); !ok {
		v := item.DefaultMeaningCorrect
		_c.mutation.SetMeaningCorrect(v)
	}
	if _, ok := _c.mutation.ReadingCorrect(); !ok {
		v := item.DefaultReadingCorrect
		_c.mutation.SetReadingCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "Item.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := item.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "Item.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Item.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := item.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Item.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Item.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := item.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Item.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "Item.meaning"`)}
	}
	if _, ok := _c.mutation.Reading(); !ok {
		return &ValidationError{Name: "reading", err: errors.New(`ent: missing required field "Item.reading"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Item.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := item.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Item.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Item.status"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Item.stage"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Item.correct_count"`)}
	}
	if _, ok := _c.mutation.WrongCount(); !ok {
		return &ValidationError{Name: "wrong_count", err: errors.New(`ent: missing required field "Item.wrong_count"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "Item.streak"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "Item.mastery"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Item.ease_factor"`)}
	}
	if _, ok := _c.mutation.Repetition(); !ok {
		return &ValidationError{Name: "repetition", err: errors.New(`ent: missing required field "Item.repetition"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Item.interval_days"`)}
	}
	if _, ok := _c.mutation.MeaningCorrect(); !ok {
		return &ValidationError{Name: "meaning_correct", err: errors.New(`ent: missing required field "Item.meaning_correct"`)}
	}
	if _, ok := _c.mutation.ReadingCorrect(); !ok {
		return &ValidationError{Name: "reading_correct", err: errors.New(`ent: missing required field "Item.reading_correct"`)}
	}
	return nil
}

func (_c *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
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

func (_c *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(item.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(item.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(item.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(item.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.Reading(); ok {
		_spec.SetField(item.FieldReading, field.TypeString, value)
		_node.Reading = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(item.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(item.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(item.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(item.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(item.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.WrongCount(); ok {
		_spec.SetField(item.FieldWrongCount, field.TypeInt, value)
		_node.WrongCount = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(item.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(item.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(item.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = &value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(item.FieldMastery, field.TypeInt, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(item.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Repetition(); ok {
		_spec.SetField(item.FieldRepetition, field.TypeInt, value)
		_node.Repetition = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(item.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.MeaningCorrect(); ok {
		_spec.SetField(item.FieldMeaningCorrect, field.TypeInt, value)
		_node.MeaningCorrect = value
	}
	if value, ok := _c.mutation.ReadingCorrect(); ok {
		_spec.SetField(item.FieldReadingCorrect, field.TypeInt, value)
		_node.ReadingCorrect = value
	}
	return _node, _spec
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
}

// Save creates the Item entities in the database.
func (_c *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Item, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
func (_c *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
