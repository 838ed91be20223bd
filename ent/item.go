// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mizutori/kioku/ent/item"
)

// Item is the model entity for the Item schema.
type Item struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable opaque identifier (UUID), assigned at creation
	ItemID string `json:"item_id,omitempty"`
	// Content kind: vocabulary, cloze, or character
	Kind string `json:"kind,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Meaning holds the value of the "meaning" field.
	Meaning string `json:"meaning,omitempty"`
	// Reading holds the value of the "reading" field.
	Reading string `json:"reading,omitempty"`
	// Level holds the value of the "level" field.
	Level int `json:"level,omitempty"`
	// Item IDs that must be unlocked before this item can unlock
	Prerequisites []string `json:"prerequisites,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage int `json:"stage,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// WrongCount holds the value of the "wrong_count" field.
	WrongCount int `json:"wrong_count,omitempty"`
	// Streak holds the value of the "streak" field.
	Streak int `json:"streak,omitempty"`
	// LastReviewedAt holds the value of the "last_reviewed_at" field.
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	// NextReviewAt holds the value of the "next_review_at" field.
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	// Mastery holds the value of the "mastery" field.
	Mastery int `json:"mastery,omitempty"`
	// EaseFactor holds the value of the "ease_factor" field.
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Repetition holds the value of the "repetition" field.
	Repetition int `json:"repetition,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// MeaningCorrect holds the value of the "meaning_correct" field.
	MeaningCorrect int `json:"meaning_correct,omitempty"`
	// ReadingCorrect holds the value of the "reading_correct" field.
	ReadingCorrect int `json:"reading_correct,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Item) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case item.FieldPrerequisites:
			values[i] = new([]byte)
		case item.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case item.FieldID, item.FieldLevel, item.FieldStage, item.FieldCorrectCount, item.FieldWrongCount, item.FieldStreak, item.FieldMastery, item.FieldRepetition, item.FieldIntervalDays, item.FieldMeaningCorrect, item.FieldReadingCorrect:
			values[i] = new(sql.NullInt64)
		case item.FieldItemID, item.FieldKind, item.FieldPrompt, item.FieldMeaning, item.FieldReading, item.FieldStatus:
			values[i] = new(sql.NullString)
		case item.FieldLastReviewedAt, item.FieldNextReviewAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Item fields.
func (_m *Item) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case item.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case item.FieldItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				_m.ItemID = value.String
			}
		case item.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case item.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case item.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case item.FieldReading:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reading", values[i])
			} else if value.Valid {
				_m.Reading = value.String
			}
		case item.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case item.FieldPrerequisites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisites", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prerequisites); err != nil {
					return fmt.Errorf("unmarshal field prerequisites: %w", err)
				}
			}
		case item.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case item.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case item.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case item.FieldWrongCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_count", values[i])
			} else if value.Valid {
				_m.WrongCount = int(value.Int64)
			}
		case item.FieldStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak", values[i])
			} else if value.Valid {
				_m.Streak = int(value.Int64)
			}
		case item.FieldLastReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed_at", values[i])
			} else if value.Valid {
				_m.LastReviewedAt = new(time.Time)
				*_m.LastReviewedAt = value.Time
			}
		case item.FieldNextReviewAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review_at", values[i])
			} else if value.Valid {
				_m.NextReviewAt = new(time.Time)
				*_m.NextReviewAt = value.Time
			}
		case item.FieldMastery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = int(value.Int64)
			}
		case item.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case item.FieldRepetition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition", values[i])
			} else if value.Valid {
				_m.Repetition = int(value.Int64)
			}
		case item.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case item.FieldMeaningCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field meaning_correct", values[i])
			} else if value.Valid {
				_m.MeaningCorrect = int(value.Int64)
			}
		case item.FieldReadingCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_correct", values[i])
			} else if value.Valid {
				_m.ReadingCorrect = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Item.
// This includes values selected through modifiers, order, etc.
func (_m *Item) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Item.
// Note that you need to call Item.Unwrap() before calling this method if this Item
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Item) Update() *ItemUpdateOne {
	return NewItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Item entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Item) Unwrap() *Item {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Item is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Item) String() string {
	var builder strings.Builder
	builder.WriteString("Item(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("item_id=")
	builder.WriteString(_m.ItemID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("reading=")
	builder.WriteString(_m.Reading)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("prerequisites=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prerequisites))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("wrong_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongCount))
	builder.WriteString(", ")
	builder.WriteString("streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.Streak))
	builder.WriteString(", ")
	if v := _m.LastReviewedAt; v != nil {
		builder.WriteString("last_reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextReviewAt; v != nil {
		builder.WriteString("next_review_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("repetition=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetition))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("meaning_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.MeaningCorrect))
	builder.WriteString(", ")
	builder.WriteString("reading_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadingCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// Items is a parsable slice of Item.
type Items []*Item
