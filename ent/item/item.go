// Code generated by ent, DO NOT EDIT.

package item

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the item type in the database.
	Label = "item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldMeaning holds the string denoting the meaning field in the database.
	FieldMeaning = "meaning"
	// FieldReading holds the string denoting the reading field in the database.
	FieldReading = "reading"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldPrerequisites holds the string denoting the prerequisites field in the database.
	FieldPrerequisites = "prerequisites"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewAt holds the string denoting the next_review_at field in the database.
	FieldNextReviewAt = "next_review_at"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldRepetition holds the string denoting the repetition field in the database.
	FieldRepetition = "repetition"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldMeaningCorrect holds the string denoting the meaning_correct field in the database.
	FieldMeaningCorrect = "meaning_correct"
	// FieldReadingCorrect holds the string denoting the reading_correct field in the database.
	FieldReadingCorrect = "reading_correct"
	// Table holds the table name of the item in the database.
	Table = "items"
)

// Columns holds all SQL columns for item fields.
var Columns = []string{
	FieldID,
	FieldItemID,
	FieldKind,
	FieldPrompt,
	FieldMeaning,
	FieldReading,
	FieldLevel,
	FieldPrerequisites,
	FieldStatus,
	FieldStage,
	FieldCorrectCount,
	FieldWrongCount,
	FieldStreak,
	FieldLastReviewedAt,
	FieldNextReviewAt,
	FieldMastery,
	FieldEaseFactor,
	FieldRepetition,
	FieldIntervalDays,
	FieldMeaningCorrect,
	FieldReadingCorrect,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	PromptValidator func(string) error
	// DefaultMeaning holds the default value on creation for the "meaning" field.
	DefaultMeaning string
	// DefaultReading holds the default value on creation for the "reading" field.
	DefaultReading string
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultStage holds the default value on creation for the "stage" field.
	DefaultStage int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultWrongCount holds the default value on creation for the "wrong_count" field.
	DefaultWrongCount int
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery int
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// DefaultRepetition holds the default value on creation for the "repetition" field.
	DefaultRepetition int
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// DefaultMeaningCorrect holds the default value on creation for the "meaning_correct" field.
	DefaultMeaningCorrect int
	// DefaultReadingCorrect holds the default value on creation for the "reading_correct" field.
	DefaultReadingCorrect int
)

// OrderOption defines the ordering options for the Item queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByMeaning orders the results by the meaning field.
func ByMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaning, opts...).ToFunc()
}

// ByReading orders the results by the reading field.
func ByReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReading, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewAt orders the results by the next_review_at field.
func ByNextReviewAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewAt, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByRepetition orders the results by the repetition field.
func ByRepetition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetition, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByMeaningCorrect orders the results by the meaning_correct field.
func ByMeaningCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaningCorrect, opts...).ToFunc()
}

// ByReadingCorrect orders the results by the reading_correct field.
func ByReadingCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingCorrect, opts...).ToFunc()
}
