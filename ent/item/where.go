// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mizutori/kioku/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldKind, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMeaning, v))
}

// Reading applies equality check predicate on the "reading" field. It's identical to ReadingEQ.
func Reading(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldReading, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLevel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStatus, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStage, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCorrectCount, v))
}

// WrongCount applies equality check predicate on the "wrong_count" field. It's identical to WrongCountEQ.
func WrongCount(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldWrongCount, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStreak, v))
}

// LastReviewedAt applies equality check predicate on the "last_reviewed_at" field. It's identical to LastReviewedAtEQ.
func LastReviewedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastReviewedAt, v))
}

// NextReviewAt applies equality check predicate on the "next_review_at" field. It's identical to NextReviewAtEQ.
func NextReviewAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNextReviewAt, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMastery, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEaseFactor, v))
}

// Repetition applies equality check predicate on the "repetition" field. It's identical to RepetitionEQ.
func Repetition(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRepetition, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIntervalDays, v))
}

// MeaningCorrect applies equality check predicate on the "meaning_correct" field. It's identical to MeaningCorrectEQ.
func MeaningCorrect(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMeaningCorrect, v))
}

// ReadingCorrect applies equality check predicate on the "reading_correct" field. It's identical to ReadingCorrectEQ.
func ReadingCorrect(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldReadingCorrect, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldItemID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldKind, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldPrompt, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldMeaning, v))
}

// ReadingEQ applies the EQ predicate on the "reading" field.
func ReadingEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldReading, v))
}

// ReadingNEQ applies the NEQ predicate on the "reading" field.
func ReadingNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldReading, v))
}

// ReadingIn applies the In predicate on the "reading" field.
func ReadingIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldReading, vs...))
}

// ReadingNotIn applies the NotIn predicate on the "reading" field.
func ReadingNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldReading, vs...))
}

// ReadingGT applies the GT predicate on the "reading" field.
func ReadingGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldReading, v))
}

// ReadingGTE applies the GTE predicate on the "reading" field.
func ReadingGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldReading, v))
}

// ReadingLT applies the LT predicate on the "reading" field.
func ReadingLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldReading, v))
}

// ReadingLTE applies the LTE predicate on the "reading" field.
func ReadingLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldReading, v))
}

// ReadingContains applies the Contains predicate on the "reading" field.
func ReadingContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldReading, v))
}

// ReadingHasPrefix applies the HasPrefix predicate on the "reading" field.
func ReadingHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldReading, v))
}

// ReadingHasSuffix applies the HasSuffix predicate on the "reading" field.
func ReadingHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldReading, v))
}

// ReadingEqualFold applies the EqualFold predicate on the "reading" field.
func ReadingEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldReading, v))
}

// ReadingContainsFold applies the ContainsFold predicate on the "reading" field.
func ReadingContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldReading, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLevel, v))
}

// PrerequisitesIsNil applies the IsNil predicate on the "prerequisites" field.
func PrerequisitesIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldPrerequisites))
}

// PrerequisitesNotNil applies the NotNil predicate on the "prerequisites" field.
func PrerequisitesNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldPrerequisites))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldStatus, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldStage, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCorrectCount, v))
}

// WrongCountEQ applies the EQ predicate on the "wrong_count" field.
func WrongCountEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldWrongCount, v))
}

// WrongCountNEQ applies the NEQ predicate on the "wrong_count" field.
func WrongCountNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldWrongCount, v))
}

// WrongCountIn applies the In predicate on the "wrong_count" field.
func WrongCountIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldWrongCount, vs...))
}

// WrongCountNotIn applies the NotIn predicate on the "wrong_count" field.
func WrongCountNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldWrongCount, vs...))
}

// WrongCountGT applies the GT predicate on the "wrong_count" field.
func WrongCountGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldWrongCount, v))
}

// WrongCountGTE applies the GTE predicate on the "wrong_count" field.
func WrongCountGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldWrongCount, v))
}

// WrongCountLT applies the LT predicate on the "wrong_count" field.
func WrongCountLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldWrongCount, v))
}

// WrongCountLTE applies the LTE predicate on the "wrong_count" field.
func WrongCountLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldWrongCount, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldStreak, v))
}

// LastReviewedAtEQ applies the EQ predicate on the "last_reviewed_at" field.
func LastReviewedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtNEQ applies the NEQ predicate on the "last_reviewed_at" field.
func LastReviewedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLastReviewedAt, v))
}

// LastReviewedAtIn applies the In predicate on the "last_reviewed_at" field.
func LastReviewedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtNotIn applies the NotIn predicate on the "last_reviewed_at" field.
func LastReviewedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLastReviewedAt, vs...))
}

// LastReviewedAtGT applies the GT predicate on the "last_reviewed_at" field.
func LastReviewedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLastReviewedAt, v))
}

// LastReviewedAtGTE applies the GTE predicate on the "last_reviewed_at" field.
func LastReviewedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLastReviewedAt, v))
}

// LastReviewedAtLT applies the LT predicate on the "last_reviewed_at" field.
func LastReviewedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLastReviewedAt, v))
}

// LastReviewedAtLTE applies the LTE predicate on the "last_reviewed_at" field.
func LastReviewedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLastReviewedAt, v))
}

// LastReviewedAtIsNil applies the IsNil predicate on the "last_reviewed_at" field.
func LastReviewedAtIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldLastReviewedAt))
}

// LastReviewedAtNotNil applies the NotNil predicate on the "last_reviewed_at" field.
func LastReviewedAtNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldLastReviewedAt))
}

// NextReviewAtEQ applies the EQ predicate on the "next_review_at" field.
func NextReviewAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldNextReviewAt, v))
}

// NextReviewAtNEQ applies the NEQ predicate on the "next_review_at" field.
func NextReviewAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldNextReviewAt, v))
}

// NextReviewAtIn applies the In predicate on the "next_review_at" field.
func NextReviewAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldNextReviewAt, vs...))
}

// NextReviewAtNotIn applies the NotIn predicate on the "next_review_at" field.
func NextReviewAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldNextReviewAt, vs...))
}

// NextReviewAtGT applies the GT predicate on the "next_review_at" field.
func NextReviewAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldNextReviewAt, v))
}

// NextReviewAtGTE applies the GTE predicate on the "next_review_at" field.
func NextReviewAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldNextReviewAt, v))
}

// NextReviewAtLT applies the LT predicate on the "next_review_at" field.
func NextReviewAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldNextReviewAt, v))
}

// NextReviewAtLTE applies the LTE predicate on the "next_review_at" field.
func NextReviewAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldNextReviewAt, v))
}

// NextReviewAtIsNil applies the IsNil predicate on the "next_review_at" field.
func NextReviewAtIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldNextReviewAt))
}

// NextReviewAtNotNil applies the NotNil predicate on the "next_review_at" field.
func NextReviewAtNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldNextReviewAt))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMastery, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldEaseFactor, v))
}

// RepetitionEQ applies the EQ predicate on the "repetition" field.
func RepetitionEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldRepetition, v))
}

// RepetitionNEQ applies the NEQ predicate on the "repetition" field.
func RepetitionNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldRepetition, v))
}

// RepetitionIn applies the In predicate on the "repetition" field.
func RepetitionIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldRepetition, vs...))
}

// RepetitionNotIn applies the NotIn predicate on the "repetition" field.
func RepetitionNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldRepetition, vs...))
}

// RepetitionGT applies the GT predicate on the "repetition" field.
func RepetitionGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldRepetition, v))
}

// RepetitionGTE applies the GTE predicate on the "repetition" field.
func RepetitionGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldRepetition, v))
}

// RepetitionLT applies the LT predicate on the "repetition" field.
func RepetitionLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldRepetition, v))
}

// RepetitionLTE applies the LTE predicate on the "repetition" field.
func RepetitionLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldRepetition, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldIntervalDays, v))
}

// MeaningCorrectEQ applies the EQ predicate on the "meaning_correct" field.
func MeaningCorrectEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMeaningCorrect, v))
}

// MeaningCorrectNEQ applies the NEQ predicate on the "meaning_correct" field.
func MeaningCorrectNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMeaningCorrect, v))
}

// MeaningCorrectIn applies the In predicate on the "meaning_correct" field.
func MeaningCorrectIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMeaningCorrect, vs...))
}

// MeaningCorrectNotIn applies the NotIn predicate on the "meaning_correct" field.
func MeaningCorrectNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMeaningCorrect, vs...))
}

// MeaningCorrectGT applies the GT predicate on the "meaning_correct" field.
func MeaningCorrectGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMeaningCorrect, v))
}

// MeaningCorrectGTE applies the GTE predicate on the "meaning_correct" field.
func MeaningCorrectGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMeaningCorrect, v))
}

// MeaningCorrectLT applies the LT predicate on the "meaning_correct" field.
func MeaningCorrectLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMeaningCorrect, v))
}

// MeaningCorrectLTE applies the LTE predicate on the "meaning_correct" field.
func MeaningCorrectLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMeaningCorrect, v))
}

// ReadingCorrectEQ applies the EQ predicate on the "reading_correct" field.
func ReadingCorrectEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldReadingCorrect, v))
}

// ReadingCorrectNEQ applies the NEQ predicate on the "reading_correct" field.
func ReadingCorrectNEQ(v int) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldReadingCorrect, v))
}

// ReadingCorrectIn applies the In predicate on the "reading_correct" field.
func ReadingCorrectIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldReadingCorrect, vs...))
}

// ReadingCorrectNotIn applies the NotIn predicate on the "reading_correct" field.
func ReadingCorrectNotIn(vs ...int) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldReadingCorrect, vs...))
}

// ReadingCorrectGT applies the GT predicate on the "reading_correct" field.
func ReadingCorrectGT(v int) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldReadingCorrect, v))
}

// ReadingCorrectGTE applies the GTE predicate on the "reading_correct" field.
func ReadingCorrectGTE(v int) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldReadingCorrect, v))
}

// ReadingCorrectLT applies the LT predicate on the "reading_correct" field.
func ReadingCorrectLT(v int) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldReadingCorrect, v))
}

// ReadingCorrectLTE applies the LTE predicate on the "reading_correct" field.
func ReadingCorrectLTE(v int) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldReadingCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
