// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mizutori/kioku/ent/item"
	"github.com/mizutori/kioku/ent/reviewevent"
	"github.com/mizutori/kioku/ent/schema"
	"github.com/mizutori/kioku/ent/setting"
	"github.com/mizutori/kioku/ent/unlockevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescItemID is the schema descriptor for item_id field.
	itemDescItemID := itemFields[0].Descriptor()
	// item.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	item.ItemIDValidator = itemDescItemID.Validators[0].(func(string) error)
	// itemDescKind is the schema descriptor for kind field.
	itemDescKind := itemFields[1].Descriptor()
	// item.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	item.KindValidator = itemDescKind.Validators[0].(func(string) error)
	// itemDescPrompt is the schema descriptor for prompt field.
	itemDescPrompt := itemFields[2].Descriptor()
	// item.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	item.PromptValidator = itemDescPrompt.Validators[0].(func(string) error)
	// itemDescMeaning is the schema descriptor for meaning field.
	itemDescMeaning := itemFields[3].Descriptor()
	// item.DefaultMeaning holds the default value on creation for the meaning field.
	item.DefaultMeaning = itemDescMeaning.Default.(string)
	// itemDescReading is the schema descriptor for reading field.
	itemDescReading := itemFields[4].Descriptor()
	// item.DefaultReading holds the default value on creation for the reading field.
	item.DefaultReading = itemDescReading.Default.(string)
	// itemDescLevel is the schema descriptor for level field.
	itemDescLevel := itemFields[5].Descriptor()
	// item.DefaultLevel holds the default value on creation for the level field.
	item.DefaultLevel = itemDescLevel.Default.(int)
	// item.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	item.LevelValidator = itemDescLevel.Validators[0].(func(int) error)
	// itemDescStatus is the schema descriptor for status field.
	itemDescStatus := itemFields[7].Descriptor()
	// item.DefaultStatus holds the default value on creation for the status field.
	item.DefaultStatus = itemDescStatus.Default.(string)
	// itemDescStage is the schema descriptor for stage field.
	itemDescStage := itemFields[8].Descriptor()
	// item.DefaultStage holds the default value on creation for the stage field.
	item.DefaultStage = itemDescStage.Default.(int)
	// itemDescCorrectCount is the schema descriptor for correct_count field.
	itemDescCorrectCount := itemFields[9].Descriptor()
	// item.DefaultCorrectCount holds the default value on creation for the correct_count field.
	item.DefaultCorrectCount = itemDescCorrectCount.Default.(int)
	// itemDescWrongCount is the schema descriptor for wrong_count field.
	itemDescWrongCount := itemFields[10].Descriptor()
	// item.DefaultWrongCount holds the default value on creation for the wrong_count field.
	item.DefaultWrongCount = itemDescWrongCount.Default.(int)
	// itemDescStreak is the schema descriptor for streak field.
	itemDescStreak := itemFields[11].Descriptor()
	// item.DefaultStreak holds the default value on creation for the streak field.
	item.DefaultStreak = itemDescStreak.Default.(int)
	// itemDescMastery is the schema descriptor for mastery field.
	itemDescMastery := itemFields[14].Descriptor()
	// item.DefaultMastery holds the default value on creation for the mastery field.
	item.DefaultMastery = itemDescMastery.Default.(int)
	// itemDescEaseFactor is the schema descriptor for ease_factor field.
	itemDescEaseFactor := itemFields[15].Descriptor()
	// item.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	item.DefaultEaseFactor = itemDescEaseFactor.Default.(float64)
	// itemDescRepetition is the schema descriptor for repetition field.
	itemDescRepetition := itemFields[16].Descriptor()
	// item.DefaultRepetition holds the default value on creation for the repetition field.
	item.DefaultRepetition = itemDescRepetition.Default.(int)
	// itemDescIntervalDays is the schema descriptor for interval_days field.
	itemDescIntervalDays := itemFields[17].Descriptor()
	// item.DefaultIntervalDays holds the default value on creation for the interval_days field.
	item.DefaultIntervalDays = itemDescIntervalDays.Default.(int)
	// itemDescMeaningCorrect is the schema descriptor for meaning_correct field.
	itemDescMeaningCorrect := itemFields[18].Descriptor()
	// item.DefaultMeaningCorrect holds the default value on creation for the meaning_correct field.
	item.DefaultMeaningCorrect = itemDescMeaningCorrect.Default.(int)
	// itemDescReadingCorrect is the schema descriptor for reading_correct field.
	itemDescReadingCorrect := itemFields[19].Descriptor()
	// item.DefaultReadingCorrect holds the default value on creation for the reading_correct field.
	item.DefaultReadingCorrect = itemDescReadingCorrect.Default.(int)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescItemID is the schema descriptor for item_id field.
	revieweventDescItemID := revieweventFields[0].Descriptor()
	// reviewevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewevent.ItemIDValidator = revieweventDescItemID.Validators[0].(func(string) error)
	// revieweventDescTrack is the schema descriptor for track field.
	revieweventDescTrack := revieweventFields[1].Descriptor()
	// reviewevent.DefaultTrack holds the default value on creation for the track field.
	reviewevent.DefaultTrack = revieweventDescTrack.Default.(string)
	// revieweventDescDifficulty is the schema descriptor for difficulty field.
	revieweventDescDifficulty := revieweventFields[2].Descriptor()
	// reviewevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	reviewevent.DefaultDifficulty = revieweventDescDifficulty.Default.(string)
	// revieweventDescQuality is the schema descriptor for quality field.
	revieweventDescQuality := revieweventFields[3].Descriptor()
	// reviewevent.DefaultQuality holds the default value on creation for the quality field.
	reviewevent.DefaultQuality = revieweventDescQuality.Default.(int)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[0].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	// settingDescValue is the schema descriptor for value field.
	settingDescValue := settingFields[1].Descriptor()
	// setting.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	setting.ValueValidator = settingDescValue.Validators[0].(func(string) error)
	unlockeventMixin := schema.UnlockEvent{}.Mixin()
	unlockeventMixinFields0 := unlockeventMixin[0].Fields()
	_ = unlockeventMixinFields0
	unlockeventFields := schema.UnlockEvent{}.Fields()
	_ = unlockeventFields
	// unlockeventDescTimestamp is the schema descriptor for timestamp field.
	unlockeventDescTimestamp := unlockeventMixinFields0[1].Descriptor()
	// unlockevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	unlockevent.DefaultTimestamp = unlockeventDescTimestamp.Default.(func() time.Time)
	// unlockeventDescItemID is the schema descriptor for item_id field.
	unlockeventDescItemID := unlockeventFields[0].Descriptor()
	// unlockevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	unlockevent.ItemIDValidator = unlockeventDescItemID.Validators[0].(func(string) error)
	// unlockeventDescTrigger is the schema descriptor for trigger field.
	unlockeventDescTrigger := unlockeventFields[1].Descriptor()
	// unlockevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	unlockevent.TriggerValidator = unlockeventDescTrigger.Validators[0].(func(string) error)
}
