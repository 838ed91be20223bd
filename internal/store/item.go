package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mizutori/kioku/ent"
	"github.com/mizutori/kioku/ent/item"
	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) CreateItem(ctx context.Context, entry itemgraph.Entry) (ItemRecord, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Level < 1 {
		entry.Level = 1
	}

	status := srs.StatusActive
	if entry.Level > 1 || len(entry.Prerequisites) > 0 {
		status = srs.StatusLocked
	}

	row, err := r.client.Item.Create().
		SetItemID(entry.ID).
		SetKind(string(entry.Kind)).
		SetPrompt(entry.Prompt).
		SetMeaning(entry.Meaning).
		SetReading(entry.Reading).
		SetLevel(entry.Level).
		SetPrerequisites(entry.Prerequisites).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return ItemRecord{}, fmt.Errorf("create item: %w", err)
	}
	return recordFromRow(row), nil
}

func (r *itemRepo) LoadItems(ctx context.Context) ([]ItemRecord, error) {
	rows, err := r.client.Item.Query().
		Order(ent.Asc(item.FieldLevel), ent.Asc(item.FieldItemID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	records := make([]ItemRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records, nil
}

func (r *itemRepo) SaveItem(ctx context.Context, it srs.Item) error {
	builder := r.client.Item.Update().
		Where(item.ItemID(it.ID)).
		SetStatus(string(it.Status)).
		SetStage(it.Stage).
		SetCorrectCount(it.CorrectCount).
		SetWrongCount(it.WrongCount).
		SetStreak(it.Streak).
		SetMastery(it.Mastery).
		SetEaseFactor(it.EaseFactor).
		SetRepetition(it.Repetition).
		SetIntervalDays(it.IntervalDays).
		SetMeaningCorrect(it.Meaning.Correct).
		SetReadingCorrect(it.Reading.Correct)

	if it.LastReviewedAt.IsZero() {
		builder = builder.ClearLastReviewedAt()
	} else {
		builder = builder.SetLastReviewedAt(it.LastReviewedAt)
	}
	if it.NextReviewAt.IsZero() {
		builder = builder.ClearNextReviewAt()
	} else {
		builder = builder.SetNextReviewAt(it.NextReviewAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save item %s: %w", it.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("save item %s: not found", it.ID)
	}
	return nil
}

func (r *itemRepo) SaveItems(ctx context.Context, items []srs.Item) error {
	for _, it := range items {
		if err := r.SaveItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

func (r *itemRepo) DeleteAll(ctx context.Context) (int, error) {
	n, err := r.client.Item.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete items: %w", err)
	}
	return n, nil
}

func recordFromRow(row *ent.Item) ItemRecord {
	rec := ItemRecord{
		Entry: itemgraph.Entry{
			ID:            row.ItemID,
			Kind:          itemgraph.ContentKind(row.Kind),
			Prompt:        row.Prompt,
			Meaning:       row.Meaning,
			Reading:       row.Reading,
			Level:         row.Level,
			Prerequisites: row.Prerequisites,
		},
		State: srs.Item{
			ID:           row.ItemID,
			Status:       srs.Status(row.Status),
			Stage:        row.Stage,
			CorrectCount: row.CorrectCount,
			WrongCount:   row.WrongCount,
			Streak:       row.Streak,
			Mastery:      row.Mastery,
			EaseFactor:   row.EaseFactor,
			Repetition:   row.Repetition,
			IntervalDays: row.IntervalDays,
		},
	}
	rec.State.Meaning.Correct = row.MeaningCorrect
	rec.State.Reading.Correct = row.ReadingCorrect
	if row.LastReviewedAt != nil {
		rec.State.LastReviewedAt = *row.LastReviewedAt
	}
	if row.NextReviewAt != nil {
		rec.State.NextReviewAt = *row.NextReviewAt
	}
	return rec
}
