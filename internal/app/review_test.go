package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/session"
	"github.com/mizutori/kioku/internal/srs"
	"github.com/mizutori/kioku/internal/store"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// stubEvents counts appends and fails with a fixed error when set.
type stubEvents struct {
	err      error
	appended int
}

func (s *stubEvents) AppendReviewEvent(context.Context, store.ReviewEventData) error {
	s.appended++
	return s.err
}

func (s *stubEvents) AppendUnlockEvent(context.Context, store.UnlockEventData) error {
	return s.err
}

func (s *stubEvents) RecentReviewAccuracy(context.Context, string, int) (float64, int, error) {
	return 0, 0, s.err
}

func (s *stubEvents) AllItemStats(context.Context) ([]store.ItemStats, error) {
	return nil, s.err
}

func testModel(t *testing.T, events store.EventRepo) reviewModel {
	t.Helper()
	graph, err := itemgraph.New([]itemgraph.Entry{
		{ID: "v1", Kind: itemgraph.KindVocabulary, Prompt: "犬", Meaning: "dog", Reading: "いぬ", Level: 1},
	})
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	policy, err := srs.New(srs.KindBackoff, srs.StageTable{})
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}
	runner := session.NewRunner(policy, graph,
		[]srs.Item{{ID: "v1", Status: srs.StatusActive}}, nil, session.QueueOpts{})
	return newReviewModel(runner, events, func() time.Time { return testNow })
}

func TestReviewModel_GradesCaseInsensitively(t *testing.T) {
	events := &stubEvents{}
	m := testModel(t, events)

	m.input.SetValue("  DOG ")
	m.submit()

	if !m.lastCorrect {
		t.Error("expected answer to grade correct")
	}
	if m.phase != phaseFeedback {
		t.Errorf("phase = %d, want feedback", m.phase)
	}
	if m.err != nil {
		t.Errorf("unexpected session error: %v", m.err)
	}
	if events.appended != 1 {
		t.Errorf("appended = %d, want 1", events.appended)
	}
}

func TestReviewModel_WrongAnswerGradesIncorrect(t *testing.T) {
	m := testModel(t, &stubEvents{})

	m.input.SetValue("cat")
	m.submit()

	if m.lastCorrect {
		t.Error("expected answer to grade incorrect")
	}
	if m.phase != phaseFeedback {
		t.Errorf("phase = %d, want feedback", m.phase)
	}
}

func TestReviewModel_EventAppendFailureSurfaced(t *testing.T) {
	// The transition persists before the history append, so a failed
	// append must not end the session, but it must not be swallowed
	// either: the summary reports it.
	wantErr := errors.New("disk full")
	m := testModel(t, &stubEvents{err: wantErr})

	m.input.SetValue("dog")
	m.submit()

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback (session continues)", m.phase)
	}
	if !errors.Is(m.err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", m.err, wantErr)
	}
	if item, _ := m.runner.Item("v1"); item.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1 (transition committed)", item.CorrectCount)
	}
}
