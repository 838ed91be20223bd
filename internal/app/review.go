package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/session"
	"github.com/mizutori/kioku/internal/srs"
	"github.com/mizutori/kioku/internal/store"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseSummary
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8FAFC")).Padding(1, 0)
	trackStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#14B8A6"))
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// reviewModel is the Bubble Tea model for one review session. All
// scheduling decisions come from the session runner; the model only
// collects answers and renders state.
type reviewModel struct {
	runner *session.Runner
	events store.EventRepo
	now    func() time.Time

	phase phase
	task  session.ReviewTask
	entry itemgraph.Entry
	input textinput.Model

	lastCorrect bool
	lastAnswer  string
	lastState   srs.Item
	err         error

	width  int
	height int
}

func newReviewModel(runner *session.Runner, events store.EventRepo, now func() time.Time) reviewModel {
	ti := textinput.New()
	ti.Placeholder = "answer"
	ti.Focus()

	m := reviewModel{
		runner: runner,
		events: events,
		now:    now,
		input:  ti,
	}
	m.advance()
	return m
}

// advance pulls the next due task from the runner, which recomputes the
// queue from current item state.
func (m *reviewModel) advance() {
	task, ok := m.runner.Next(m.now())
	if !ok {
		m.finish()
		return
	}
	entry, err := m.runner.Entry(task.ItemID)
	if err != nil {
		m.err = err
		m.phase = phaseSummary
		return
	}
	m.task = task
	m.entry = entry
	m.phase = phaseAsking
	m.input.Reset()
}

func (m *reviewModel) finish() {
	if _, err := m.runner.ResolveUnlocks(context.Background(), m.now()); err != nil {
		m.err = err
	}
	m.phase = phaseSummary
}

// expected returns the answer the current task checks against.
func (m reviewModel) expected() string {
	if m.task.Track == srs.TrackReading {
		return m.entry.Reading
	}
	return m.entry.Meaning
}

func (m *reviewModel) submit() {
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return
	}
	correct := strings.EqualFold(answer, strings.TrimSpace(m.expected()))

	before, _ := m.runner.Item(m.task.ItemID)
	updated, err := m.runner.Answer(context.Background(), m.task, srs.Answered(correct), m.now())
	if err != nil {
		m.err = err
		m.phase = phaseSummary
		return
	}

	if m.events != nil {
		outcome := srs.Answered(correct)
		appendErr := m.events.AppendReviewEvent(context.Background(), store.ReviewEventData{
			ItemID:       m.task.ItemID,
			Track:        m.task.Track,
			Difficulty:   outcome.Difficulty,
			Quality:      outcome.Quality,
			Correct:      correct,
			FromStage:    before.Stage,
			ToStage:      updated.Stage,
			NextReviewAt: updated.NextReviewAt,
		})
		if appendErr != nil {
			// The transition already persisted; keep the session going
			// but surface the lost history in the summary.
			m.err = fmt.Errorf("record review: %w", appendErr)
		}
	}

	m.lastCorrect = correct
	m.lastAnswer = answer
	m.lastState = updated
	m.phase = phaseFeedback
}

func (m reviewModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			switch m.phase {
			case phaseAsking:
				m.submit()
				return m, nil
			case phaseFeedback:
				m.advance()
				return m, nil
			case phaseSummary:
				return m, tea.Quit
			}
		default:
			if m.phase == phaseSummary {
				return m, tea.Quit
			}
		}
	}

	if m.phase == phaseAsking {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m reviewModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder
	res := m.runner.Result()
	b.WriteString(titleStyle.Render("kioku review"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d answered · %d correct", res.Answered, res.Correct)))
	b.WriteString("\n")

	switch m.phase {
	case phaseAsking:
		b.WriteString(promptStyle.Render(m.entry.Prompt))
		b.WriteString("\n")
		if m.task.Track != "" {
			b.WriteString(trackStyle.Render(string(m.task.Track)))
			b.WriteString("\n")
		}
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter: submit · Ctrl+C: quit"))

	case phaseFeedback:
		b.WriteString(promptStyle.Render(m.entry.Prompt))
		b.WriteString("\n")
		if m.lastCorrect {
			b.WriteString(correctStyle.Render("correct"))
		} else {
			b.WriteString(wrongStyle.Render(fmt.Sprintf("incorrect, expected %q", m.expected())))
		}
		b.WriteString("\n")
		if !m.lastState.NextReviewAt.IsZero() {
			b.WriteString(dimStyle.Render("next review " + m.lastState.NextReviewAt.Format("Jan 2 15:04")))
		} else if m.lastState.Status == srs.StatusRetired {
			b.WriteString(dimStyle.Render("retired, no further reviews"))
		}
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter: next"))

	case phaseSummary:
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(wrongStyle.Render("session error: " + m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("Session done: %d answered, %d correct\n", res.Answered, res.Correct))
		if res.Retired > 0 {
			b.WriteString(fmt.Sprintf("%d item(s) retired\n", res.Retired))
		}
		if len(res.Unlocked) > 0 {
			b.WriteString(fmt.Sprintf("%d item(s) unlocked\n", len(res.Unlocked)))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Press any key to exit"))
	}

	v.SetContent(b.String())
	return v
}
