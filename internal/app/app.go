package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mizutori/kioku/internal/session"
	"github.com/mizutori/kioku/internal/store"
)

// Run starts the interactive review session. It returns once the user
// finishes the queue or quits, with the session totals.
func Run(runner *session.Runner, events store.EventRepo) (session.Result, error) {
	model := newReviewModel(runner, events, time.Now)
	p := tea.NewProgram(model)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return session.Result{}, err
	}
	return runner.Result(), nil
}
