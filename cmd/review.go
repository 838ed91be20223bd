package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizutori/kioku/internal/app"
	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/session"
	"github.com/mizutori/kioku/internal/srs"
	"github.com/mizutori/kioku/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start an interactive review session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func init() {
	reviewCmd.Flags().String("policy", "", "Scheduling policy (backoff, fixed-stage, sm2, dual-track)")
	reviewCmd.Flags().String("table", "", "Path to a stage table JSON file")
	reviewCmd.Flags().Int("limit", 0, "Maximum reviews this session (0 = unlimited)")

	// The bare `kioku` invocation runs a review too.
	rootCmd.Flags().AddFlagSet(reviewCmd.Flags())
}

// runReview opens the store, builds the collection, and launches the TUI.
func runReview(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	policy, err := resolvePolicy(ctx, cmd, st)
	if err != nil {
		return err
	}

	graph, states, err := loadCollection(ctx, st)
	if err != nil {
		return err
	}
	for _, w := range graph.Warnings() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: item %s references missing prerequisite(s) %v\n", w.EntryID, w.Missing)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runner := session.NewRunner(policy, graph, states, st.ItemRepo(), session.QueueOpts{Limit: limit})

	res, err := app.Run(runner, st.EventRepo())
	if err != nil {
		return err
	}

	for _, id := range res.Unlocked {
		if err := st.EventRepo().AppendUnlockEvent(ctx, store.UnlockEventData{
			ItemID:  id,
			Trigger: "session",
		}); err != nil {
			return fmt.Errorf("record unlock: %w", err)
		}
	}

	fmt.Printf("Reviewed %d item(s), %d correct.\n", res.Answered, res.Correct)
	if len(res.Unlocked) > 0 {
		fmt.Printf("Unlocked %d new item(s).\n", len(res.Unlocked))
	}
	return nil
}

// loadCollection reads every item and splits it into the static entry
// graph and the mutable scheduling states.
func loadCollection(ctx context.Context, st *store.Store) (*itemgraph.Graph, []srs.Item, error) {
	records, err := st.ItemRepo().LoadItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load items: %w", err)
	}

	entries := make([]itemgraph.Entry, len(records))
	states := make([]srs.Item, len(records))
	for i, rec := range records {
		entries[i] = rec.Entry
		states[i] = rec.State
	}

	graph, err := itemgraph.New(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("build item graph: %w", err)
	}
	return graph, states, nil
}

// resolvePolicy picks the scheduling policy from, in priority order, the
// --table file, the --policy flag, and the stored collection setting. The
// chosen kind is persisted so later sessions stay consistent; a kind that
// conflicts with the stored one is rejected by the setting repo.
func resolvePolicy(ctx context.Context, cmd *cobra.Command, st *store.Store) (srs.Policy, error) {
	var (
		kind  srs.Kind
		table srs.StageTable
	)

	if path, _ := cmd.Flags().GetString("table"); path != "" {
		k, t, err := srs.LoadTableFile(path)
		if err != nil {
			return nil, fmt.Errorf("load stage table: %w", err)
		}
		kind, table = k, t
	} else if name, _ := cmd.Flags().GetString("policy"); name != "" {
		kind = srs.Kind(name)
	}

	stored, err := st.SettingRepo().Policy(ctx)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = stored
	}
	if kind == "" {
		kind = srs.KindBackoff
	}

	policy, err := srs.New(kind, table)
	if err != nil {
		return nil, err
	}
	if err := st.SettingRepo().SetPolicy(ctx, kind); err != nil {
		return nil, err
	}
	return policy, nil
}
