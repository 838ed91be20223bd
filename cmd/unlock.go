package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
	"github.com/mizutori/kioku/internal/store"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Unlock items whose prerequisites are met",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		byID := make(map[string]srs.Item, len(states))
		for _, it := range states {
			byID[it.ID] = it
		}

		ids := graph.Unlockable(byID, policy.Kind())
		if len(ids) == 0 {
			fmt.Println("Nothing to unlock.")
			return nil
		}

		for _, id := range ids {
			it := itemgraph.Unlock(byID[id])
			if err := st.ItemRepo().SaveItem(ctx, it); err != nil {
				return fmt.Errorf("unlock %s: %w", id, err)
			}
			if err := st.EventRepo().AppendUnlockEvent(ctx, store.UnlockEventData{
				ItemID:  id,
				Trigger: "manual",
			}); err != nil {
				return fmt.Errorf("record unlock: %w", err)
			}
			entry, _ := graph.Get(id)
			fmt.Printf("unlocked %s (%s)\n", entry.Prompt, entry.Kind)
		}
		fmt.Printf("\n%d item(s) unlocked\n", len(ids))
		return nil
	},
}

func init() {
	unlockCmd.Flags().String("policy", "", "Scheduling policy (backoff, fixed-stage, sm2, dual-track)")
	unlockCmd.Flags().String("table", "", "Path to a stage table JSON file")
}
