package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizutori/kioku/internal/session"
	"github.com/mizutori/kioku/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List items due for review",
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

		now := time.Now()
		tasks := session.BuildQueue(states, policy, now, session.QueueOpts{})
		if len(tasks) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		byID := make(map[string]srs.Item, len(states))
		for _, it := range states {
			byID[it.ID] = it
		}

		fmt.Printf("%-12s  %-20s  %-8s  %s\n", "Kind", "Prompt", "Track", "Overdue")
		fmt.Println(strings.Repeat("─", 60))
		for _, task := range tasks {
			entry, err := graph.Get(task.ItemID)
			if err != nil {
				return err
			}
			prompt := truncate(entry.Prompt, 20)
			overdue := "now"
			if h := byID[task.ItemID].OverdueHours(now); h >= 1 {
				overdue = fmt.Sprintf("%.0fh", h)
			}
			fmt.Printf("%-12s  %-20s  %-8s  %s\n", entry.Kind, prompt, task.Track, overdue)
		}
		fmt.Printf("\n%d task(s) due\n", len(tasks))
		return nil
	},
}

func init() {
	dueCmd.Flags().String("policy", "", "Scheduling policy (backoff, fixed-stage, sm2, dual-track)")
	dueCmd.Flags().String("table", "", "Path to a stage table JSON file")
}
