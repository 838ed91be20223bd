package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizutori/kioku/internal/srs"
)

// recentWindow is how many trailing reviews the Recent column covers.
const recentWindow = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-item review statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		kind, err := st.SettingRepo().Policy(ctx)
		if err != nil {
			return err
		}
		if kind == "" {
			kind = srs.KindBackoff
		}
		table := srs.DefaultTable(kind)

		records, err := st.ItemRepo().LoadItems(ctx)
		if err != nil {
			return err
		}
		stats, err := st.EventRepo().AllItemStats(ctx)
		if err != nil {
			return err
		}

		reviewed := make(map[string]struct{ reviews, correct int }, len(stats))
		for _, s := range stats {
			reviewed[s.ItemID] = struct{ reviews, correct int }{s.Reviews, s.Correct}
		}

		var active, locked, retired int
		fmt.Printf("%-20s  %-8s  %-10s  %7s  %8s  %6s\n", "Prompt", "Status", "Stage", "Reviews", "Accuracy", "Recent")
		fmt.Println(strings.Repeat("─", 70))
		for _, rec := range records {
			switch rec.State.Status {
			case srs.StatusActive:
				active++
			case srs.StatusLocked:
				locked++
			case srs.StatusRetired:
				retired++
			}

			rs := reviewed[rec.Entry.ID]
			acc := "-"
			if rs.reviews > 0 {
				acc = fmt.Sprintf("%.0f%%", 100*float64(rs.correct)/float64(rs.reviews))
			}

			recent := "-"
			if rs.reviews > 0 {
				racc, n, err := st.EventRepo().RecentReviewAccuracy(ctx, rec.Entry.ID, recentWindow)
				if err != nil {
					return err
				}
				if n > 0 {
					recent = fmt.Sprintf("%.0f%%", 100*racc)
				}
			}

			fmt.Printf("%-20s  %-8s  %-10s  %7d  %8s  %6s\n",
				truncate(rec.Entry.Prompt, 20), rec.State.Status,
				stageLabel(table, rec.State), rs.reviews, acc, recent)
		}

		fmt.Printf("\n%d item(s): %d active, %d locked, %d retired\n",
			len(records), active, locked, retired)
		return nil
	},
}
