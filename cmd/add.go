package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizutori/kioku/internal/itemgraph"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a learnable item to the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		kind, _ := cmd.Flags().GetString("kind")
		prompt, _ := cmd.Flags().GetString("prompt")
		meaning, _ := cmd.Flags().GetString("meaning")
		reading, _ := cmd.Flags().GetString("reading")
		level, _ := cmd.Flags().GetInt("level")
		prereqs, _ := cmd.Flags().GetStringSlice("requires")

		if !validContentKind(itemgraph.ContentKind(kind)) {
			return fmt.Errorf("unknown kind %q (want one of %v)", kind, itemgraph.AllContentKinds())
		}
		if prompt == "" {
			return fmt.Errorf("--prompt is required")
		}
		if meaning == "" && reading == "" {
			return fmt.Errorf("at least one of --meaning or --reading is required")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.ItemRepo().CreateItem(ctx, itemgraph.Entry{
			Kind:          itemgraph.ContentKind(kind),
			Prompt:        prompt,
			Meaning:       meaning,
			Reading:       reading,
			Level:         level,
			Prerequisites: prereqs,
		})
		if err != nil {
			return err
		}

		fmt.Printf("added %s %q (id %s, %s)\n", rec.Entry.Kind, rec.Entry.Prompt, rec.Entry.ID, rec.State.Status)
		return nil
	},
}

func validContentKind(kind itemgraph.ContentKind) bool {
	for _, k := range itemgraph.AllContentKinds() {
		if kind == k {
			return true
		}
	}
	return false
}

func init() {
	addCmd.Flags().String("kind", "vocabulary", "Item kind: vocabulary, cloze, or character")
	addCmd.Flags().String("prompt", "", "Prompt shown during review")
	addCmd.Flags().String("meaning", "", "Expected meaning answer")
	addCmd.Flags().String("reading", "", "Expected reading answer")
	addCmd.Flags().Int("level", 1, "Curriculum level (1 = available immediately)")
	addCmd.Flags().StringSlice("requires", nil, "Prerequisite item IDs")
}
