package cmd

import (
	"strconv"

	"github.com/mizutori/kioku/internal/srs"
)

// truncate shortens s to at most max runes, replacing the tail with "..."
// when it is cut. Prompts are mostly CJK text, so the cut must fall on a
// rune boundary, never a byte offset.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// stageLabel renders an item's stage for listings: the table's stage name
// when the progression has named stages, the bare index otherwise.
func stageLabel(table srs.StageTable, it srs.Item) string {
	if name := table.StageName(it.Stage); name != "" {
		return name
	}
	return strconv.Itoa(it.Stage)
}
