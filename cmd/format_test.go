package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/mizutori/kioku/internal/itemgraph"
	"github.com/mizutori/kioku/internal/srs"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short ascii unchanged", "dog", 20, "dog"},
		{"exact length unchanged", "water", 5, "water"},
		{"long ascii cut", "extraordinarily long prompt", 10, "extraor..."},
		{"kanji unchanged under limit", "水曜日", 20, "水曜日"},
		{"kanji cut on rune boundary", "水曜日に図書館へ行く", 8, "水曜日に図..."},
		{"tiny max", "図書館", 2, "図書"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}

func TestStageLabel(t *testing.T) {
	fixed := srs.DefaultTable(srs.KindFixedStage)
	backoff := srs.DefaultTable(srs.KindBackoff)

	tests := []struct {
		name  string
		table srs.StageTable
		item  srs.Item
		want  string
	}{
		{"named stage", fixed, srs.Item{Stage: 1}, "apprentice"},
		{"unnamed table falls back to index", backoff, srs.Item{Stage: 3}, "3"},
		{"stage past named table falls back to index", fixed, srs.Item{Stage: 9}, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stageLabel(tt.table, tt.item); got != tt.want {
				t.Errorf("stageLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidContentKind(t *testing.T) {
	for _, k := range itemgraph.AllContentKinds() {
		if !validContentKind(k) {
			t.Errorf("validContentKind(%q) = false, want true", k)
		}
	}
	if validContentKind("grammar") {
		t.Error("validContentKind(grammar) = true, want false")
	}
}
