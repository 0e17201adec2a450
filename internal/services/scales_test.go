package services

import (
	"path/filepath"
	"testing"
)

func TestScaleDefinitions(t *testing.T) {
	all := Scales()
	if len(all) != 18 {
		t.Fatalf("expected 18 scales, got %d", len(all))
	}
	ids := ScaleIDs()
	if len(ids) != 18 {
		t.Fatalf("expected 18 scale ids, got %d", len(ids))
	}
	for i, sc := range all {
		if ids[i] != sc.ID {
			t.Fatalf("ScaleIDs order diverges at %d: %s vs %s", i, ids[i], sc.ID)
		}
		if len(sc.ItemIDs) == 0 {
			t.Fatalf("scale %s has no items", sc.ID)
		}
		if sc.NameI18n["ja"] == "" {
			t.Fatalf("scale %s has no Japanese name", sc.ID)
		}
	}
}

func TestScaleGroups(t *testing.T) {
	if len(StressorScales) != 6 || len(ReactionScales) != 6 || len(SupportScales) != 3 {
		t.Fatalf("group sizes = %d/%d/%d, want 6/6/3", len(StressorScales), len(ReactionScales), len(SupportScales))
	}
	grouped := map[string]bool{}
	for _, g := range [][]string{StressorScales, ReactionScales, SupportScales} {
		for _, id := range g {
			if grouped[id] {
				t.Fatalf("scale %s appears in more than one group", id)
			}
			grouped[id] = true
			if _, ok := ScaleByID(id); !ok {
				t.Fatalf("group references unknown scale %s", id)
			}
		}
	}
	// Display-only scales stay out of every group.
	for _, id := range []string{"meaningfulness", "job_satisfaction", "family_satisfaction"} {
		if grouped[id] {
			t.Fatalf("display-only scale %s must not belong to a group", id)
		}
	}
}

func TestScaleItemsCoverCatalog(t *testing.T) {
	items := LoadItems(filepath.Join("..", "..", "data", "questions.csv"))
	if len(items) == 0 {
		t.Fatalf("catalog not found")
	}
	known := map[string]bool{}
	for _, it := range items {
		known[it.ID] = true
	}
	used := map[string]bool{}
	for _, sc := range Scales() {
		for _, id := range sc.ItemIDs {
			if !known[id] {
				t.Fatalf("scale %s references unknown item %s", sc.ID, id)
			}
			if used[id] {
				t.Fatalf("item %s assigned to more than one scale", id)
			}
			used[id] = true
		}
	}
	if len(used) != len(items) {
		t.Fatalf("scales cover %d items, catalog has %d", len(used), len(items))
	}
}

func TestScaleName(t *testing.T) {
	sc, ok := ScaleByID("vigor")
	if !ok {
		t.Fatalf("vigor scale missing")
	}
	if got := ScaleName(sc, "ja"); got != "活気" {
		t.Fatalf("ja name = %q", got)
	}
	if got := ScaleName(sc, "en"); got != "Vigor" {
		t.Fatalf("en name = %q", got)
	}
	if got := ScaleName(sc, "fr"); got != "活気" {
		t.Fatalf("unknown locale must fall back to ja, got %q", got)
	}
}
