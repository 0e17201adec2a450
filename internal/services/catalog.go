package services

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// Item is one questionnaire entry loaded from the catalog source.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Reverse bool   `json:"reverse"`
}

// ParseReverse interprets the loosely-typed reverse column. Only the literal
// "true" (case-insensitive, surrounding whitespace ignored) marks an item as
// reverse-scored; every other value, including empty, "false" and "0", does not.
func ParseReverse(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// LoadItems reads the item catalog from a CSV file with columns id, text,
// reverse. A missing or unreadable source yields an empty catalog instead of
// an error; callers must treat zero items as a valid state and surface their
// own message.
func LoadItems(path string) []Item {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return readItems(f)
}

func readItems(r io.Reader) []Item {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}
	header := rows[0]
	idx := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	iID := idx("id")
	iText := idx("text")
	iRev := idx("reverse")
	if iID < 0 || iText < 0 {
		return nil
	}
	get := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}
	items := make([]Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := strings.TrimSpace(get(row, iID))
		if id == "" {
			continue
		}
		items = append(items, Item{
			ID:      id,
			Text:    strings.TrimSpace(get(row, iText)),
			Reverse: ParseReverse(get(row, iRev)),
		})
	}
	return items
}
