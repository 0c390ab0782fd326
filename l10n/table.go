package l10n

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps a translation id to its per-language text.
type Table map[string]map[string]string

// Sheet is a parsed worksheet grid: a translation table plus the language
// column order from the header row.
type Sheet struct {
	Languages []string
	Table     Table

	index map[string]int
}

// Column returns the grid column for a language code, as declared by the
// header row.
func (s *Sheet) Column(lang string) (int, bool) {
	ix, ok := s.index[lang]

	return ix, ok
}

// ParseGrid converts a raw worksheet grid into a Sheet. The first row is the
// header: cell 0 must be 'id' (case-insensitive) and the remaining cells are
// language codes in column order.
func ParseGrid(grid [][]string) (*Sheet, error) {
	if len(grid) < 2 {
		return nil, fmt.Errorf("%w: expected a header row and at least one data row", ErrMalformedSheet)
	}

	// .. build language index
	header := grid[0]
	if len(header) < 1 || strings.ToLower(strings.TrimSpace(header[0])) != "id" {
		return nil, fmt.Errorf("%w: missing 'id' column", ErrMalformedSheet)
	}

	index := map[string]int{}
	languages := []string{}
	for i := 1; i < len(header); i++ {
		lang := strings.TrimSpace(header[i])
		if _, ok := index[lang]; ok {
			return nil, fmt.Errorf("%w: duplicate language column '%s'", ErrMalformedSheet, lang)
		}

		index[lang] = i
		languages = append(languages, lang)
	}

	// ... data rows
	table := Table{}
	for _, row := range grid[1:] {
		id := ""
		if len(row) > 0 {
			id = strings.TrimSpace(row[0])
		}

		if id == "" {
			continue
		}

		// NB: a duplicate id replaces the earlier row (last row wins)
		values := map[string]string{}
		for _, lang := range languages {
			v := ""
			if ix := index[lang]; ix < len(row) {
				v = row[ix]
			}

			values[lang] = Unescape(v)
		}

		table[id] = values
	}

	return &Sheet{
		Languages: languages,
		Table:     table,
		index:     index,
	}, nil
}

// MakeGrid encodes a resource set as a worksheet grid with header
// ['id', <sorted language codes>...] and one row per translation id in
// first-seen order.
func MakeGrid(resources *Resources) [][]string {
	languages := make([]string, len(resources.Languages))
	copy(languages, resources.Languages)
	sort.Strings(languages)

	header := append([]string{"id"}, languages...)

	grid := [][]string{header}
	for _, id := range resources.IDs {
		grid = append(grid, makeRow(id, resources.Table[id], languages))
	}

	return grid
}

func makeRow(id string, values map[string]string, languages []string) []string {
	row := []string{id}
	for _, lang := range languages {
		row = append(row, Escape(values[lang]))
	}

	return row
}

// Escape replaces embedded newlines with the literal two character sequence
// '\n' - worksheet cells cannot reliably hold real newlines.
func Escape(v string) string {
	return strings.ReplaceAll(v, "\n", `\n`)
}

// Unescape is the inverse of Escape, applied when reading cells back.
func Unescape(v string) string {
	return strings.ReplaceAll(v, `\n`, "\n")
}
