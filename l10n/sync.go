package l10n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Worksheet is the remote tabular source for a sync run. The implementation
// in the commands package wraps a Google Sheets worksheet; tests substitute
// an in-memory grid.
type Worksheet interface {
	Get(ctx context.Context) ([][]string, error)
	Clear(ctx context.Context) error
	Put(ctx context.Context, grid [][]string) error
}

// FileUpdate is the per-file result of a pull.
type FileUpdate struct {
	File     string
	Language string
	Updated  int
}

// InitReport summarises an init run.
type InitReport struct {
	Languages []string
	Rows      int
}

// Pull downloads the worksheet and merges the translations into the ARB file
// for each language column, creating files for languages that do not have
// one yet. Files are written one at a time - a failure partway through
// leaves the earlier files updated.
func Pull(ctx context.Context, ws Worksheet, dir string) ([]FileUpdate, error) {
	grid, err := ws.Get(ctx)
	if err != nil {
		return nil, err
	}

	sheet, err := ParseGrid(grid)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0770); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	updates := []FileUpdate{}
	for _, lang := range sheet.Languages {
		file := filepath.Join(dir, arbFileName(lang))

		count, err := MergeArb(file, lang, sheet.Table)
		if err != nil {
			return nil, err
		}

		updates = append(updates, FileUpdate{
			File:     file,
			Language: lang,
			Updated:  count,
		})
	}

	return updates, nil
}

// Init replaces the entire worksheet with the contents of the resource
// directory. Destructive - any rows already in the worksheet are discarded,
// so this is intended for first-time setup only.
func Init(ctx context.Context, ws Worksheet, dir string) (*InitReport, error) {
	resources, err := LoadResources(dir)
	if err != nil {
		return nil, err
	}

	grid := MakeGrid(resources)

	if err := ws.Clear(ctx); err != nil {
		return nil, err
	}

	if err := ws.Put(ctx, grid); err != nil {
		return nil, err
	}

	return &InitReport{
		Languages: grid[0][1:],
		Rows:      len(grid) - 1,
	}, nil
}

// Push appends rows for translation ids present in the resource directory
// but missing from the worksheet. Existing rows are carried through
// verbatim - push adds ids, it never updates them. Returns the sorted list
// of added ids.
func Push(ctx context.Context, ws Worksheet, dir string) ([]string, error) {
	resources, err := LoadResources(dir)
	if err != nil {
		return nil, err
	}

	grid, err := ws.Get(ctx)
	if err != nil {
		return nil, err
	}

	var languages []string
	var existing Table

	if len(grid) == 0 {
		// ... empty worksheet: synthesize a header from the resource files
		languages = make([]string, len(resources.Languages))
		copy(languages, resources.Languages)
		sort.Strings(languages)

		grid = [][]string{append([]string{"id"}, languages...)}
		existing = Table{}
	} else {
		sheet, err := ParseGrid(grid)
		if err != nil {
			return nil, err
		}

		languages = sheet.Languages
		existing = sheet.Table
	}

	added := []string{}
	for _, id := range resources.IDs {
		if _, ok := existing[id]; !ok {
			added = append(added, id)
		}
	}

	sort.Strings(added)

	for _, id := range added {
		grid = append(grid, makeRow(id, resources.Table[id], languages))
	}

	if err := ws.Clear(ctx); err != nil {
		return nil, err
	}

	if err := ws.Put(ctx, grid); err != nil {
		return nil, err
	}

	return added, nil
}

func arbFileName(lang string) string {
	return fmt.Sprintf("app_%s.arb", lang)
}
