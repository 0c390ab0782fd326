package l10n

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadResources(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": "Hi" }`)
	write(t, dir, "app_pl.arb", `{ "greet": "Witaj", "farewell": "Do widzenia" }`)

	expected := Table{
		"greet":    map[string]string{"en": "Hi", "pl": "Witaj"},
		"farewell": map[string]string{"pl": "Do widzenia"},
	}

	resources, err := LoadResources(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from LoadResources (%v)", err)
	}

	if !reflect.DeepEqual(resources.Table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, resources.Table)
	}

	if !reflect.DeepEqual(resources.IDs, []string{"greet", "farewell"}) {
		t.Errorf("Incorrect id order\n   expected: %v\n   got:      %v\n", []string{"greet", "farewell"}, resources.IDs)
	}

	if !reflect.DeepEqual(resources.Languages, []string{"en", "pl"}) {
		t.Errorf("Incorrect language list\n   expected: %v\n   got:      %v\n", []string{"en", "pl"}, resources.Languages)
	}
}

func TestLoadResourcesAndMakeGrid(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": "Hi" }`)
	write(t, dir, "app_pl.arb", `{ "greet": "Witaj", "farewell": "Do widzenia" }`)

	expected := [][]string{
		{"id", "en", "pl"},
		{"greet", "Hi", "Witaj"},
		{"farewell", "", "Do widzenia"},
	}

	resources, err := LoadResources(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from LoadResources (%v)", err)
	}

	grid := MakeGrid(resources)

	if !reflect.DeepEqual(grid, expected) {
		t.Errorf("Incorrect grid\n   expected: %v\n   got:      %v\n", expected, grid)
	}
}

func TestLoadResourcesIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": "Hi" }`)
	write(t, dir, "app_en.json", `{ "greet": "nope" }`)
	write(t, dir, "strings_pl.arb", `{ "greet": "nope" }`)
	write(t, dir, "app_.arb", `{ "greet": "nope" }`)
	write(t, dir, "README.md", `not JSON at all`)

	if err := os.Mkdir(filepath.Join(dir, "app_de.arb"), 0770); err != nil {
		t.Fatalf("Unexpected error creating subdirectory (%v)", err)
	}

	resources, err := LoadResources(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from LoadResources (%v)", err)
	}

	if !reflect.DeepEqual(resources.Languages, []string{"en"}) {
		t.Errorf("Incorrect language list\n   expected: %v\n   got:      %v\n", []string{"en"}, resources.Languages)
	}
}

func TestLoadResourcesWithMetadata(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "@@locale": "en", "hello": "Hi", "@hello": { "description": "greeting" } }`)

	resources, err := LoadResources(dir)
	if err != nil {
		t.Fatalf("Unexpected error returned from LoadResources (%v)", err)
	}

	expected := Table{
		"hello": map[string]string{"en": "Hi"},
	}

	if !reflect.DeepEqual(resources.Table, expected) {
		t.Errorf("Incorrect table\n   expected: %v\n   got:      %v\n", expected, resources.Table)
	}

	if !resources.Metadata["@hello"] || !resources.Metadata["@@locale"] {
		t.Errorf("Expected '@hello' and '@@locale' in the metadata set, got %v", resources.Metadata)
	}
}

func TestLoadResourcesWithInvalidJSON(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": `)

	_, err := LoadResources(dir)
	if !errors.Is(err, ErrResourceParse) {
		t.Fatalf("Expected ErrResourceParse for invalid JSON, got %v", err)
	}
}

func TestLoadResourcesWithTrailingContent(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": "Hi" } this is not JSON`)

	_, err := LoadResources(dir)
	if !errors.Is(err, ErrResourceParse) {
		t.Fatalf("Expected ErrResourceParse for trailing content, got %v", err)
	}
}

func TestLoadResourcesWithNonStringValue(t *testing.T) {
	dir := t.TempDir()

	write(t, dir, "app_en.arb", `{ "greet": 42 }`)

	_, err := LoadResources(dir)
	if !errors.Is(err, ErrResourceParse) {
		t.Fatalf("Expected ErrResourceParse for non-string value, got %v", err)
	}
}

func TestLoadResourcesWithMissingDirectory(t *testing.T) {
	_, err := LoadResources(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrResourceIO) {
		t.Fatalf("Expected ErrResourceIO for missing directory, got %v", err)
	}
}

func TestLanguageCode(t *testing.T) {
	tests := []struct {
		filename string
		code     string
		ok       bool
	}{
		{"app_en.arb", "en", true},
		{"app_pl.arb", "pl", true},
		{"app_en_US.arb", "en", true},
		{"app_.arb", "", false},
		{"app.arb", "", false},
		{"strings_en.arb", "", false},
		{"app_en.json", "", false},
	}

	for _, test := range tests {
		code, ok := languageCode(test.filename)
		if code != test.code || ok != test.ok {
			t.Errorf("Incorrect language code for '%s' - expected:%v,%v got:%v,%v", test.filename, test.code, test.ok, code, ok)
		}
	}
}

func TestMergeArb(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_en.arb")

	write(t, dir, "app_en.arb", `{ "@hello": { "description": "greeting" }, "hello": "Hi" }`)

	table := Table{
		"hello": map[string]string{"en": "Hello"},
	}

	count, err := MergeArb(file, "en", table)
	if err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	if count != 1 {
		t.Errorf("Incorrect update count - expected:%v, got:%v", 1, count)
	}

	expected := map[string]any{
		"@hello": map[string]any{"description": "greeting"},
		"hello":  "Hello",
	}

	if !reflect.DeepEqual(read(t, file), expected) {
		t.Errorf("Incorrect file content\n   expected: %v\n   got:      %v\n", expected, read(t, file))
	}
}

func TestMergeArbIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_en.arb")

	table := Table{
		"hello": map[string]string{"en": "Hello"},
		"bye":   map[string]string{"en": "Bye"},
	}

	count, err := MergeArb(file, "en", table)
	if err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	first, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Unexpected error reading merged file (%v)", err)
	}

	again, err := MergeArb(file, "en", table)
	if err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	second, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Unexpected error reading merged file (%v)", err)
	}

	if count != again {
		t.Errorf("Update counts differ across identical merges - first:%v, second:%v", count, again)
	}

	if string(first) != string(second) {
		t.Errorf("File content differs across identical merges\n   first:  %s\n   second: %s\n", first, second)
	}
}

func TestMergeArbLeavesUnrelatedKeysUntouched(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_en.arb")

	write(t, dir, "app_en.arb", `{ "greet": "Hi", "farewell": "Bye" }`)

	table := Table{
		"greet": map[string]string{"en": "Hello"},
	}

	if _, err := MergeArb(file, "en", table); err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	expected := map[string]any{
		"greet":    "Hello",
		"farewell": "Bye",
	}

	if !reflect.DeepEqual(read(t, file), expected) {
		t.Errorf("Incorrect file content\n   expected: %v\n   got:      %v\n", expected, read(t, file))
	}
}

func TestMergeArbSkipsAbsentLanguage(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_en.arb")

	table := Table{
		"greet": map[string]string{"pl": "Witaj"},
	}

	count, err := MergeArb(file, "en", table)
	if err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	if count != 0 {
		t.Errorf("Incorrect update count - expected:%v, got:%v", 0, count)
	}
}

func TestMergeArbWritesNonASCIILiterally(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_pl.arb")

	table := Table{
		"bye": map[string]string{"pl": "Cześć"},
	}

	if _, err := MergeArb(file, "pl", table); err != nil {
		t.Fatalf("Unexpected error returned from MergeArb (%v)", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Unexpected error reading merged file (%v)", err)
	}

	if !strings.Contains(string(data), "Cześć") {
		t.Errorf("Expected literal non-ASCII text in file, got:\n%s", data)
	}
}

func TestMergeArbWithInvalidBaseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app_en.arb")

	write(t, dir, "app_en.arb", `not JSON`)

	_, err := MergeArb(file, "en", Table{})
	if !errors.Is(err, ErrResourceParse) {
		t.Fatalf("Expected ErrResourceParse for invalid base file, got %v", err)
	}
}

func write(t *testing.T, dir string, filename string, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("Unexpected error writing fixture '%s' (%v)", filename, err)
	}
}

func read(t *testing.T, file string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Unexpected error reading '%s' (%v)", file, err)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unexpected error decoding '%s' (%v)", file, err)
	}

	return decoded
}
