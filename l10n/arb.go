package l10n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resources is the translation table loaded from a directory of ARB files,
// with the id and language orders observed during the scan. Keys prefixed
// with '@' are ARB metadata, not translations - they are recorded but kept
// out of the table.
type Resources struct {
	Table     Table
	IDs       []string
	Languages []string
	Metadata  map[string]bool
}

// LoadResources scans a directory for ARB files named 'app_<code>.arb' and
// loads them into a single translation table. Files with any other name are
// ignored.
func LoadResources(dir string) (*Resources, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	resources := Resources{
		Table:    Table{},
		Metadata: map[string]bool{},
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		code, ok := languageCode(e.Name())
		if !ok {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResourceIO, err)
		}

		f, err := parseArb(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}

		resources.add(code, f)
	}

	return &resources, nil
}

// MergeArb merges the values for one language into an ARB file, preserving
// metadata entries and any keys not present in the table. A missing file
// starts from an empty mapping. Returns the number of keys written.
func MergeArb(path string, lang string, table Table) (int, error) {
	base := map[string]json.RawMessage{}

	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &base); err != nil {
			return 0, fmt.Errorf("%s: %w: %v", filepath.Base(path), ErrResourceParse, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	count := 0
	for id, values := range table {
		if v, ok := values[lang]; ok {
			encoded, err := jsonString(v)
			if err != nil {
				return 0, err
			}

			base[id] = encoded
			count++
		}
	}

	if err := writeArb(path, base); err != nil {
		return 0, err
	}

	return count, nil
}

// languageCode extracts the language code from an ARB file name - the
// segment between the first '_' and the first '.' e.g. 'app_en.arb' => 'en'.
func languageCode(filename string) (string, bool) {
	if !strings.HasPrefix(filename, "app_") || !strings.HasSuffix(filename, ".arb") {
		return "", false
	}

	parts := strings.Split(filename, "_")
	if len(parts) < 2 {
		return "", false
	}

	code := strings.Split(parts[1], ".")[0]
	if code == "" {
		return "", false
	}

	return code, true
}

type arbFile struct {
	keys     []string
	values   map[string]string
	metadata []string
}

// parseArb decodes an ARB file as a flat JSON object, preserving the
// document order of the keys. '@'-prefixed keys are collected as metadata;
// every other value must be a JSON string.
func parseArb(data []byte) (*arbFile, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceParse, err)
	}

	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object, got %v", ErrResourceParse, token)
	}

	f := arbFile{
		values: map[string]string{},
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResourceParse, err)
		}

		key := token.(string)

		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResourceParse, err)
		}

		if strings.HasPrefix(key, "@") {
			f.metadata = append(f.metadata, key)
			continue
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, fmt.Errorf("%w: value for '%s' is not a string", ErrResourceParse, key)
		}

		f.keys = append(f.keys, key)
		f.values[key] = value
	}

	// ... closing '}', then nothing but EOF
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceParse, err)
	}

	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after JSON object", ErrResourceParse)
	}

	return &f, nil
}

func (r *Resources) add(lang string, f *arbFile) {
	found := false
	for _, l := range r.Languages {
		if l == lang {
			found = true
			break
		}
	}

	if !found {
		r.Languages = append(r.Languages, lang)
	}

	for _, key := range f.metadata {
		r.Metadata[key] = true
	}

	for _, id := range f.keys {
		if _, seen := r.Table[id]; !seen {
			r.IDs = append(r.IDs, id)
			r.Table[id] = map[string]string{}
		}

		r.Table[id][lang] = f.values[id]
	}
}

// writeArb serializes a flat mapping with stable (sorted) key order, two
// space indentation and HTML escaping disabled so that non-ASCII text is
// written literally.
func writeArb(path string, entries map[string]json.RawMessage) error {
	var b bytes.Buffer

	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	return nil
}

func jsonString(v string) (json.RawMessage, error) {
	var b bytes.Buffer

	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceIO, err)
	}

	return json.RawMessage(bytes.TrimSuffix(b.Bytes(), []byte("\n"))), nil
}
