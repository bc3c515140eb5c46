package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/spf13/afero"
)

// FileName is the manifest file at the root of a generated project.
const FileName = "package.json"

const filePerm = 0o644

// ErrNotObject is returned when a manifest is valid JSON but not an object.
var ErrNotObject = errors.New("manifest is not a JSON object")

// SetName returns data with its top-level "name" set to name, re-indented
// with two spaces and terminated by a newline. A missing "name" key is
// appended after the existing keys.
func SetName(data []byte, name string) ([]byte, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	data = bytes.TrimSpace(raw)
	if data[0] != '{' {
		return nil, ErrNotObject
	}

	var value bytes.Buffer
	enc := json.NewEncoder(&value)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(name); err != nil {
		return nil, fmt.Errorf("encoding name: %w", err)
	}

	patched, err := jsonparser.Set(data, bytes.TrimSuffix(value.Bytes(), []byte("\n")), "name")
	if err != nil {
		return nil, fmt.Errorf("setting name: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, patched, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting JSON: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PatchName rewrites the "name" field of the manifest at path in fsys.
func PatchName(fsys afero.Fs, path, name string) error {
	data, err := readFile(fsys, path)
	if err != nil {
		return err
	}

	patched, err := SetName(data, name)
	if err != nil {
		return fmt.Errorf("patching %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, patched, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// EngineRange returns the "engines.node" range declared by the manifest,
// or "" when none is declared.
func EngineRange(data []byte) string {
	v, err := jsonparser.GetString(data, "engines", "node")
	if err != nil {
		return ""
	}
	return v
}

func readFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
