package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a schema or data document has no content.
var ErrEmptyDocument = errors.New("schema: document is empty")

// Parse decodes a JSON or YAML schema document into its root node. A list at
// the root becomes a fragment. source is only used for error messages.
func Parse(data []byte, source string) (Node, error) {
	raw, err := decode(data, source)
	if err != nil {
		return Node{}, err
	}
	nodes := Collection(raw)
	switch len(nodes) {
	case 0:
		return Node{}, fmt.Errorf("schema: parse %s: root must be an object or a list of objects", source)
	case 1:
		return nodes[0], nil
	default:
		return Fragment(nodes...), nil
	}
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses a schema document from fsys.
func LoadFS(fsys fs.FS, path string) (Node, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Node{}, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// ParseData decodes an ambient data document. The root must be an object.
func ParseData(data []byte, source string) (map[string]any, error) {
	raw, err := decode(data, source)
	if err != nil {
		return nil, err
	}
	out, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema: parse %s: data root must be an object", source)
	}
	return out, nil
}

// LoadData reads and parses an ambient data document from disk.
func LoadData(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return ParseData(data, path)
}

func decode(data []byte, source string) (any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err == nil {
		return normalizeValue(raw), nil
	}
	raw = nil
	if err := yaml.Unmarshal(data, &raw); err == nil {
		return normalizeValue(raw), nil
	}
	return nil, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}
