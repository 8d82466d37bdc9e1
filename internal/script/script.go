package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/hooks/internal/todo"
)

// Action scripts: a list of {type, text} records, JSON or YAML picked by
// file extension. Read once, replayed in order.

// Dispatcher is the part of a store a script needs.
type Dispatcher interface {
	Dispatch(todo.Action) error
}

// Load reads and decodes the script at path. A missing file is reported with
// an error matching os.ErrNotExist.
func Load(path string) ([]todo.Action, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(b)
	default:
		return DecodeJSON(b)
	}
}

// DecodeJSON parses a JSON array of action records.
func DecodeJSON(b []byte) ([]todo.Action, error) {
	var recs []any
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return parse(recs)
}

// DecodeYAML parses a YAML sequence of action records.
func DecodeYAML(b []byte) ([]todo.Action, error) {
	var recs []any
	if err := yaml.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return parse(recs)
}

func parse(recs []any) ([]todo.Action, error) {
	out := make([]todo.Action, 0, len(recs))
	for i, r := range recs {
		rec, ok := r.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("action %d: %w", i+1, &todo.InvalidActionError{Reason: "not an object", Value: r})
		}
		a, err := todo.ParseAction(rec)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// Replay dispatches actions in order and stops at the first error. It returns
// how many were applied.
func Replay(d Dispatcher, actions []todo.Action) (int, error) {
	for i, a := range actions {
		if err := d.Dispatch(a); err != nil {
			return i, fmt.Errorf("action %d: %w", i+1, err)
		}
	}
	return len(actions), nil
}
