package todo

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/hooks/internal/store"
)

// TypeAdd is the discriminator of the add action.
const TypeAdd = "add"

// Action is a todo state transition. The set of variants is closed: Add and
// Unknown are the only implementations.
type Action interface {
	Type() string
	isAction()
}

// Add appends a new, not completed item with Text.
type Add struct {
	Text string
}

// Unknown carries an action type this reducer has no case for. Reducing it
// leaves the list unchanged.
type Unknown struct {
	Kind string
}

func (Add) Type() string       { return TypeAdd }
func (u Unknown) Type() string { return u.Kind }

func (Add) isAction()     {}
func (Unknown) isAction() {}

// ErrInvalidAction is matched by every *InvalidActionError and by the error a
// store returns for a nil action.
var ErrInvalidAction = store.ErrInvalidAction

// InvalidActionError reports an action record that has no usable
// discriminator or is missing its payload.
type InvalidActionError struct {
	Reason string
	Value  any
}

func (e *InvalidActionError) Error() string {
	if e.Value == nil {
		return "invalid action: " + e.Reason
	}
	return fmt.Sprintf("invalid action: %s (got %v)", e.Reason, e.Value)
}

func (e *InvalidActionError) Is(target error) bool { return target == ErrInvalidAction }

// ParseAction turns a loosely typed {type, ...payload} record into an Action.
// Records without a string type, and add records without a string text, are
// rejected; any other type becomes Unknown.
func ParseAction(rec map[string]any) (Action, error) {
	if rec == nil {
		return nil, &InvalidActionError{Reason: "not an object"}
	}
	raw, ok := rec["type"]
	if !ok {
		return nil, &InvalidActionError{Reason: "missing type field", Value: rec}
	}
	kind, ok := raw.(string)
	if !ok {
		return nil, &InvalidActionError{Reason: "type is not a string", Value: raw}
	}
	switch kind {
	case TypeAdd:
		text, ok := rec["text"].(string)
		if !ok {
			return nil, &InvalidActionError{Reason: "add needs a string text", Value: rec["text"]}
		}
		return Add{Text: text}, nil
	default:
		return Unknown{Kind: kind}, nil
	}
}

// DecodeAction parses one JSON action record.
func DecodeAction(b []byte) (Action, error) {
	var rec map[string]any
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, &InvalidActionError{Reason: "json: " + err.Error()}
	}
	return ParseAction(rec)
}
