package jsondelta

import (
	"encoding/json"
)

// Op is the kind of edit an Operation describes. The values match the
// operation names defined in RFC 6902 section 4:
// https://datatracker.ietf.org/doc/html/rfc6902#section-4
type Op string

const (
	// OpAdd inserts a value at a path that must not already exist
	OpAdd = Op("add")
	// OpRemove deletes the value at a path
	OpRemove = Op("remove")
	// OpReplace overwrites the value at a path
	OpReplace = Op("replace")
	// OpMove relocates the value at From to Path
	OpMove = Op("move")
	// OpCopy duplicates the value at From to Path. the differ never emits
	// copy operations, the constant exists for hand-built patches
	OpCopy = Op("copy")
	// OpTest asserts the value at a path equals Value. like copy, reserved
	// for manual use
	OpTest = Op("test")
)

// Operation is a single edit in a patch
type Operation struct {
	// the kind of change
	Type Op `json:"op"`
	// Path locates where the operation applies in the destination document,
	// built from "/"-joined segments. segments are *not* escaped per
	// RFC 6901, keys containing "/" or "~" produce ambiguous paths
	Path string `json:"path"`
	// From is the source location for move & copy operations
	From string `json:"from,omitempty"`
	// Value carries data for add, replace & test operations
	Value interface{} `json:"value,omitempty"`
}

// Patch is an ordered sequence of operations. order matters: applying the
// operations in sequence to the source document reproduces the destination
type Patch []Operation

// NewAdd creates an add operation
func NewAdd(path string, value interface{}) Operation {
	return Operation{Type: OpAdd, Path: path, Value: value}
}

// NewRemove creates a remove operation
func NewRemove(path string) Operation {
	return Operation{Type: OpRemove, Path: path}
}

// NewReplace creates a replace operation
func NewReplace(path string, value interface{}) Operation {
	return Operation{Type: OpReplace, Path: path, Value: value}
}

// NewMove creates a move operation
func NewMove(from, path string) Operation {
	return Operation{Type: OpMove, From: from, Path: path}
}

// NewCopy creates a copy operation
func NewCopy(from, path string) Operation {
	return Operation{Type: OpCopy, From: from, Path: path}
}

// NewTest creates a test operation
func NewTest(path string, value interface{}) Operation {
	return Operation{Type: OpTest, Path: path, Value: value}
}

// hasValue reports whether the operation kind carries a value field on the
// wire. add, replace & test must keep "value" even when it's null or false,
// which a bare omitempty tag would drop
func (op Operation) hasValue() bool {
	switch op.Type {
	case OpAdd, OpReplace, OpTest:
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler, preserving null & false values
// for value-carrying operations
func (op Operation) MarshalJSON() ([]byte, error) {
	type wireOp struct {
		Type  Op              `json:"op"`
		Path  string          `json:"path"`
		From  string          `json:"from,omitempty"`
		Value json.RawMessage `json:"value,omitempty"`
	}

	w := wireOp{Type: op.Type, Path: op.Path, From: op.From}
	if op.hasValue() {
		data, err := json.Marshal(op.Value)
		if err != nil {
			return nil, err
		}
		w.Value = data
	}
	return json.Marshal(w)
}

// String renders the patch as indented JSON. a nil patch renders as an
// empty array
func (p Patch) String() string {
	if p == nil {
		p = Patch{}
	}
	data, _ := json.MarshalIndent([]Operation(p), "", "  ")
	return string(data)
}
