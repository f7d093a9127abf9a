package jsondelta

import (
	"errors"
	"reflect"
	"sort"
)

// ErrMissingObjectHash is returned by Diff when hash-based array matching
// is requested without a hash function to drive it
var ErrMissingObjectHash = errors.New("jsondelta: array matching by hash requires an object hash function")

// Side tells a callback which input document a value belongs to
type Side uint8

const (
	// SideLeft is the source (before) document
	SideLeft Side = iota
	// SideRight is the destination (after) document
	SideRight
)

// String implements the fmt.Stringer interface
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Context identifies where a value handed to a callback came from: which
// input document, and the path of its enclosing container (the path before
// the current key or index is appended)
type Context struct {
	Side Side
	Path string
}

// HashFunc fingerprints an array element for content-based matching. it
// must be deterministic, and injective over elements the caller wants
// distinguished: colliding hashes silently pair as the same element
type HashFunc func(value interface{}, ctx Context) string

// FilterFunc reports whether an object key takes part in comparison on the
// given side. returning false excludes the key from add/remove/replace
// consideration on that side only, so asymmetric filtering is possible
type FilterFunc func(key string, ctx Context) bool

// ArrayMatching selects how the reconciler pairs array elements
type ArrayMatching uint8

const (
	// MatchAuto compares by hash when an object hash is configured,
	// by position otherwise
	MatchAuto ArrayMatching = iota
	// MatchByIndex always compares positionally, ignoring any object hash
	MatchByIndex
	// MatchByHash requires an object hash & fails fast without one
	MatchByHash
)

// Config are the possible configuration parameters for calculating diffs
type Config struct {
	// ObjectHash fingerprints array elements, enabling content-based array
	// comparison & move detection
	ObjectHash HashFunc
	// PropertyFilter excludes object keys from comparison per side
	PropertyFilter FilterFunc
	// IgnoreArrayMove suppresses move operations for reordered elements.
	// matched elements still compare for nested changes
	IgnoreArrayMove bool
	// ArrayMatching overrides strategy selection
	ArrayMatching ArrayMatching
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to Diff & New
type Option func(cfg *Config)

// WithObjectHash sets the element fingerprint function, switching array
// comparison to the hash strategy
func WithObjectHash(fn HashFunc) Option {
	return func(cfg *Config) {
		cfg.ObjectHash = fn
	}
}

// WithPropertyFilter sets the per-side key filter
func WithPropertyFilter(fn FilterFunc) Option {
	return func(cfg *Config) {
		cfg.PropertyFilter = fn
	}
}

// IgnoreArrayMoves disables move detection
func IgnoreArrayMoves() Option {
	return func(cfg *Config) {
		cfg.IgnoreArrayMove = true
	}
}

// WithArrayMatching forces an array matching strategy regardless of
// whether an object hash is configured
func WithArrayMatching(m ArrayMatching) Option {
	return func(cfg *Config) {
		cfg.ArrayMatching = m
	}
}

// Differ calculates patches between two documents. the zero-config differ
// compares arrays positionally & detects no moves
type Differ struct {
	cfg *Config
}

// New creates a Differ from zero or more options. a Differ holds no state
// between calls & is safe for concurrent use with independent inputs
func New(opts ...Option) *Differ {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Differ{cfg: cfg}
}

// Diff computes an ordered patch that transforms before into after.
// inputs are the go types produced by unmarshaling JSON:
//   map[string]interface{}
//   []interface{}
// and the scalars string, float64, bool & nil. values outside that set are
// compared by deep equality as if they were scalars; this is permissive
// behavior, not a validated contract
func Diff(before, after interface{}, opts ...Option) (Patch, error) {
	return New(opts...).Diff(before, after)
}

// Diff computes an ordered patch that transforms before into after
func (d *Differ) Diff(before, after interface{}) (Patch, error) {
	if d.cfg.ArrayMatching == MatchByHash && d.cfg.ObjectHash == nil {
		return nil, ErrMissingObjectHash
	}

	patch := Patch{}
	d.compare("", before, after, &patch)
	return patch, nil
}

// byHash reports whether the hash strategy reconciles arrays
func (d *Differ) byHash() bool {
	switch d.cfg.ArrayMatching {
	case MatchByIndex:
		return false
	case MatchByHash:
		return true
	}
	return d.cfg.ObjectHash != nil
}

// filtered reports whether a key is excluded from comparison on one side
func (d *Differ) filtered(key string, side Side, path string) bool {
	if d.cfg.PropertyFilter == nil {
		return false
	}
	return !d.cfg.PropertyFilter(key, Context{Side: side, Path: path})
}

// compare recurses into two values at path, appending operations to patch.
// objects compare against objects & arrays against arrays; every other
// pairing - scalars, mixed types, values outside the JSON universe -
// resolves to a single replace when the sides are unequal
func (d *Differ) compare(path string, left, right interface{}, patch *Patch) {
	leftObj, leftIsObj := left.(map[string]interface{})
	rightObj, rightIsObj := right.(map[string]interface{})
	leftArr, leftIsArr := left.([]interface{})
	rightArr, rightIsArr := right.([]interface{})

	switch {
	case leftIsArr && rightIsArr:
		d.compareArrays(path, leftArr, rightArr, patch)
	case leftIsObj && rightIsObj:
		d.compareObjects(path, leftObj, rightObj, patch)
	default:
		if !reflect.DeepEqual(left, right) {
			*patch = append(*patch, NewReplace(path, right))
		}
	}
}

// compareObjects walks right-side keys first, emitting adds, replaces &
// recursions, then emits removes for keys only the left side has. both
// passes run in sorted key order so output is deterministic
func (d *Differ) compareObjects(path string, left, right map[string]interface{}, patch *Patch) {
	for _, key := range sortedKeys(right) {
		if d.filtered(key, SideRight, path) {
			continue
		}

		rightVal := right[key]
		leftVal, inLeft := left[key]
		keyPath := appendKey(path, key)

		leftValArr, leftValIsArr := leftVal.([]interface{})
		rightValArr, rightValIsArr := rightVal.([]interface{})
		rightValObj, rightValIsObj := rightVal.(map[string]interface{})

		switch {
		case inLeft && leftValIsArr && rightValIsArr:
			d.compareArrays(keyPath, leftValArr, rightValArr, patch)
		case rightValIsObj:
			if !inLeft {
				*patch = append(*patch, NewAdd(keyPath, rightVal))
			} else if leftValObj, ok := leftVal.(map[string]interface{}); ok {
				d.compareObjects(keyPath, leftValObj, rightValObj, patch)
			} else {
				*patch = append(*patch, NewReplace(keyPath, rightVal))
			}
		default:
			if !inLeft {
				*patch = append(*patch, NewAdd(keyPath, rightVal))
			} else if !reflect.DeepEqual(leftVal, rightVal) {
				*patch = append(*patch, NewReplace(keyPath, rightVal))
			}
		}
	}

	for _, key := range sortedKeys(left) {
		if _, inRight := right[key]; inRight {
			continue
		}
		if d.filtered(key, SideLeft, path) {
			continue
		}
		*patch = append(*patch, NewRemove(appendKey(path, key)))
	}
}

// gotta sort keys for consistent output
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
