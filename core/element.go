// Package core: the shared label + property-bag shape of nodes and edges.

package core

import (
	"fmt"
	"sort"
)

// Element is the common shape shared by Node and Edge: a label classifying
// the element's role, and a mutable bag of typed scalar properties.
// Keys are unique per element; insertion order is irrelevant.
type Element struct {
	// Label classifies this element's role within the graph (e.g. "book",
	// "writtenBy"). It is fixed at creation.
	Label string

	props map[string]Value
}

// SetProperty stores v under key, replacing any previous value.
// Property bags remain mutable after creation; queries and ingestion code
// add fields incrementally.
func (el *Element) SetProperty(key string, v Value) {
	if el.props == nil {
		el.props = make(map[string]Value)
	}
	el.props[key] = v
}

// Property returns the value stored under key and whether it was present.
func (el *Element) Property(key string) (Value, bool) {
	v, ok := el.props[key]
	return v, ok
}

// StringProperty reads key as a string scalar.
// Returns ErrPropertyMissing for an absent key, ErrPropertyType for a
// wrong-kind read.
func (el *Element) StringProperty(key string) (string, error) {
	v, ok := el.props[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPropertyMissing, key)
	}
	s, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("property %q: %w", key, err)
	}
	return s, nil
}

// IntProperty reads key as an int64 scalar.
func (el *Element) IntProperty(key string) (int64, error) {
	v, ok := el.props[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPropertyMissing, key)
	}
	i, err := v.AsInt()
	if err != nil {
		return 0, fmt.Errorf("property %q: %w", key, err)
	}
	return i, nil
}

// FloatProperty reads key as a float64 scalar.
func (el *Element) FloatProperty(key string) (float64, error) {
	v, ok := el.props[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPropertyMissing, key)
	}
	f, err := v.AsFloat()
	if err != nil {
		return 0, fmt.Errorf("property %q: %w", key, err)
	}
	return f, nil
}

// NumericProperty reads key as either numeric kind, widened to float64.
func (el *Element) NumericProperty(key string) (float64, error) {
	v, ok := el.props[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrPropertyMissing, key)
	}
	f, err := v.Numeric()
	if err != nil {
		return 0, fmt.Errorf("property %q: %w", key, err)
	}
	return f, nil
}

// PropertyKeys returns the bag's keys in sorted order, for reproducible
// diagnostics.
func (el *Element) PropertyKeys() []string {
	keys := make([]string, 0, len(el.props))
	for k := range el.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
