// Package jsondoc implements an in-memory JSON document model built for low
// memory overhead when many documents are held at once.
//
// A [Value] is a tagged union over objects, arrays, sets, strings, numbers,
// booleans and null. Objects store their entries as two parallel slices, one
// of interned key handles and one of child values, trading O(n) key lookup
// for far lower per-entry overhead than a hash table; key content is
// deduplicated process-wide through [intern.DefaultRegistry]. The serializer
// produces canonical compact or tab-indented text with an exact escaping
// policy ([Serialize], [Escape]).
//
// Individual documents are not safe for concurrent mutation; interning is.
package jsondoc

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// maxNestingDepth bounds recursion over value trees. Trees this deep are
// almost certainly cyclic, which the model does not support; recursive
// operations panic instead of looping forever.
const maxNestingDepth = 1000

// Value is a single JSON node: one of object, array, set, string, number,
// boolean or null. It is implemented only by [*Object], [*Array], [*Set] and
// [*Primitive].
//
// The null variant means "present, explicitly empty" and is distinct from an
// absent key, which reads as a nil Value.
type Value interface {
	// Kind reports the active variant.
	Kind() Kind

	// IsEmpty reports whether the value is an empty object, array, set or
	// string, or the null variant.
	IsEmpty() bool

	// DeepClone returns a copy sharing no mutable state with the receiver.
	DeepClone() Value

	// Equal reports structural equality: object entries compare regardless
	// of insertion order, sequence elements compare in order, and an Array
	// and a Set holding equal element sequences are equal.
	Equal(other Value) bool

	// Hash returns a structural hash consistent with Equal.
	Hash() uint64

	// RemoveEmpty drops empty-valued entries from nested objects in a
	// single pass. An entry survives when its value is an object, even an
	// empty one; surviving containers are descended into.
	RemoveEmpty()

	// AsObject, AsArray, AsSet and AsSequence narrow to a container and
	// fail with [ErrTypeMismatch] when the value is something else. The
	// scalar accessors AsString, AsInt64, AsFloat64 and AsBool coerce
	// primitive text and fail with [ErrConversion] only when the text does
	// not parse; on containers they fail with [ErrTypeMismatch].
	AsObject() (*Object, error)
	AsArray() (*Array, error)
	AsSet() (*Set, error)
	AsSequence() (Sequence, error)
	AsString() (string, error)
	AsInt64() (int64, error)
	AsFloat64() (float64, error)
	AsBool() (bool, error)

	// String renders the value as compact JSON.
	String() string

	sealed()
}

// Sequence is the ordered collection capability shared by [*Array] and
// [*Set].
type Sequence interface {
	Value

	// Len returns the number of elements.
	Len() int
	// At returns the element at index i.
	At(i int) Value
	// Values iterates the elements in order.
	Values() iter.Seq[Value]
}

func checkDepth(depth int) {
	if depth > maxNestingDepth {
		panic(fmt.Sprintf("jsondoc: value tree deeper than %d levels, giving up on what is probably a cycle", maxNestingDepth))
	}
}

func deepClone(v Value, depth int) Value {
	checkDepth(depth)
	switch v := v.(type) {
	case *Object:
		clone := &Object{
			handles: slices.Clone(v.handles),
			values:  make([]Value, len(v.values)),
		}
		for i, item := range v.values {
			clone.values[i] = deepClone(item, depth+1)
		}
		return clone
	case *Array:
		return &Array{items: cloneItems(v.items, depth)}
	case *Set:
		return &Set{items: cloneItems(v.items, depth)}
	case *Primitive:
		// Primitives are immutable, the original can be shared.
		return v
	}
	return nil
}

func cloneItems(items []Value, depth int) []Value {
	if items == nil {
		return nil
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = deepClone(item, depth+1)
	}
	return out
}

func equal(a, b Value, depth int) bool {
	checkDepth(depth)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *Object:
		other, ok := b.(*Object)
		if !ok || len(a.handles) != len(other.handles) {
			return false
		}
		// No duplicate handles per object, so matching every entry of a
		// against b covers both directions.
		for i, h := range a.handles {
			j := other.find(h)
			if j < 0 || !equal(a.values[i], other.values[j], depth+1) {
				return false
			}
		}
		return true
	case *Array:
		return equalSequence(a.items, b, depth)
	case *Set:
		return equalSequence(a.items, b, depth)
	case *Primitive:
		other, ok := b.(*Primitive)
		return ok && a.kind == other.kind && a.text == other.text
	}
	return false
}

func equalSequence(items []Value, b Value, depth int) bool {
	other, ok := sequenceItems(b)
	if !ok || len(items) != len(other) {
		return false
	}
	for i, item := range items {
		if !equal(item, other[i], depth+1) {
			return false
		}
	}
	return true
}

func sequenceItems(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case *Array:
		return v.items, true
	case *Set:
		return v.items, true
	}
	return nil, false
}

// Hash seeds keep values of different kinds apart even when their text
// matches. Arrays and sets share one seed because they can be Equal.
const (
	hashSeedObject   uint64 = 0x9e3779b97f4a7c15
	hashSeedSequence uint64 = 0xc2b2ae3d27d4eb4f
	hashSeedString   uint64 = 0x165667b19e3779f9
	hashSeedNumber   uint64 = 0x27d4eb2f165667c5
	hashSeedBool     uint64 = 0x85ebca77c2b2ae63
	hashSeedNull     uint64 = 0xff51afd7ed558ccd
	hashPrime        uint64 = 0x100000001b3
)

func hashValue(v Value, depth int) uint64 {
	checkDepth(depth)
	switch v := v.(type) {
	case *Object:
		h := hashSeedObject
		// Entry hashes are summed so insertion order does not matter,
		// matching Equal.
		for i := range v.handles {
			h += xxhash.Sum64String(v.key(i))*hashPrime ^ hashValue(v.values[i], depth+1)
		}
		return h
	case *Array:
		return hashSequence(v.items, depth)
	case *Set:
		return hashSequence(v.items, depth)
	case *Primitive:
		switch v.kind {
		case KindString:
			return xxhash.Sum64String(v.text) ^ hashSeedString
		case KindNumber:
			return xxhash.Sum64String(v.text) ^ hashSeedNumber
		case KindBool:
			return xxhash.Sum64String(v.text) ^ hashSeedBool
		default:
			return hashSeedNull
		}
	}
	return 0
}

func hashSequence(items []Value, depth int) uint64 {
	h := hashSeedSequence
	for _, item := range items {
		h = h*hashPrime + hashValue(item, depth+1)
	}
	return h
}

func removeEmptyValue(v Value, depth int) {
	checkDepth(depth)
	switch v := v.(type) {
	case *Object:
		kept := 0
		for i := range v.handles {
			val := v.values[i]
			if val != nil && val.IsEmpty() && val.Kind() != KindObject {
				continue
			}
			v.handles[kept] = v.handles[i]
			v.values[kept] = val
			if val != nil {
				removeEmptyValue(val, depth+1)
			}
			kept++
		}
		clear(v.values[kept:])
		v.handles = v.handles[:kept]
		v.values = v.values[:kept]
	case *Array:
		for _, item := range v.items {
			removeEmptyValue(item, depth+1)
		}
	case *Set:
		for _, item := range v.items {
			removeEmptyValue(item, depth+1)
		}
	}
}

func containsValue(items []Value, v Value) bool {
	for _, item := range items {
		if equal(item, v, 0) {
			return true
		}
	}
	return false
}
