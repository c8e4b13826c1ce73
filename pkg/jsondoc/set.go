package jsondoc

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Set is the set variant of [Value]: an insertion ordered sequence that
// silently drops additions structurally equal to an element already present.
// It composes the same plain sequence storage as [Array] instead of
// specializing it, so AsArray on a set is a type mismatch while AsSequence
// works on both.
//
// Sets are not safe for concurrent mutation.
type Set struct {
	items []Value
}

// NewSet returns a set holding vs, deduplicated one at a time in order.
func NewSet(vs ...Value) *Set {
	s := &Set{}
	s.Add(vs...)
	return s
}

// Add appends each value unless a structurally equal element is already
// present. Each argument is also checked against earlier arguments of the
// same call. A nil element is normalized to [Null], so a set holds at most
// one null.
func (s *Set) Add(vs ...Value) {
	for _, v := range vs {
		if v == nil || isNilValue(v) {
			v = Null()
		}
		if containsValue(s.items, v) {
			continue
		}
		s.items = append(s.items, v)
	}
}

// AddAll applies the add rule to every element of src in source order.
func (s *Set) AddAll(src Sequence) {
	for v := range src.Values() {
		s.Add(v)
	}
}

// AddAny converts each argument through [ValueOf] before adding.
func (s *Set) AddAny(vs ...any) error {
	for _, raw := range vs {
		v, err := ValueOf(raw)
		if err != nil {
			return err
		}
		s.Add(v)
	}
	return nil
}

// At returns the element at index i. It panics when i is out of range.
func (s *Set) At(i int) Value {
	return s.items[i]
}

// Len returns the number of elements.
func (s *Set) Len() int {
	return len(s.items)
}

// Values iterates the elements in first-insertion order.
func (s *Set) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether an element structurally equal to v is present.
// A nil v is normalized to [Null].
func (s *Set) Contains(v Value) bool {
	if v == nil || isNilValue(v) {
		v = Null()
	}
	return containsValue(s.items, v)
}

// RemoveAt deletes and returns the element at index i, shifting later
// elements down. It panics when i is out of range.
func (s *Set) RemoveAt(i int) Value {
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	return v
}

// Objects returns the elements as objects. Every element must be an object.
func (s *Set) Objects() ([]*Object, error) {
	out := make([]*Object, len(s.items))
	for i, v := range s.items {
		obj, err := v.AsObject()
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = obj
	}
	return out, nil
}

// Kind reports the active variant.
func (s *Set) Kind() Kind {
	return KindSet
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return len(s.items) == 0
}

// DeepClone returns a copy sharing no mutable state with the receiver.
func (s *Set) DeepClone() Value {
	return deepClone(s, 0)
}

// Equal reports structural equality: same elements in the same order. An
// Array holding an equal element sequence is equal too.
func (s *Set) Equal(other Value) bool {
	return equal(s, other, 0)
}

// Hash returns a structural hash consistent with Equal.
func (s *Set) Hash() uint64 {
	return hashValue(s, 0)
}

// RemoveEmpty descends into the elements without dropping any of them.
func (s *Set) RemoveEmpty() {
	removeEmptyValue(s, 0)
}

// String renders the set as compact JSON, using array syntax.
func (s *Set) String() string {
	return Serialize(s)
}

// AsObject fails; a set is not an object.
func (s *Set) AsObject() (*Object, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "set is not an object")
}

// AsArray fails; arrays and sets do not convert into each other.
func (s *Set) AsArray() (*Array, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "set is not an array")
}

// AsSet returns the receiver.
func (s *Set) AsSet() (*Set, error) {
	return s, nil
}

// AsSequence returns the receiver.
func (s *Set) AsSequence() (Sequence, error) {
	return s, nil
}

// AsString fails; a set is not a string.
func (s *Set) AsString() (string, error) {
	return "", errors.Wrap(ErrTypeMismatch, "set is not a string")
}

// AsInt64 fails; a set is not a number.
func (s *Set) AsInt64() (int64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "set is not a number")
}

// AsFloat64 fails; a set is not a number.
func (s *Set) AsFloat64() (float64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "set is not a number")
}

// AsBool fails; a set is not a boolean.
func (s *Set) AsBool() (bool, error) {
	return false, errors.Wrap(ErrTypeMismatch, "set is not a boolean")
}

// MarshalJSON implements json.Marshaler through the compact serializer.
func (s *Set) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, s), nil
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// array; elements are deduplicated in order while loading.
func (s *Set) UnmarshalJSON(data []byte) error {
	v, err := FromJSON(data)
	if err != nil {
		return err
	}
	arr, err := v.AsArray()
	if err != nil {
		return err
	}
	loaded := NewSet()
	loaded.AddAll(arr)
	*s = *loaded
	return nil
}

func (s *Set) sealed() {}
