package jsondoc

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Array is the array variant of [Value]: an insertion ordered sequence of
// values. Arrays are not safe for concurrent mutation.
type Array struct {
	items []Value
}

// NewArray returns an array holding vs in order. Nil elements become the
// null value.
func NewArray(vs ...Value) *Array {
	a := &Array{}
	a.Add(vs...)
	return a
}

// Add appends each value in order. A nil element, including a Value holding
// a nil pointer, is normalized to [Null].
func (a *Array) Add(vs ...Value) {
	for _, v := range vs {
		if v == nil || isNilValue(v) {
			v = Null()
		}
		a.items = append(a.items, v)
	}
}

// AddAny converts each argument through [ValueOf] before appending.
func (a *Array) AddAny(vs ...any) error {
	for _, raw := range vs {
		v, err := ValueOf(raw)
		if err != nil {
			return err
		}
		a.Add(v)
	}
	return nil
}

// At returns the element at index i. It panics when i is out of range.
func (a *Array) At(i int) Value {
	return a.items[i]
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.items)
}

// Values iterates the elements in order.
func (a *Array) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range a.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether an element structurally equal to v is present.
// A nil v is normalized to [Null].
func (a *Array) Contains(v Value) bool {
	if v == nil || isNilValue(v) {
		v = Null()
	}
	return containsValue(a.items, v)
}

// RemoveAt deletes and returns the element at index i, shifting later
// elements down. It panics when i is out of range.
func (a *Array) RemoveAt(i int) Value {
	v := a.items[i]
	a.items = slices.Delete(a.items, i, i+1)
	return v
}

// Strings returns the elements as a string slice. Every element must coerce
// through AsString.
func (a *Array) Strings() ([]string, error) {
	out := make([]string, len(a.items))
	for i, v := range a.items {
		s, err := v.AsString()
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = s
	}
	return out, nil
}

// Kind reports the active variant.
func (a *Array) Kind() Kind {
	return KindArray
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool {
	return len(a.items) == 0
}

// DeepClone returns a copy sharing no mutable state with the receiver.
func (a *Array) DeepClone() Value {
	return deepClone(a, 0)
}

// Equal reports structural equality: same elements in the same order. A Set
// holding an equal element sequence is equal too.
func (a *Array) Equal(other Value) bool {
	return equal(a, other, 0)
}

// Hash returns a structural hash consistent with Equal.
func (a *Array) Hash() uint64 {
	return hashValue(a, 0)
}

// RemoveEmpty descends into the elements without dropping any of them.
func (a *Array) RemoveEmpty() {
	removeEmptyValue(a, 0)
}

// String renders the array as compact JSON.
func (a *Array) String() string {
	return Serialize(a)
}

// AsObject fails; an array is not an object.
func (a *Array) AsObject() (*Object, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "array is not an object")
}

// AsArray returns the receiver.
func (a *Array) AsArray() (*Array, error) {
	return a, nil
}

// AsSet fails; arrays and sets do not convert into each other.
func (a *Array) AsSet() (*Set, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "array is not a set")
}

// AsSequence returns the receiver.
func (a *Array) AsSequence() (Sequence, error) {
	return a, nil
}

// AsString fails; an array is not a string.
func (a *Array) AsString() (string, error) {
	return "", errors.Wrap(ErrTypeMismatch, "array is not a string")
}

// AsInt64 fails; an array is not a number.
func (a *Array) AsInt64() (int64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "array is not a number")
}

// AsFloat64 fails; an array is not a number.
func (a *Array) AsFloat64() (float64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "array is not a number")
}

// AsBool fails; an array is not a boolean.
func (a *Array) AsBool() (bool, error) {
	return false, errors.Wrap(ErrTypeMismatch, "array is not a boolean")
}

// MarshalJSON implements json.Marshaler through the compact serializer.
func (a *Array) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, a), nil
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// array.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := FromJSON(data)
	if err != nil {
		return err
	}
	arr, err := v.AsArray()
	if err != nil {
		return err
	}
	*a = *arr
	return nil
}

func (a *Array) sealed() {}
