package jsondoc

import (
	"iter"
	"slices"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/jsondoc-go/jsondoc/pkg/intern"
)

// Object is the object variant of [Value]: an insertion ordered key to value
// map stored as two parallel slices, one of interned key handles and one of
// child values. Lookup scans the handle slice linearly; for the small entry
// counts JSON documents typically have, that costs less than a hash table
// per instance, and key content is shared process-wide through
// [intern.DefaultRegistry].
//
// Objects are not safe for concurrent mutation.
type Object struct {
	handles []intern.Handle
	values  []Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

// find returns the entry index for handle h, or -1.
func (o *Object) find(h intern.Handle) int {
	for i, existing := range o.handles {
		if existing == h {
			return i
		}
	}
	return -1
}

func (o *Object) key(i int) string {
	return intern.DefaultRegistry.Resolve(o.handles[i])
}

// Put sets key to v, replacing the value in place when the key exists and
// appending a new entry otherwise. A nil v, including a Value holding a nil
// pointer, removes the key; store [Null] to keep an explicit null entry.
// Keys must be valid UTF-8.
func (o *Object) Put(key string, v Value) error {
	if !utf8.ValidString(key) {
		return errors.Wrapf(ErrInvalidKey, "key %q is not valid utf-8", key)
	}
	if v == nil || isNilValue(v) {
		o.Remove(key)
		return nil
	}
	h := intern.DefaultRegistry.Intern(key)
	if i := o.find(h); i >= 0 {
		o.values[i] = v
		return nil
	}
	o.handles = append(o.handles, h)
	o.values = append(o.values, v)
	return nil
}

// PutAny converts v through [ValueOf] before storing it. A nil v removes the
// key, like [Object.Put].
func (o *Object) PutAny(key string, v any) error {
	if v == nil {
		return o.Put(key, nil)
	}
	val, err := ValueOf(v)
	if err != nil {
		return err
	}
	return o.Put(key, val)
}

// Get returns the value for key, or nil when the key is absent. Looking up
// an unknown key never creates a registry entry.
func (o *Object) Get(key string) Value {
	h, ok := intern.DefaultRegistry.Lookup(key)
	if !ok {
		return nil
	}
	if i := o.find(h); i >= 0 {
		return o.values[i]
	}
	return nil
}

// GetPath walks nested objects along path and returns the value at the end,
// or nil when any segment is absent or a non-object intermediate is met.
func (o *Object) GetPath(path ...string) Value {
	cur := o
	for i, seg := range path {
		v := cur.Get(seg)
		if i == len(path)-1 {
			return v
		}
		next, ok := v.(*Object)
		if !ok {
			return nil
		}
		cur = next
	}
	return o
}

// GetString returns the string at key. ok is false when the key is absent,
// null, or not coercible.
func (o *Object) GetString(key string) (string, bool) {
	v := o.Get(key)
	if v == nil {
		return "", false
	}
	s, err := v.AsString()
	return s, err == nil
}

// GetInt64 returns the integer at key. ok is false when the key is absent,
// null, or not coercible.
func (o *Object) GetInt64(key string) (int64, bool) {
	v := o.Get(key)
	if v == nil {
		return 0, false
	}
	n, err := v.AsInt64()
	return n, err == nil
}

// GetFloat64 returns the float at key. ok is false when the key is absent,
// null, or not coercible.
func (o *Object) GetFloat64(key string) (float64, bool) {
	v := o.Get(key)
	if v == nil {
		return 0, false
	}
	f, err := v.AsFloat64()
	return f, err == nil
}

// GetBool returns the boolean at key. ok is false when the key is absent,
// null, or not coercible.
func (o *Object) GetBool(key string) (bool, bool) {
	v := o.Get(key)
	if v == nil {
		return false, false
	}
	b, err := v.AsBool()
	return b, err == nil
}

// GetObject returns the object at key, or ok=false when the key is absent or
// holds something else.
func (o *Object) GetObject(key string) (*Object, bool) {
	v := o.Get(key)
	if v == nil {
		return nil, false
	}
	obj, err := v.AsObject()
	return obj, err == nil
}

// GetArray returns the array at key, or ok=false when the key is absent or
// holds something else.
func (o *Object) GetArray(key string) (*Array, bool) {
	v := o.Get(key)
	if v == nil {
		return nil, false
	}
	arr, err := v.AsArray()
	return arr, err == nil
}

// GetOrCreateObject walks path, creating empty objects for missing segments,
// and returns the object at the end. Repeat calls return the same instance,
// so mutations through it persist. An existing non-object on the path is a
// type mismatch.
func (o *Object) GetOrCreateObject(path ...string) (*Object, error) {
	cur := o
	for _, seg := range path {
		v := cur.Get(seg)
		if v == nil {
			next := NewObject()
			if err := cur.Put(seg, next); err != nil {
				return nil, err
			}
			cur = next
			continue
		}
		next, err := v.AsObject()
		if err != nil {
			return nil, errors.Wrapf(err, "at path segment %q", seg)
		}
		cur = next
	}
	return cur, nil
}

// GetOrCreateArray is [Object.GetOrCreateObject] with an array at the last
// segment.
func (o *Object) GetOrCreateArray(path ...string) (*Array, error) {
	if len(path) == 0 {
		return nil, errors.Wrap(ErrInvalidKey, "empty path")
	}
	parent, err := o.GetOrCreateObject(path[:len(path)-1]...)
	if err != nil {
		return nil, err
	}
	last := path[len(path)-1]
	v := parent.Get(last)
	if v == nil {
		arr := NewArray()
		if err := parent.Put(last, arr); err != nil {
			return nil, err
		}
		return arr, nil
	}
	arr, err := v.AsArray()
	if err != nil {
		return nil, errors.Wrapf(err, "at path segment %q", last)
	}
	return arr, nil
}

// Remove deletes key and returns the removed value, or nil when the key is
// absent. Remaining entries keep their relative order.
func (o *Object) Remove(key string) Value {
	h, ok := intern.DefaultRegistry.Lookup(key)
	if !ok {
		return nil
	}
	i := o.find(h)
	if i < 0 {
		return nil
	}
	v := o.values[i]
	o.handles = slices.Delete(o.handles, i, i+1)
	o.values = slices.Delete(o.values, i, i+1)
	return v
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.handles)
}

// First returns the first entry in insertion order. It panics on an empty
// object.
func (o *Object) First() (string, Value) {
	return o.EntryAt(0)
}

// EntryAt returns the entry at position i in insertion order. It panics when
// i is out of range.
func (o *Object) EntryAt(i int) (string, Value) {
	return o.key(i), o.values[i]
}

// Entries iterates the entries in insertion order.
func (o *Object) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i := range o.handles {
			if !yield(o.key(i), o.values[i]) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.handles))
	for i := range o.handles {
		keys[i] = o.key(i)
	}
	return keys
}

// Kind reports the active variant.
func (o *Object) Kind() Kind {
	return KindObject
}

// IsEmpty reports whether the object has no entries.
func (o *Object) IsEmpty() bool {
	return len(o.handles) == 0
}

// DeepClone returns a copy sharing no mutable state with the receiver.
func (o *Object) DeepClone() Value {
	return deepClone(o, 0)
}

// Equal reports structural equality regardless of insertion order.
func (o *Object) Equal(other Value) bool {
	return equal(o, other, 0)
}

// Hash returns a structural hash consistent with Equal.
func (o *Object) Hash() uint64 {
	return hashValue(o, 0)
}

// RemoveEmpty drops empty-valued entries in a single pass, keeping entries
// whose value is an object and descending into surviving containers.
func (o *Object) RemoveEmpty() {
	removeEmptyValue(o, 0)
}

// String renders the object as compact JSON.
func (o *Object) String() string {
	return Serialize(o)
}

// AsObject returns the receiver.
func (o *Object) AsObject() (*Object, error) {
	return o, nil
}

// AsArray fails; an object is not an array.
func (o *Object) AsArray() (*Array, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "object is not an array")
}

// AsSet fails; an object is not a set.
func (o *Object) AsSet() (*Set, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "object is not a set")
}

// AsSequence fails; an object is not a sequence.
func (o *Object) AsSequence() (Sequence, error) {
	return nil, errors.Wrap(ErrTypeMismatch, "object is not a sequence")
}

// AsString fails; an object is not a string.
func (o *Object) AsString() (string, error) {
	return "", errors.Wrap(ErrTypeMismatch, "object is not a string")
}

// AsInt64 fails; an object is not a number.
func (o *Object) AsInt64() (int64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "object is not a number")
}

// AsFloat64 fails; an object is not a number.
func (o *Object) AsFloat64() (float64, error) {
	return 0, errors.Wrap(ErrTypeMismatch, "object is not a number")
}

// AsBool fails; an object is not a boolean.
func (o *Object) AsBool() (bool, error) {
	return false, errors.Wrap(ErrTypeMismatch, "object is not a boolean")
}

// MarshalJSON implements json.Marshaler through the compact serializer.
func (o *Object) MarshalJSON() ([]byte, error) {
	return AppendJSON(nil, o), nil
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// object.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := FromJSON(data)
	if err != nil {
		return err
	}
	obj, err := v.AsObject()
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

func (o *Object) sealed() {}
