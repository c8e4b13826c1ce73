package jsondoc

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Primitive is the scalar variant of [Value]: a string, number, boolean or
// null. It stores the literal text of the value, so numbers keep their exact
// source text. Primitives are immutable once built.
type Primitive struct {
	kind Kind
	text string
}

var (
	nullValue  = &Primitive{kind: KindNull, text: "null"}
	trueValue  = &Primitive{kind: KindBool, text: "true"}
	falseValue = &Primitive{kind: KindBool, text: "false"}
)

// Null returns the shared null value: present, explicitly empty, distinct
// from an absent key.
func Null() Value {
	return nullValue
}

// String returns a string value holding v.
func String(v string) *Primitive {
	return &Primitive{kind: KindString, text: v}
}

// Int returns a number value holding v.
func Int(v int64) *Primitive {
	return &Primitive{kind: KindNumber, text: strconv.FormatInt(v, 10)}
}

// Float returns a number value holding v. JSON cannot encode NaN or the
// infinities; those map to the null value.
func Float(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nullValue
	}
	return &Primitive{kind: KindNumber, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool returns the boolean value for v.
func Bool(v bool) *Primitive {
	if v {
		return trueValue
	}
	return falseValue
}

// Number returns a number value for the literal text, validating it against
// the JSON number grammar.
func Number(text string) (*Primitive, error) {
	if !isValidNumber(text) {
		return nil, errors.Wrapf(ErrConversion, "%q is not a valid json number", text)
	}
	return &Primitive{kind: KindNumber, text: text}, nil
}

// isValidNumber reports whether s matches the JSON number grammar. The
// grammar is stricter than strconv accepts: no leading zeros, no hex or
// underscore forms, no NaN or infinities.
func isValidNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	switch {
	case i < len(s) && s[i] == '0':
		i++
	case i < len(s) && s[i] >= '1' && s[i] <= '9':
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == len(s) || !isDigit(s[i]) {
			return false
		}
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Text returns the literal text of the value: the raw string content, the
// number source text, "true", "false" or "null".
func (p *Primitive) Text() string {
	return p.text
}

// Kind reports the active variant.
func (p *Primitive) Kind() Kind {
	return p.kind
}

// IsEmpty reports true for the null value and the empty string.
func (p *Primitive) IsEmpty() bool {
	return p.kind == KindNull || (p.kind == KindString && p.text == "")
}

// DeepClone returns the receiver; primitives are immutable.
func (p *Primitive) DeepClone() Value {
	return p
}

// Equal reports whether other is a primitive of the same kind with the same
// text.
func (p *Primitive) Equal(other Value) bool {
	return equal(p, other, 0)
}

// Hash returns a structural hash consistent with Equal.
func (p *Primitive) Hash() uint64 {
	return hashValue(p, 0)
}

// RemoveEmpty does nothing on primitives.
func (p *Primitive) RemoveEmpty() {}

// String renders the value as compact JSON.
func (p *Primitive) String() string {
	return Serialize(p)
}

// AsObject fails; a primitive is not an object.
func (p *Primitive) AsObject() (*Object, error) {
	return nil, errors.Wrapf(ErrTypeMismatch, "%s is not an object", p.kind)
}

// AsArray fails; a primitive is not an array.
func (p *Primitive) AsArray() (*Array, error) {
	return nil, errors.Wrapf(ErrTypeMismatch, "%s is not an array", p.kind)
}

// AsSet fails; a primitive is not a set.
func (p *Primitive) AsSet() (*Set, error) {
	return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a set", p.kind)
}

// AsSequence fails; a primitive is not a sequence.
func (p *Primitive) AsSequence() (Sequence, error) {
	return nil, errors.Wrapf(ErrTypeMismatch, "%s is not a sequence", p.kind)
}

// AsString returns the value text. Numbers and booleans coerce to their
// literal text; null does not coerce.
func (p *Primitive) AsString() (string, error) {
	if p.kind == KindNull {
		return "", errors.Wrap(ErrTypeMismatch, "null is not a string")
	}
	return p.text, nil
}

// AsInt64 parses the text as an integer. Fractional text is truncated toward
// zero, the way a lossy numeric narrowing behaves.
func (p *Primitive) AsInt64() (int64, error) {
	if n, err := strconv.ParseInt(p.text, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(p.text, 64)
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.Wrapf(ErrConversion, "%q is not an integer", p.text)
	}
	return int64(f), nil
}

// AsFloat64 parses the text as a floating point number.
func (p *Primitive) AsFloat64() (float64, error) {
	f, err := strconv.ParseFloat(p.text, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrConversion, "%q is not a number", p.text)
	}
	return f, nil
}

// AsBool parses the text as a boolean. Only the exact literals "true" and
// "false" convert.
func (p *Primitive) AsBool() (bool, error) {
	switch p.text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Wrapf(ErrConversion, "%q is not a boolean", p.text)
}

func (p *Primitive) sealed() {}
