package jsondoc

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"

	"github.com/pkg/errors"
)

// ValueOf converts a host value into a [Value]. It is the single
// normalization point for polymorphic insertion: container helpers route
// every non-Value input through here instead of overloading per type.
//
// Supported inputs: Value (returned as is), nil (the null value), string,
// bool, every int and uint width, float32, float64, json.Number, []any,
// []string and map[string]any. Map keys are sorted so the resulting object
// is deterministic. Anything else is an error.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		if isNilValue(v) {
			return Null(), nil
		}
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		return uintValue(v), nil
	case float32:
		return floatValue(float64(v), 32), nil
	case float64:
		return floatValue(v, 64), nil
	case json.Number:
		return Number(string(v))
	case []any:
		arr := NewArray()
		for i, item := range v {
			val, err := ValueOf(item)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			arr.Add(val)
		}
		return arr, nil
	case []string:
		arr := NewArray()
		for _, s := range v {
			arr.Add(String(s))
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		obj := NewObject()
		for _, k := range keys {
			val, err := ValueOf(v[k])
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			if err := obj.Put(k, val); err != nil {
				return nil, err
			}
		}
		return obj, nil
	default:
		return nil, errors.Errorf("cannot convert %T to a json value", v)
	}
}

// MustValueOf is [ValueOf] for inputs known to convert; it panics on error.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// isNilValue catches a typed nil smuggled in through the Value case, which
// would otherwise defer the nil deref to some later operation.
func isNilValue(v Value) bool {
	switch v := v.(type) {
	case *Object:
		return v == nil
	case *Array:
		return v == nil
	case *Set:
		return v == nil
	case *Primitive:
		return v == nil
	}
	return false
}

func uintValue(v uint64) Value {
	return &Primitive{kind: KindNumber, text: strconv.FormatUint(v, 10)}
}

// floatValue formats with the source width so a float32 input keeps its
// short decimal form instead of the float64 expansion of its bits.
func floatValue(v float64, bits int) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return &Primitive{kind: KindNumber, text: strconv.FormatFloat(v, 'g', -1, bits)}
}
