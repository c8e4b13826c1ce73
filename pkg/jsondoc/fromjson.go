package jsondoc

import (
	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// FromJSON parses data into a [Value] tree. The heavy lifting is done by the
// jsonparser scanner; its events drive an [Assembler], the same construction
// contract any external parser uses. String payloads are decoded with the
// parser's full JSON unescaping, \uXXXX included; the narrower [Unescape]
// codec is not part of the parse path.
func FromJSON(data []byte) (Value, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse json")
	}
	a := NewAssembler()
	if err := feedValue(a, value, dataType); err != nil {
		return nil, err
	}
	return a.Root()
}

func feedValue(a *Assembler, value []byte, dataType jsonparser.ValueType) error {
	switch dataType {
	case jsonparser.Object:
		if err := a.BeginObject(); err != nil {
			return err
		}
		err := jsonparser.ObjectEach(value, func(key, v []byte, vt jsonparser.ValueType, _ int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return errors.Wrap(err, "parse object key")
			}
			if err := a.Key(k); err != nil {
				return err
			}
			return feedValue(a, v, vt)
		})
		if err != nil {
			return err
		}
		return a.EndObject()
	case jsonparser.Array:
		if err := a.BeginArray(); err != nil {
			return err
		}
		var elemErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, vt jsonparser.ValueType, _ int, cbErr error) {
			if elemErr != nil {
				return
			}
			if cbErr != nil {
				elemErr = cbErr
				return
			}
			elemErr = feedValue(a, v, vt)
		})
		if err != nil {
			return err
		}
		if elemErr != nil {
			return elemErr
		}
		return a.EndArray()
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return errors.Wrap(err, "parse string")
		}
		return a.StringValue(s)
	case jsonparser.Number:
		return a.NumberValue(string(value))
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return errors.Wrap(err, "parse boolean")
		}
		return a.BoolValue(b)
	case jsonparser.Null:
		return a.NullValue()
	default:
		return errors.Errorf("unsupported json value type %v", dataType)
	}
}
