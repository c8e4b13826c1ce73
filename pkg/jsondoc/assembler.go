package jsondoc

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Assembler builds a [Value] tree from the flat event stream a streaming
// JSON parser produces: begin and end events for containers, Key between
// object entries, and one event per scalar. The first structural error
// sticks: later events become no-ops returning it, and [Assembler.Root]
// reports it.
//
// An Assembler is single use and not safe for concurrent use.
type Assembler struct {
	frames []assemblerFrame
	root   Value
	rooted bool
	err    error
}

// assemblerFrame is an open container. key holds the pending entry key when
// the container is an object and a Key event has arrived without its value.
type assemblerFrame struct {
	container Value
	key       string
	hasKey    bool
}

// NewAssembler returns an empty assembler.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// BeginObject opens an object at the current position.
func (a *Assembler) BeginObject() error {
	return a.begin(NewObject())
}

// BeginArray opens an array at the current position.
func (a *Assembler) BeginArray() error {
	return a.begin(NewArray())
}

// Key sets the entry key for the next value of the open object.
func (a *Assembler) Key(key string) error {
	if a.err != nil {
		return a.err
	}
	if len(a.frames) == 0 {
		return a.fail(errors.New("assembler: key outside an object"))
	}
	frame := &a.frames[len(a.frames)-1]
	if _, ok := frame.container.(*Object); !ok {
		return a.fail(errors.New("assembler: key inside an array"))
	}
	if frame.hasKey {
		return a.fail(errors.Errorf("assembler: key %q already pending", frame.key))
	}
	if !utf8.ValidString(key) {
		return a.fail(errors.Wrapf(ErrInvalidKey, "key %q is not valid utf-8", key))
	}
	frame.key, frame.hasKey = key, true
	return nil
}

// EndObject closes the open object.
func (a *Assembler) EndObject() error {
	if a.err != nil {
		return a.err
	}
	if len(a.frames) == 0 {
		return a.fail(errors.New("assembler: end of object with nothing open"))
	}
	frame := a.frames[len(a.frames)-1]
	if _, ok := frame.container.(*Object); !ok {
		return a.fail(errors.New("assembler: end of object closes an array"))
	}
	if frame.hasKey {
		return a.fail(errors.Errorf("assembler: key %q has no value", frame.key))
	}
	a.frames = a.frames[:len(a.frames)-1]
	return nil
}

// EndArray closes the open array.
func (a *Assembler) EndArray() error {
	if a.err != nil {
		return a.err
	}
	if len(a.frames) == 0 {
		return a.fail(errors.New("assembler: end of array with nothing open"))
	}
	frame := a.frames[len(a.frames)-1]
	if _, ok := frame.container.(*Array); !ok {
		return a.fail(errors.New("assembler: end of array closes an object"))
	}
	a.frames = a.frames[:len(a.frames)-1]
	return nil
}

// StringValue adds a string scalar at the current position.
func (a *Assembler) StringValue(v string) error {
	return a.place(String(v))
}

// NumberValue adds a number scalar from its literal text, which must match
// the JSON number grammar.
func (a *Assembler) NumberValue(text string) error {
	if a.err != nil {
		return a.err
	}
	n, err := Number(text)
	if err != nil {
		return a.fail(err)
	}
	return a.place(n)
}

// BoolValue adds a boolean scalar at the current position.
func (a *Assembler) BoolValue(v bool) error {
	return a.place(Bool(v))
}

// NullValue adds an explicit null at the current position.
func (a *Assembler) NullValue() error {
	return a.place(Null())
}

// Err returns the sticky error, if any.
func (a *Assembler) Err() error {
	return a.err
}

// Root returns the assembled value once every container has been closed.
func (a *Assembler) Root() (Value, error) {
	if a.err != nil {
		return nil, a.err
	}
	if len(a.frames) > 0 {
		return nil, errors.Errorf("assembler: %d containers left open", len(a.frames))
	}
	if !a.rooted {
		return nil, errors.New("assembler: no value assembled")
	}
	return a.root, nil
}

func (a *Assembler) fail(err error) error {
	if a.err == nil {
		a.err = err
	}
	return a.err
}

func (a *Assembler) begin(c Value) error {
	if a.err != nil {
		return a.err
	}
	if len(a.frames) >= maxNestingDepth {
		return a.fail(errors.Errorf("assembler: document deeper than %d levels", maxNestingDepth))
	}
	if err := a.place(c); err != nil {
		return err
	}
	a.frames = append(a.frames, assemblerFrame{container: c})
	return nil
}

// place puts v at the current position: the pending key of the open object,
// the end of the open array, or the document root.
func (a *Assembler) place(v Value) error {
	if a.err != nil {
		return a.err
	}
	if len(a.frames) == 0 {
		if a.rooted {
			return a.fail(errors.New("assembler: multiple root values"))
		}
		a.root = v
		a.rooted = true
		return nil
	}
	frame := &a.frames[len(a.frames)-1]
	switch c := frame.container.(type) {
	case *Object:
		if !frame.hasKey {
			return a.fail(errors.New("assembler: value before key in object"))
		}
		if err := c.Put(frame.key, v); err != nil {
			return a.fail(err)
		}
		frame.key, frame.hasKey = "", false
	case *Array:
		c.Add(v)
	}
	return nil
}
