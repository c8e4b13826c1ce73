package jsondoc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsondoc-go/jsondoc/pkg/jsondoc"
)

func TestDeepClone_Independence(t *testing.T) {
	obj := jsondoc.NewObject()
	require.NoError(t, obj.Put("name", jsondoc.String("original")))
	inner := jsondoc.NewArray(jsondoc.Int(1), jsondoc.Int(2))
	require.NoError(t, obj.Put("items", inner))

	clone := obj.DeepClone()
	require.True(t, clone.Equal(obj))

	cloned, err := clone.AsObject()
	require.NoError(t, err)
	require.NoError(t, cloned.Put("name", jsondoc.String("changed")))
	arr, ok := cloned.GetArray("items")
	require.True(t, ok)
	arr.Add(jsondoc.Int(3))

	name, ok := obj.GetString("name")
	require.True(t, ok)
	require.Equal(t, "original", name)
	require.Equal(t, 2, inner.Len())
	require.False(t, clone.Equal(obj))
}

func TestDeepClone_Primitive(t *testing.T) {
	p := jsondoc.String("shared")
	require.Same(t, p, p.DeepClone())
}

func TestEqual_ObjectOrderIndependent(t *testing.T) {
	a := jsondoc.NewObject()
	require.NoError(t, a.Put("a", jsondoc.Int(1)))
	require.NoError(t, a.Put("b", jsondoc.Int(2)))

	b := jsondoc.NewObject()
	require.NoError(t, b.Put("b", jsondoc.Int(2)))
	require.NoError(t, b.Put("a", jsondoc.Int(1)))

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	require.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.Put("c", jsondoc.Null()))
	require.False(t, a.Equal(b))
}

func TestEqual_SequenceOrderDependent(t *testing.T) {
	a := jsondoc.NewArray(jsondoc.Int(1), jsondoc.Int(2))
	b := jsondoc.NewArray(jsondoc.Int(2), jsondoc.Int(1))
	require.False(t, a.Equal(b))

	c := jsondoc.NewArray(jsondoc.Int(1), jsondoc.Int(2))
	require.True(t, a.Equal(c))
	require.Equal(t, a.Hash(), c.Hash())
}

func TestEqual_ArraySetCrossKind(t *testing.T) {
	arr := jsondoc.NewArray(jsondoc.Int(1), jsondoc.Int(2))
	set := jsondoc.NewSet(jsondoc.Int(1), jsondoc.Int(2))

	require.True(t, arr.Equal(set))
	require.True(t, set.Equal(arr))
	require.Equal(t, arr.Hash(), set.Hash())

	set.Add(jsondoc.Int(3))
	require.False(t, arr.Equal(set))
}

func TestEqual_NullSemantics(t *testing.T) {
	require.True(t, jsondoc.Null().Equal(jsondoc.Null()))
	require.False(t, jsondoc.Null().Equal(nil))
	require.False(t, jsondoc.Null().Equal(jsondoc.String("")))
	require.False(t, jsondoc.Null().Equal(jsondoc.Bool(false)))
}

func TestEqual_PrimitiveKinds(t *testing.T) {
	require.True(t, jsondoc.Int(42).Equal(jsondoc.Int(42)))
	require.False(t, jsondoc.Int(42).Equal(jsondoc.Int(43)))
	require.False(t, jsondoc.String("42").Equal(jsondoc.Int(42)))
	require.True(t, jsondoc.Bool(true).Equal(jsondoc.Bool(true)))
	require.False(t, jsondoc.Bool(true).Equal(jsondoc.Bool(false)))
	require.False(t, jsondoc.NewObject().Equal(jsondoc.NewArray()))
}

func TestIsEmpty(t *testing.T) {
	full := jsondoc.NewObject()
	require.NoError(t, full.Put("k", jsondoc.Int(1)))

	tests := []struct {
		name  string
		value jsondoc.Value
		want  bool
	}{
		{name: "empty object", value: jsondoc.NewObject(), want: true},
		{name: "object with entry", value: full, want: false},
		{name: "empty array", value: jsondoc.NewArray(), want: true},
		{name: "array with element", value: jsondoc.NewArray(jsondoc.Int(0)), want: false},
		{name: "empty set", value: jsondoc.NewSet(), want: true},
		{name: "empty string", value: jsondoc.String(""), want: true},
		{name: "string", value: jsondoc.String("x"), want: false},
		{name: "zero number", value: jsondoc.Int(0), want: false},
		{name: "false", value: jsondoc.Bool(false), want: false},
		{name: "null", value: jsondoc.Null(), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.value.IsEmpty())
		})
	}
}

func TestKind(t *testing.T) {
	require.Equal(t, jsondoc.KindObject, jsondoc.NewObject().Kind())
	require.Equal(t, jsondoc.KindArray, jsondoc.NewArray().Kind())
	require.Equal(t, jsondoc.KindSet, jsondoc.NewSet().Kind())
	require.Equal(t, jsondoc.KindString, jsondoc.String("").Kind())
	require.Equal(t, jsondoc.KindNumber, jsondoc.Int(1).Kind())
	require.Equal(t, jsondoc.KindBool, jsondoc.Bool(true).Kind())
	require.Equal(t, jsondoc.KindNull, jsondoc.Null().Kind())

	require.Equal(t, "object", jsondoc.KindObject.String())
	require.Equal(t, "set", jsondoc.KindSet.String())
	require.Equal(t, "null", jsondoc.KindNull.String())
}

func TestCycleGuard(t *testing.T) {
	a := jsondoc.NewArray()
	a.Add(a)

	require.Panics(t, func() { a.DeepClone() })
	require.Panics(t, func() { a.Hash() })
	require.Panics(t, func() { jsondoc.Serialize(a) })

	b := jsondoc.NewArray()
	b.Add(b)
	require.Panics(t, func() { a.Equal(b) })
}

func TestPrimitiveConversions(t *testing.T) {
	t.Run("string coercions", func(t *testing.T) {
		n, err := jsondoc.String("123").AsInt64()
		require.NoError(t, err)
		require.Equal(t, int64(123), n)

		f, err := jsondoc.String("1.5").AsFloat64()
		require.NoError(t, err)
		require.Equal(t, 1.5, f)

		b, err := jsondoc.String("true").AsBool()
		require.NoError(t, err)
		require.True(t, b)

		_, err = jsondoc.String("not a number").AsInt64()
		require.ErrorIs(t, err, jsondoc.ErrConversion)
	})

	t.Run("number coercions", func(t *testing.T) {
		s, err := jsondoc.Int(7).AsString()
		require.NoError(t, err)
		require.Equal(t, "7", s)

		v := jsondoc.Float(2.9)
		n, err := v.AsInt64()
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		_, err = jsondoc.Int(1).AsBool()
		require.ErrorIs(t, err, jsondoc.ErrConversion)
	})

	t.Run("bool coercions", func(t *testing.T) {
		s, err := jsondoc.Bool(false).AsString()
		require.NoError(t, err)
		require.Equal(t, "false", s)

		_, err = jsondoc.Bool(true).AsInt64()
		require.ErrorIs(t, err, jsondoc.ErrConversion)
	})

	t.Run("null does not coerce", func(t *testing.T) {
		_, err := jsondoc.Null().AsString()
		require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

		_, err = jsondoc.Null().AsInt64()
		require.ErrorIs(t, err, jsondoc.ErrConversion)
	})

	t.Run("containers do not coerce", func(t *testing.T) {
		_, err := jsondoc.NewObject().AsInt64()
		require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

		_, err = jsondoc.NewArray().AsString()
		require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

		_, err = jsondoc.NewSet().AsBool()
		require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)
	})
}

func TestNarrowing(t *testing.T) {
	obj := jsondoc.NewObject()
	arr := jsondoc.NewArray()
	set := jsondoc.NewSet()

	got, err := obj.AsObject()
	require.NoError(t, err)
	require.Same(t, obj, got)

	_, err = obj.AsArray()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

	_, err = arr.AsSet()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

	_, err = set.AsArray()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

	seq, err := arr.AsSequence()
	require.NoError(t, err)
	require.Equal(t, 0, seq.Len())

	seq, err = set.AsSequence()
	require.NoError(t, err)
	require.Equal(t, 0, seq.Len())

	_, err = obj.AsSequence()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)

	_, err = jsondoc.Int(1).AsObject()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)
}

func TestNumber(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{text: "0"},
		{text: "-1"},
		{text: "12.75"},
		{text: "1.5e3"},
		{text: "1E-2"},
		{text: "-0.5"},
		{text: "", wantErr: true},
		{text: "01", wantErr: true},
		{text: "1.", wantErr: true},
		{text: ".5", wantErr: true},
		{text: "1e", wantErr: true},
		{text: "NaN", wantErr: true},
		{text: "0x10", wantErr: true},
		{text: "+1", wantErr: true},
		{text: "1_000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			n, err := jsondoc.Number(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, jsondoc.ErrConversion)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.text, n.Text())
		})
	}
}

func TestFloatSpecialValues(t *testing.T) {
	require.True(t, jsondoc.Float(0.1).Equal(jsondoc.MustValueOf(0.1)))

	require.Equal(t, jsondoc.KindNull, jsondoc.Float(math.NaN()).Kind())
	require.Equal(t, jsondoc.KindNull, jsondoc.Float(math.Inf(1)).Kind())
	require.Equal(t, jsondoc.KindNull, jsondoc.Float(math.Inf(-1)).Kind())
}
