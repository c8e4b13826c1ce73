package jsondoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsondoc-go/jsondoc/pkg/jsondoc"
)

func TestSet_Dedup(t *testing.T) {
	s := jsondoc.NewSet(jsondoc.String("42"), jsondoc.String("42"), jsondoc.String("43"))
	require.Equal(t, 2, s.Len())
	require.Equal(t, `["42","43"]`, jsondoc.Serialize(s))

	s.Add(jsondoc.String("42"))
	require.Equal(t, 2, s.Len())
}

func TestSet_DedupStructural(t *testing.T) {
	a := jsondoc.NewObject()
	require.NoError(t, a.Put("id", jsondoc.Int(1)))
	b := jsondoc.NewObject()
	require.NoError(t, b.Put("id", jsondoc.Int(1)))

	s := jsondoc.NewSet()
	s.Add(a, b)
	require.Equal(t, 1, s.Len())
	require.Same(t, a, s.At(0))
}

func TestSet_KindsStayDistinct(t *testing.T) {
	// The string "1" and the number 1 are different values.
	s := jsondoc.NewSet()
	require.NoError(t, s.AddAny(1, "1", 1))
	require.Equal(t, 2, s.Len())
	require.Equal(t, `[1,"1"]`, jsondoc.Serialize(s))
}

func TestSet_SingleNull(t *testing.T) {
	s := jsondoc.NewSet()
	s.Add(nil, jsondoc.Null(), nil)
	require.Equal(t, 1, s.Len())
	require.Equal(t, jsondoc.KindNull, s.At(0).Kind())
}

func TestSet_AddAll(t *testing.T) {
	arr := jsondoc.NewArray(jsondoc.Int(1), jsondoc.Int(2), jsondoc.Int(1))
	s := jsondoc.NewSet()
	s.AddAll(arr)
	require.Equal(t, 2, s.Len())
	require.Equal(t, `[1,2]`, jsondoc.Serialize(s))

	other := jsondoc.NewSet(jsondoc.Int(2), jsondoc.Int(3))
	s.AddAll(other)
	require.Equal(t, `[1,2,3]`, jsondoc.Serialize(s))
}

func TestSet_ContainsRemoveAt(t *testing.T) {
	s := jsondoc.NewSet(jsondoc.Int(1), jsondoc.Int(2))
	require.True(t, s.Contains(jsondoc.Int(1)))
	require.False(t, s.Contains(jsondoc.Int(9)))

	v := s.RemoveAt(0)
	require.True(t, v.Equal(jsondoc.Int(1)))
	require.False(t, s.Contains(jsondoc.Int(1)))
	require.Equal(t, 1, s.Len())

	// Removal opens the slot for a fresh add.
	s.Add(jsondoc.Int(1))
	require.Equal(t, `[2,1]`, jsondoc.Serialize(s))
}

func TestSet_Objects(t *testing.T) {
	a := jsondoc.NewObject()
	require.NoError(t, a.Put("id", jsondoc.Int(1)))
	b := jsondoc.NewObject()
	require.NoError(t, b.Put("id", jsondoc.Int(2)))

	s := jsondoc.NewSet(a, b)
	objs, err := s.Objects()
	require.NoError(t, err)
	require.Len(t, objs, 2)
	require.Same(t, a, objs[0])

	s.Add(jsondoc.Int(3))
	_, err = s.Objects()
	require.ErrorIs(t, err, jsondoc.ErrTypeMismatch)
}

func TestSet_JSONRoundTrip(t *testing.T) {
	s := jsondoc.NewSet(jsondoc.Int(1), jsondoc.Int(2))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.Equal(t, `[1,2]`, string(data))

	// Duplicates in the source document collapse while loading.
	restored := jsondoc.NewSet()
	require.NoError(t, json.Unmarshal([]byte(`[1,2,1,2,3]`), restored))
	require.Equal(t, `[1,2,3]`, jsondoc.Serialize(restored))
}
