package jsondoc

import "io"

// Serialize renders v as compact JSON. A nil value renders as the empty
// string.
func Serialize(v Value) string {
	return string(AppendJSON(nil, v))
}

// SerializePretty renders v indented with one tab per nesting level, a
// newline before each closing bracket, and a trailing newline ending the
// document. Within an array, an object element is rendered pretty while its
// scalar siblings stay on the line; prettiness is decided per element, not
// inherited by depth.
func SerializePretty(v Value) string {
	out := appendValue(nil, v, true, 0, 0)
	return string(append(out, '\n'))
}

// AppendJSON appends the compact rendering of v to dst and returns the
// extended buffer.
func AppendJSON(dst []byte, v Value) []byte {
	return appendValue(dst, v, false, 0, 0)
}

// Write renders v to w, compact or pretty. Pretty output ends with a
// newline. Output is UTF-8 and byte-identical to the Serialize forms; both
// share one escaping path.
func Write(w io.Writer, v Value, pretty bool) error {
	out := appendValue(nil, v, pretty, 0, 0)
	if pretty {
		out = append(out, '\n')
	}
	_, err := w.Write(out)
	return err
}

func appendValue(dst []byte, v Value, pretty bool, indent, depth int) []byte {
	if v == nil {
		return dst
	}
	checkDepth(depth)
	switch v := v.(type) {
	case *Object:
		dst = append(dst, '{')
		dst = appendNewline(dst, indent+1, pretty)
		first := true
		for i := range v.handles {
			val := v.values[i]
			if val == nil {
				// Absent host reference, not the null value: skipped.
				continue
			}
			if !first {
				dst = append(dst, ',')
				dst = appendNewline(dst, indent+1, pretty)
			}
			first = false
			dst = append(dst, '"')
			dst = AppendEscape(dst, v.key(i))
			dst = append(dst, '"', ':')
			dst = appendValue(dst, val, pretty, indent+1, depth+1)
		}
		dst = appendNewline(dst, indent, pretty)
		return append(dst, '}')
	case *Array:
		return appendSequence(dst, v.items, pretty, indent, depth)
	case *Set:
		return appendSequence(dst, v.items, pretty, indent, depth)
	case *Primitive:
		if v.kind == KindString {
			dst = append(dst, '"')
			dst = AppendEscape(dst, v.text)
			return append(dst, '"')
		}
		return append(dst, v.text...)
	}
	return dst
}

func appendSequence(dst []byte, items []Value, pretty bool, indent, depth int) []byte {
	dst = append(dst, '[')
	dst = appendNewline(dst, indent+1, pretty)
	for i, item := range items {
		// Objects inside a pretty array are rendered pretty; everything
		// else stays compact. The separator after an element follows that
		// element's prettiness.
		elemPretty := pretty && item.Kind() == KindObject
		dst = appendValue(dst, item, elemPretty, indent+1, depth+1)
		if i < len(items)-1 {
			dst = append(dst, ',')
			dst = appendNewline(dst, indent+1, elemPretty)
		}
	}
	dst = appendNewline(dst, indent, pretty)
	return append(dst, ']')
}

func appendNewline(dst []byte, n int, pretty bool) []byte {
	if !pretty {
		return dst
	}
	dst = append(dst, '\n')
	for range n {
		dst = append(dst, '\t')
	}
	return dst
}
