package jsondoc

import "fmt"

// Kind identifies which JSON variant a [Value] holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindSet
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns a human readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindSet:
		return "set"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}
