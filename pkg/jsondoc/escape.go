package jsondoc

import (
	"fmt"
	"unicode/utf8"
)

// Escape returns s escaped for embedding in JSON text. Control characters
// below 0x20 take their short escape where one exists (\b \n \t \f \r) and
// an uppercase \u00XX escape otherwise; at or above 0x20 only the quote and
// backslash are escaped. Runes outside the ranges legal in XML (0x9, 0xA,
// 0xD, 0x20-0xD7FF, 0xE000-0xFFFD, 0x10000-0x10FFFF) are silently dropped
// so serialized text stays embeddable in XML documents. The drop is lossy
// and is not reported as an error.
func Escape(s string) string {
	return string(AppendEscape(nil, s))
}

// AppendEscape appends the escaped form of s to dst and returns the extended
// buffer. See [Escape] for the policy.
func AppendEscape(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r < 0x20:
			switch r {
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\t':
				dst = append(dst, '\\', 't')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\r':
				dst = append(dst, '\\', 'r')
			default:
				dst = append(dst, fmt.Sprintf(`\u%04X`, r)...)
			}
		case allowedInXML(r):
			switch r {
			case '"':
				dst = append(dst, '\\', '"')
			case '\\':
				dst = append(dst, '\\', '\\')
			default:
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return dst
}

// allowedInXML reports whether r falls in the character ranges the XML
// specification permits: 0x9, 0xA, 0xD, 0x20-0xD7FF, 0xE000-0xFFFD and
// 0x10000-0x10FFFF.
func allowedInXML(r rune) bool {
	switch {
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	}
	return false
}

// Unescape reverses the escapes \t \n \r \" and \\ in s. Any other
// backslash pair passes through unchanged, including the \b, \f and \u
// forms that [Escape] writes. Unescape never decodes \u sequences.
func Unescape(s string) string {
	if len(s) < 2 {
		return s
	}
	buf := make([]byte, 0, len(s))
	i := 1
	for i < len(s) {
		if s[i-1] == '\\' {
			switch s[i] {
			case 't':
				buf = append(buf, '\t')
			case 'n':
				buf = append(buf, '\n')
			case 'r':
				buf = append(buf, '\r')
			case '"':
				buf = append(buf, '"')
			case '\\':
				buf = append(buf, '\\')
			default:
				buf = append(buf, s[i-1], s[i])
			}
			i += 2
		} else {
			buf = append(buf, s[i-1])
			i++
		}
	}
	if i == len(s) {
		buf = append(buf, s[i-1])
	}
	return string(buf)
}
