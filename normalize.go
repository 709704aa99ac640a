package njson

import (
	"bytes"
	"unsafe"
)

// compact returns src with every whitespace byte outside string literals
// removed. String literals are copied verbatim, escapes included, so the
// output stays byte-for-byte JSON otherwise.
func (s *session) compact(data []byte) string {
	s.buf.Reset()
	src := bytesToStringNoCopy(data)
	i := 0
	for i < len(src) {
		if src[i] == '"' {
			i = scanQuoted(src, i, &s.buf, s.hooks, true) + 1
			continue
		}
		if next := s.hooks.SkipWhitespace(src, i); next > i {
			i = next
			continue
		}
		s.buf.WriteByte(src[i])
		i++
	}
	return s.buf.String()
}

// scanQuoted scans the string literal opening at src[from] and returns
// the index of its matching unescaped closing quote. Every traversed
// byte, both quotes included, is appended to buf; a nil buf scans
// without copying. A backslash escapes exactly the next byte; when
// keepEscape is set the backslash itself is retained. With no closing
// quote the scan runs to end of input and the last index is returned.
func scanQuoted(src string, from int, buf *bytes.Buffer, hooks ScannerHooks, keepEscape bool) int {
	if buf != nil {
		buf.WriteByte(src[from])
	}
	i := from + 1
	for i < len(src) {
		quote, escape := hooks.FindQuoteOrEscape(src, i)
		if escape >= 0 {
			if buf != nil {
				buf.WriteString(src[i:escape])
				if keepEscape {
					buf.WriteByte('\\')
				}
				if escape+1 < len(src) {
					buf.WriteByte(src[escape+1])
				}
			}
			i = escape + 2
			continue
		}
		if quote >= 0 {
			if buf != nil {
				buf.WriteString(src[i : quote+1])
			}
			return quote
		}
		if buf != nil {
			buf.WriteString(src[i:])
		}
		break
	}
	return len(src) - 1
}

func bytesToStringNoCopy(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
