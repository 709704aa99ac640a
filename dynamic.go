package njson

import (
	"strconv"
	"strings"
)

// decodeDynamic infers a value from fragment syntax alone: objects
// become map[string]interface{}, arrays []interface{}, quoted text
// string, and bare tokens bool or a number. Anything unrecognised,
// including a malformed object, decodes to nil.
func (e *engine) decodeDynamic(frag string) interface{} {
	if frag == "" || frag == nullLiteral {
		return nil
	}
	switch frag[0] {
	case '{':
		if frag[len(frag)-1] != '}' {
			return nil
		}
		elements := e.sess.splitTopLevel(frag)
		defer e.sess.recycle(elements)
		if len(elements)%2 != 0 {
			return nil
		}
		result := make(map[string]interface{}, len(elements)/2)
		for i := 0; i+1 < len(elements); i += 2 {
			result[stripQuotes(elements[i])] = e.decodeDynamic(elements[i+1])
		}
		return result
	case '[':
		if frag[len(frag)-1] != ']' {
			return nil
		}
		elements := e.sess.splitTopLevel(frag)
		defer e.sess.recycle(elements)
		result := make([]interface{}, len(elements))
		for i, element := range elements {
			result[i] = e.decodeDynamic(element)
		}
		return result
	case '"':
		if len(frag) < 2 || frag[len(frag)-1] != '"' {
			return nil
		}
		// Dynamic strings only drop backslashes, no escape translation.
		return strings.ReplaceAll(frag[1:len(frag)-1], `\`, "")
	}
	if frag[0] == '-' || (frag[0] >= '0' && frag[0] <= '9') {
		if strings.ContainsRune(frag, '.') {
			if f, err := strconv.ParseFloat(frag, 64); err == nil {
				return f
			}
			return nil
		}
		if n, err := strconv.ParseInt(frag, 10, 64); err == nil {
			return n
		}
		return nil
	}
	switch frag {
	case "true":
		return true
	case "false":
		return false
	}
	return nil
}
