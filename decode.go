package njson

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"github.com/viant/xunsafe"
)

const nullLiteral = "null"

type engine struct {
	opts        Options
	sess        *session
	caseKey     string
	compileName func(string) string
}

func newEngine(opts Options) *engine {
	return &engine{
		opts:        opts,
		sess:        newSession(opts.scannerHooks),
		caseKey:     opts.caseKey(),
		compileName: opts.compileName(),
	}
}

func (e *engine) release() { e.sess.release() }

func (e *engine) strict() bool { return e.opts.Mode == ModeStrict }

// fail surfaces err in strict mode; compat mode degrades to the zero value.
func (e *engine) fail(err error) error {
	if e.strict() {
		return err
	}
	return nil
}

// decodeFragment decodes one normalized fragment into the value ptr
// points at. An empty or null fragment keeps the destination default.
func (e *engine) decodeFragment(frag string, ptr unsafe.Pointer, rt reflect.Type) error {
	kind := shapeOf(rt)
	if kind == shapeInvalid {
		return fmt.Errorf("unsupported destination type %s", rt.String())
	}
	if frag == "" || frag == nullLiteral {
		return nil
	}
	switch kind {
	case shapeText:
		value, err := e.decodeText(frag)
		if err != nil {
			return err
		}
		*xunsafe.AsStringPtr(ptr) = value
		return nil
	case shapeBool:
		value, err := e.decodeBool(frag)
		if err != nil {
			return err
		}
		*xunsafe.AsBoolPtr(ptr) = value
		return nil
	case shapeInt:
		value, err := e.decodeInt(frag)
		if err != nil {
			return err
		}
		switch rt.Kind() {
		case reflect.Int:
			*xunsafe.AsIntPtr(ptr) = int(value)
		case reflect.Int8:
			*xunsafe.AsInt8Ptr(ptr) = int8(value)
		case reflect.Int16:
			*xunsafe.AsInt16Ptr(ptr) = int16(value)
		case reflect.Int32:
			*xunsafe.AsInt32Ptr(ptr) = int32(value)
		case reflect.Int64:
			*xunsafe.AsInt64Ptr(ptr) = value
		}
		return nil
	case shapeUint:
		value, err := e.decodeUint(frag)
		if err != nil {
			return err
		}
		switch rt.Kind() {
		case reflect.Uint:
			*xunsafe.AsUintPtr(ptr) = uint(value)
		case reflect.Uint8:
			*xunsafe.AsUint8Ptr(ptr) = uint8(value)
		case reflect.Uint16:
			*xunsafe.AsUint16Ptr(ptr) = uint16(value)
		case reflect.Uint32:
			*xunsafe.AsUint32Ptr(ptr) = uint32(value)
		case reflect.Uint64:
			*xunsafe.AsUint64Ptr(ptr) = value
		}
		return nil
	case shapeFloat:
		value, err := e.decodeFloat(frag)
		if err != nil {
			return err
		}
		if rt.Kind() == reflect.Float32 {
			*xunsafe.AsFloat32Ptr(ptr) = float32(value)
		} else {
			*xunsafe.AsFloat64Ptr(ptr) = value
		}
		return nil
	case shapeTime:
		return e.decodeTime(frag, ptr)
	case shapeSequence:
		return e.decodeSequence(frag, ptr, rt)
	case shapeMap:
		return e.decodeMap(frag, ptr, rt)
	case shapeRecord:
		return e.decodeRecordInto(frag, ptr, rt)
	case shapeDynamic:
		if value := e.decodeDynamic(frag); value != nil {
			reflect.NewAt(rt, ptr).Elem().Set(reflect.ValueOf(value))
		}
		return nil
	case shapePointer:
		inner := xunsafe.SafeDerefPointer(ptr, rt)
		return e.decodeFragment(frag, inner, rt.Elem())
	}
	return nil
}

// decodeText decodes a quoted fragment, translating two-character
// escapes and \uXXXX escapes. A fragment of just the quote pair is the
// empty string.
func (e *engine) decodeText(frag string) (string, error) {
	quoted := len(frag) >= 2 && frag[0] == '"' && frag[len(frag)-1] == '"'
	if !quoted {
		if e.strict() {
			return "", fmt.Errorf("expected string, got %q", frag)
		}
		return e.unescapeText(frag)
	}
	if len(frag) == 2 {
		return "", nil
	}
	return e.unescapeText(frag[1 : len(frag)-1])
}

func (e *engine) decodeBool(frag string) (bool, error) {
	if e.strict() && !strings.EqualFold(frag, "true") && !strings.EqualFold(frag, "false") {
		return false, fmt.Errorf("expected bool, got %q", frag)
	}
	return strings.EqualFold(frag, "true"), nil
}

func (e *engine) decodeInt(frag string) (int64, error) {
	value, err := strconv.ParseInt(frag, 10, 64)
	if err == nil {
		return value, nil
	}
	if e.strict() {
		return 0, fmt.Errorf("expected integer, got %q", frag)
	}
	if f, ferr := strconv.ParseFloat(frag, 64); ferr == nil {
		return int64(f), nil
	}
	return 0, nil
}

func (e *engine) decodeUint(frag string) (uint64, error) {
	value, err := strconv.ParseUint(frag, 10, 64)
	if err == nil {
		return value, nil
	}
	if e.strict() {
		return 0, fmt.Errorf("expected unsigned integer, got %q", frag)
	}
	if f, ferr := strconv.ParseFloat(frag, 64); ferr == nil && f >= 0 {
		return uint64(f), nil
	}
	return 0, nil
}

func (e *engine) decodeFloat(frag string) (float64, error) {
	value, err := strconv.ParseFloat(frag, 64)
	if err != nil {
		return 0, e.fail(fmt.Errorf("expected number, got %q", frag))
	}
	return value, nil
}

func (e *engine) decodeTime(frag string, ptr unsafe.Pointer) error {
	value, err := e.decodeText(frag)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(e.opts.TimeLayout, value)
	if err != nil {
		return e.fail(err)
	}
	*xunsafe.AsTimePtr(ptr) = parsed
	return nil
}

func (e *engine) decodeSequence(frag string, ptr unsafe.Pointer, rt reflect.Type) error {
	if len(frag) < 2 || frag[0] != '[' || frag[len(frag)-1] != ']' {
		return e.fail(fmt.Errorf("expected array for %s", rt.String()))
	}
	elements := e.sess.splitTopLevel(frag)
	defer e.sess.recycle(elements)
	elemType := rt.Elem()
	if rt.Kind() == reflect.Array {
		holder := reflect.NewAt(rt, ptr).Elem()
		limit := len(elements)
		if limit > holder.Len() {
			limit = holder.Len()
		}
		for i := 0; i < limit; i++ {
			item := reflect.New(elemType)
			if err := e.decodeFragment(elements[i], xunsafe.AsPointer(item.Interface()), elemType); err != nil {
				return err
			}
			holder.Index(i).Set(item.Elem())
		}
		return nil
	}
	slice := reflect.MakeSlice(rt, len(elements), len(elements))
	for i, element := range elements {
		item := reflect.New(elemType)
		if err := e.decodeFragment(element, xunsafe.AsPointer(item.Interface()), elemType); err != nil {
			return err
		}
		slice.Index(i).Set(item.Elem())
	}
	reflect.NewAt(rt, ptr).Elem().Set(slice)
	return nil
}

func (e *engine) decodeMap(frag string, ptr unsafe.Pointer, rt reflect.Type) error {
	if rt.Key().Kind() != reflect.String {
		return e.fail(fmt.Errorf("unsupported map key kind %s", rt.Key().Kind()))
	}
	if len(frag) < 2 || frag[0] != '{' || frag[len(frag)-1] != '}' {
		return e.fail(fmt.Errorf("expected object for %s", rt.String()))
	}
	elements := e.sess.splitTopLevel(frag)
	defer e.sess.recycle(elements)
	// Odd split count means a dangling member; the map stays nil.
	if len(elements)%2 != 0 {
		return e.fail(fmt.Errorf("object fragment for %s has a dangling member", rt.String()))
	}
	result := reflect.MakeMapWithSize(rt, len(elements)/2)
	valueType := rt.Elem()
	for i := 0; i+1 < len(elements); i += 2 {
		// Map keys are quote-stripped without escape interpretation,
		// unlike shape-directed string values.
		key := stripQuotes(elements[i])
		item := reflect.New(valueType)
		if err := e.decodeFragment(elements[i+1], xunsafe.AsPointer(item.Interface()), valueType); err != nil {
			return err
		}
		mapKey := reflect.New(rt.Key()).Elem()
		mapKey.SetString(key)
		result.SetMapIndex(mapKey, item.Elem())
	}
	reflect.NewAt(rt, ptr).Elem().Set(result)
	return nil
}

func (e *engine) unescapeText(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(raw) {
			if e.strict() {
				return "", fmt.Errorf("truncated escape sequence")
			}
			break
		}
		switch raw[i] {
		case '"', '\\', '/':
			out = append(out, raw[i])
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			decoded, size, ok := decodeUnicodeEscape(raw[i:])
			if !ok {
				if e.strict() {
					return "", fmt.Errorf("invalid unicode escape")
				}
				out = append(out, 'u')
				continue
			}
			out = utf8.AppendRune(out, decoded)
			i += size
		default:
			if e.strict() {
				return "", fmt.Errorf("invalid escape character %q", raw[i])
			}
			// Unknown escape degrades to the escaped byte itself.
			out = append(out, raw[i])
		}
	}
	return string(out), nil
}

// decodeUnicodeEscape interprets raw, positioned at the 'u' of a \uXXXX
// escape, and returns the decoded rune and the byte count consumed past
// the 'u'. Surrogate pairs spanning two escapes are combined; a lone
// surrogate decodes to U+FFFD.
func decodeUnicodeEscape(raw string) (rune, int, bool) {
	if len(raw) < 5 {
		return 0, 0, false
	}
	r, ok := parseHex4(raw[1:5])
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, 4, true
	}
	if len(raw) >= 11 && raw[5] == '\\' && raw[6] == 'u' {
		if r2, ok := parseHex4(raw[7:11]); ok {
			if paired := utf16.DecodeRune(r, r2); paired != utf8.RuneError {
				return paired, 10, true
			}
		}
	}
	return utf8.RuneError, 4, true
}

func parseHex4(s string) (rune, bool) {
	if len(s) != 4 {
		return 0, false
	}
	var v rune
	for i := 0; i < 4; i++ {
		c := s[i]
		var d rune
		switch {
		case c >= '0' && c <= '9':
			d = rune(c - '0')
		case c >= 'a' && c <= 'f':
			d = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = rune(c-'A') + 10
		default:
			return 0, false
		}
		v = (v << 4) | d
	}
	return v, true
}

func stripQuotes(frag string) string {
	if len(frag) >= 2 && frag[0] == '"' && frag[len(frag)-1] == '"' {
		return frag[1 : len(frag)-1]
	}
	return frag
}
