package njson

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// Decode parses data into dest, which must be a non-nil pointer. The
// default mode never reports a syntax problem: members that cannot be
// decoded keep their zero value. ModeStrict surfaces those problems as
// errors instead.
func Decode(data []byte, dest interface{}, opts ...Option) error {
	if dest == nil {
		return fmt.Errorf("destination was nil")
	}
	rt := reflect.TypeOf(dest)
	if rt.Kind() != reflect.Ptr {
		return fmt.Errorf("destination must be a pointer, got %s", rt.String())
	}
	if reflect.ValueOf(dest).IsNil() {
		return fmt.Errorf("destination was a nil %s", rt.String())
	}
	e := newEngine(resolveOptions(opts))
	defer e.release()
	frag := e.sess.compact(data)
	return e.decodeFragment(frag, xunsafe.AsPointer(dest), rt.Elem())
}

// DecodeAs parses data into a fresh T.
func DecodeAs[T any](data []byte, opts ...Option) (T, error) {
	var result T
	err := Decode(data, &result, opts...)
	return result, err
}

// DecodeAny parses data without a target shape, inferring each value
// from syntax alone. Objects come back as map[string]interface{},
// arrays as []interface{}, numbers as int64 or float64. Input that
// cannot be interpreted yields nil; DecodeAny never fails.
func DecodeAny(data []byte, opts ...Option) interface{} {
	e := newEngine(resolveOptions(opts))
	defer e.release()
	frag := e.sess.compact(data)
	return e.decodeDynamic(frag)
}
