package njson

import (
	"reflect"
	"time"
)

// shapeKind is the decoder dispatch shape derived from a target type.
type shapeKind uint8

const (
	shapeInvalid shapeKind = iota
	shapeBool
	shapeInt
	shapeUint
	shapeFloat
	shapeText
	shapeTime
	shapeSequence
	shapeMap
	shapeRecord
	shapeDynamic
	shapePointer
)

var timeType = reflect.TypeOf(time.Time{})

func shapeOf(rt reflect.Type) shapeKind {
	switch rt.Kind() {
	case reflect.Bool:
		return shapeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return shapeInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return shapeUint
	case reflect.Float32, reflect.Float64:
		return shapeFloat
	case reflect.String:
		return shapeText
	case reflect.Slice, reflect.Array:
		return shapeSequence
	case reflect.Map:
		return shapeMap
	case reflect.Struct:
		if rt == timeType {
			return shapeTime
		}
		return shapeRecord
	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return shapeDynamic
		}
		// No instance can be built for an abstract target.
		return shapeInvalid
	case reflect.Ptr:
		return shapePointer
	default:
		return shapeInvalid
	}
}
