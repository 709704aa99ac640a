package njson

import (
	"fmt"
	"reflect"
	"unsafe"
)

// decodeRecordInto fills the struct at structPtr from an object
// fragment. Keys with no matching member are skipped unless the
// unknown-field policy says otherwise.
func (e *engine) decodeRecordInto(frag string, structPtr unsafe.Pointer, rt reflect.Type) error {
	if len(frag) < 2 || frag[0] != '{' || frag[len(frag)-1] != '}' {
		return e.fail(fmt.Errorf("expected object for %s", rt.String()))
	}
	plan := planFor(rt, e.caseKey, e.compileName)
	elements := e.sess.splitTopLevel(frag)
	defer e.sess.recycle(elements)
	// An odd split count is a malformed object: the instance stays
	// unpopulated rather than absorbing the complete pairs.
	if len(elements)%2 != 0 {
		return e.fail(fmt.Errorf("object fragment for %s has a dangling member", rt.String()))
	}
	for i := 0; i+1 < len(elements); i += 2 {
		key := stripQuotes(elements[i])
		fp, ok := plan.lookup(key)
		if !ok {
			if e.opts.UnknownFieldPolicy == ErrorOnUnknown {
				return fmt.Errorf("unknown field %q for %s", key, rt.String())
			}
			continue
		}
		if err := e.decodeFragment(elements[i+1], fp.resolve(structPtr), fp.rType); err != nil {
			return err
		}
	}
	return nil
}
