package njson

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/nazgulsenpai/njson/internal/tagutil"
	"github.com/viant/xunsafe"
)

// typePlan is the compiled member table for one record type. Plans are
// immutable once published and live for the process lifetime.
type typePlan struct {
	rType  reflect.Type
	fields map[string]*fieldPlan
}

type fieldPlan struct {
	name    string
	rType   reflect.Type
	resolve func(unsafe.Pointer) unsafe.Pointer
}

type planKey struct {
	rType   reflect.Type
	caseKey string
}

var planCache sync.Map // map[planKey]*typePlan

// planFor returns the member plan for rType, building it on first use.
// Concurrent first builds race benignly; LoadOrStore keeps the first
// published plan so every later caller sees the same instance.
func planFor(rType reflect.Type, caseKey string, compileName func(string) string) *typePlan {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	key := planKey{rType: rType, caseKey: caseKey}
	if v, ok := planCache.Load(key); ok {
		return v.(*typePlan)
	}
	p := buildPlan(rType, compileName)
	actual, _ := planCache.LoadOrStore(key, p)
	return actual.(*typePlan)
}

func buildPlan(rType reflect.Type, compileName func(string) string) *typePlan {
	p := &typePlan{rType: rType, fields: map[string]*fieldPlan{}}
	if rType.Kind() != reflect.Struct {
		return p
	}
	// First registration wins; a duplicate member name keeps the
	// earlier field.
	addField := func(name string, fp *fieldPlan) {
		if _, ok := p.fields[name]; !ok {
			p.fields[name] = fp
		}
	}

	buildResolver := func(chain []*xunsafe.Field) func(unsafe.Pointer) unsafe.Pointer {
		if len(chain) == 1 {
			return chain[0].Pointer
		}
		return func(root unsafe.Pointer) unsafe.Pointer {
			current := root
			for i, f := range chain {
				ptr := f.Pointer(current)
				if i == len(chain)-1 {
					return ptr
				}
				if f.Type.Kind() == reflect.Ptr {
					next := (*unsafe.Pointer)(ptr)
					if *next == nil {
						alloc := reflect.New(f.Type.Elem())
						*next = unsafe.Pointer(alloc.Pointer())
					}
					current = *next
				} else {
					current = ptr
				}
			}
			return current
		}
	}

	var collect func(t reflect.Type, parent []*xunsafe.Field)
	collect = func(t reflect.Type, parent []*xunsafe.Field) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if sf.PkgPath != "" {
				// Unexported fields are invisible, except embedded
				// structs whose exported members still promote.
				if !sf.Anonymous {
					continue
				}
				et := sf.Type
				if et.Kind() == reflect.Ptr {
					et = et.Elem()
				}
				if et.Kind() != reflect.Struct {
					continue
				}
			}
			tag := tagutil.ParseJSONTag(sf.Name, sf.Tag.Get("json"))
			if tag.Ignore {
				continue
			}
			xf := xunsafe.NewField(sf)
			chain := append(append([]*xunsafe.Field{}, parent...), xf)

			if sf.Anonymous && !tag.Explicit {
				inlineType := sf.Type
				if inlineType.Kind() == reflect.Ptr {
					inlineType = inlineType.Elem()
				}
				if inlineType.Kind() == reflect.Struct && inlineType != timeType {
					collect(inlineType, chain)
					continue
				}
			}

			fp := &fieldPlan{
				name:    sf.Name,
				rType:   sf.Type,
				resolve: buildResolver(chain),
			}
			addField(tag.Name, fp)
			if compileName != nil && !tag.Explicit {
				if alias := compileName(tag.Name); alias != "" && alias != tag.Name {
					addField(alias, fp)
				}
			}
		}
	}

	collect(rType, nil)
	return p
}

func (p *typePlan) lookup(name string) (*fieldPlan, bool) {
	fp, ok := p.fields[name]
	return fp, ok
}
