package lang

import (
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
)

// Predicate tests a subject and reports whether it matches. Predicates are
// stateless and side-effect-free: the same predicate may be invoked
// repeatedly and concurrently, provided any caller-supplied function it
// captures is itself safe for concurrent invocation.
type Predicate func(subject any) bool

//go:generate go tool stringer --linecomment --type Type --output type_string.go

// Type is a runtime type descriptor sentinel. Embedding a descriptor as a
// value compiles to a predicate that tests the subject's runtime type
// rather than its contents.
type Type int

const (
	Number Type = iota + 1 // number
	Text                   // text
	Bool                   // bool
	Symbol                 // symbol
	Func                   // func
	List                   // list
	Object                 // object
)

// ParseType resolves a descriptor by its name.
func ParseType(name string) (Type, bool) {
	for _, t := range []Type{Number, Text, Bool, Symbol, Func, List, Object} {
		if t.String() == name {
			return t, true
		}
	}

	return 0, false
}

// Sym is a named symbol value, matched by the Symbol descriptor and by
// strict equality rather than structural comparison.
type Sym string

// absent is the type of Missing.
type absent struct{}

func (absent) String() string { return "missing" }

// Missing marks the absence of any value: it is what an object-shape
// predicate presents to a child predicate when the subject lacks the key.
// Missing and nil are distinct absence kinds and never equal each other,
// so a key explicitly set to null and a key that does not exist remain
// distinguishable.
//
//nolint:gochecknoglobals
var Missing = absent{}

// classify decides which predicate strategy applies to one embedded value.
// The rules form a closed priority list and are total over every value;
// the trailing ErrClassify branch is modeled but unreachable.
func classify(value any) (Predicate, error) {
	switch v := value.(type) {
	case Predicate:
		// A caller-supplied predicate is used directly and unmodified.
		return v, nil

	case func(any) bool:
		return v, nil

	case Type:
		return typeTest(v), nil

	case *regexp.Regexp:
		return patternTest(v), nil
	}

	switch {
	case structural(value):
		return structuralEqual(value), nil

	case scalar(value):
		return strictEqual(value), nil
	}

	return nil, ErrClassify.With(
		slog.String("type", reflect.TypeOf(value).String()),
	)
}

// structural reports whether the value compares by contents rather than by
// identity: lists, plain structured objects, and text. Symbols are textual
// in representation but compare strictly.
func structural(value any) bool {
	if _, ok := value.(Sym); ok {
		return false
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		return true
	default:
		return false
	}
}

// scalar admits everything the remaining strategies left behind: numbers,
// booleans, absence sentinels, symbols, functions of other shapes, and any
// remaining primitive.
func scalar(value any) bool {
	if value == nil {
		return true
	}

	switch value.(type) {
	case absent, Sym:
		return true
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return true

	default:
		return false
	}
}

// typeTest builds a predicate matching the subject's runtime type against
// the descriptor.
func typeTest(t Type) Predicate {
	return func(subject any) bool {
		switch t {
		case Number:
			_, ok := toFloat(subject)

			return ok

		case Text:
			if _, ok := subject.(Sym); ok {
				return false
			}

			_, ok := subject.(string)

			return ok

		case Bool:
			_, ok := subject.(bool)

			return ok

		case Symbol:
			_, ok := subject.(Sym)

			return ok

		case Func:
			return subject != nil &&
				reflect.ValueOf(subject).Kind() == reflect.Func

		case List:
			// Lists get a dedicated check: structured objects never
			// satisfy it even in hosts where the two share a type tag.
			return isList(subject)

		case Object:
			if subject == nil || isList(subject) {
				return false
			}

			if _, ok := subject.(Sym); ok {
				return false
			}

			switch reflect.ValueOf(subject).Kind() {
			case reflect.Map, reflect.Struct:
				return true
			default:
				return false
			}
		}

		return false
	}
}

// patternTest builds a predicate applying the pattern to textual subjects.
// Non-textual subjects never match.
func patternTest(re *regexp.Regexp) Predicate {
	return func(subject any) bool {
		switch s := subject.(type) {
		case string:
			return re.MatchString(s)
		case Sym:
			return re.MatchString(string(s))
		default:
			return false
		}
	}
}

// structuralEqual builds a deep-equality predicate: both sides are reduced
// to a canonical structural form and compared exactly. Identity comparison
// would almost never match a freshly constructed subject.
func structuralEqual(want any) Predicate {
	canon := canonical(want)

	return func(subject any) bool {
		return reflect.DeepEqual(canon, canonical(subject))
	}
}

// strictEqual builds an identity/value equality predicate against the
// captured value.
func strictEqual(want any) Predicate {
	return func(subject any) bool {
		return scalarEqual(want, subject)
	}
}

// scalarEqual compares two scalar values. Numeric values compare by value
// across numeric types; functions compare by identity; the two absence
// kinds are never equal to each other.
func scalarEqual(want, got any) bool {
	if want == nil || got == nil {
		return want == nil && got == nil
	}

	if _, ok := want.(absent); ok {
		_, ok := got.(absent)

		return ok
	}

	if _, ok := got.(absent); ok {
		return false
	}

	if wf, ok := toFloat(want); ok {
		gf, ok := toFloat(got)

		return ok && wf == gf
	}

	wv := reflect.ValueOf(want)
	if wv.Kind() == reflect.Func {
		gv := reflect.ValueOf(got)

		return gv.Kind() == reflect.Func && wv.Pointer() == gv.Pointer()
	}

	// Dynamic types differ or are comparable scalars at this point, so the
	// interface comparison cannot panic.
	return want == got
}

// isList reports whether the subject is a list value.
func isList(subject any) bool {
	if subject == nil {
		return false
	}

	switch reflect.ValueOf(subject).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// toFloat converts any numeric value to float64.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true

	default:
		return 0, false
	}
}

// canonical reduces a value to a normal form for structural comparison:
// numbers widen to float64, sequences flatten to []any, maps and structs
// flatten to map[string]any with stringified keys.
func canonical(value any) any {
	if value == nil {
		return nil
	}

	if _, ok := value.(absent); ok {
		return Missing
	}

	if f, ok := toFloat(value); ok {
		return f
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return canonical(v.Elem().Interface())

	case reflect.String:
		return v.String()

	case reflect.Bool:
		return v.Bool()

	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = canonical(v.Index(i).Interface())
		}

		return out

	case reflect.Map:
		out := make(map[string]any, v.Len())

		iter := v.MapRange()
		for iter.Next() {
			out[keyString(iter.Key())] = canonical(iter.Value().Interface())
		}

		return out

	case reflect.Struct:
		out := make(map[string]any, v.NumField())

		t := v.Type()
		for i := range v.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}

			out[t.Field(i).Name] = canonical(v.Field(i).Interface())
		}

		return out

	default:
		return value
	}
}

// keyString normalizes a map key for canonical comparison.
func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}

	return fmt.Sprint(canonical(key.Interface()))
}
