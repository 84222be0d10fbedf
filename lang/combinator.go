package lang

import (
	"reflect"
	"strings"
)

// The combinator library: the fixed set of reduction actions the evaluator
// applies to already-reduced children. Every combinator is total and
// side-effect-free.

// not negates a predicate.
func not(p Predicate) Predicate {
	return func(subject any) bool {
		return !p(subject)
	}
}

// and is short-circuiting conjunction: q never runs when p rejects.
func and(p, q Predicate) Predicate {
	return func(subject any) bool {
		return p(subject) && q(subject)
	}
}

// or is short-circuiting disjunction: q never runs when p accepts.
func or(p, q Predicate) Predicate {
	return func(subject any) bool {
		return p(subject) || q(subject)
	}
}

// between is the strictly-exclusive range test. Bounds are ordered by value
// at construction, so operand order at the call site never matters.
func between(a, b float64) Predicate {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	return func(subject any) bool {
		f, ok := toFloat(subject)

		return ok && f > lo && f < hi
	}
}

// compare builds a numeric comparison against a captured bound.
// Non-numeric subjects never satisfy it.
func compare(kind Kind, bound float64) Predicate {
	return func(subject any) bool {
		f, ok := toFloat(subject)
		if !ok {
			return false
		}

		switch kind {
		case KindGreater:
			return f > bound
		case KindGreaterEq:
			return f >= bound
		case KindLess:
			return f < bound
		case KindLessEq:
			return f <= bound
		default:
			return false
		}
	}
}

// holds is the array-membership combinator: the subject must be a list in
// which every argument is satisfied by at least one element. The match is
// existential per argument and conjunctive across arguments; a single
// element may satisfy several arguments, and no length relationship between
// arguments and subject is assumed.
func holds(args ...Predicate) Predicate {
	return func(subject any) bool {
		if !isList(subject) {
			return false
		}

		met := make([]bool, len(args))
		need := len(args)

		// One scan over the subject; each element may settle any number of
		// still-unmet arguments.
		v := reflect.ValueOf(subject)
		for i := 0; i < v.Len() && need > 0; i++ {
			elem := v.Index(i).Interface()

			for j, p := range args {
				if met[j] || !p(elem) {
					continue
				}

				met[j] = true
				need--
			}
		}

		return need == 0
	}
}

// entry is a reduced (key, predicate) pair consumed by objectShape.
type entry struct {
	pred Predicate
	key  string
}

// objectShape accepts a subject only if it is non-absent and every declared
// key's predicate accepts the subject's value at that key. Keys are checked
// in declaration order and every key is checked; there is no short-circuit
// skip of declared keys.
func objectShape(entries []entry) Predicate {
	return func(subject any) bool {
		if subject == nil {
			return false
		}

		if _, ok := subject.(absent); ok {
			return false
		}

		ok := true

		for _, e := range entries {
			value, found := field(subject, e.key)
			if !found {
				value = Missing
			}

			if !e.pred(value) {
				ok = false
			}
		}

		return ok
	}
}

// field extracts the value at key from a map or struct subject.
func field(subject any, key string) (any, bool) {
	switch m := subject.(type) {
	case map[string]any:
		v, ok := m[key]

		return v, ok
	}

	v := reflect.ValueOf(subject)

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}

		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}

		mv := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}

		return mv.Interface(), true

	case reflect.Struct:
		t := v.Type()

		for i := range v.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			if f.Name == key || strings.EqualFold(f.Name, key) {
				return v.Field(i).Interface(), true
			}
		}
	}

	return nil, false
}
