// Package lang compiles a compact predicate expression language into a
// single reusable [Predicate]: a pure function from an arbitrary subject to
// a boolean.
//
// An expression mixes literal operator syntax with opaque embedded values
// (functions, compiled patterns, type descriptors, plain values) referenced
// by placeholder markers. Compiling it once yields one composed test
// function that can be applied repeatedly, and concurrently, to different
// subjects.
//
// # Grammar
//
//	!  p            logical not
//	p  && q         logical and (short-circuit)
//	p  || q         logical or (short-circuit)
//	a  < < b        exclusive range (two '<' separated by whitespace)
//	>  n, >= n      bound comparisons, likewise < n and <= n
//	{ k: p, ... }   object shape: subject[k] must satisfy p for every key
//	( p )           grouping, no semantic node of its own
//	( p, q, ... )   list membership: each argument must be satisfied by at
//	                least one element of a list subject
//	@  or  @N       embedded value by appearance order, or at ordinal N
//
// Bare symbols, numbers, and quoted strings are literals; like embedded
// values, they classify into equality predicates.
//
// # Embedded value classification
//
// Each embedded value is classified exactly once, at compile time:
//
//  1. a func(any) bool or [Predicate] is used verbatim
//  2. a [Type] descriptor tests the subject's runtime type
//  3. a *regexp.Regexp tests textual subjects against the pattern
//  4. lists, maps, structs, and strings compare by canonical structural
//     equality
//  5. everything else compares by strict identity/value equality, with nil
//     and [Missing] never equal to each other
//
// # Example
//
//	p, err := lang.Compile(ctx, "{ name: @, age: (> 17 && < 66) }",
//		lang.WithValues(regexp.MustCompile(`^[A-Z]`)))
//	if err != nil {
//		...
//	}
//
//	p(map[string]any{"name": "Ada", "age": 36}) // true
package lang
