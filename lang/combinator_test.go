package lang

import (
	"testing"
)

func accept(any) bool { return true }
func reject(any) bool { return false }

func TestCombinator_ShortCircuit(t *testing.T) {
	var ran bool

	spy := func(any) bool {
		ran = true

		return true
	}

	t.Run("and skips right on reject", func(t *testing.T) {
		ran = false

		if and(reject, spy)(nil) {
			t.Error("and(reject, _) accepted")
		}

		if ran {
			t.Error("right side ran after left rejected")
		}
	})

	t.Run("or skips right on accept", func(t *testing.T) {
		ran = false

		if !or(accept, spy)(nil) {
			t.Error("or(accept, _) rejected")
		}

		if ran {
			t.Error("right side ran after left accepted")
		}
	})

	t.Run("not inverts", func(t *testing.T) {
		if not(accept)(nil) || !not(reject)(nil) {
			t.Error("not did not invert")
		}
	})
}

func TestCombinator_Between(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		subject any
		want    bool
	}{
		{"inside", 1, 10, 5, true},
		{"lower bound excluded", 1, 10, 1, false},
		{"upper bound excluded", 1, 10, 10, false},
		{"below", 1, 10, 0, false},
		{"above", 1, 10, 11, false},
		{"reversed bounds inside", 10, 1, 5, true},
		{"reversed bounds excluded", 10, 1, 10, false},
		{"non-numeric subject", 1, 10, "5", false},
		{"nil subject", 1, 10, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := between(tt.a, tt.b)(tt.subject); got != tt.want {
				t.Errorf("between(%v, %v)(%#v) = %t, want %t",
					tt.a, tt.b, tt.subject, got, tt.want)
			}
		})
	}
}

func TestCombinator_Compare(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		bound   float64
		subject any
		want    bool
	}{
		{"greater true", KindGreater, 17, 18, true},
		{"greater boundary", KindGreater, 17, 17, false},
		{"greater-eq boundary", KindGreaterEq, 17, 17, true},
		{"less true", KindLess, 66, 65, true},
		{"less boundary", KindLess, 66, 66, false},
		{"less-eq boundary", KindLessEq, 66, 66, true},
		{"int subject", KindGreater, 17, int8(18), true},
		{"non-numeric", KindGreater, 17, "18", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compare(tt.kind, tt.bound)(tt.subject); got != tt.want {
				t.Errorf("compare(%v, %v)(%#v) = %t, want %t",
					tt.kind, tt.bound, tt.subject, got, tt.want)
			}
		})
	}
}

func TestCombinator_Holds(t *testing.T) {
	isEven := func(subject any) bool {
		f, ok := toFloat(subject)

		return ok && int(f)%2 == 0
	}
	isOdd := not(isEven)

	tests := []struct {
		name    string
		args    []Predicate
		subject any
		want    bool
	}{
		{"single met", []Predicate{isEven}, []any{1, 2, 3}, true},
		{"single unmet", []Predicate{isEven}, []any{1, 3, 5}, false},
		{
			"conjunctive across args",
			[]Predicate{isEven, isOdd},
			[]any{2, 3},
			true,
		},
		{
			"one arg unmet rejects",
			[]Predicate{isEven, isOdd},
			[]any{2, 4},
			false,
		},
		{
			"one element satisfies several args",
			[]Predicate{isEven, isEven},
			[]any{2},
			true,
		},
		{"empty subject", []Predicate{isEven}, []any{}, false},
		{"no args over list", nil, []any{1}, true},
		{"non-list subject", []Predicate{isEven}, 2, false},
		{"nil subject", []Predicate{isEven}, nil, false},
		{"array subject", []Predicate{isEven}, [3]int{1, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := holds(tt.args...)(tt.subject); got != tt.want {
				t.Errorf("holds(...)(%#v) = %t, want %t",
					tt.subject, got, tt.want)
			}
		})
	}
}

func TestCombinator_ObjectShape(t *testing.T) {
	shape := objectShape([]entry{
		{key: "name", pred: accept},
		{key: "age", pred: func(s any) bool { return s != Missing }},
	})

	tests := []struct {
		name    string
		subject any
		want    bool
	}{
		{
			"all keys present",
			map[string]any{"name": "ada", "age": 36},
			true,
		},
		{
			"missing key fails its predicate",
			map[string]any{"name": "ada"},
			false,
		},
		{
			"extra keys ignored",
			map[string]any{"name": "ada", "age": 36, "rank": 1},
			true,
		},
		{"nil subject", nil, false},
		{"absent subject", Missing, false},
		{
			"struct subject",
			struct {
				Name string
				Age  int
			}{"ada", 36},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shape(tt.subject); got != tt.want {
				t.Errorf("shape(%#v) = %t, want %t", tt.subject, got, tt.want)
			}
		})
	}
}

func TestCombinator_ObjectShapeChecksEveryKey(t *testing.T) {
	var checked []string

	spy := func(key string) Predicate {
		return func(any) bool {
			checked = append(checked, key)

			return false
		}
	}

	shape := objectShape([]entry{
		{key: "a", pred: spy("a")},
		{key: "b", pred: spy("b")},
	})

	if shape(map[string]any{"a": 1, "b": 2}) {
		t.Error("shape accepted with all predicates rejecting")
	}

	if len(checked) != 2 {
		t.Errorf("checked keys = %v, want both a and b", checked)
	}
}

func TestCombinator_NullAndMissingDistinct(t *testing.T) {
	// A key set to nil is present; a key never set is absent.
	isNil := objectShape([]entry{{key: "k", pred: func(s any) bool {
		return s == nil
	}}})
	isMissing := objectShape([]entry{{key: "k", pred: func(s any) bool {
		return s == any(Missing)
	}}})

	withNil := map[string]any{"k": nil}
	without := map[string]any{}

	if !isNil(withNil) || isNil(without) {
		t.Error("nil-valued key not distinguished from absent key")
	}

	if !isMissing(without) || isMissing(withNil) {
		t.Error("absent key not distinguished from nil-valued key")
	}
}

func TestField(t *testing.T) {
	type inner struct {
		Name string
		tag  string
	}

	tests := []struct {
		name      string
		subject   any
		key       string
		want      any
		wantFound bool
	}{
		{"map hit", map[string]any{"k": 1}, "k", 1, true},
		{"map miss", map[string]any{"k": 1}, "j", nil, false},
		{"typed map", map[string]int{"k": 7}, "k", 7, true},
		{"struct exact", inner{Name: "x", tag: "t"}, "Name", "x", true},
		{"struct case-insensitive", inner{Name: "x"}, "name", "x", true},
		{"struct unexported", inner{tag: "t"}, "tag", nil, false},
		{"pointer deref", &inner{Name: "x"}, "Name", "x", true},
		{"nil pointer", (*inner)(nil), "Name", nil, false},
		{"non-object", 42, "k", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := field(tt.subject, tt.key)
			if found != tt.wantFound {
				t.Fatalf("field(%#v, %q) found = %t, want %t",
					tt.subject, tt.key, found, tt.wantFound)
			}

			if found && got != tt.want {
				t.Errorf("field(%#v, %q) = %#v, want %#v",
					tt.subject, tt.key, got, tt.want)
			}
		})
	}
}
