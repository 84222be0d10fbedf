package lang

import (
	"regexp"
	"testing"
)

func TestClassify_VerbatimFunctions(t *testing.T) {
	calls := 0
	fn := func(subject any) bool {
		calls++

		return subject == "yes"
	}

	for name, value := range map[string]any{
		"plain func": fn,
		"predicate":  Predicate(fn),
	} {
		t.Run(name, func(t *testing.T) {
			p, err := classify(value)
			if err != nil {
				t.Fatalf("classify failed: %v", err)
			}

			if !p("yes") || p("no") {
				t.Error("function was not used verbatim")
			}
		})
	}

	if calls == 0 {
		t.Error("classified function never invoked")
	}
}

func TestClassify_TypeDescriptors(t *testing.T) {
	tests := []struct {
		name    string
		desc    Type
		subject any
		want    bool
	}{
		{"number matches int", Number, 7, true},
		{"number matches float", Number, 7.5, true},
		{"number rejects text", Number, "7", false},
		{"text matches string", Text, "hi", true},
		{"text rejects symbol", Text, Sym("hi"), false},
		{"text rejects number", Text, 7, false},
		{"bool matches", Bool, true, true},
		{"bool rejects number", Bool, 1, false},
		{"symbol matches", Symbol, Sym("tag"), true},
		{"symbol rejects string", Symbol, "tag", false},
		{"func matches", Func, func() {}, true},
		{"func rejects nil", Func, nil, false},
		{"list matches slice", List, []any{1, 2}, true},
		{"list matches array", List, [2]int{1, 2}, true},
		{"list rejects map", List, map[string]any{}, false},
		{"object matches map", Object, map[string]any{"a": 1}, true},
		{"object matches struct", Object, struct{ A int }{1}, true},
		{"object rejects slice", Object, []any{1}, false},
		{"object rejects nil", Object, nil, false},
		{"object rejects symbol", Object, Sym("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := classify(tt.desc)
			if err != nil {
				t.Fatalf("classify(%v) failed: %v", tt.desc, err)
			}

			if got := p(tt.subject); got != tt.want {
				t.Errorf("%v(%#v) = %t, want %t",
					tt.desc, tt.subject, got, tt.want)
			}
		})
	}
}

func TestClassify_Pattern(t *testing.T) {
	p, err := classify(regexp.MustCompile(`^foo`))
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	tests := []struct {
		name    string
		subject any
		want    bool
	}{
		{"matching prefix", "foobar", true},
		{"exact", "foo", true},
		{"symbol subject", Sym("food"), true},
		{"non-matching", "barfoo", false},
		{"non-textual", 42, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p(tt.subject); got != tt.want {
				t.Errorf("pattern(%#v) = %t, want %t", tt.subject, got, tt.want)
			}
		})
	}
}

func TestClassify_StructuralEquality(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		subject any
		want    bool
	}{
		{
			"map equal across numeric widths",
			map[string]any{"n": 1},
			map[string]int{"n": 1},
			true,
		},
		{
			"struct matches equivalent map",
			struct{ Name string }{"ada"},
			map[string]any{"Name": "ada"},
			true,
		},
		{
			"slice equal across element types",
			[]int{1, 2, 3},
			[]float64{1, 2, 3},
			true,
		},
		{"slice order matters", []int{1, 2}, []int{2, 1}, false},
		{"string equality", "abc", "abc", true},
		{"string inequality", "abc", "abd", false},
		{"empty map is not empty list", map[string]any{}, []any{}, false},
		{"empty list is not empty text", []any{}, "", false},
		{"empty text is not empty map", "", map[string]any{}, false},
		{"nested structures",
			map[string]any{"a": []any{1, map[string]any{"b": "c"}}},
			map[string]any{"a": []any{1.0, map[string]any{"b": "c"}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := classify(tt.value)
			if err != nil {
				t.Fatalf("classify(%#v) failed: %v", tt.value, err)
			}

			if got := p(tt.subject); got != tt.want {
				t.Errorf("equal(%#v)(%#v) = %t, want %t",
					tt.value, tt.subject, got, tt.want)
			}
		})
	}
}

func TestClassify_ScalarEquality(t *testing.T) {
	fn := func() {}
	other := func() {}

	tests := []struct {
		name    string
		value   any
		subject any
		want    bool
	}{
		{"numeric across types", 3, 3.0, true},
		{"numeric inequality", 3, 4, false},
		{"bool", true, true, true},
		{"bool vs number", true, 1, false},
		{"nil equals nil", nil, nil, true},
		{"missing equals missing", Missing, Missing, true},
		{"nil is not missing", nil, Missing, false},
		{"missing is not nil", Missing, nil, false},
		{"symbol strict", Sym("a"), Sym("a"), true},
		{"symbol is not text", Sym("a"), "a", false},
		{"func identity", fn, fn, true},
		{"func distinct", fn, other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := classify(tt.value)
			if err != nil {
				t.Fatalf("classify(%#v) failed: %v", tt.value, err)
			}

			if got := p(tt.subject); got != tt.want {
				t.Errorf("equal(%#v)(%#v) = %t, want %t",
					tt.value, tt.subject, got, tt.want)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	for _, name := range []string{
		"number", "text", "bool", "symbol", "func", "list", "object",
	} {
		if _, ok := ParseType(name); !ok {
			t.Errorf("ParseType(%q) not found", name)
		}
	}

	if _, ok := ParseType("tuple"); ok {
		t.Error("ParseType accepted unknown descriptor")
	}
}
