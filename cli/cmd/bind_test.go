package cmd

import (
	"errors"
	"regexp"
	"testing"

	"github.com/ardnew/sift/lang"
)

func TestParseValue_Pattern(t *testing.T) {
	v, err := ParseValue("/^foo/")
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}

	re, ok := v.(*regexp.Regexp)
	if !ok {
		t.Fatalf("value = %T, want *regexp.Regexp", v)
	}

	if !re.MatchString("foobar") || re.MatchString("barfoo") {
		t.Error("compiled pattern misbehaved")
	}
}

func TestParseValue_PatternError(t *testing.T) {
	_, err := ParseValue("/((/")
	if err == nil {
		t.Fatal("invalid pattern accepted")
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Errorf("error = %T, want *Error", err)
	}
}

func TestParseValue_TypeDescriptor(t *testing.T) {
	for name, want := range map[string]lang.Type{
		"number": lang.Number,
		"text":   lang.Text,
		"list":   lang.List,
		"object": lang.Object,
	} {
		v, err := ParseValue(name)
		if err != nil {
			t.Fatalf("ParseValue(%q) failed: %v", name, err)
		}

		if v != want {
			t.Errorf("ParseValue(%q) = %#v, want %v", name, v, want)
		}
	}
}

func TestParseValue_ExprProgram(t *testing.T) {
	v, err := ParseValue("expr:it > 10")
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}

	p, ok := v.(lang.Predicate)
	if !ok {
		t.Fatalf("value = %T, want lang.Predicate", v)
	}

	if !p(11) || p(9) {
		t.Error("expr predicate misbehaved")
	}

	// Runtime failures are unsatisfied, never panics.
	if p("not a number") {
		t.Error("expr predicate accepted a mistyped subject")
	}
}

func TestParseValue_ExprError(t *testing.T) {
	_, err := ParseValue("expr:it >")
	if err == nil {
		t.Fatal("invalid expr program accepted")
	}
}

func TestParseValue_YAMLLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(any) bool
	}{
		{"integer", "42", func(v any) bool {
			// Decoded numeric width is an implementation detail.
			switch n := v.(type) {
			case int:
				return n == 42
			case int64:
				return n == 42
			case uint64:
				return n == 42
			case float64:
				return n == 42
			}

			return false
		}},
		{"boolean", "true", func(v any) bool { return v == true }},
		{"string", "hello", func(v any) bool { return v == "hello" }},
		{"null", "null", func(v any) bool { return v == nil }},
		{"flow sequence", "[1, 2]", func(v any) bool {
			s, ok := v.([]any)

			return ok && len(s) == 2
		}},
		{"flow mapping", "{a: 1}", func(v any) bool {
			m, ok := v.(map[string]any)

			return ok && len(m) == 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) failed: %v", tt.input, err)
			}

			if !tt.check(v) {
				t.Errorf("ParseValue(%q) = %#v", tt.input, v)
			}
		})
	}
}

func TestParseValues_Order(t *testing.T) {
	values, err := ParseValues([]string{"1", "/x/", "text"})
	if err != nil {
		t.Fatalf("ParseValues failed: %v", err)
	}

	if len(values) != 3 {
		t.Fatalf("value count = %d, want 3", len(values))
	}

	if _, ok := values[1].(*regexp.Regexp); !ok {
		t.Errorf("values[1] = %T, want *regexp.Regexp", values[1])
	}

	if values[2] != lang.Text {
		t.Errorf("values[2] = %#v, want lang.Text", values[2])
	}
}
