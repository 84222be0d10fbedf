package lang

import (
	"context"
	"testing"
)

// FuzzCompile asserts compilation is total: any input either compiles or
// fails with an error, and a compiled predicate tolerates arbitrary
// subjects.
func FuzzCompile(f *testing.F) {
	for _, seed := range []string{
		"",
		"42",
		`"text"`,
		"! a && b || c",
		"1 < < 10",
		"> 17 && <= 66",
		"{ name: ada, age: (> 17 && < 66) }",
		"(a, b, c)",
		"@ && @1",
		"{ k: { j: (1, 2) } }",
		"((((a))))",
		"< <",
		"-",
		"@9999999",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		p, err := Compile(
			context.Background(), source, WithValues("a", 1, true),
		)
		if err != nil {
			return
		}

		for _, subject := range []any{
			nil,
			Missing,
			42,
			"text",
			[]any{1, "a"},
			map[string]any{"k": nil},
		} {
			p(subject)
		}
	})
}
