package lang

import (
	"errors"
	"testing"
)

// kindsOf strips the trailing EOF token and returns the kinds in order.
func kindsOf(t *testing.T, src string) []Kind {
	t.Helper()

	toks, err := scan(src)
	if err != nil {
		t.Fatalf("scan(%q) failed: %v", src, err)
	}

	if len(toks) == 0 || toks[len(toks)-1].Kind != KindEOF {
		t.Fatalf("scan(%q) missing EOF terminator", src)
	}

	kinds := make([]Kind, len(toks)-1)
	for i, tok := range toks[:len(toks)-1] {
		kinds[i] = tok.Kind
	}

	return kinds
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Kind{},
		},
		{
			name:  "whitespace only",
			input: " \t\n",
			want:  []Kind{},
		},
		{
			name:  "boolean operators",
			input: "! a && b || c",
			want: []Kind{
				KindBang, KindSymbol, KindAnd, KindSymbol, KindOr, KindSymbol,
			},
		},
		{
			name:  "comparisons",
			input: "> 1 >= 2 < 3 <= 4",
			want: []Kind{
				KindGreater, KindNumber, KindGreaterEq, KindNumber,
				KindLess, KindNumber, KindLessEq, KindNumber,
			},
		},
		{
			name:  "between requires whitespace",
			input: "1 < < 9",
			want:  []Kind{KindNumber, KindBetween, KindNumber},
		},
		{
			name:  "adjacent less-than stays comparisons",
			input: "<< 9",
			want:  []Kind{KindLess, KindLess, KindNumber},
		},
		{
			name:  "between rejects trailing equals",
			input: "1 < <= 9",
			want:  []Kind{KindNumber, KindLess, KindLessEq, KindNumber},
		},
		{
			name:  "object construct",
			input: "{ k: 1, j: 2 }",
			want: []Kind{
				KindBraceOpen, KindSymbol, KindColon, KindNumber, KindComma,
				KindSymbol, KindColon, KindNumber, KindBraceClose,
			},
		},
		{
			name:  "group construct",
			input: "(a, b)",
			want: []Kind{
				KindParenOpen, KindSymbol, KindComma, KindSymbol,
				KindParenClose,
			},
		},
		{
			name:  "placeholders",
			input: "@ @3 @12",
			want:  []Kind{KindPlaceholder, KindPlaceholder, KindPlaceholder},
		},
		{
			name:  "strings",
			input: `"double" 'single'`,
			want:  []Kind{KindString, KindString},
		},
		{
			name:  "numbers",
			input: "0 -3 2.5 -0.125",
			want:  []Kind{KindNumber, KindNumber, KindNumber, KindNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(t, tt.input)

			if len(got) != len(tt.want) {
				t.Fatalf("scan(%q) kinds = %v, want %v",
					tt.input, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scan(%q) kind[%d] = %v, want %v",
						tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_PlaceholderOrdinals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"implicit sequence", "@ @ @", []int{0, 1, 2}},
		{"explicit index", "@7", []int{7}},
		{"explicit does not bump implicit", "@ @5 @", []int{0, 5, 1}},
		{"mixed leading explicit", "@2 @ @", []int{2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := scan(tt.input)
			if err != nil {
				t.Fatalf("scan(%q) failed: %v", tt.input, err)
			}

			var got []int

			for _, tok := range toks {
				if tok.Kind == KindPlaceholder {
					got = append(got, tok.Index)
				}
			}

			if len(got) != len(tt.want) {
				t.Fatalf("scan(%q) ordinals = %v, want %v",
					tt.input, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scan(%q) ordinal[%d] = %d, want %d",
						tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_Text(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		want  string
	}{
		{"string strips quotes", `"hello there"`, KindString, "hello there"},
		{"single quoted", `'it'`, KindString, "it"},
		{"symbol with hyphen", "log-level", KindSymbol, "log-level"},
		{"symbol with underscore", "_tmp_1", KindSymbol, "_tmp_1"},
		{"negative fraction", "-12.75", KindNumber, "-12.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := scan(tt.input)
			if err != nil {
				t.Fatalf("scan(%q) failed: %v", tt.input, err)
			}

			if toks[0].Kind != tt.kind || toks[0].Text != tt.want {
				t.Errorf("scan(%q)[0] = (%v, %q), want (%v, %q)",
					tt.input, toks[0].Kind, toks[0].Text, tt.kind, tt.want)
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown rune", "a # b"},
		{"unterminated string", `"never closed`},
		{"bare minus", "- "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scan(tt.input)
			if err == nil {
				t.Fatalf("scan(%q) succeeded, want error", tt.input)
			}

			if !errors.Is(err, ErrLexical) {
				t.Errorf("scan(%q) error = %v, want ErrLexical", tt.input, err)
			}
		})
	}
}
