package lang

import (
	"context"
	"regexp"
	"testing"
)

func TestInterleave(t *testing.T) {
	source, values := interleave([]Segment{
		Text("{ name: "),
		Embed(regexp.MustCompile(`^A`)),
		Text(", age: "),
		Embed(36),
		Text(" }"),
	})

	if len(values) != 2 {
		t.Fatalf("value count = %d, want 2", len(values))
	}

	if values[1] != 36 {
		t.Errorf("values[1] = %#v, want 36", values[1])
	}

	toks, err := scan(source)
	if err != nil {
		t.Fatalf("scan(%q) failed: %v", source, err)
	}

	var ordinals []int

	for _, tok := range toks {
		if tok.Kind == KindPlaceholder {
			ordinals = append(ordinals, tok.Index)
		}
	}

	if len(ordinals) != 2 || ordinals[0] != 0 || ordinals[1] != 1 {
		t.Errorf("marker ordinals = %v, want [0 1]", ordinals)
	}
}

func TestInterleave_MarkersDoNotFuse(t *testing.T) {
	// A value marker directly adjacent to literal text must not merge with
	// it into a single token.
	source, _ := interleave([]Segment{
		Text("!"),
		Embed(1),
	})

	toks, err := scan(source)
	if err != nil {
		t.Fatalf("scan(%q) failed: %v", source, err)
	}

	// Bang, placeholder, EOF.
	if len(toks) != 3 || toks[1].Kind != KindPlaceholder {
		t.Errorf("tokens = %+v, want bang and placeholder", toks)
	}
}

func TestCompileSegments(t *testing.T) {
	p, err := CompileSegments(context.Background(), []Segment{
		Text("{ name: "),
		Embed(regexp.MustCompile(`^A`)),
		Text(", age: (> 17 && < "),
		Embed(66),
		Text(") }"),
	})
	if err != nil {
		t.Fatalf("CompileSegments failed: %v", err)
	}

	if !p(map[string]any{"name": "Ada", "age": 36}) {
		t.Error("segment-built predicate rejected a satisfying subject")
	}

	if p(map[string]any{"name": "Bob", "age": 36}) {
		t.Error("segment-built predicate accepted an unsatisfying subject")
	}
}

func TestCompileSegments_ValuesCombine(t *testing.T) {
	// Explicit WithValues entries extend the segment value table.
	p, err := CompileSegments(context.Background(), []Segment{
		Embed(1),
		Text(" < < @1"),
	}, WithValues(9))
	if err != nil {
		t.Fatalf("CompileSegments failed: %v", err)
	}

	if !p(5) || p(9) {
		t.Error("combined segment and option values not honored")
	}
}
