package lang

import (
	"strconv"
	"strings"
)

// Segment is one element of an interleaved input stream: either a literal
// text fragment or an embedded value supplied out-of-band.
type Segment struct {
	value any
	text  string
	embed bool
}

// Text returns a literal text fragment segment.
func Text(s string) Segment {
	return Segment{text: s}
}

// Embed returns an embedded value segment.
func Embed(v any) Segment {
	return Segment{value: v, embed: true}
}

// interleave flattens segments into a single marked source string and the
// ordered value table its markers index. Each embedded value is replaced by
// an explicit ordinal marker, so appearance order is preserved exactly.
func interleave(segments []Segment) (string, []any) {
	var (
		sb     strings.Builder
		values []any
	)

	for _, seg := range segments {
		if !seg.embed {
			sb.WriteString(seg.text)

			continue
		}

		// Surrounding whitespace keeps the marker from fusing with
		// adjacent literal text; whitespace is insignificant to the lexer.
		sb.WriteString(" @")
		sb.WriteString(strconv.Itoa(len(values)))
		sb.WriteString(" ")

		values = append(values, seg.value)
	}

	return sb.String(), values
}
