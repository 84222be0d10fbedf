package lang

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexer scans one expression source left to right. A fresh lexer is created
// per compilation; no state is shared across calls.
type lexer struct {
	src string
	pos int
	ord int // ordinal assigned to the next implicit placeholder
}

// scan tokenizes the source, terminating the result with a KindEOF token.
// At each position it commits to the first (and therefore longest) matching
// entry of the fixed symbol table, then to the literal scanners. Input that
// matches nothing fails with ErrLexical naming the offending position.
func scan(src string) ([]Token, error) {
	l := &lexer{src: src}
	toks := make([]Token, 0, 16)

	for {
		l.skipSpace()

		if l.eof() {
			toks = append(toks, Token{Kind: KindEOF, Pos: l.pos})

			return toks, nil
		}

		tok, err := l.next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)
	}
}

// next scans a single token at the current position.
func (l *lexer) next() (Token, error) {
	start := l.pos
	rest := l.src[l.pos:]

	for _, sym := range symbols {
		if !strings.HasPrefix(rest, sym.lit) {
			continue
		}

		l.pos += len(sym.lit)

		// Two '<' separated by whitespace spell the between operator.
		// Without the whitespace they remain separate comparisons.
		if sym.kind == KindLess {
			if end, ok := l.betweenTail(); ok {
				l.pos = end

				return Token{
					Kind: KindBetween,
					Text: l.src[start:end],
					Pos:  start,
				}, nil
			}
		}

		return Token{Kind: sym.kind, Text: sym.lit, Pos: start}, nil
	}

	ch, _ := utf8.DecodeRuneInString(rest)

	switch {
	case ch == '@':
		return l.scanPlaceholder()

	case ch == '"' || ch == '\'':
		return l.scanString(ch)

	case ch == '-' || isDigit(ch):
		return l.scanNumber()

	case isSymbolStart(ch):
		return l.scanSymbol()
	}

	return Token{}, ErrLexical.
		At(l.src, l.pos).
		With(slog.String("input", string(ch)))
}

// betweenTail reports whether the '<' just consumed is the first half of a
// between operator, returning the position past the second '<'.
func (l *lexer) betweenTail() (int, bool) {
	i := l.pos
	for i < len(l.src) && (l.src[i] == ' ' || l.src[i] == '\t') {
		i++
	}

	// Require at least one space, and reject "< <=" which is a between
	// spelling collision with a trailing comparison.
	if i == l.pos || i >= len(l.src) || l.src[i] != '<' {
		return 0, false
	}

	if i+1 < len(l.src) && l.src[i+1] == '=' {
		return 0, false
	}

	return i + 1, true
}

// scanPlaceholder scans '@' with an optional explicit ordinal. A bare '@'
// takes the next ordinal by appearance order.
func (l *lexer) scanPlaceholder() (Token, error) {
	start := l.pos
	l.pos++ // '@'

	digits := l.pos
	for !l.eof() && isDigit(rune(l.src[l.pos])) {
		l.pos++
	}

	index := l.ord

	if l.pos > digits {
		index = 0
		for _, d := range l.src[digits:l.pos] {
			index = index*10 + int(d-'0')
		}
	} else {
		l.ord++
	}

	return Token{
		Kind:  KindPlaceholder,
		Text:  l.src[start:l.pos],
		Index: index,
		Pos:   start,
	}, nil
}

// scanString scans a quoted text literal. The grammar admits no escape
// sequences; the literal simply ends at the next matching quote.
func (l *lexer) scanString(quote rune) (Token, error) {
	start := l.pos
	l.pos++ // opening quote

	for !l.eof() {
		if rune(l.src[l.pos]) == quote {
			l.pos++

			return Token{
				Kind: KindString,
				Text: l.src[start+1 : l.pos-1],
				Pos:  start,
			}, nil
		}

		l.advance()
	}

	return Token{}, ErrLexical.
		At(l.src, start).
		With(slog.String("input", "unterminated string"))
}

// scanNumber scans an optionally negative decimal literal with an optional
// fractional part.
func (l *lexer) scanNumber() (Token, error) {
	start := l.pos

	if l.src[l.pos] == '-' {
		l.pos++
	}

	digits := l.pos
	for !l.eof() && isDigit(rune(l.src[l.pos])) {
		l.pos++
	}

	if l.pos == digits {
		return Token{}, ErrLexical.
			At(l.src, start).
			With(slog.String("input", "-"))
	}

	if !l.eof() && l.src[l.pos] == '.' {
		l.pos++
		for !l.eof() && isDigit(rune(l.src[l.pos])) {
			l.pos++
		}
	}

	return Token{Kind: KindNumber, Text: l.src[start:l.pos], Pos: start}, nil
}

// scanSymbol scans a bare identifier literal.
func (l *lexer) scanSymbol() (Token, error) {
	start := l.pos

	for !l.eof() {
		ch, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isSymbolContinue(ch) {
			break
		}

		l.advance()
	}

	return Token{Kind: KindSymbol, Text: l.src[start:l.pos], Pos: start}, nil
}

func (l *lexer) skipSpace() {
	for !l.eof() {
		ch, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(ch) {
			return
		}

		l.pos += size
	}
}

func (l *lexer) advance() {
	_, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.src)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbolStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isSymbolContinue(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
