package lang

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind identifies one of the closed set of token kinds recognized by the
// grammar.
type Kind int

const (
	KindEOF         Kind = iota // end of input
	KindBang                    // !
	KindAnd                     // &&
	KindOr                      // ||
	KindBetween                 // < <
	KindGreater                 // >
	KindGreaterEq               // >=
	KindLess                    // <
	KindLessEq                  // <=
	KindColon                   // :
	KindBraceOpen               // {
	KindBraceClose              // }
	KindComma                   // ,
	KindParenOpen               // (
	KindParenClose              // )
	KindSymbol                  // symbol
	KindNumber                  // number
	KindString                  // string
	KindPlaceholder             // placeholder
)

// kindCount sizes the fixed grammar tables below; it must track the last
// Kind constant.
const kindCount = int(KindPlaceholder) + 1

// Token is one immutable lexical unit of an expression.
// Tokens are produced once by the lexer and never mutated.
type Token struct {
	Kind  Kind
	Text  string // literal spelling as it appeared in the source
	Index int    // ordinal of the embedded value (KindPlaceholder only)
	Pos   int    // byte offset of the first character in the source
}

// arity is the fixed operand count of each operator kind.
// Non-operator kinds hold zero.
//
//nolint:gochecknoglobals
var arity = [kindCount]int{
	KindBang:      1,
	KindGreater:   1,
	KindGreaterEq: 1,
	KindLess:      1,
	KindLessEq:    1,
	KindAnd:       2,
	KindOr:        2,
	KindBetween:   2,
	KindColon:     2,
}

// prec is the fixed precedence rank of each operator kind.
// A higher rank binds tighter. The entry separator ranks loosest so that a
// key captures its complete right-hand expression before the enclosing
// object construct reduces.
//
//nolint:gochecknoglobals
var prec = [kindCount]int{
	KindColon:     1,
	KindOr:        2,
	KindAnd:       3,
	KindBetween:   4,
	KindGreater:   5,
	KindGreaterEq: 5,
	KindLess:      5,
	KindLessEq:    5,
	KindBang:      6,
}

// operator reports whether the kind reduces operands from the stack.
func (k Kind) operator() bool {
	return arity[k] > 0
}

// symbols is the fixed table of literal operator and punctuation spellings,
// consulted in order at each scan position. Two-character spellings precede
// their one-character prefixes so the longest spelling wins.
//
//nolint:gochecknoglobals
var symbols = []struct {
	lit  string
	kind Kind
}{
	{"&&", KindAnd},
	{"||", KindOr},
	{">=", KindGreaterEq},
	{"<=", KindLessEq},
	{">", KindGreater},
	{"<", KindLess},
	{"!", KindBang},
	{":", KindColon},
	{"{", KindBraceOpen},
	{"}", KindBraceClose},
	{",", KindComma},
	{"(", KindParenOpen},
	{")", KindParenClose},
}
