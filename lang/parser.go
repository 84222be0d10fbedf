package lang

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Node is one vertex of the expression tree. The tree is owned top-down,
// acyclic, and immutable once parse returns; evaluation never mutates it.
type Node interface {
	// Pos returns the byte offset of the token the node was built from.
	Pos() int
	// Print writes an indented representation of the subtree to w.
	Print(w io.Writer, indent int)
}

// LiteralNode is a scalar drawn directly from the token stream: a number,
// a quoted text literal, or a bare symbol.
type LiteralNode struct {
	Value any
	pos   int
}

// EmbeddedNode is the opaque caller-supplied value located at a
// placeholder's ordinal index. The value is resolved once, during parsing.
type EmbeddedNode struct {
	Value any
	Index int
	pos   int
}

// OperatorNode is a fixed-arity operator application. Operands always
// number exactly the operator's declared arity.
type OperatorNode struct {
	Operands []Node
	Kind     Kind
	pos      int
}

// HoldsNode is a group of two or more comma-separated operands, each of
// which must be satisfied by at least one element of a list subject.
type HoldsNode struct {
	Args []Node
	pos  int
}

// EntryNode pairs a key with a predicate-producing child. It is a
// structural carrier consumed only by an enclosing ObjectNode.
type EntryNode struct {
	Child Node
	Key   string
	pos   int
}

// ObjectNode is the variable-arity object-shape construct: an ordered list
// of entries between a matching brace pair.
type ObjectNode struct {
	Entries []*EntryNode
	pos     int
}

func (n *LiteralNode) Pos() int  { return n.pos }
func (n *EmbeddedNode) Pos() int { return n.pos }
func (n *OperatorNode) Pos() int { return n.pos }
func (n *HoldsNode) Pos() int    { return n.pos }
func (n *EntryNode) Pos() int    { return n.pos }
func (n *ObjectNode) Pos() int   { return n.pos }

// barrier marks an open group or object construct on the operator stack.
type barrier struct {
	tok  Token
	base int // operand stack depth when the barrier was pushed
	seps int // argument separators seen inside this construct
}

// parser folds the token stream into a single expression tree using a
// working stack of pending operators and a stack of reduced operands.
type parser struct {
	src      string
	values   []any
	operands []Node
	ops      []Token
	barriers []barrier
}

// parse consumes the full token stream and returns the single remaining
// operand. Any unconsumed token, unmatched construct, or surplus operand is
// a syntax error naming the failing position.
func parse(src string, toks []Token, values []any) (Node, error) {
	p := &parser{src: src, values: values}

	for _, tok := range toks {
		var err error

		switch tok.Kind {
		case KindNumber, KindString, KindSymbol:
			p.push(literal(tok))

		case KindPlaceholder:
			err = p.placeholder(tok)

		case KindBang, KindGreater, KindGreaterEq, KindLess, KindLessEq:
			// Prefix operators wait for their operand; nothing reduces yet.
			p.ops = append(p.ops, tok)

		case KindAnd, KindOr, KindBetween, KindColon:
			err = p.infix(tok)

		case KindParenOpen, KindBraceOpen:
			p.barriers = append(p.barriers, barrier{
				tok:  tok,
				base: len(p.operands),
			})
			p.ops = append(p.ops, tok)

		case KindParenClose:
			err = p.closeGroup(tok)

		case KindBraceClose:
			err = p.closeObject(tok)

		case KindComma:
			err = p.separator(tok)

		case KindEOF:
			return p.finish(tok)
		}

		if err != nil {
			return nil, err
		}
	}

	// scan always terminates the stream with KindEOF.
	return nil, ErrSyntax.With(slog.String("reason", "missing end of input"))
}

// literal converts a scalar token to its value. Numbers become float64;
// symbols and strings carry their text.
func literal(tok Token) Node {
	var value any

	switch tok.Kind {
	case KindNumber:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// The lexer only emits digits, '-', and '.', so ParseFloat
			// cannot fail; keep the raw text if it somehow does.
			value = tok.Text
		} else {
			value = f
		}

	default:
		value = tok.Text
	}

	return &LiteralNode{Value: value, pos: tok.Pos}
}

func (p *parser) push(n Node) {
	p.operands = append(p.operands, n)
}

// placeholder resolves the token's ordinal against the caller-supplied
// value sequence. Out-of-range ordinals fail now, never at evaluation.
func (p *parser) placeholder(tok Token) error {
	if tok.Index < 0 || tok.Index >= len(p.values) {
		return ErrPlaceholder.
			At(p.src, tok.Pos).
			With(
				slog.Int("index", tok.Index),
				slog.Int("supplied", len(p.values)),
			)
	}

	p.push(&EmbeddedNode{
		Value: p.values[tok.Index],
		Index: tok.Index,
		pos:   tok.Pos,
	})

	return nil
}

// infix reduces every pending operator that binds at least as tightly as
// tok, then pushes tok (left associativity).
func (p *parser) infix(tok Token) error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if !top.Kind.operator() || prec[top.Kind] < prec[tok.Kind] {
			break
		}

		if err := p.apply(top); err != nil {
			return err
		}

		p.ops = p.ops[:len(p.ops)-1]
	}

	p.ops = append(p.ops, tok)

	return nil
}

// reduceToBarrier drains pending operators down to the innermost open
// barrier without popping the barrier itself.
func (p *parser) reduceToBarrier() error {
	for len(p.ops) > 0 {
		top := p.ops[len(p.ops)-1]
		if !top.Kind.operator() {
			return nil
		}

		if err := p.apply(top); err != nil {
			return err
		}

		p.ops = p.ops[:len(p.ops)-1]
	}

	return nil
}

// apply pops the operator's operands and pushes the reduced node.
func (p *parser) apply(tok Token) error {
	n := arity[tok.Kind]

	base := 0
	if len(p.barriers) > 0 {
		base = p.barriers[len(p.barriers)-1].base
	}

	if len(p.operands)-base < n {
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(
				slog.String("operator", tok.Kind.String()),
				slog.Int("want", n),
				slog.Int("have", len(p.operands)-base),
			)
	}

	args := p.operands[len(p.operands)-n:]
	p.operands = p.operands[:len(p.operands)-n]

	if tok.Kind == KindColon {
		return p.applyEntry(tok, args[0], args[1])
	}

	for _, arg := range args {
		if entry, ok := arg.(*EntryNode); ok {
			return ErrSyntax.
				At(p.src, entry.Pos()).
				With(slog.String("reason", "entry outside object construct"))
		}
	}

	p.push(&OperatorNode{
		Kind:     tok.Kind,
		Operands: append([]Node(nil), args...),
		pos:      tok.Pos,
	})

	return nil
}

// applyEntry reduces key ':' child into an EntryNode. The key must be a
// bare symbol or a text literal.
func (p *parser) applyEntry(tok Token, key, child Node) error {
	lit, ok := key.(*LiteralNode)
	if !ok {
		return ErrSyntax.
			At(p.src, key.Pos()).
			With(slog.String("reason", "entry key must be a symbol or string"))
	}

	name, ok := lit.Value.(string)
	if !ok {
		return ErrSyntax.
			At(p.src, key.Pos()).
			With(slog.String("reason", "entry key must be a symbol or string"))
	}

	if _, ok := child.(*EntryNode); ok {
		return ErrSyntax.
			At(p.src, child.Pos()).
			With(slog.String("reason", "entry cannot nest directly in an entry"))
	}

	p.push(&EntryNode{Key: name, Child: child, pos: tok.Pos})

	return nil
}

// separator handles ',' which is only valid directly inside an open group
// or object construct, with exactly one operand produced since the last
// separator (or the opening token).
func (p *parser) separator(tok Token) error {
	if len(p.barriers) == 0 {
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "separator outside group or object"))
	}

	if err := p.reduceToBarrier(); err != nil {
		return err
	}

	b := &p.barriers[len(p.barriers)-1]
	if len(p.operands)-b.base != b.seps+1 {
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "missing operand before separator"))
	}

	b.seps++

	return nil
}

// closeGroup reduces a parenthesized run. One operand is pure grouping and
// carries no node of its own; two or more comma-separated operands reduce
// to a HoldsNode.
func (p *parser) closeGroup(tok Token) error {
	b, err := p.closeBarrier(tok, KindParenOpen)
	if err != nil {
		return err
	}

	args := p.operands[b.base:]

	switch {
	case len(args) == 0:
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "empty group"))

	case len(args) != b.seps+1:
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "missing operand before closing paren"))
	}

	for _, arg := range args {
		if entry, ok := arg.(*EntryNode); ok {
			return ErrSyntax.
				At(p.src, entry.Pos()).
				With(slog.String("reason", "entry outside object construct"))
		}
	}

	if len(args) == 1 {
		// Grouping only; the reduced sub-expression stays on the stack.
		return nil
	}

	held := append([]Node(nil), args...)
	p.operands = p.operands[:b.base]
	p.push(&HoldsNode{Args: held, pos: b.tok.Pos})

	return nil
}

// closeObject reduces a brace-delimited run of entries to an ObjectNode.
// Zero entries are allowed; every operand must be an entry.
func (p *parser) closeObject(tok Token) error {
	b, err := p.closeBarrier(tok, KindBraceOpen)
	if err != nil {
		return err
	}

	args := p.operands[b.base:]

	if len(args) > 0 && len(args) != b.seps+1 {
		return ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "missing entry before closing brace"))
	}

	entries := make([]*EntryNode, len(args))

	for i, arg := range args {
		entry, ok := arg.(*EntryNode)
		if !ok {
			return ErrSyntax.
				At(p.src, arg.Pos()).
				With(slog.String("reason", "object construct requires key: value entries"))
		}

		entries[i] = entry
	}

	p.operands = p.operands[:b.base]
	p.push(&ObjectNode{Entries: entries, pos: b.tok.Pos})

	return nil
}

// closeBarrier drains operators to the innermost barrier and pops it,
// verifying the barrier matches the closing token.
func (p *parser) closeBarrier(tok Token, open Kind) (barrier, error) {
	if err := p.reduceToBarrier(); err != nil {
		return barrier{}, err
	}

	if len(p.barriers) == 0 {
		return barrier{}, ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "unmatched "+tok.Text))
	}

	b := p.barriers[len(p.barriers)-1]
	if b.tok.Kind != open {
		return barrier{}, ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "mismatched "+tok.Text))
	}

	p.barriers = p.barriers[:len(p.barriers)-1]
	p.ops = p.ops[:len(p.ops)-1] // pop the open token itself

	return b, nil
}

// finish drains the operator stack at end of input and returns the single
// remaining operand.
func (p *parser) finish(tok Token) (Node, error) {
	if err := p.reduceToBarrier(); err != nil {
		return nil, err
	}

	if len(p.barriers) > 0 {
		open := p.barriers[len(p.barriers)-1].tok

		return nil, ErrSyntax.
			At(p.src, open.Pos).
			With(slog.String("reason", "unmatched "+open.Text))
	}

	switch {
	case len(p.operands) == 0:
		return nil, ErrSyntax.
			At(p.src, tok.Pos).
			With(slog.String("reason", "empty expression"))

	case len(p.operands) > 1:
		return nil, ErrSyntax.
			At(p.src, p.operands[1].Pos()).
			With(slog.String("reason", "expected operator"))
	}

	if entry, ok := p.operands[0].(*EntryNode); ok {
		return nil, ErrSyntax.
			At(p.src, entry.Pos()).
			With(slog.String("reason", "entry outside object construct"))
	}

	return p.operands[0], nil
}

// Print writes a formatted representation of the subtree.

func (n *LiteralNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sLiteral: %v\n", prefix, n.Value)
}

func (n *EmbeddedNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sEmbedded[%d]: %v\n", prefix, n.Index, n.Value)
}

func (n *OperatorNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sOperator: %s\n", prefix, n.Kind)

	for _, operand := range n.Operands {
		operand.Print(w, indent+1)
	}
}

func (n *HoldsNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sHolds:\n", prefix)

	for _, arg := range n.Args {
		arg.Print(w, indent+1)
	}
}

func (n *EntryNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sEntry: %s\n", prefix, n.Key)
	n.Child.Print(w, indent+1)
}

func (n *ObjectNode) Print(w io.Writer, indent int) {
	prefix := strings.Repeat("  ", indent)

	if len(n.Entries) == 0 {
		fmt.Fprintf(w, "%sObject: (empty)\n", prefix)

		return
	}

	fmt.Fprintf(w, "%sObject:\n", prefix)

	for _, entry := range n.Entries {
		entry.Print(w, indent+1)
	}
}
