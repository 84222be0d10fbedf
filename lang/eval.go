package lang

import (
	"log/slog"
)

// reduce folds the expression tree into a single predicate with one
// post-order walk. Leaves classify their value; internal nodes apply a
// combinator to their already-reduced children. The tree is never mutated,
// so the same tree may be reduced repeatedly.
func (c *compiler) reduce(node Node) (Predicate, error) {
	switch n := node.(type) {
	case *LiteralNode:
		// Bare literals coerce through the same classification used for
		// embedded values: a literal becomes an equality predicate.
		return classify(n.Value)

	case *EmbeddedNode:
		return classify(n.Value)

	case *OperatorNode:
		return c.reduceOperator(n)

	case *HoldsNode:
		args := make([]Predicate, len(n.Args))

		for i, arg := range n.Args {
			p, err := c.reduce(arg)
			if err != nil {
				return nil, err
			}

			args[i] = p
		}

		return holds(args...), nil

	case *ObjectNode:
		entries := make([]entry, len(n.Entries))

		for i, e := range n.Entries {
			p, err := c.reduce(e.Child)
			if err != nil {
				return nil, err
			}

			entries[i] = entry{key: e.Key, pred: p}
		}

		return objectShape(entries), nil

	case *EntryNode:
		// The parser only ever places entries inside object constructs.
		return nil, ErrSyntax.
			At(c.source, n.Pos()).
			With(slog.String("reason", "entry outside object construct"))
	}

	return nil, ErrSyntax.With(slog.String("reason", "unknown node"))
}

// reduceOperator dispatches a fixed-arity operator node to its combinator.
// Boolean operators fold their children to predicates; comparison and
// between operators fold theirs to captured numeric bounds.
func (c *compiler) reduceOperator(n *OperatorNode) (Predicate, error) {
	switch n.Kind {
	case KindBang:
		p, err := c.reduce(n.Operands[0])
		if err != nil {
			return nil, err
		}

		return not(p), nil

	case KindAnd, KindOr:
		// Children reduce left to right; the combinator preserves
		// short-circuit order at invocation time.
		p, err := c.reduce(n.Operands[0])
		if err != nil {
			return nil, err
		}

		q, err := c.reduce(n.Operands[1])
		if err != nil {
			return nil, err
		}

		if n.Kind == KindAnd {
			return and(p, q), nil
		}

		return or(p, q), nil

	case KindBetween:
		a, err := c.bound(n.Operands[0])
		if err != nil {
			return nil, err
		}

		b, err := c.bound(n.Operands[1])
		if err != nil {
			return nil, err
		}

		return between(a, b), nil

	case KindGreater, KindGreaterEq, KindLess, KindLessEq:
		bound, err := c.bound(n.Operands[0])
		if err != nil {
			return nil, err
		}

		return compare(n.Kind, bound), nil
	}

	return nil, ErrSyntax.
		At(c.source, n.Pos()).
		With(slog.String("operator", n.Kind.String()))
}

// bound extracts the captured numeric bound of a comparison or between
// operand. Anything non-numeric is a compile-time error, never deferred to
// predicate invocation.
func (c *compiler) bound(node Node) (float64, error) {
	var value any

	switch n := node.(type) {
	case *LiteralNode:
		value = n.Value
	case *EmbeddedNode:
		value = n.Value
	default:
		return 0, ErrBound.At(c.source, node.Pos())
	}

	f, ok := toFloat(value)
	if !ok {
		return 0, ErrBound.
			At(c.source, node.Pos()).
			With(slog.Any("value", value))
	}

	return f, nil
}
