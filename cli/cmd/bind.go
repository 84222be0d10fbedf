package cmd

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/sift/lang"
)

// exprPrefix marks a bound value as an expr program evaluated against each
// subject.
const exprPrefix = "expr:"

// ParseValue interprets one --value flag argument as an embedded value.
//
// The following forms are recognized, in order:
//
//	/pattern/     compiled regular expression
//	number, text, bool, symbol, func, list, object
//	              runtime type descriptor
//	expr:PROGRAM  boolean expr program with the subject bound to "it"
//	anything else YAML literal (string, number, bool, null, flow
//	              sequence, or flow mapping)
func ParseValue(arg string) (any, error) {
	if len(arg) >= 2 && strings.HasPrefix(arg, "/") &&
		strings.HasSuffix(arg, "/") {
		re, err := regexp.Compile(arg[1 : len(arg)-1])
		if err != nil {
			return nil, ErrParseBind.Wrap(err).
				With(slog.String("pattern", arg))
		}

		return re, nil
	}

	if t, ok := lang.ParseType(arg); ok {
		return t, nil
	}

	if prog, ok := strings.CutPrefix(arg, exprPrefix); ok {
		return compileExpr(prog)
	}

	var value any

	err := yaml.Unmarshal([]byte(arg), &value)
	if err != nil {
		return nil, ErrParseBind.Wrap(err).
			With(slog.String("value", arg))
	}

	return value, nil
}

// ParseValues interprets each argument with [ParseValue].
func ParseValues(args []string) ([]any, error) {
	values := make([]any, len(args))

	for i, arg := range args {
		v, err := ParseValue(arg)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}

// compileExpr compiles an expr program into a predicate over the subject.
// The subject is bound to both "it" and "n" inside the program.
func compileExpr(prog string) (lang.Predicate, error) {
	program, err := expr.Compile(prog,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrParseBind.Wrap(err).
			With(slog.String("program", prog))
	}

	return exprPredicate(program), nil
}

// exprPredicate adapts a compiled expr program to a predicate. A runtime
// error or non-boolean result is treated as unsatisfied.
func exprPredicate(program *vm.Program) lang.Predicate {
	return func(subject any) bool {
		env := map[string]any{"it": subject, "n": subject}

		out, err := expr.Run(program, env)
		if err != nil {
			return false
		}

		b, ok := out.(bool)

		return ok && b
	}
}
