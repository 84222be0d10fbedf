package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/sift/lang"
	"github.com/ardnew/sift/log"
)

// Check compiles a predicate expression and reports errors without
// evaluating it against any subject.
type Check struct {
	Expression string `arg:"" help:"Predicate expression" name:"expression"`

	Value []string `help:"Embedded values bound to placeholders in appearance order" name:"value" short:"v"`
	Tree  bool     `help:"Print the parsed expression tree"                                       short:"t"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	values, err := ParseValues(c.Value)
	if err != nil {
		return err
	}

	opts := []lang.Option{
		lang.WithValues(values...),
		lang.WithLogger(log.Default()),
	}

	out := stdout(ctx)

	if c.Tree {
		tree, err := lang.Parse(ctx, c.Expression, opts...)
		if err != nil {
			return err
		}

		tree.Print(out, 0)

		return nil
	}

	_, err = lang.Compile(ctx, c.Expression, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "ok")

	return nil
}
