package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/sift/lang"
	"github.com/ardnew/sift/log"
)

// Match compiles a predicate expression and selects the subject documents
// satisfying it.
type Match struct {
	Expression string `arg:"" help:"Predicate expression" name:"expression"`

	Value  []string `help:"Embedded values bound to placeholders in appearance order" name:"value" short:"v"`
	Count  bool     `help:"Print only the count of matching documents"                             short:"c"`
	Invert bool     `help:"Select documents that do not satisfy the expression"                    short:"n"`
	Quiet  bool     `help:"Print nothing; exit status reports whether any document matched"        short:"q"`
}

// Run executes the match command.
func (m *Match) Run(ctx context.Context) error {
	values, err := ParseValues(m.Value)
	if err != nil {
		return err
	}

	pred, err := lang.Compile(ctx, m.Expression,
		lang.WithValues(values...),
		lang.WithLogger(log.Default()),
	)
	if err != nil {
		return err
	}

	subjects, err := loadSubjects(sources(ctx))
	if err != nil {
		return err
	}

	out := stdout(ctx)

	var matched int

	for _, subject := range subjects {
		ok := pred(subject.Value)
		if ok == m.Invert {
			continue
		}

		matched++

		log.TraceContext(ctx, "subject matched",
			slog.String("source", subject.Source),
			slog.Int("document", subject.Index),
		)

		if m.Count || m.Quiet {
			continue
		}

		err = writeSubject(out, subject)
		if err != nil {
			return err
		}
	}

	if m.Count && !m.Quiet {
		fmt.Fprintln(out, matched)
	}

	if m.Quiet && matched == 0 {
		return ErrNoMatch
	}

	return nil
}

// stdout resolves the command's output writer from the parse context,
// falling back to the process stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// sources resolves the subject input paths, defaulting to stdin when none
// were given.
func sources(ctx context.Context) []string {
	paths := subjectFilesFrom(ctx)
	if len(paths) == 0 {
		return []string{stdinSource}
	}

	return paths
}

// writeSubject prints one matching document to w as a YAML stream element.
func writeSubject(w io.Writer, subject Subject) error {
	out, err := yaml.Marshal(subject.Value)
	if err != nil {
		return ErrEncodeResult.Wrap(err).
			With(
				slog.String("source", subject.Source),
				slog.Int("document", subject.Index),
			)
	}

	fmt.Fprintln(w, "---")
	w.Write(out)

	return nil
}
