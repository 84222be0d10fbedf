package cmd

import (
	"context"

	"github.com/ardnew/sift/cli/cmd/repl"
	"github.com/ardnew/sift/log"
)

// Repl evaluates expressions interactively against the loaded subject
// documents.
type Repl struct {
	Cache string `default:"${cachePath}" help:"Cache directory for input history" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	// Stdin belongs to the terminal here, so "-" sources are not resolved.
	subjects, err := loadSubjects(subjectFilesFrom(ctx))
	if err != nil {
		return err
	}

	values := make([]any, len(subjects))
	for i, subject := range subjects {
		values[i] = subject.Value
	}

	return repl.Run(ctx, values, ParseValue, r.Cache, log.Default())
}
