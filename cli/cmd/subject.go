package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// Subject is one document decoded from an input stream, tagged with its
// origin for diagnostics and output.
type Subject struct {
	Value  any
	Source string
	Index  int
}

// loadSubjects reads and decodes every document from the given source paths
// in order. YAML and JSON inputs are both accepted; multi-document YAML
// streams yield one subject per document. All occurrences of "-" are
// replaced with a single stdin reader placed last so it reads after all
// regular files. Duplicate paths are read once.
func loadSubjects(paths []string) ([]Subject, error) {
	var (
		subjects []Subject
		useStdin bool
	)

	seen := make(map[string]struct{})

	for _, path := range paths {
		if path == stdinSource {
			useStdin = true

			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}

		if _, ok := seen[abs]; ok {
			continue
		}

		seen[abs] = struct{}{}

		file, err := os.Open(path)
		if err != nil {
			return nil, ErrReadSubject.Wrap(err).
				With(slog.String("path", path))
		}

		subjects, err = decodeSubjects(subjects, file, path)

		file.Close()

		if err != nil {
			return nil, err
		}
	}

	if useStdin {
		var err error

		subjects, err = decodeSubjects(subjects, os.Stdin, stdinSource)
		if err != nil {
			return nil, err
		}
	}

	return subjects, nil
}

// decodeSubjects appends every document in r to subjects.
func decodeSubjects(
	subjects []Subject, r io.Reader, source string,
) ([]Subject, error) {
	dec := yaml.NewDecoder(r)

	for index := 0; ; index++ {
		var value any

		err := dec.Decode(&value)
		if errors.Is(err, io.EOF) {
			return subjects, nil
		}

		if err != nil {
			return nil, ErrDecodeSubject.Wrap(err).
				With(
					slog.String("source", source),
					slog.Int("document", index),
				)
		}

		subjects = append(subjects, Subject{
			Value:  value,
			Source: source,
			Index:  index,
		})
	}
}
