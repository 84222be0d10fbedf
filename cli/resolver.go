package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The top-level document must be a mapping. Flag names with hyphens
// (e.g. "log-level") may use underscores in the config file
// (e.g. "log_level"). Command-line flags override config file values.
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: true
func resolve(r io.Reader) (kong.Resolver, error) {
	var raw map[string]any

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		// Unreadable or non-mapping config yields empty configuration so a
		// malformed file never blocks flag parsing.
		return config{}, nil
	}

	cfg := make(config, len(raw))

	for key, value := range raw {
		// Kong requires numbers as strings for parsing.
		switch num := value.(type) {
		case int64:
			cfg[key] = strconv.FormatInt(num, 10)
		case uint64:
			cfg[key] = strconv.FormatUint(num, 10)
		case float64:
			cfg[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			cfg[key] = value
		}
	}

	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Underscore variant of hyphenated flag names.
	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
