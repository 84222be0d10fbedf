// Package cli contains the command line interface for sift.
//
// # Usage
//
// Subject documents are YAML or JSON streams read from files or stdin:
//
//	sift -s subjects.yaml '{ name: @0, age: (> 17 && < 66) }' -v '/^[A-Z]/'
//
// The default command is match, which prints every subject document
// satisfying the expression. check compiles an expression without
// evaluating it, and repl evaluates expressions interactively.
//
// # Bound values
//
// Each --value argument is interpreted, in order, as one of:
//
//   - /pattern/ compiled regular expression
//   - a runtime type descriptor name (number, text, bool, symbol, func,
//     list, object)
//   - expr:PROGRAM, a boolean expr program with the subject bound to "it"
//   - a YAML literal
//
// # Configuration
//
// Defaults for any flag may be given in the user configuration directory as
// config.yaml or config.json. Command-line flags override config values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//	sift --pprof-mode=cpu ...
package cli
