package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func lookupFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	v, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}

	return v
}

func TestResolve_YAMLConfig(t *testing.T) {
	r, err := resolve(strings.NewReader(`
log_level: debug
log-format: json
log_pretty: true
timeout: 30
`))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if got := lookupFlag(t, r, "log-level"); got != "debug" {
		t.Errorf("log-level = %#v, want debug (underscore variant)", got)
	}

	if got := lookupFlag(t, r, "log-format"); got != "json" {
		t.Errorf("log-format = %#v, want json (hyphen form)", got)
	}

	if got := lookupFlag(t, r, "log-pretty"); got != true {
		t.Errorf("log-pretty = %#v, want true", got)
	}

	// Numbers resolve as strings for Kong's parser.
	if got := lookupFlag(t, r, "timeout"); got != "30" {
		t.Errorf("timeout = %#v, want \"30\"", got)
	}

	if got := lookupFlag(t, r, "absent"); got != nil {
		t.Errorf("absent flag = %#v, want nil", got)
	}
}

func TestResolve_MalformedConfig(t *testing.T) {
	r, err := resolve(strings.NewReader("not: [valid"))
	if err != nil {
		t.Fatalf("resolve returned error for malformed input: %v", err)
	}

	if got := lookupFlag(t, r, "not"); got != nil {
		t.Errorf("malformed config resolved %#v, want nil", got)
	}
}

func TestResolve_NonMappingConfig(t *testing.T) {
	r, err := resolve(strings.NewReader("- a\n- b\n"))
	if err != nil {
		t.Fatalf("resolve returned error for sequence input: %v", err)
	}

	if got := lookupFlag(t, r, "a"); got != nil {
		t.Errorf("sequence config resolved %#v, want nil", got)
	}
}
