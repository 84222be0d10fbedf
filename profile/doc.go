// Package profile provides optional runtime profiling for the sift
// application.
//
// It integrates [github.com/pkg/profile] behind conditional compilation.
// Profiling must be enabled at build time with the "pprof" build tag; when
// built without it (the default), all operations are no-ops with zero
// runtime overhead.
//
// Supported modes when built with the pprof tag are allocs, block, clock,
// cpu, goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to
// retrieve the list programmatically.
//
//	p := profile.WithMode("cpu")(profile.Config(func() (string, string, bool) {
//	    return "", "", false
//	}))
//	ctrl := p.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the mode (e.g. cpu.pprof, mem.pprof) and analyzed with go tool pprof.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
