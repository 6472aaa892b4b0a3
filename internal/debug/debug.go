// Package debug provides the lightweight, opt-in trace logging used across
// the sweep and offset algorithms: a package-level toggle plus a
// configurable writer, rather than an external logging dependency. These
// algorithms only need trace output during development, not production
// telemetry, so a log line gated by a bool is enough.
package debug

import (
	"fmt"
	"io"
	"os"
)

// Enabled turns trace logging on. Off by default; the CLI's --debug flag
// flips it on for the lifetime of the process.
var Enabled = false

// Output is where trace lines go when Enabled is true.
var Output io.Writer = os.Stderr

// Logf writes a formatted trace line, tagged with component, when enabled.
func Logf(component, format string, args ...interface{}) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Output, "[%s] "+format+"\n", append([]interface{}{component}, args...)...)
}

// Phase writes a phase separator, tagged with component, when enabled.
func Phase(component, phase string) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Output, "[%s] --- %s ---\n", component, phase)
}
