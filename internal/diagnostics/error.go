package diagnostics

import "fmt"

// CompileError is an unrecoverable compilation failure carrying a single
// diagnostic. Passes return it up the call chain instead of aborting the
// process; the first violation terminates the pass and no partial output
// is produced.
type CompileError struct {
	Diag *Diagnostic
}

// Fatal wraps a diagnostic into a pass-terminating error.
func Fatal(diag *Diagnostic) error {
	return &CompileError{Diag: diag}
}

func (e *CompileError) Error() string {
	loc := e.Diag.PrimaryLocation()
	if loc != nil && loc.Start != nil {
		return fmt.Sprintf("%s:%d:%d: %s: %s", loc.File(), loc.Start.Line, loc.Start.Column, e.Diag.Severity, e.Diag.Message)
	}
	return fmt.Sprintf("%s: %s", e.Diag.Severity, e.Diag.Message)
}
