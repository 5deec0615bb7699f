package diagnostics

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/martimartins/carbon-lang/colors"
)

const (
	compileFailedMsg          = "\nCompilation failed with %d error(s)"
	andWarningMsg             = " and %d warning(s)"
	compileSuccessWithWarning = "\nCompilation succeeded with %d warning(s)\n"
)

// DiagnosticBag collects diagnostics during compilation
type DiagnosticBag struct {
	diagnostics []*Diagnostic
	mu          sync.Mutex
	errorCount  int
	warnCount   int
	sourceCache *SourceCache
}

// NewDiagnosticBag creates a new diagnostic bag
func NewDiagnosticBag() *DiagnosticBag {
	return &DiagnosticBag{
		diagnostics: make([]*Diagnostic, 0),
		sourceCache: NewSourceCache(),
	}
}

// AddSourceContent adds source content for a file path (for in-memory compilation)
func (db *DiagnosticBag) AddSourceContent(filepath, content string) {
	db.sourceCache.AddSource(filepath, content)
}

// Add adds a diagnostic to the bag
func (db *DiagnosticBag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *DiagnosticBag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *DiagnosticBag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// WarningCount returns the number of warnings
func (db *DiagnosticBag) WarningCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.warnCount
}

// Diagnostics returns a copy of all diagnostics (thread-safe)
func (db *DiagnosticBag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	// Return a copy to prevent races if caller iterates while other goroutines append
	result := make([]*Diagnostic, len(db.diagnostics))
	copy(result, db.diagnostics)
	return result
}

// EmitAll renders every collected diagnostic to stderr
func (db *DiagnosticBag) EmitAll() {
	db.emit(os.Stderr)
}

// EmitAllToString renders every collected diagnostic to a string
func (db *DiagnosticBag) EmitAllToString() string {
	var buf bytes.Buffer
	db.emit(&buf)
	return buf.String()
}

func (db *DiagnosticBag) emit(w io.Writer) {
	emitter := &Emitter{
		cache:  db.sourceCache,
		writer: w,
	}

	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	// copy diagnostics to avoid holding lock during emit
	copy(diagnostics, db.diagnostics)
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(diag)
	}

	db.printSummary(w)
}

func (db *DiagnosticBag) printSummary(w io.Writer) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		colors.RED.Fprintf(w, compileFailedMsg, db.errorCount)
		if db.warnCount > 0 {
			colors.RED.Fprintf(w, andWarningMsg, db.warnCount)
		}
		fmt.Fprintln(w)
	} else if db.warnCount > 0 {
		colors.ORANGE.Fprintf(w, compileSuccessWithWarning, db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *DiagnosticBag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
