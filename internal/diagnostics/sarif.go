package diagnostics

import (
	"io"

	"github.com/owenrumney/go-sarif/sarif"
)

// WriteSARIF renders the collected diagnostics as a SARIF 2.1.0 report,
// for consumption by editors and CI annotation tools.
func (db *DiagnosticBag) WriteSARIF(w io.Writer, toolName string) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRun(toolName, "https://github.com/martimartins/carbon-lang")
	for _, diag := range db.Diagnostics() {
		addSarifResult(run, diag)
	}
	report.AddRun(run)

	return report.Write(w)
}

func addSarifResult(run *sarif.Run, diag *Diagnostic) {
	ruleID := diag.Code
	if ruleID == "" {
		ruleID = diag.Severity.String()
	}

	result := run.AddResult(ruleID).
		WithMessage(sarif.NewMessage().WithText(diag.Message))

	loc := diag.PrimaryLocation()
	if loc != nil && loc.Start != nil {
		result.WithLocation(sarif.NewLocationWithPhysicalLocation(sarif.NewPhysicalLocation().
			WithArtifactLocation(sarif.NewArtifactLocation().
				WithUri(loc.File())).
			WithRegion(sarif.NewRegion().
				WithStartLine(loc.Start.Line).
				WithStartColumn(loc.Start.Column))))
	}
}
