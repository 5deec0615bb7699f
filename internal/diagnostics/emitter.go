package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/martimartins/carbon-lang/colors"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// AddSource registers in-memory content for a file path
func (sc *SourceCache) AddSource(filepath, content string) {
	sc.files[filepath] = strings.Split(content, "\n")
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	// Load file
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache  *SourceCache
	writer io.Writer
}

// NewEmitter creates an emitter that writes to a specific writer
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{
		cache:  NewSourceCache(),
		writer: w,
	}
}

func severityColor(s Severity) colors.COLOR {
	switch s {
	case Error:
		return colors.RED
	case Warning:
		return colors.ORANGE
	default:
		return colors.CYAN
	}
}

// Emit renders a single diagnostic with source snippets for its labels
func (e *Emitter) Emit(diag *Diagnostic) {
	color := severityColor(diag.Severity)

	if diag.Code != "" {
		color.Fprintf(e.writer, "%s[%s]", diag.Severity, diag.Code)
	} else {
		color.Fprintf(e.writer, "%s", diag.Severity)
	}
	fmt.Fprintf(e.writer, ": %s\n", diag.Message)

	for _, label := range diag.Labels {
		e.emitLabel(label, color)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprintf(e.writer, "  = note: ")
		fmt.Fprintln(e.writer, note.Message)
	}
	if diag.Help != "" {
		colors.GREEN.Fprintf(e.writer, "  = help: ")
		fmt.Fprintln(e.writer, diag.Help)
	}
	fmt.Fprintln(e.writer)
}

func (e *Emitter) emitLabel(label Label, color colors.COLOR) {
	loc := label.Location
	if loc == nil || loc.Start == nil {
		return
	}

	arrow := " -->"
	if label.Style == Secondary {
		arrow = "  --"
	}
	colors.GREY.Fprintf(e.writer, "%s %s:%d:%d\n", arrow, loc.File(), loc.Start.Line, loc.Start.Column)

	line, err := e.cache.GetLine(loc.File(), loc.Start.Line)
	if err != nil {
		// No source available (detached AST); the location header is enough
		if label.Message != "" {
			fmt.Fprintf(e.writer, "      %s\n", label.Message)
		}
		return
	}

	lineNum := fmt.Sprintf("%d", loc.Start.Line)
	pad := strings.Repeat(" ", len(lineNum))

	colors.GREY.Fprintf(e.writer, " %s |\n", pad)
	colors.GREY.Fprintf(e.writer, " %s |", lineNum)
	fmt.Fprintf(e.writer, " %s\n", line)
	colors.GREY.Fprintf(e.writer, " %s |", pad)

	marker := "^"
	if label.Style == Secondary {
		marker = "-"
	}
	width := 1
	if loc.End != nil && loc.End.Line == loc.Start.Line && loc.End.Column > loc.Start.Column {
		width = loc.End.Column - loc.Start.Column
	}
	underline := strings.Repeat(" ", loc.Start.Column) + strings.Repeat(marker, width)
	color.Fprintf(e.writer, "%s %s\n", underline, label.Message)
}
