package source

import "fmt"

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

// File returns the filename for this location, or "<unknown>" if none is set.
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return "<unknown>"
	}
	return *l.Filename
}

func (l *Location) String() string {
	if l == nil || l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}

// Spanning builds a location covering both a and b.
// Filenames are taken from a; callers only merge locations within one file.
func Spanning(a, b *Location) *Location {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	start := a.Start
	if b.Start != nil && (start == nil || b.Start.Before(start)) {
		start = b.Start
	}
	end := a.End
	if b.End != nil && (end == nil || end.Before(b.End)) {
		end = b.End
	}
	return &Location{Filename: a.Filename, Start: start, End: end}
}
