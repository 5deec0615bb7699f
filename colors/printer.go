package colors

import (
	"fmt"
	"io"
)

// Print methods (default to stdout)
func (c COLOR) Printf(format string, args ...any) {
	fmt.Printf(c.code()+format+reset(), args...)
}

func (c COLOR) Println(args ...any) {
	fmt.Print(c.code())
	fmt.Println(args...)
	fmt.Print(reset())
}

// Fprint methods (write to specific writer)
func (c COLOR) Fprintf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, c.code()+format+reset(), args...)
}

func (c COLOR) Fprintln(w io.Writer, args ...any) {
	fmt.Fprint(w, c.code())
	fmt.Fprintln(w, args...)
	fmt.Fprint(w, reset())
}

func (c COLOR) Sprintf(format string, args ...any) string {
	return c.code() + fmt.Sprintf(format, args...) + reset()
}

func (c COLOR) Sprint(args ...any) string {
	return c.code() + fmt.Sprint(args...) + reset()
}
