package diagnostics

import (
	"github.com/martimartins/carbon-lang/internal/source"
)

// Builders for the control-flow resolution diagnostics

// MisplacedReturn creates a diagnostic for a return outside any function body
func MisplacedReturn(loc *source.Location) *Diagnostic {
	return NewError("return is not within a function body").
		WithCode(ErrMisplacedReturn).
		WithPrimaryLabel(loc, "return used here").
		WithNote("a continuation body does not belong to the enclosing function")
}

// MisplacedBreak creates a diagnostic for a break outside any loop
func MisplacedBreak(loc *source.Location) *Diagnostic {
	return NewError("break is not within a loop body").
		WithCode(ErrMisplacedBreak).
		WithPrimaryLabel(loc, "not inside a loop")
}

// MisplacedContinue creates a diagnostic for a continue outside any loop
func MisplacedContinue(loc *source.Location) *Diagnostic {
	return NewError("continue is not within a loop body").
		WithCode(ErrMisplacedContinue).
		WithPrimaryLabel(loc, "not inside a loop")
}

// DuplicateAutoReturn creates a diagnostic for a second return in a
// function whose return type is deduced.
func DuplicateAutoReturn(loc *source.Location, funcName string, funcLoc *source.Location) *Diagnostic {
	return NewError("only one return is allowed in a function with an 'auto' return type").
		WithCode(ErrDuplicateAutoReturn).
		WithPrimaryLabel(loc, "second return here").
		WithSecondaryLabel(funcLoc, "function '"+funcName+"' deduces its return type").
		WithHelp("declare an explicit return type to allow multiple returns")
}

// ReturnValueMismatch creates a diagnostic for a return whose value
// presence disagrees with the function's signature.
func ReturnValueMismatch(loc *source.Location, funcName string, omitted bool) *Diagnostic {
	msg := "return should provide a return value, to match the function's signature"
	label := "missing return value"
	help := "add a value to this return, or declare a return type of the function"
	if omitted {
		msg = "return should not provide a return value, to match the function's signature"
		label = "unexpected return value"
		help = "remove the value from this return, or declare a return type on the function"
	}
	return NewError(msg).
		WithCode(ErrReturnValueMismatch).
		WithPrimaryLabel(loc, label).
		WithNote("function '" + funcName + "' declares the mismatched signature").
		WithHelp(help)
}
