package diagnostics

// Error codes for the semantic front-end
const (
	// Control-flow resolution errors (C prefix)
	ErrMisplacedReturn     = "C0001"
	ErrMisplacedBreak      = "C0002"
	ErrMisplacedContinue   = "C0003"
	ErrDuplicateAutoReturn = "C0004"
	ErrReturnValueMismatch = "C0005"
)
