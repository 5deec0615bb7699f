package ast

import "github.com/martimartins/carbon-lang/internal/source"

// ReturnStmt represents a return statement.
// The function back-reference is unset after parsing and bound exactly
// once by the control-flow resolution pass.
type ReturnStmt struct {
	Result Expression // return value (nil when the return carries no value)

	function *FuncDecl // enclosing function, bound by control-flow resolution

	source.Location
}

func (r *ReturnStmt) INode()                {} // Implements Node interface
func (r *ReturnStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *ReturnStmt) Loc() *source.Location { return &r.Location }

// Function returns the enclosing function declaration, or nil before
// control-flow resolution has run.
func (r *ReturnStmt) Function() *FuncDecl { return r.function }

// SetFunction binds the enclosing function. Called once per statement.
func (r *ReturnStmt) SetFunction(f *FuncDecl) { r.function = f }

// IsOmittedResult reports whether the statement is a bare `return;`
func (r *ReturnStmt) IsOmittedResult() bool { return r.Result == nil }

// BreakStmt represents a break statement
type BreakStmt struct {
	loop *WhileStmt // enclosing loop, bound by control-flow resolution

	source.Location
}

func (b *BreakStmt) INode()                {} // Implements Node interface
func (b *BreakStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (b *BreakStmt) Loc() *source.Location { return &b.Location }

// Loop returns the loop this break exits, or nil before resolution.
func (b *BreakStmt) Loop() *WhileStmt { return b.loop }

// SetLoop binds the enclosing loop. Called once per statement.
func (b *BreakStmt) SetLoop(w *WhileStmt) { b.loop = w }

// ContinueStmt represents a continue statement
type ContinueStmt struct {
	loop *WhileStmt // enclosing loop, bound by control-flow resolution

	source.Location
}

func (c *ContinueStmt) INode()                {} // Implements Node interface
func (c *ContinueStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (c *ContinueStmt) Loc() *source.Location { return &c.Location }

// Loop returns the loop this continue restarts, or nil before resolution.
func (c *ContinueStmt) Loop() *WhileStmt { return c.loop }

// SetLoop binds the enclosing loop. Called once per statement.
func (c *ContinueStmt) SetLoop(w *WhileStmt) { c.loop = w }

// AssignStmt represents an assignment statement
type AssignStmt struct {
	Lhs Expression // left-hand side (IdentifierExpr, index, selector, ...)
	Rhs Expression // right-hand side
	source.Location
}

func (a *AssignStmt) INode()                {} // Implements Node interface
func (a *AssignStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *AssignStmt) Loc() *source.Location { return &a.Location }

// ExprStmt represents an expression used as a statement
type ExprStmt struct {
	X Expression
	source.Location
}

func (e *ExprStmt) INode()                {} // Implements Node interface
func (e *ExprStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (e *ExprStmt) Loc() *source.Location { return &e.Location }

// RunStmt starts executing the named continuation
type RunStmt struct {
	Argument Expression // the continuation value to run
	source.Location
}

func (r *RunStmt) INode()                {} // Implements Node interface
func (r *RunStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (r *RunStmt) Loc() *source.Location { return &r.Location }

// AwaitStmt suspends the continuation currently executing
type AwaitStmt struct {
	source.Location
}

func (a *AwaitStmt) INode()                {} // Implements Node interface
func (a *AwaitStmt) Stmt()                 {} // Stmt is a marker interface for all statements
func (a *AwaitStmt) Loc() *source.Location { return &a.Location }
