package ast

import "github.com/martimartins/carbon-lang/internal/source"

// Block represents a braced sequence of statements
type Block struct {
	Nodes []Node
	source.Location
}

func (b *Block) INode()                {} // Implements Node interface
func (b *Block) Block()                {} // Block is a marker interface for block constructs
func (b *Block) Loc() *source.Location { return &b.Location }

// IfStmt represents an if statement with optional else branch
type IfStmt struct {
	Cond Expression // condition
	Body *Block     // then branch
	Else Node       // else branch (can be another IfStmt or Block, nil if absent)
	source.Location
}

func (i *IfStmt) INode()                {} // Implements Node interface
func (i *IfStmt) Block()                {} // Block is a marker interface for block constructs
func (i *IfStmt) Loc() *source.Location { return &i.Location }

// WhileStmt represents a while loop, the only loop form in the grammar.
// Break and continue statements resolve to the innermost enclosing WhileStmt.
type WhileStmt struct {
	Cond Expression // condition
	Body *Block     // loop body
	source.Location
}

func (w *WhileStmt) INode()                {} // Implements Node interface
func (w *WhileStmt) Block()                {} // Block is a marker interface for block constructs
func (w *WhileStmt) Loc() *source.Location { return &w.Location }

// MatchStmt represents a match statement
type MatchStmt struct {
	Expr  Expression    // expression to match
	Cases []*CaseClause // match clauses
	source.Location
}

func (m *MatchStmt) INode()                {} // Implements Node interface
func (m *MatchStmt) Block()                {} // Block is a marker interface for block constructs
func (m *MatchStmt) Loc() *source.Location { return &m.Location }

// CaseClause represents a single clause in a match statement
type CaseClause struct {
	Pattern Expression // pattern to match (nil for the default clause)
	Body    *Block     // clause body
	source.Location
}

func (c *CaseClause) Loc() *source.Location { return &c.Location }

// ContinuationStmt declares a suspendable continuation. Its body is a
// fresh scope: it inherits neither the enclosing loop nor the enclosing
// function context.
type ContinuationStmt struct {
	Name *IdentifierExpr // continuation variable name
	Body *Block          // continuation body
	source.Location
}

func (c *ContinuationStmt) INode()                {} // Implements Node interface
func (c *ContinuationStmt) Block()                {} // Block is a marker interface for block constructs
func (c *ContinuationStmt) Loc() *source.Location { return &c.Location }
