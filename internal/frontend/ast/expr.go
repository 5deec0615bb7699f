package ast

import "github.com/martimartins/carbon-lang/internal/source"

// IdentifierExpr represents an identifier
type IdentifierExpr struct {
	Name string
	source.Location
}

func (i *IdentifierExpr) INode()                {} // Implements Node interface
func (i *IdentifierExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (i *IdentifierExpr) TypeExpr()             {} // Can also be used as a type name
func (i *IdentifierExpr) Loc() *source.Location { return &i.Location }

// LiteralKind classifies basic literals
type LiteralKind int

const (
	INT LiteralKind = iota
	FLOAT
	STRING
	BOOL
)

func (k LiteralKind) String() string {
	switch k {
	case INT:
		return "int"
	case FLOAT:
		return "float"
	case STRING:
		return "string"
	case BOOL:
		return "bool"
	default:
		return "unknown"
	}
}

// BasicLit represents a literal of basic type (int, float, string, bool)
type BasicLit struct {
	Kind  LiteralKind
	Value string // the literal value as a string
	source.Location
}

func (b *BasicLit) INode()                {} // Implements Node interface
func (b *BasicLit) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BasicLit) Loc() *source.Location { return &b.Location }

// BinaryExpr represents a binary expression
type BinaryExpr struct {
	X  Expression // left operand
	Op string     // operator
	Y  Expression // right operand
	source.Location
}

func (b *BinaryExpr) INode()                {} // Implements Node interface
func (b *BinaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (b *BinaryExpr) Loc() *source.Location { return &b.Location }

// UnaryExpr represents a unary expression
type UnaryExpr struct {
	Op string     // operator
	X  Expression // operand
	source.Location
}

func (u *UnaryExpr) INode()                {} // Implements Node interface
func (u *UnaryExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (u *UnaryExpr) Loc() *source.Location { return &u.Location }

// CallExpr represents a function call
type CallExpr struct {
	Fun  Expression   // function being called
	Args []Expression // call arguments
	source.Location
}

func (c *CallExpr) INode()                {} // Implements Node interface
func (c *CallExpr) Expr()                 {} // Expr is a marker interface for all expressions
func (c *CallExpr) Loc() *source.Location { return &c.Location }
