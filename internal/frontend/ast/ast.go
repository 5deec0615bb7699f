package ast

import (
	"github.com/martimartins/carbon-lang/internal/source"
)

// Node is the base interface for all AST nodes
type Node interface {
	INode()
	Loc() *source.Location
}

// Expression represents any node that produces a value
type Expression interface {
	Node
	Expr()
}

// TypeNode represents a type in the AST (for use in declarations, annotations, etc.)
// This is separate from Expression to maintain clean separation between values and types
type TypeNode interface {
	Node
	TypeExpr()
}

// Statement represents any node that performs an action
type Statement interface {
	Node
	Stmt()
}

// Decl represents a declaration (function, class, variable)
type Decl interface {
	Node
	Decl()
}

// BlockConstruct represents block-level constructs (functions, loops, conditionals)
type BlockConstruct interface {
	Node
	Block()
}

// Program represents a whole parsed program: the ordered list of
// top-level declarations of every source file. It is the root handed
// to the semantic passes.
type Program struct {
	Decls []Decl
	source.Location
}

func (p *Program) INode()                {} // Implements Node interface
func (p *Program) Loc() *source.Location { return &p.Location }
