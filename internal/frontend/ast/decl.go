package ast

import "github.com/martimartins/carbon-lang/internal/source"

// ReturnKind describes a function's return contract
type ReturnKind int

const (
	ReturnOmitted  ReturnKind = iota // no return type written, returns nothing
	ReturnAuto                       // `auto`, deduced from the returned expression
	ReturnExplicit                   // an explicit return type annotation
)

func (k ReturnKind) String() string {
	switch k {
	case ReturnOmitted:
		return "omitted"
	case ReturnAuto:
		return "auto"
	case ReturnExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// ReturnTerm describes how a function declares its return type.
// Type is non-nil only for ReturnExplicit.
type ReturnTerm struct {
	Kind ReturnKind
	Type TypeNode
	source.Location
}

// IsOmitted reports whether the function returns no value
func (r *ReturnTerm) IsOmitted() bool { return r.Kind == ReturnOmitted }

// IsAuto reports whether the return type is deduced from the return expression
func (r *ReturnTerm) IsAuto() bool { return r.Kind == ReturnAuto }

func (r *ReturnTerm) Loc() *source.Location { return &r.Location }

// Param represents a single function parameter
type Param struct {
	Name *IdentifierExpr
	Type TypeNode
	source.Location
}

func (p *Param) Loc() *source.Location { return &p.Location }

// FuncDecl represents a function declaration.
// Body is nil for a signature-only declaration.
type FuncDecl struct {
	Name   *IdentifierExpr
	Params []*Param
	Return ReturnTerm
	Body   *Block
	source.Location
}

func (f *FuncDecl) INode()                {} // Implements Node interface
func (f *FuncDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (f *FuncDecl) Block()                {} // Block is a marker interface for block constructs
func (f *FuncDecl) Loc() *source.Location { return &f.Location }

// ClassDecl represents a class declaration. Members may themselves be
// function declarations (methods) or field declarations.
type ClassDecl struct {
	Name    *IdentifierExpr
	Members []Decl
	source.Location
}

func (c *ClassDecl) INode()                {} // Implements Node interface
func (c *ClassDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (c *ClassDecl) Block()                {} // Block is a marker interface for block constructs
func (c *ClassDecl) Loc() *source.Location { return &c.Location }

// VarDecl represents a variable declaration, at top level or as a
// statement inside a block. It holds no nested statements.
type VarDecl struct {
	Name  *IdentifierExpr
	Type  TypeNode   // explicit type (can be nil for type inference)
	Value Expression // initial value (can be nil)
	source.Location
}

func (v *VarDecl) INode()                {} // Implements Node interface
func (v *VarDecl) Decl()                 {} // Decl is a marker interface for all declarations
func (v *VarDecl) Stmt()                 {} // Stmt is a marker interface for all statements
func (v *VarDecl) Loc() *source.Location { return &v.Location }
