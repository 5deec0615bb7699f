// Package controlflow resolves the structural targets of jump-like
// statements after parsing: every return is bound to its enclosing
// function declaration, every break and continue to its innermost
// enclosing while loop. Later passes (interpretation, code generation)
// rely on these back-references being populated.
//
// The pass is a single pre-order walk over each function body. It stops
// at the first violation and returns a *diagnostics.CompileError; the
// AST is then partially annotated and must be discarded.
package controlflow

import (
	"github.com/martimartins/carbon-lang/internal/diagnostics"
	"github.com/martimartins/carbon-lang/internal/frontend/ast"
)

// functionData aggregates information about the function being analyzed.
// One instance is allocated per function body and shared across the
// whole body walk, except continuation bodies, which get none.
type functionData struct {
	// The function declaration.
	decl *ast.FuncDecl

	// True if the function has a deduced return type and a return
	// statement was already seen in its body.
	sawReturnInAuto bool
}

// ResolveProgram resolves control-flow edges for every top-level
// declaration of the program.
func ResolveProgram(program *ast.Program) error {
	for _, decl := range program.Decls {
		if err := ResolveDecl(decl); err != nil {
			return err
		}
	}
	return nil
}

// ResolveDecl resolves control-flow edges for a single declaration.
// Class members are resolved recursively; each method gets its own
// fresh function context.
func ResolveDecl(decl ast.Decl) error {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Body == nil {
			// Signature-only declaration
			return nil
		}
		data := &functionData{decl: d}
		return resolveBlock(d.Body, nil, data)
	case *ast.ClassDecl:
		for _, member := range d.Members {
			if err := ResolveDecl(member); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// resolveNode resolves control-flow edges in the subtree rooted at node.
// loop is the innermost while statement that statically encloses node,
// or nil if there is no such loop. fn carries the state of the function
// body that node belongs to; it is nil if node does not belong to a
// function body, for example inside a continuation body.
func resolveNode(node ast.Node, loop *ast.WhileStmt, fn *functionData) error {
	switch n := node.(type) {
	case *ast.ReturnStmt:
		return resolveReturn(n, fn)

	case *ast.BreakStmt:
		if loop == nil {
			return diagnostics.Fatal(diagnostics.MisplacedBreak(n.Loc()))
		}
		n.SetLoop(loop)
		return nil

	case *ast.ContinueStmt:
		if loop == nil {
			return diagnostics.Fatal(diagnostics.MisplacedContinue(n.Loc()))
		}
		n.SetLoop(loop)
		return nil

	case *ast.IfStmt:
		if err := resolveBlock(n.Body, loop, fn); err != nil {
			return err
		}
		if n.Else != nil {
			return resolveNode(n.Else, loop, fn)
		}
		return nil

	case *ast.Block:
		return resolveBlock(n, loop, fn)

	case *ast.WhileStmt:
		// The loop context is shadowed, not merged: inner jumps bind here
		return resolveBlock(n.Body, n, fn)

	case *ast.MatchStmt:
		for _, clause := range n.Cases {
			if err := resolveBlock(clause.Body, loop, fn); err != nil {
				return err
			}
		}
		return nil

	case *ast.ContinuationStmt:
		// A continuation body is a fresh scope: it inherits neither the
		// enclosing loop nor the enclosing function context.
		return resolveBlock(n.Body, nil, nil)

	default:
		// ExprStmt, AssignStmt, VarDecl, RunStmt, AwaitStmt hold no
		// nested statements
		return nil
	}
}

func resolveBlock(block *ast.Block, loop *ast.WhileStmt, fn *functionData) error {
	if block == nil {
		return nil
	}
	for _, node := range block.Nodes {
		if err := resolveNode(node, loop, fn); err != nil {
			return err
		}
	}
	return nil
}

func resolveReturn(ret *ast.ReturnStmt, fn *functionData) error {
	if fn == nil {
		return diagnostics.Fatal(diagnostics.MisplacedReturn(ret.Loc()))
	}

	funcReturn := &fn.decl.Return
	if funcReturn.IsAuto() {
		if fn.sawReturnInAuto {
			return diagnostics.Fatal(diagnostics.DuplicateAutoReturn(
				ret.Loc(), fn.decl.Name.Name, fn.decl.Loc()))
		}
		fn.sawReturnInAuto = true
	}

	ret.SetFunction(fn.decl)

	if ret.IsOmittedResult() != funcReturn.IsOmitted() {
		return diagnostics.Fatal(diagnostics.ReturnValueMismatch(
			ret.Loc(), fn.decl.Name.Name, funcReturn.IsOmitted()))
	}
	return nil
}
