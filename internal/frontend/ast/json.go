package ast

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/martimartins/carbon-lang/internal/source"
)

// The AST serialization format is a kind-tagged envelope per node, so a
// Program can round-trip through JSON. Resolution slots (Return.function,
// Break.loop, Continue.loop) are pass outputs and are never serialized;
// a loaded program must be resolved again before later passes use it.

type jsonProgram struct {
	Decls []*jsonNode      `json:"decls"`
	Loc   *source.Location `json:"loc,omitempty"`
}

type jsonNode struct {
	Kind string           `json:"kind"`
	Loc  *source.Location `json:"loc,omitempty"`

	// identifiers, literals, operators
	Name    string `json:"name,omitempty"`
	LitKind string `json:"litKind,omitempty"`
	Value   string `json:"value,omitempty"`
	Op      string `json:"op,omitempty"`

	// declarations
	Ident   *jsonNode   `json:"ident,omitempty"`
	Params  []*jsonNode `json:"params,omitempty"`
	Return  *jsonNode   `json:"return,omitempty"`
	Members []*jsonNode `json:"members,omitempty"`
	Type    *jsonNode   `json:"type,omitempty"`

	// statements and blocks
	Nodes  []*jsonNode `json:"nodes,omitempty"`
	Cond   *jsonNode   `json:"cond,omitempty"`
	Body   *jsonNode   `json:"body,omitempty"`
	Else   *jsonNode   `json:"else,omitempty"`
	Cases  []*jsonNode `json:"cases,omitempty"`
	Result *jsonNode   `json:"result,omitempty"`
	Init   *jsonNode   `json:"init,omitempty"`

	// expressions
	Lhs  *jsonNode   `json:"lhs,omitempty"`
	Rhs  *jsonNode   `json:"rhs,omitempty"`
	X    *jsonNode   `json:"x,omitempty"`
	Y    *jsonNode   `json:"y,omitempty"`
	Fun  *jsonNode   `json:"fun,omitempty"`
	Args []*jsonNode `json:"args,omitempty"`
}

// EncodeProgram serializes a program to indented JSON.
func EncodeProgram(p *Program) ([]byte, error) {
	jp := &jsonProgram{Loc: p.Loc()}
	for _, decl := range p.Decls {
		jp.Decls = append(jp.Decls, encodeNode(decl))
	}
	return json.MarshalIndent(jp, "", "  ")
}

// DecodeProgram parses a program from its JSON serialization.
func DecodeProgram(data []byte) (*Program, error) {
	var jp jsonProgram
	if err := json.Unmarshal(data, &jp); err != nil {
		return nil, fmt.Errorf("failed to parse AST JSON: %w", err)
	}
	p := &Program{}
	if jp.Loc != nil {
		p.Location = *jp.Loc
	}
	for i, jd := range jp.Decls {
		decl, err := decodeDecl(jd)
		if err != nil {
			return nil, fmt.Errorf("declaration %d: %w", i, err)
		}
		p.Decls = append(p.Decls, decl)
	}
	return p, nil
}

// SaveProgram writes the program's JSON serialization to path.
func SaveProgram(p *Program, path string) error {
	data, err := EncodeProgram(p)
	if err != nil {
		return fmt.Errorf("failed to encode AST to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write AST file: %w", err)
	}
	return nil
}

// LoadProgram reads a program from a JSON file written by SaveProgram.
func LoadProgram(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AST file: %w", err)
	}
	return DecodeProgram(data)
}

func encodeNode(n Node) *jsonNode {
	if n == nil {
		return nil
	}

	switch x := n.(type) {
	case *FuncDecl:
		j := &jsonNode{
			Kind:  "func",
			Loc:   x.Loc(),
			Ident: encodeIdent(x.Name),
			Body:  encodeBlock(x.Body),
			Return: &jsonNode{
				Kind: x.Return.Kind.String(),
				Loc:  x.Return.Loc(),
				Type: encodeNode(x.Return.Type),
			},
		}
		for _, param := range x.Params {
			j.Params = append(j.Params, &jsonNode{
				Kind:  "param",
				Loc:   param.Loc(),
				Ident: encodeIdent(param.Name),
				Type:  encodeNode(param.Type),
			})
		}
		return j
	case *ClassDecl:
		j := &jsonNode{Kind: "class", Loc: x.Loc(), Ident: encodeIdent(x.Name)}
		for _, member := range x.Members {
			j.Members = append(j.Members, encodeNode(member))
		}
		return j
	case *VarDecl:
		return &jsonNode{
			Kind:  "var",
			Loc:   x.Loc(),
			Ident: encodeIdent(x.Name),
			Type:  encodeNode(x.Type),
			Init:  encodeNode(x.Value),
		}

	case *ReturnStmt:
		return &jsonNode{Kind: "return", Loc: x.Loc(), Result: encodeNode(x.Result)}
	case *BreakStmt:
		return &jsonNode{Kind: "break", Loc: x.Loc()}
	case *ContinueStmt:
		return &jsonNode{Kind: "continue", Loc: x.Loc()}
	case *AssignStmt:
		return &jsonNode{Kind: "assign", Loc: x.Loc(), Lhs: encodeNode(x.Lhs), Rhs: encodeNode(x.Rhs)}
	case *ExprStmt:
		return &jsonNode{Kind: "expr", Loc: x.Loc(), X: encodeNode(x.X)}
	case *RunStmt:
		return &jsonNode{Kind: "run", Loc: x.Loc(), X: encodeNode(x.Argument)}
	case *AwaitStmt:
		return &jsonNode{Kind: "await", Loc: x.Loc()}

	case *Block:
		j := &jsonNode{Kind: "block", Loc: x.Loc()}
		for _, node := range x.Nodes {
			j.Nodes = append(j.Nodes, encodeNode(node))
		}
		return j
	case *IfStmt:
		return &jsonNode{
			Kind: "if",
			Loc:  x.Loc(),
			Cond: encodeNode(x.Cond),
			Body: encodeBlock(x.Body),
			Else: encodeNode(x.Else),
		}
	case *WhileStmt:
		return &jsonNode{Kind: "while", Loc: x.Loc(), Cond: encodeNode(x.Cond), Body: encodeBlock(x.Body)}
	case *MatchStmt:
		j := &jsonNode{Kind: "match", Loc: x.Loc(), X: encodeNode(x.Expr)}
		for _, clause := range x.Cases {
			j.Cases = append(j.Cases, &jsonNode{
				Kind: "case",
				Loc:  clause.Loc(),
				X:    encodeNode(clause.Pattern),
				Body: encodeBlock(clause.Body),
			})
		}
		return j
	case *ContinuationStmt:
		return &jsonNode{
			Kind:  "continuation",
			Loc:   x.Loc(),
			Ident: encodeIdent(x.Name),
			Body:  encodeBlock(x.Body),
		}

	case *IdentifierExpr:
		return &jsonNode{Kind: "ident", Loc: x.Loc(), Name: x.Name}
	case *BasicLit:
		return &jsonNode{Kind: "lit", Loc: x.Loc(), LitKind: x.Kind.String(), Value: x.Value}
	case *BinaryExpr:
		return &jsonNode{Kind: "binary", Loc: x.Loc(), Op: x.Op, X: encodeNode(x.X), Y: encodeNode(x.Y)}
	case *UnaryExpr:
		return &jsonNode{Kind: "unary", Loc: x.Loc(), Op: x.Op, X: encodeNode(x.X)}
	case *CallExpr:
		j := &jsonNode{Kind: "call", Loc: x.Loc(), Fun: encodeNode(x.Fun)}
		for _, arg := range x.Args {
			j.Args = append(j.Args, encodeNode(arg))
		}
		return j
	}

	// Every concrete node kind is handled above
	panic(fmt.Sprintf("ast: cannot encode node of type %T", n))
}

// Typed pointers need their own nil checks before entering encodeNode,
// where they would arrive as non-nil interfaces.

func encodeBlock(b *Block) *jsonNode {
	if b == nil {
		return nil
	}
	return encodeNode(b)
}

func encodeIdent(i *IdentifierExpr) *jsonNode {
	if i == nil {
		return nil
	}
	return encodeNode(i)
}

func decodeNode(j *jsonNode) (Node, error) {
	if j == nil {
		return nil, nil
	}

	switch j.Kind {
	case "func", "class", "var":
		return decodeDecl(j)

	case "return":
		result, err := decodeExpr(j.Result)
		if err != nil {
			return nil, err
		}
		stmt := &ReturnStmt{Result: result}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "break":
		stmt := &BreakStmt{}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "continue":
		stmt := &ContinueStmt{}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "assign":
		lhs, err := decodeExpr(j.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeExpr(j.Rhs)
		if err != nil {
			return nil, err
		}
		stmt := &AssignStmt{Lhs: lhs, Rhs: rhs}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "expr":
		x, err := decodeExpr(j.X)
		if err != nil {
			return nil, err
		}
		stmt := &ExprStmt{X: x}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "run":
		x, err := decodeExpr(j.X)
		if err != nil {
			return nil, err
		}
		stmt := &RunStmt{Argument: x}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "await":
		stmt := &AwaitStmt{}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil

	case "block":
		return decodeBlock(j)
	case "if":
		cond, err := decodeExpr(j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(j.Body)
		if err != nil {
			return nil, err
		}
		elseNode, err := decodeNode(j.Else)
		if err != nil {
			return nil, err
		}
		stmt := &IfStmt{Cond: cond, Body: body, Else: elseNode}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "while":
		cond, err := decodeExpr(j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(j.Body)
		if err != nil {
			return nil, err
		}
		stmt := &WhileStmt{Cond: cond, Body: body}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil
	case "match":
		expr, err := decodeExpr(j.X)
		if err != nil {
			return nil, err
		}
		stmt := &MatchStmt{Expr: expr}
		setLoc(&stmt.Location, j.Loc)
		for i, jc := range j.Cases {
			pattern, err := decodeExpr(jc.X)
			if err != nil {
				return nil, fmt.Errorf("case %d: %w", i, err)
			}
			body, err := decodeBlock(jc.Body)
			if err != nil {
				return nil, fmt.Errorf("case %d: %w", i, err)
			}
			clause := &CaseClause{Pattern: pattern, Body: body}
			setLoc(&clause.Location, jc.Loc)
			stmt.Cases = append(stmt.Cases, clause)
		}
		return stmt, nil
	case "continuation":
		name, err := decodeIdent(j.Ident)
		if err != nil {
			return nil, err
		}
		body, err := decodeBlock(j.Body)
		if err != nil {
			return nil, err
		}
		stmt := &ContinuationStmt{Name: name, Body: body}
		setLoc(&stmt.Location, j.Loc)
		return stmt, nil

	case "ident", "lit", "binary", "unary", "call":
		return decodeExpr(j)
	}

	return nil, fmt.Errorf("unknown node kind %q", j.Kind)
}

func decodeDecl(j *jsonNode) (Decl, error) {
	if j == nil {
		return nil, fmt.Errorf("missing declaration")
	}

	switch j.Kind {
	case "func":
		name, err := decodeIdent(j.Ident)
		if err != nil {
			return nil, err
		}
		ret, err := decodeReturnTerm(j.Return)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", name.Name, err)
		}
		body, err := decodeBlock(j.Body)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", name.Name, err)
		}
		decl := &FuncDecl{Name: name, Return: ret, Body: body}
		setLoc(&decl.Location, j.Loc)
		for i, jp := range j.Params {
			pname, err := decodeIdent(jp.Ident)
			if err != nil {
				return nil, fmt.Errorf("function %s: param %d: %w", name.Name, i, err)
			}
			ptype, err := decodeType(jp.Type)
			if err != nil {
				return nil, fmt.Errorf("function %s: param %d: %w", name.Name, i, err)
			}
			param := &Param{Name: pname, Type: ptype}
			setLoc(&param.Location, jp.Loc)
			decl.Params = append(decl.Params, param)
		}
		return decl, nil
	case "class":
		name, err := decodeIdent(j.Ident)
		if err != nil {
			return nil, err
		}
		decl := &ClassDecl{Name: name}
		setLoc(&decl.Location, j.Loc)
		for i, jm := range j.Members {
			member, err := decodeDecl(jm)
			if err != nil {
				return nil, fmt.Errorf("class %s: member %d: %w", name.Name, i, err)
			}
			decl.Members = append(decl.Members, member)
		}
		return decl, nil
	case "var":
		name, err := decodeIdent(j.Ident)
		if err != nil {
			return nil, err
		}
		typ, err := decodeType(j.Type)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpr(j.Init)
		if err != nil {
			return nil, err
		}
		decl := &VarDecl{Name: name, Type: typ, Value: value}
		setLoc(&decl.Location, j.Loc)
		return decl, nil
	}

	return nil, fmt.Errorf("expected a declaration, got kind %q", j.Kind)
}

func decodeReturnTerm(j *jsonNode) (ReturnTerm, error) {
	if j == nil {
		// No annotation at all means the function returns nothing
		return ReturnTerm{Kind: ReturnOmitted}, nil
	}

	var ret ReturnTerm
	setLoc(&ret.Location, j.Loc)
	switch j.Kind {
	case "omitted":
		ret.Kind = ReturnOmitted
	case "auto":
		ret.Kind = ReturnAuto
	case "explicit":
		ret.Kind = ReturnExplicit
		typ, err := decodeType(j.Type)
		if err != nil {
			return ret, err
		}
		if typ == nil {
			return ret, fmt.Errorf("explicit return term is missing its type")
		}
		ret.Type = typ
	default:
		return ret, fmt.Errorf("unknown return term kind %q", j.Kind)
	}
	return ret, nil
}

func decodeBlock(j *jsonNode) (*Block, error) {
	if j == nil {
		return nil, nil
	}
	if j.Kind != "block" {
		return nil, fmt.Errorf("expected a block, got kind %q", j.Kind)
	}

	block := &Block{}
	setLoc(&block.Location, j.Loc)
	for i, jn := range j.Nodes {
		node, err := decodeNode(jn)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		block.Nodes = append(block.Nodes, node)
	}
	return block, nil
}

func decodeExpr(j *jsonNode) (Expression, error) {
	if j == nil {
		return nil, nil
	}

	switch j.Kind {
	case "ident":
		return decodeIdent(j)
	case "lit":
		lit := &BasicLit{Value: j.Value}
		setLoc(&lit.Location, j.Loc)
		switch j.LitKind {
		case "int":
			lit.Kind = INT
		case "float":
			lit.Kind = FLOAT
		case "string":
			lit.Kind = STRING
		case "bool":
			lit.Kind = BOOL
		default:
			return nil, fmt.Errorf("unknown literal kind %q", j.LitKind)
		}
		return lit, nil
	case "binary":
		x, err := decodeExpr(j.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeExpr(j.Y)
		if err != nil {
			return nil, err
		}
		expr := &BinaryExpr{X: x, Op: j.Op, Y: y}
		setLoc(&expr.Location, j.Loc)
		return expr, nil
	case "unary":
		x, err := decodeExpr(j.X)
		if err != nil {
			return nil, err
		}
		expr := &UnaryExpr{Op: j.Op, X: x}
		setLoc(&expr.Location, j.Loc)
		return expr, nil
	case "call":
		fun, err := decodeExpr(j.Fun)
		if err != nil {
			return nil, err
		}
		expr := &CallExpr{Fun: fun}
		setLoc(&expr.Location, j.Loc)
		for _, ja := range j.Args {
			arg, err := decodeExpr(ja)
			if err != nil {
				return nil, err
			}
			expr.Args = append(expr.Args, arg)
		}
		return expr, nil
	}

	return nil, fmt.Errorf("expected an expression, got kind %q", j.Kind)
}

func decodeType(j *jsonNode) (TypeNode, error) {
	if j == nil {
		return nil, nil
	}
	if j.Kind != "ident" {
		return nil, fmt.Errorf("expected a type name, got kind %q", j.Kind)
	}
	return decodeIdent(j)
}

func decodeIdent(j *jsonNode) (*IdentifierExpr, error) {
	if j == nil {
		return nil, fmt.Errorf("missing identifier")
	}
	if j.Kind != "ident" {
		return nil, fmt.Errorf("expected an identifier, got kind %q", j.Kind)
	}
	ident := &IdentifierExpr{Name: j.Name}
	setLoc(&ident.Location, j.Loc)
	return ident, nil
}

func setLoc(dst *source.Location, loc *source.Location) {
	if loc != nil {
		*dst = *loc
	}
}
