package ast

import (
	"strings"
	"testing"

	"github.com/martimartins/carbon-lang/internal/source"
)

var jsonTestFile = "roundtrip.carbon"

func testLoc(line, col int) source.Location {
	return source.Location{
		Filename: &jsonTestFile,
		Start:    source.NewPosition(line, col),
		End:      source.NewPosition(line, col+5),
	}
}

func buildTestProgram() *Program {
	// Exercises every node kind the codec knows about
	fn := &FuncDecl{
		Name: &IdentifierExpr{Name: "f", Location: testLoc(1, 4)},
		Params: []*Param{
			{
				Name:     &IdentifierExpr{Name: "x", Location: testLoc(1, 6)},
				Type:     &IdentifierExpr{Name: "i32", Location: testLoc(1, 9)},
				Location: testLoc(1, 6),
			},
		},
		Return: ReturnTerm{
			Kind:     ReturnExplicit,
			Type:     &IdentifierExpr{Name: "i32", Location: testLoc(1, 17)},
			Location: testLoc(1, 17),
		},
		Body: &Block{
			Nodes: []Node{
				&VarDecl{
					Name:     &IdentifierExpr{Name: "y", Location: testLoc(2, 9)},
					Value:    &BasicLit{Kind: INT, Value: "0", Location: testLoc(2, 13)},
					Location: testLoc(2, 5),
				},
				&WhileStmt{
					Cond: &BinaryExpr{
						X:        &IdentifierExpr{Name: "y", Location: testLoc(3, 12)},
						Op:       "<",
						Y:        &BasicLit{Kind: INT, Value: "10", Location: testLoc(3, 16)},
						Location: testLoc(3, 12),
					},
					Body: &Block{
						Nodes: []Node{
							&IfStmt{
								Cond: &UnaryExpr{Op: "not", X: &BasicLit{Kind: BOOL, Value: "false", Location: testLoc(4, 12)}, Location: testLoc(4, 8)},
								Body: &Block{
									Nodes:    []Node{&BreakStmt{Location: testLoc(5, 13)}},
									Location: testLoc(4, 20),
								},
								Else: &Block{
									Nodes:    []Node{&ContinueStmt{Location: testLoc(7, 13)}},
									Location: testLoc(6, 16),
								},
								Location: testLoc(4, 9),
							},
						},
						Location: testLoc(3, 20),
					},
					Location: testLoc(3, 5),
				},
				&MatchStmt{
					Expr: &IdentifierExpr{Name: "y", Location: testLoc(9, 11)},
					Cases: []*CaseClause{
						{
							Pattern: &BasicLit{Kind: INT, Value: "1", Location: testLoc(10, 10)},
							Body: &Block{
								Nodes: []Node{
									&AssignStmt{
										Lhs:      &IdentifierExpr{Name: "y", Location: testLoc(11, 13)},
										Rhs:      &BasicLit{Kind: INT, Value: "2", Location: testLoc(11, 17)},
										Location: testLoc(11, 13),
									},
								},
								Location: testLoc(10, 13),
							},
							Location: testLoc(10, 9),
						},
						{
							// default clause has no pattern
							Body: &Block{
								Nodes: []Node{
									&ExprStmt{
										X: &CallExpr{
											Fun:      &IdentifierExpr{Name: "g", Location: testLoc(13, 13)},
											Args:     []Expression{&BasicLit{Kind: STRING, Value: "s", Location: testLoc(13, 15)}},
											Location: testLoc(13, 13),
										},
										Location: testLoc(13, 13),
									},
								},
								Location: testLoc(12, 13),
							},
							Location: testLoc(12, 9),
						},
					},
					Location: testLoc(9, 5),
				},
				&ContinuationStmt{
					Name: &IdentifierExpr{Name: "k", Location: testLoc(15, 20)},
					Body: &Block{
						Nodes:    []Node{&AwaitStmt{Location: testLoc(16, 9)}},
						Location: testLoc(15, 22),
					},
					Location: testLoc(15, 5),
				},
				&RunStmt{Argument: &IdentifierExpr{Name: "k", Location: testLoc(18, 9)}, Location: testLoc(18, 5)},
				&ReturnStmt{Result: &IdentifierExpr{Name: "y", Location: testLoc(19, 12)}, Location: testLoc(19, 5)},
			},
			Location: testLoc(1, 22),
		},
		Location: testLoc(1, 1),
	}

	class := &ClassDecl{
		Name: &IdentifierExpr{Name: "C", Location: testLoc(22, 7)},
		Members: []Decl{
			&VarDecl{
				Name:     &IdentifierExpr{Name: "field", Location: testLoc(23, 9)},
				Type:     &IdentifierExpr{Name: "i32", Location: testLoc(23, 16)},
				Location: testLoc(23, 5),
			},
			&FuncDecl{
				Name:     &IdentifierExpr{Name: "m", Location: testLoc(24, 8)},
				Return:   ReturnTerm{Kind: ReturnAuto, Location: testLoc(24, 15)},
				Body:     &Block{Location: testLoc(24, 20)},
				Location: testLoc(24, 5),
			},
		},
		Location: testLoc(22, 1),
	}

	sig := &FuncDecl{
		Name:     &IdentifierExpr{Name: "extern", Location: testLoc(27, 4)},
		Return:   ReturnTerm{Kind: ReturnOmitted},
		Body:     nil,
		Location: testLoc(27, 1),
	}

	return &Program{Decls: []Decl{fn, class, sig}, Location: testLoc(1, 1)}
}

func TestProgramRoundTrip(t *testing.T) {
	original := buildTestProgram()

	data, err := EncodeProgram(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := DecodeProgram(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if len(decoded.Decls) != 3 {
		t.Fatalf("Expected 3 declarations, got %d", len(decoded.Decls))
	}

	fn, ok := decoded.Decls[0].(*FuncDecl)
	if !ok {
		t.Fatalf("Expected *FuncDecl, got %T", decoded.Decls[0])
	}
	if fn.Name.Name != "f" {
		t.Errorf("Expected function f, got %s", fn.Name.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name.Name != "x" {
		t.Error("Function parameters did not survive the round trip")
	}
	if fn.Return.Kind != ReturnExplicit {
		t.Errorf("Expected explicit return term, got %s", fn.Return.Kind)
	}
	if typeName, ok := fn.Return.Type.(*IdentifierExpr); !ok || typeName.Name != "i32" {
		t.Error("Explicit return type did not survive the round trip")
	}
	if fn.Loc().Start == nil || fn.Loc().Start.Line != 1 {
		t.Error("Function location did not survive the round trip")
	}

	if len(fn.Body.Nodes) != 6 {
		t.Fatalf("Expected 6 body statements, got %d", len(fn.Body.Nodes))
	}

	loop, ok := fn.Body.Nodes[1].(*WhileStmt)
	if !ok {
		t.Fatalf("Expected *WhileStmt, got %T", fn.Body.Nodes[1])
	}
	ifStmt, ok := loop.Body.Nodes[0].(*IfStmt)
	if !ok {
		t.Fatalf("Expected *IfStmt, got %T", loop.Body.Nodes[0])
	}
	brk, ok := ifStmt.Body.Nodes[0].(*BreakStmt)
	if !ok {
		t.Fatalf("Expected *BreakStmt, got %T", ifStmt.Body.Nodes[0])
	}
	if brk.Loop() != nil {
		t.Error("Resolution slots must not be serialized; loaded break should be unbound")
	}
	if brk.Loc().Start == nil || brk.Loc().Start.Line != 5 {
		t.Error("Break location did not survive the round trip")
	}

	match, ok := fn.Body.Nodes[2].(*MatchStmt)
	if !ok {
		t.Fatalf("Expected *MatchStmt, got %T", fn.Body.Nodes[2])
	}
	if len(match.Cases) != 2 {
		t.Fatalf("Expected 2 match clauses, got %d", len(match.Cases))
	}
	if match.Cases[1].Pattern != nil {
		t.Error("Default clause should have a nil pattern")
	}

	ret, ok := fn.Body.Nodes[5].(*ReturnStmt)
	if !ok {
		t.Fatalf("Expected *ReturnStmt, got %T", fn.Body.Nodes[5])
	}
	if ret.Function() != nil {
		t.Error("Loaded return should be unbound until resolution runs")
	}

	class, ok := decoded.Decls[1].(*ClassDecl)
	if !ok {
		t.Fatalf("Expected *ClassDecl, got %T", decoded.Decls[1])
	}
	if len(class.Members) != 2 {
		t.Fatalf("Expected 2 class members, got %d", len(class.Members))
	}
	method, ok := class.Members[1].(*FuncDecl)
	if !ok || !method.Return.IsAuto() {
		t.Error("Auto method did not survive the round trip")
	}

	sig, ok := decoded.Decls[2].(*FuncDecl)
	if !ok {
		t.Fatalf("Expected *FuncDecl, got %T", decoded.Decls[2])
	}
	if sig.Body != nil {
		t.Error("Signature-only declaration should have a nil body")
	}
	if !sig.Return.IsOmitted() {
		t.Error("Omitted return term did not survive the round trip")
	}
}

func TestSaveAndLoadProgram(t *testing.T) {
	path := t.TempDir() + "/prog.ast.json"

	if err := SaveProgram(buildTestProgram(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Decls) != 3 {
		t.Errorf("Expected 3 declarations, got %d", len(loaded.Decls))
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"decls":[{"kind":"goto"}]}`))
	if err == nil {
		t.Fatal("Expected an error for unknown node kind")
	}
	if !strings.Contains(err.Error(), `"goto"`) {
		t.Errorf("Error should name the unknown kind, got: %v", err)
	}
}

func TestDecodeRejectsNonDeclarationAtTopLevel(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"decls":[{"kind":"break"}]}`))
	if err == nil {
		t.Fatal("Expected an error for a statement at declaration position")
	}
}

func TestDecodeRejectsExplicitReturnWithoutType(t *testing.T) {
	_, err := DecodeProgram([]byte(`{"decls":[{"kind":"func","ident":{"kind":"ident","name":"f"},"return":{"kind":"explicit"}}]}`))
	if err == nil {
		t.Fatal("Expected an error for an explicit return term without a type")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeProgram([]byte(`{`))
	if err == nil {
		t.Fatal("Expected an error for malformed JSON")
	}
}
