package parser

import (
	"os"
	"path/filepath"
	"testing"

	"zedc/ast"
	"zedc/include"
	"zedc/report"
	"zedc/source"
)

func init() {
	report.InitReporter(report.LogLevelSilent)
}

func parseSource(t *testing.T, text string) *ast.Program {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "main.zed")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("failed to write test unit: %v", err)
	}

	mgr := source.NewManager(filepath.Join(dir, "std"))
	unit, err := mgr.Load(path, "main.zed")
	if err != nil {
		t.Fatalf("failed to load test unit: %v", err)
	}

	p := New(mgr, include.NewResolver(mgr), unit)
	return p.ParseProgram()
}

func TestParseFuncPredeclAndDef(t *testing.T) {
	prog := parseSource(t, `
		fn add(a, b);
		fn add(a, b) { return a + b; }
	`)

	if len(prog.Items) != 2 {
		t.Fatalf("expected 2 items (predecl + def), got %d", len(prog.Items))
	}

	def, ok := prog.Items[1].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", prog.Items[1])
	}
	if def.Name != "add" || len(def.Params) != 2 {
		t.Errorf("unexpected function shape: %+v", def)
	}
}

func TestParseDeclaredNotDefinedFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for declared-but-not-defined function")
		}
	}()

	parseSource(t, `fn add(a, b);`)
}

func TestParseDuplicateDefinitionFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate function definition")
		}
	}()

	parseSource(t, `
		fn f() { return 1; }
		fn f() { return 2; }
	`)
}

func TestParseAssignment(t *testing.T) {
	prog := parseSource(t, `fn main() { x = 5; }`)

	def := prog.Items[0].(*ast.FuncDef)
	assign, ok := def.Body.Stmts[0].(*ast.Assign)
	if !ok {
		t.Fatalf("expected *ast.Assign, got %T", def.Body.Stmts[0])
	}
	if assign.Name != "x" || assign.Index != nil {
		t.Errorf("unexpected assign shape: %+v", assign)
	}
}

func TestParseIndexedAssignment(t *testing.T) {
	prog := parseSource(t, `fn main() { a[0] = 5; }`)

	def := prog.Items[0].(*ast.FuncDef)
	assign := def.Body.Stmts[0].(*ast.Assign)
	if assign.Index == nil {
		t.Fatalf("expected an indexed assignment")
	}
}

func TestParseCallStatement(t *testing.T) {
	prog := parseSource(t, `
		fn f(x);
		fn f(x) { return x; }
		fn main() { f(1); }
	`)

	def := prog.Items[2].(*ast.FuncDef)
	exprStmt, ok := def.Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", def.Body.Stmts[0])
	}
	call, ok := exprStmt.Expr.(*ast.Call)
	if !ok || call.Name != "f" || len(call.Args) != 1 {
		t.Errorf("unexpected call shape: %+v", exprStmt.Expr)
	}
}

func TestParseIfElse(t *testing.T) {
	prog := parseSource(t, `fn main() { if (1) { return 1; } else { return 2; } }`)

	def := prog.Items[0].(*ast.FuncDef)
	ifStmt, ok := def.Body.Stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", def.Body.Stmts[0])
	}
	if ifStmt.Else == nil {
		t.Errorf("expected else branch")
	}
}

func TestParseWhile(t *testing.T) {
	prog := parseSource(t, `fn main() { while (1) { x = 1; } }`)

	def := prog.Items[0].(*ast.FuncDef)
	if _, ok := def.Body.Stmts[0].(*ast.While); !ok {
		t.Fatalf("expected *ast.While, got %T", def.Body.Stmts[0])
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	prog := parseSource(t, `fn main() { return 1 + 2 * 3; }`)

	def := prog.Items[0].(*ast.FuncDef)
	ret := def.Body.Stmts[0].(*ast.Return)
	bin, ok := ret.Value.(*ast.Binary)
	if !ok || bin.Op != ast.BinAdd {
		t.Fatalf("expected top-level `+`, got %+v", ret.Value)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != ast.BinMul {
		t.Errorf("expected `*` to bind tighter than `+`, got %+v", bin.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	prog := parseSource(t, `fn main() { return 1 - 2 - 3; }`)

	def := prog.Items[0].(*ast.FuncDef)
	ret := def.Body.Stmts[0].(*ast.Return)
	top, ok := ret.Value.(*ast.Binary)
	if !ok || top.Op != ast.BinSub {
		t.Fatalf("expected top-level `-`, got %+v", ret.Value)
	}
	if _, ok := top.Left.(*ast.Binary); !ok {
		t.Errorf("expected `1 - 2` to be the left operand for left-associativity, got %+v", top.Left)
	}
	if _, ok := top.Right.(*ast.IntLit); !ok {
		t.Errorf("expected `3` to be the right operand, got %+v", top.Right)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	prog := parseSource(t, `fn main() { return -5; }`)

	def := prog.Items[0].(*ast.FuncDef)
	ret := def.Body.Stmts[0].(*ast.Return)
	if _, ok := ret.Value.(*ast.Unary); !ok {
		t.Fatalf("expected *ast.Unary, got %T", ret.Value)
	}
}

func TestParseIndexedRead(t *testing.T) {
	prog := parseSource(t, `fn main() { return a[1]; }`)

	def := prog.Items[0].(*ast.FuncDef)
	ret := def.Body.Stmts[0].(*ast.Return)
	idx, ok := ret.Value.(*ast.Index)
	if !ok {
		t.Fatalf("expected *ast.Index, got %T", ret.Value)
	}
	if base, ok := idx.Array.(*ast.Ident); !ok || base.Name != "a" {
		t.Errorf("unexpected index base: %+v", idx.Array)
	}
}

func TestParseInlineAsm(t *testing.T) {
	prog := parseSource(t, `
		fn main() {
			x = 1;
			asm "movq $1, %rax" : "=r"[x] : "r"[x] : "rax";
		}
	`)

	def := prog.Items[0].(*ast.FuncDef)
	asm, ok := def.Body.Stmts[1].(*ast.Asm)
	if !ok {
		t.Fatalf("expected *ast.Asm, got %T", def.Body.Stmts[1])
	}
	if len(asm.Outputs) != 1 || asm.Outputs[0].Ident != "x" {
		t.Errorf("unexpected outputs: %+v", asm.Outputs)
	}
	if len(asm.Inputs) != 1 {
		t.Errorf("unexpected inputs: %+v", asm.Inputs)
	}
	if len(asm.Clobbers) != 1 || asm.Clobbers[0] != "rax" {
		t.Errorf("unexpected clobbers: %+v", asm.Clobbers)
	}
}

func TestParseTopLevelStatementWrapped(t *testing.T) {
	prog := parseSource(t, `x = 1;`)

	if _, ok := prog.Items[0].(*ast.TopLevelStmt); !ok {
		t.Fatalf("expected *ast.TopLevelStmt, got %T", prog.Items[0])
	}
}

func TestParseIncludeSplicesItems(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "lib.zed")
	if err := os.WriteFile(libPath, []byte(`fn helper() { return 1; }`), 0o644); err != nil {
		t.Fatalf("failed to write lib unit: %v", err)
	}

	mainPath := filepath.Join(dir, "main.zed")
	mainSrc := `@include "lib.zed"; fn main() { return helper(); }`
	if err := os.WriteFile(mainPath, []byte(mainSrc), 0o644); err != nil {
		t.Fatalf("failed to write main unit: %v", err)
	}

	mgr := source.NewManager(filepath.Join(dir, "std"))
	unit, err := mgr.Load(mainPath, "main.zed")
	if err != nil {
		t.Fatalf("failed to load main unit: %v", err)
	}

	p := New(mgr, include.NewResolver(mgr), unit)
	prog := p.ParseProgram()

	if len(prog.Items) != 2 {
		t.Fatalf("expected 2 items (spliced helper + main), got %d", len(prog.Items))
	}
	if helper, ok := prog.Items[0].(*ast.FuncDef); !ok || helper.Name != "helper" {
		t.Errorf("expected spliced helper first, got %+v", prog.Items[0])
	}
}

func TestParseCircularIncludeFails(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for circular include")
		}
	}()

	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.zed")
	bPath := filepath.Join(dir, "b.zed")

	os.WriteFile(aPath, []byte(`@include "b.zed";`), 0o644)
	os.WriteFile(bPath, []byte(`@include "a.zed";`), 0o644)

	mgr := source.NewManager(filepath.Join(dir, "std"))
	unit, err := mgr.Load(aPath, "a.zed")
	if err != nil {
		t.Fatalf("failed to load a.zed: %v", err)
	}

	p := New(mgr, include.NewResolver(mgr), unit)
	p.ParseProgram()
}
