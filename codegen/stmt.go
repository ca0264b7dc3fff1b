package codegen

import (
	"zedc/ast"
	"zedc/symtab"
)

// genFunc emits one function definition's full prologue, body, and
// epilogue (spec.md §4.6). The stack frame size is computed by a
// preliminary structural scan of the body (scanFrame) before any code
// is emitted, since the prologue's `subq` needs the final size up
// front; the scan and the real emission pass walk the same tree shape
// in the same order, so both allocate identical offsets independently
// (SPEC_FULL.md Supplement 4 — computed frame size, not a flat 256).
func (g *Generator) genFunc(fn *ast.FuncDef) {
	sizeEnv := symtab.NewEnv()
	for _, p := range fn.Params {
		sizeEnv.Define(p)
	}
	g.scanFrame(fn.Body, sizeEnv)
	frameSize := sizeEnv.FrameSize()

	g.emitf("%s:", fn.Name)
	g.emit("    pushq %rbp")
	g.emit("    movq %rsp, %rbp")
	if frameSize > 0 {
		g.emitf("    subq $%d, %%rsp", frameSize)
	}

	g.env = symtab.NewEnv()
	g.stackDepth = 0

	for i, p := range fn.Params {
		off := g.env.Define(p)
		switch {
		case i < len(argRegs):
			g.emitf("    movq %s, %d(%%rbp)", argRegs[i], off)
		default:
			// SysV stack-passed arguments sit above the return address
			// and saved %rbp, at 16(%rbp), 24(%rbp), ...
			stackOff := (i-len(argRegs))*8 + 16
			g.emitf("    movq %d(%%rbp), %%rax", stackOff)
			g.emitf("    movq %%rax, %d(%%rbp)", off)
		}
	}

	g.genStmt(fn.Body)

	// Fallthrough for a function whose last statement isn't `return`:
	// spec.md §4.6 treats this as an implicit `return 0`. Harmless if
	// unreachable — every explicit return already emits its own
	// epilogue above.
	g.emit("    movq $0, %rax")
	g.emit("    leave")
	g.emit("    ret")
}

// scanFrame walks stmt's static structure — both branches of an `if`,
// every iteration-independent traversal of a `while` body — allocating
// a slot for every name that will be assigned, without emitting any
// code. It never inspects expressions, since Zed's grammar has no
// expression that can itself introduce a binding.
func (g *Generator) scanFrame(stmt ast.Statement, env *symtab.Env) {
	switch s := stmt.(type) {
	case *ast.Block:
		env.EnterScope()
		for _, inner := range s.Stmts {
			g.scanFrame(inner, env)
		}
		env.LeaveScope()
	case *ast.Assign:
		// A plain assignment to a name no enclosing scope binds introduces
		// a slot; one to an already-bound name reuses it. An indexed
		// assignment writes through an already-bound array variable and
		// allocates nothing.
		if _, bound := env.Lookup(s.Name); s.Index == nil && !bound {
			env.Define(s.Name)
		}
	case *ast.If:
		g.scanFrame(s.Then, env)
		if s.Else != nil {
			g.scanFrame(s.Else, env)
		}
	case *ast.While:
		g.scanFrame(s.Body, env)
	case *ast.Asm:
		// Every operand, output or input, gets its own scratch slot
		// (see genAsm); output identifiers themselves are expected to
		// already be bound by an earlier assignment and allocate
		// nothing here.
		total := len(s.Outputs) + len(s.Inputs)
		for i := 0; i < total; i++ {
			env.Define(scratchName(s, i))
		}
	}
}

// genStmt lowers one statement (spec.md §4.6's statement-lowering
// rules).
func (g *Generator) genStmt(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Block:
		g.env.EnterScope()
		for _, inner := range s.Stmts {
			g.genStmt(inner)
		}
		g.env.LeaveScope()

	case *ast.Assign:
		if s.Index == nil {
			g.genExpr(s.Value)
			off, bound := g.env.Lookup(s.Name)
			if !bound {
				off = g.env.Define(s.Name)
			}
			g.emitf("    movq %%rax, %d(%%rbp)", off)
			return
		}

		g.genExpr(s.Value)
		g.push("%rax")
		g.genExpr(s.Index)
		g.emit("    movq %rax, %rcx")
		off, ok := g.env.Lookup(s.Name)
		if !ok {
			g.raiseAt(s.Span(), "undefined variable `%s`", s.Name)
		}
		g.emitf("    movq %d(%%rbp), %%rdx", off)
		g.pop("%rax")
		g.emit("    movb %al, (%rdx,%rcx,1)")

	case *ast.ExprStmt:
		g.genExpr(s.Expr)

	case *ast.If:
		elseLabel := g.labels.Next()
		endLabel := g.labels.Next()

		g.genExpr(s.Cond)
		g.emit("    testq %rax, %rax")
		g.emitf("    jz %s", elseLabel)

		g.genStmt(s.Then)
		g.emitf("    jmp %s", endLabel)

		g.emitf("%s:", elseLabel)
		if s.Else != nil {
			g.genStmt(s.Else)
		}

		g.emitf("%s:", endLabel)

	case *ast.While:
		topLabel := g.labels.Next()
		endLabel := g.labels.Next()

		g.emitf("%s:", topLabel)
		g.genExpr(s.Cond)
		g.emit("    testq %rax, %rax")
		g.emitf("    jz %s", endLabel)

		g.genStmt(s.Body)
		g.emitf("    jmp %s", topLabel)

		g.emitf("%s:", endLabel)

	case *ast.Return:
		if s.Value != nil {
			g.genExpr(s.Value)
		} else {
			g.emit("    movq $0, %rax")
		}
		g.emit("    leave")
		g.emit("    ret")

	case *ast.Asm:
		g.genAsm(s)
	}
}
