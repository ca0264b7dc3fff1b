package codegen

import "zedc/ast"

// genExpr lowers an expression, leaving its value in %rax (spec.md
// §4.6's stack-based-through-%rax expression lowering).
func (g *Generator) genExpr(expr ast.Expression) {
	switch e := expr.(type) {
	case *ast.IntLit:
		g.emitf("    movq $%d, %%rax", e.Value)

	case *ast.StringLit:
		label := g.internString(e.Value)
		g.emitf("    leaq %s(%%rip), %%rax", label)

	case *ast.Ident:
		off, ok := g.env.Lookup(e.Name)
		if !ok {
			g.raiseAt(e.Span(), "undefined variable `%s`", e.Name)
		}
		g.emitf("    movq %d(%%rbp), %%rax", off)

	case *ast.Index:
		g.genIndex(e)

	case *ast.Unary:
		g.genExpr(e.Operand)
		g.emit("    negq %rax")

	case *ast.Binary:
		g.genBinary(e)

	case *ast.Call:
		g.genCall(e)
	}
}

// genIndex lowers `a[i]`: index into %rax, base into %rcx, then
// `movzbq` the byte at their sum (spec.md §4.6 — arrays are flat byte
// arrays).
func (g *Generator) genIndex(idx *ast.Index) {
	g.genExpr(idx.Idx)
	g.push("%rax")
	g.genExpr(idx.Array)
	g.emit("    movq %rax, %rcx")
	g.pop("%rax")
	g.emit("    movzbq (%rcx,%rax,1), %rax")
}

// genBinary lowers a binary operator application. Left is evaluated
// first and pushed as scratch; right is evaluated into %rax, moved
// aside into %rcx, and left is popped back into %rax, so every
// arithmetic and comparison instruction below computes `left OP right`
// with the correct (non-commutative-safe) operand order — the ordering
// original_source/compiler/src/codegen.rs uses, which resolves spec.md
// §4.6's more ambiguous "%rcx op %rax" phrasing in favor of the
// original's actually-correct one.
func (g *Generator) genBinary(bin *ast.Binary) {
	switch bin.Op {
	case ast.BinAnd:
		g.genShortCircuit(bin, false)
		return
	case ast.BinOr:
		g.genShortCircuit(bin, true)
		return
	}

	g.genExpr(bin.Left)
	g.push("%rax")
	g.genExpr(bin.Right)
	g.emit("    movq %rax, %rcx")
	g.pop("%rax")

	switch bin.Op {
	case ast.BinAdd:
		g.emit("    addq %rcx, %rax")
	case ast.BinSub:
		g.emit("    subq %rcx, %rax")
	case ast.BinMul:
		g.emit("    imulq %rcx, %rax")
	case ast.BinDiv:
		g.emit("    cqto")
		g.emit("    idivq %rcx")
	case ast.BinEq:
		g.emitCompare("sete")
	case ast.BinNeq:
		g.emitCompare("setne")
	case ast.BinLt:
		g.emitCompare("setl")
	case ast.BinGt:
		g.emitCompare("setg")
	case ast.BinLtEq:
		g.emitCompare("setle")
	case ast.BinGtEq:
		g.emitCompare("setge")
	}
}

func (g *Generator) emitCompare(setInstr string) {
	g.emit("    cmpq %rcx, %rax")
	g.emitf("    %s %%al", setInstr)
	g.emit("    movzbq %al, %rax")
}

// genShortCircuit lowers `&&` (wantTrue == false) and `||` (wantTrue ==
// true): the right operand is only evaluated when the left one hasn't
// already determined the result (spec.md §4.6's "short-circuit via
// fresh labels").
func (g *Generator) genShortCircuit(bin *ast.Binary, wantTrue bool) {
	shortLabel := g.labels.Next()
	endLabel := g.labels.Next()

	g.genExpr(bin.Left)
	g.emit("    testq %rax, %rax")
	if wantTrue {
		g.emitf("    jnz %s", shortLabel)
	} else {
		g.emitf("    jz %s", shortLabel)
	}

	g.genExpr(bin.Right)
	g.emit("    testq %rax, %rax")
	g.emit("    setne %al")
	g.emit("    movzbq %al, %rax")
	g.emitf("    jmp %s", endLabel)

	g.emitf("%s:", shortLabel)
	if wantTrue {
		g.emit("    movq $1, %rax")
	} else {
		g.emit("    movq $0, %rax")
	}

	g.emitf("%s:", endLabel)
}

// genCall lowers `f(args)` per spec.md §4.6: the first six arguments
// evaluated left-to-right onto the stack and popped into the ABI
// registers, any remainder pushed in reverse order, %rsp aligned to 16
// at the `call`, and the stack cleaned up after.
//
// The remainder, if any, is evaluated and pushed before any ABI
// register is loaded, last argument first, so stack-passed arguments
// are evaluated right-to-left and ahead of the first six. Loading a
// register and only then evaluating a later, stack-passed argument
// would let that argument's expression — if it contains a nested call —
// clobber a register already loaded for this call. When there is a
// remainder, any alignment padding goes below it, so the callee still
// finds the seventh argument at 16(%rbp).
func (g *Generator) genCall(call *ast.Call) {
	n := len(call.Args)
	regN := n
	if regN > 6 {
		regN = 6
	}

	prePadded := false
	if n > 6 {
		if (g.stackDepth+(n-6)*8)%16 != 0 {
			g.emit("    subq $8, %rsp")
			g.stackDepth += 8
			prePadded = true
		}
		for i := n - 1; i >= 6; i-- {
			g.genExpr(call.Args[i])
			g.push("%rax")
		}
	}

	for i := 0; i < regN; i++ {
		g.genExpr(call.Args[i])
		g.push("%rax")
	}
	for i := regN - 1; i >= 0; i-- {
		g.pop(argRegs[i])
	}

	padded := g.alignForCall()
	g.emitf("    call %s", call.Name)
	g.unalignForCall(padded)

	if n > 6 {
		extra := (n - 6) * 8
		g.emitf("    addq $%d, %%rsp", extra)
		g.stackDepth -= extra
	}
	g.unalignForCall(prePadded)
}

// alignForCall pads %rsp to a 16-byte boundary immediately before a
// `call`, and reports whether it did so, so the caller knows to remove
// the padding afterward. stackDepth is always a multiple of 8 relative
// to a known-aligned baseline (the point right after a function's
// prologue), so the only possible misalignment is a stray 8 bytes.
func (g *Generator) alignForCall() bool {
	if g.stackDepth%16 != 0 {
		g.emit("    subq $8, %rsp")
		g.stackDepth += 8
		return true
	}
	return false
}

func (g *Generator) unalignForCall(padded bool) {
	if padded {
		g.emit("    addq $8, %rsp")
		g.stackDepth -= 8
	}
}
