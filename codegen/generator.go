// Package codegen implements the single-pass AST-to-GAS emitter
// (spec.md §4.6): AT&T-syntax x86-64 Linux text, one Generator per
// translation unit. Grounded on the teacher's generator-struct-with-
// emit-buffer idiom (`generate/generator.go`) and cross-checked line by
// line against `original_source/compiler/src/codegen.rs` for the exact
// instruction sequences, with the corrections SPEC_FULL.md's
// Supplements 3-5 call for.
package codegen

import (
	"fmt"
	"strings"

	"zedc/ast"
	"zedc/report"
	"zedc/source"
	"zedc/symtab"
)

// argRegs holds the SysV AMD64 integer/pointer argument registers, in
// order.
var argRegs = [6]string{"%rdi", "%rsi", "%rdx", "%rcx", "%r8", "%r9"}

// Generator emits one translation unit's assembly text. Its scratch
// state (env, labels, stackDepth) lives for one AST traversal and does
// not survive past Generate returning (spec.md §3's lifetime note).
type Generator struct {
	unit   *source.Unit
	isMain bool

	buf strings.Builder

	labels *symtab.LabelFactory
	env    *symtab.Env

	// stackDepth tracks bytes pushed since the last known-aligned point
	// (immediately after a function's prologue), so genCall can restore
	// 16-byte alignment before every `call` without over-padding.
	stackDepth int

	// strLabels interns string literals per unit: equal literals share
	// a label (spec.md §4.6), keyed by the literal's own text. strOrder
	// holds the literal text (not the label) in first-seen order, so
	// .rodata emission can look each one's label back up through
	// strLabels and stay deterministic.
	strLabels map[string]string
	strOrder  []string
}

// New returns a Generator for unit. isMain marks the unit whose
// top-level statements become `_start`.
func New(unit *source.Unit, isMain bool) *Generator {
	return &Generator{
		unit:      unit,
		isMain:    isMain,
		labels:    symtab.NewLabelFactory(),
		strLabels: make(map[string]string),
	}
}

// Generate lowers prog to a complete assembly file for this unit.
func (g *Generator) Generate(prog *ast.Program) string {
	var funcs []*ast.FuncDef
	var topStmts []ast.Statement

	for _, item := range prog.Items {
		switch it := item.(type) {
		case *ast.FuncDef:
			funcs = append(funcs, it)
		case *ast.FuncDecl:
			// predeclarations contribute no code
		case *ast.TopLevelStmt:
			topStmts = append(topStmts, it.Stmt)
		}
	}

	if !g.isMain && len(topStmts) > 0 {
		g.raiseAt(topStmts[0].Span(), "executable code outside function in library unit")
	}

	for _, fn := range funcs {
		g.collectStrings(fn.Body)
	}
	for _, s := range topStmts {
		g.collectStrings(s)
	}

	if len(g.strOrder) > 0 {
		g.emit(".section .rodata")
		for _, s := range g.strOrder {
			g.emitf("%s:", g.strLabels[s])
			// .ascii plus an explicit terminating byte, not .string:
			// .string stops at the first NUL, which would silently
			// truncate a literal containing an embedded `\0` escape.
			g.emitf("    .ascii %s", quoteAsmString(s))
			g.emit("    .byte 0")
		}
		g.emit("")
	}

	g.emit(".section .text")
	g.emit("")
	for _, fn := range funcs {
		g.emitf(".globl %s", fn.Name)
	}
	g.emit("")

	for i, fn := range funcs {
		if i > 0 {
			g.emit("")
		}
		g.genFunc(fn)
	}

	if g.isMain {
		g.emit("")
		g.emit(".globl _start")
		g.emit("_start:")
		g.emit("    pushq %rbp")
		g.emit("    movq %rsp, %rbp")

		sizeEnv := symtab.NewEnv()
		for _, s := range topStmts {
			g.scanFrame(s, sizeEnv)
		}
		if frameSize := sizeEnv.FrameSize(); frameSize > 0 {
			g.emitf("    subq $%d, %%rsp", frameSize)
		}

		g.env = symtab.NewEnv()
		// _start is the ELF entry point, not a call-entered function: on
		// entry %rsp is already 16-aligned, with no return address on the
		// stack. A call-entered function's post-prologue baseline of 0 is
		// 16-aligned because the return address and the pushed %rbp add
		// up to 16 bytes; here only %rbp is pushed, so the baseline sits
		// 8 bytes short of 16-aligned. alignForCall needs stackDepth to
		// reflect that offset, or every `call` emitted for a top-level
		// statement pads by the wrong amount.
		g.stackDepth = 8
		for _, s := range topStmts {
			g.genStmt(s)
		}

		g.emit("    movq $60, %rax")
		g.emit("    xorq %rdi, %rdi")
		g.emit("    syscall")
	}

	return g.buf.String()
}

func (g *Generator) emit(line string) {
	g.buf.WriteString(line)
	g.buf.WriteByte('\n')
}

func (g *Generator) emitf(format string, args ...interface{}) {
	g.emit(fmt.Sprintf(format, args...))
}

// push and pop wrap pushq/popq so stackDepth always reflects the bytes
// currently pushed relative to the last aligned point; genCall relies
// on this to know when %rsp needs padding before a `call`.
func (g *Generator) push(reg string) {
	g.emitf("    pushq %s", reg)
	g.stackDepth += 8
}

func (g *Generator) pop(reg string) {
	g.emitf("    popq %s", reg)
	g.stackDepth -= 8
}

func (g *Generator) internString(s string) string {
	if label, ok := g.strLabels[s]; ok {
		return label
	}
	label := g.labels.Next() + "_str"
	g.strLabels[s] = label
	g.strOrder = append(g.strOrder, s)
	return label
}

func (g *Generator) collectStrings(n ast.Node) {
	switch v := n.(type) {
	case *ast.StringLit:
		g.internString(v.Value)
	case *ast.Block:
		for _, s := range v.Stmts {
			g.collectStrings(s)
		}
	case *ast.If:
		g.collectStrings(v.Cond)
		g.collectStrings(v.Then)
		if v.Else != nil {
			g.collectStrings(v.Else)
		}
	case *ast.While:
		g.collectStrings(v.Cond)
		g.collectStrings(v.Body)
	case *ast.Return:
		if v.Value != nil {
			g.collectStrings(v.Value)
		}
	case *ast.Assign:
		g.collectStrings(v.Value)
		if v.Index != nil {
			g.collectStrings(v.Index)
		}
	case *ast.ExprStmt:
		g.collectStrings(v.Expr)
	case *ast.Asm:
		for _, o := range v.Inputs {
			g.collectStrings(o.Expr)
		}
	case *ast.Binary:
		g.collectStrings(v.Left)
		g.collectStrings(v.Right)
	case *ast.Unary:
		g.collectStrings(v.Operand)
	case *ast.Index:
		g.collectStrings(v.Array)
		g.collectStrings(v.Idx)
	case *ast.Call:
		for _, a := range v.Args {
			g.collectStrings(a)
		}
	}
}

func (g *Generator) raiseAt(span source.Span, msg string, args ...interface{}) {
	report.Raise(g.unit.ToTextSpan(span), fmt.Sprintf(msg, args...))
}

// quoteAsmString renders s as a GAS `.ascii` literal, escaping the
// handful of bytes that would otherwise break out of the quoted form.
// An embedded NUL is escaped as an octal `\000` rather than written
// raw, since a bare NUL byte sitting in the middle of the emitted
// assembly text is easy to mishandle downstream; `.ascii` itself does
// not stop at it the way `.string` would.
func quoteAsmString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\000`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
