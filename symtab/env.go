// Package symtab implements the per-function symbol environment and the
// per-unit label factory the code generator drives during emission
// (spec.md §4.5). Unlike the teacher's semantic symbol table, which
// binds names to types for the type checker, this one binds names to
// stack-slot offsets for the emitter — the scope-stack-of-maps idiom is
// the same, only the payload changes.
package symtab

// slotSize is the width of every local: Zed has one scalar width
// (spec.md §3), so every slot is a full machine word.
const slotSize = 8

// Env is a function's symbol environment: a stack of scope frames, each
// mapping a variable name to its byte offset from %rbp (negative,
// per the SysV frame layout spec.md §4.6 emits). Frames are pushed on
// scope entry and popped on scope exit; lookup walks frames
// nearest-first so inner scopes shadow outer ones.
type Env struct {
	frames []map[string]int
	next   int // offset of the next slot to allocate, always <= 0
}

// NewEnv returns an environment with its outermost frame already
// pushed, ready for a function's parameters and top-level locals.
func NewEnv() *Env {
	e := &Env{}
	e.EnterScope()
	return e
}

// EnterScope pushes a new, empty frame.
func (e *Env) EnterScope() {
	e.frames = append(e.frames, make(map[string]int))
}

// LeaveScope pops the innermost frame. Slots it owned are not reused:
// the frame-size scan that sizes the stack frame (spec.md §4.6) counts
// every slot ever allocated, not the high-water mark of live scopes, so
// popping a frame never rewinds the offset counter.
func (e *Env) LeaveScope() {
	e.frames = e.frames[:len(e.frames)-1]
}

// Define allocates a new slot for name in the innermost frame (next
// multiple of 8 below the frame pointer) and returns its offset. A
// second Define of a name already bound in the innermost frame
// overwrites the binding in place, reusing its existing slot — this
// matches Zed's assign-on-first-use semantics (spec.md §4.5): only the
// first assignment to a name in a given scope allocates storage.
func (e *Env) Define(name string) int {
	frame := e.frames[len(e.frames)-1]
	if off, ok := frame[name]; ok {
		return off
	}

	e.next -= slotSize
	frame[name] = e.next
	return e.next
}

// Lookup walks the frame stack nearest-first and returns the offset
// bound to name, or ok == false if no enclosing scope binds it.
func (e *Env) Lookup(name string) (int, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if off, ok := e.frames[i][name]; ok {
			return off, true
		}
	}
	return 0, false
}

// FrameSize returns the number of bytes reserved for the deepest
// negative offset allocated so far, aligned up to 16 per the SysV
// AMD64 stack-alignment requirement (spec.md §4.6).
func (e *Env) FrameSize() int {
	size := -e.next
	if rem := size % 16; rem != 0 {
		size += 16 - rem
	}
	return size
}
