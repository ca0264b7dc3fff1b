package symtab

import "strconv"

// LabelFactory produces unique local assembler labels for one
// translation unit's worth of code generation. Its invariant is that
// no two control-flow sites ever share a label (spec.md §3): every call
// to Next bumps the counter, so labels are unique for the factory's
// lifetime regardless of how many functions or branches it services.
type LabelFactory struct {
	n int
}

// NewLabelFactory returns a factory starting at .L0.
func NewLabelFactory() *LabelFactory {
	return &LabelFactory{}
}

// Next returns the next unused label, of the form .L<n>.
func (f *LabelFactory) Next() string {
	l := ".L" + strconv.Itoa(f.n)
	f.n++
	return l
}
