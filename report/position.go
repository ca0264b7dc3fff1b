// Package report implements diagnostic reporting for the Zed compiler:
// source spans, the "first error, one message, stop" propagation idiom, and
// the plain-text renderer mandated for compiler diagnostics.
package report

// TextSpan represents a range of source text. The starting position is
// the position of the first byte in the span and the ending position is
// the position just past the last byte (exclusive), as produced by
// source.Unit.ToTextSpan. Lines and columns are zero-indexed internally
// and rendered one-indexed.
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// SpanOver returns a new span which spans over and between two given spans.
func SpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}
