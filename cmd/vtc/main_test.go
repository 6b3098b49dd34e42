package main

import "testing"

func TestMakeExpressionNodeSpansMultilineInput(t *testing.T) {
	node := makeExpressionNode("foo +\nbar")
	span := node.SourceSpan()
	if span.Start.Offset != 0 || span.Start.Line != 0 || span.Start.Col != 0 {
		t.Errorf("start: offset=%d line=%d col=%d", span.Start.Offset, span.Start.Line, span.Start.Col)
	}
	if span.End.Offset != 9 || span.End.Line != 1 || span.End.Col != 3 {
		t.Errorf("end: offset=%d line=%d col=%d", span.End.Offset, span.End.Line, span.End.Col)
	}
	if got := span.String(); got != "foo +\nbar" {
		t.Errorf("span text: %q", got)
	}
}
