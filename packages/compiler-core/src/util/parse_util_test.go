package util

import (
	"strings"
	"testing"
)

func TestMoveByTracksLinesAndColumns(t *testing.T) {
	file := NewParseSourceFile("foo +\nbar + baz", "template.html")
	start := NewParseLocation(file, 0, 0, 0)

	moved := start.MoveBy(4)
	if moved.Offset != 4 || moved.Line != 0 || moved.Col != 4 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}

	moved = start.MoveBy(6)
	if moved.Offset != 6 || moved.Line != 1 || moved.Col != 0 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}

	moved = start.MoveBy(12)
	if moved.Offset != 12 || moved.Line != 1 || moved.Col != 6 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}
}

func TestMoveByBackward(t *testing.T) {
	file := NewParseSourceFile("ab\ncd", "template.html")
	loc := NewParseLocation(file, 4, 1, 1)

	moved := loc.MoveBy(-1)
	if moved.Offset != 3 || moved.Line != 1 || moved.Col != 0 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}

	moved = loc.MoveBy(-2)
	if moved.Offset != 2 || moved.Line != 0 || moved.Col != 2 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}
}

func TestMoveByBackwardAcrossLeadingNewline(t *testing.T) {
	file := NewParseSourceFile("\nab\ncd", "template.html")
	loc := NewParseLocation(file, 5, 2, 1)

	moved := loc.MoveBy(-2)
	if moved.Offset != 3 || moved.Line != 1 || moved.Col != 2 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}

	moved = loc.MoveBy(-5)
	if moved.Offset != 0 || moved.Line != 0 || moved.Col != 0 {
		t.Errorf("offset=%d line=%d col=%d", moved.Offset, moved.Line, moved.Col)
	}
}

func TestMoveByClampsAtEnd(t *testing.T) {
	file := NewParseSourceFile("ab", "template.html")
	start := NewParseLocation(file, 0, 0, 0)
	moved := start.MoveBy(10)
	if moved.Offset != 2 {
		t.Errorf("offset=%d", moved.Offset)
	}
}

func TestSourceSpanString(t *testing.T) {
	file := NewParseSourceFile("foo + bar", "template.html")
	start := NewParseLocation(file, 6, 0, 6)
	end := NewParseLocation(file, 9, 0, 9)
	span := NewParseSourceSpan(start, end, nil)
	if got := span.String(); got != "bar" {
		t.Errorf("expected %q, got %q", "bar", got)
	}
}

func TestParseErrorContextualMessage(t *testing.T) {
	file := NewParseSourceFile("foo + bar", "template.html")
	span := NewParseSourceSpan(
		NewParseLocation(file, 6, 0, 6),
		NewParseLocation(file, 9, 0, 9),
		nil,
	)
	err := NewParseError(span, "Invalid expression")
	msg := err.ContextualMessage()
	if !strings.Contains(msg, "Invalid expression") || !strings.Contains(msg, "[ERROR ->]") {
		t.Errorf("unexpected message: %q", msg)
	}
	if !strings.Contains(err.String(), "template.html@0:6") {
		t.Errorf("unexpected location rendering: %q", err.String())
	}
}
