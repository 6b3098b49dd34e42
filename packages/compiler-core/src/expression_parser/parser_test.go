package expression_parser

import (
	"testing"

	jsast "github.com/dop251/goja/ast"
)

func TestParseReportsSourceRanges(t *testing.T) {
	p := NewParser()
	expr, err := p.Parse("a + b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bin, ok := expr.(*jsast.BinaryExpression)
	if !ok {
		t.Fatalf("expected a binary expression, got %T", expr)
	}
	if start, end := p.SourceRange(bin.Left); start != 0 || end != 1 {
		t.Errorf("left range: %d..%d", start, end)
	}
	if start, end := p.SourceRange(bin.Right); start != 4 || end != 5 {
		t.Errorf("right range: %d..%d", start, end)
	}
}

func TestWrappingForcesExpressionParse(t *testing.T) {
	// Without the delimiting pair this would parse as a block statement.
	p := NewParser()
	expr, err := p.Parse("{ foo: 1 }")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := expr.(*jsast.ObjectLiteral); !ok {
		t.Errorf("expected an object literal, got %T", expr)
	}
}

func TestParseError(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("foo("); err == nil {
		t.Errorf("expected a syntax error")
	}
}

func TestParseRejectsMultipleStatements(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("a); (b"); err == nil {
		t.Errorf("expected an error for a statement-escaping expression")
	}
}
