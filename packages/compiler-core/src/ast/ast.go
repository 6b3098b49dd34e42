package ast

import (
	"strings"

	"vtc-go/packages/compiler-core/src/util"
)

// Node represents a node in the template AST
type Node interface {
	SourceSpan() *util.ParseSourceSpan
}

// ExpressionChild is one element of a compound expression: either a literal
// text fragment or a rewritten sub-expression
type ExpressionChild interface {
	isExpressionChild()
}

// TextFragment is a literal piece of expression source emitted verbatim
type TextFragment string

func (TextFragment) isExpressionChild() {}

// SimpleExpression represents an expression embedded in a template binding.
// Content holds the raw source text. When the expression has been rewritten,
// Children holds the ordered literal/sub-expression sequence and supersedes
// Content for all downstream consumers; a nil Children slice means the raw
// content is to be used as-is.
type SimpleExpression struct {
	Content    string
	IsStatic   bool
	Children   []ExpressionChild
	sourceSpan *util.ParseSourceSpan
}

func (*SimpleExpression) isExpressionChild() {}

// NewSimpleExpression creates a new SimpleExpression
func NewSimpleExpression(content string, isStatic bool, sourceSpan *util.ParseSourceSpan) *SimpleExpression {
	return &SimpleExpression{
		Content:    content,
		IsStatic:   isStatic,
		sourceSpan: sourceSpan,
	}
}

// SourceSpan returns the source span
func (e *SimpleExpression) SourceSpan() *util.ParseSourceSpan {
	return e.sourceSpan
}

// IsCompound reports whether the expression was rewritten into a
// literal/sub-expression sequence
func (e *SimpleExpression) IsCompound() bool {
	return len(e.Children) > 0
}

// String returns the expression source, reconstructed from the children
// when the expression is compound
func (e *SimpleExpression) String() string {
	if !e.IsCompound() {
		return e.Content
	}
	var sb strings.Builder
	for _, child := range e.Children {
		switch c := child.(type) {
		case TextFragment:
			sb.WriteString(string(c))
		case *SimpleExpression:
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
