package ast

import (
	"testing"

	"vtc-go/packages/compiler-core/src/util"
)

func span(content string) *util.ParseSourceSpan {
	file := util.NewParseSourceFile(content, "template.html")
	return util.NewParseSourceSpan(
		util.NewParseLocation(file, 0, 0, 0),
		util.NewParseLocation(file, len(content), 0, len(content)),
		nil,
	)
}

func TestSimpleExpressionString(t *testing.T) {
	node := NewSimpleExpression("foo + bar", false, span("foo + bar"))
	if node.IsCompound() {
		t.Fatalf("fresh node reported as compound")
	}
	if got := node.String(); got != "foo + bar" {
		t.Errorf("expected raw content, got %q", got)
	}

	node.Children = []ExpressionChild{
		TextFragment("_ctx."),
		NewSimpleExpression("foo", false, span("foo + bar")),
		TextFragment(" + _ctx."),
		NewSimpleExpression("bar", false, span("foo + bar")),
	}
	if !node.IsCompound() {
		t.Fatalf("node with children not reported as compound")
	}
	if got := node.String(); got != "_ctx.foo + _ctx.bar" {
		t.Errorf("expected rewritten source, got %q", got)
	}
	if node.Content != "foo + bar" {
		t.Errorf("raw content changed: %q", node.Content)
	}
}
