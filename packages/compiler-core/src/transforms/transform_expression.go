package transforms

import (
	"fmt"

	"vtc-go/packages/compiler-core/src/ast"
	"vtc-go/packages/compiler-core/src/util"
)

// ProcessExpression rewrites free identifier references in a dynamic
// expression node into context-qualified reads. Identifiers bound by the
// template context, by nested function parameters, or exempted by syntax
// (object keys, member-access properties, destructuring targets, allowed
// globals) are left alone. On success the node's Children holds the ordered
// literal/sub-expression sequence; a node with no eligible occurrences, a
// static node, or a node whose content fails to parse is left untouched.
func ProcessExpression(node *ast.SimpleExpression, ctx *TransformContext) {
	if node.IsStatic {
		return
	}
	rawExp := node.Content

	// The overwhelmingly common case is a bare single identifier; rewrite
	// it directly without invoking the parser.
	if util.IsSimpleIdentifier(rawExp) {
		if ctx.isKnown(rawExp) || ctx.isAllowedGlobal(rawExp) || literalConstants[rawExp] {
			return
		}
		node.Children = []ast.ExpressionChild{
			ast.TextFragment(ctx.Prefix),
			ast.NewSimpleExpression(rawExp, false, node.SourceSpan()),
		}
		return
	}

	root, err := ctx.parser.Parse(rawExp)
	if err != nil {
		parseErr := util.NewParseError(node.SourceSpan(), fmt.Sprintf("Invalid expression: %s", rawExp))
		parseErr.RelatedError = err
		ctx.ReportError(parseErr)
		return
	}

	ids := boundedOccurrences(rawExp, newIdentifierResolver(ctx).resolve(root))
	if len(ids) == 0 {
		return
	}
	node.Children = spliceCompound(node, rawExp, ids)
}

// boundedOccurrences drops occurrences whose corrected range does not land
// on the identifier's own source text or overlaps the previous occurrence.
// Reported offsets for escaped identifier spellings can disagree with the
// source bytes; a dropped occurrence degrades to an unprefixed read instead
// of corrupting the splice.
func boundedOccurrences(source string, ids []*identifierOccurrence) []*identifierOccurrence {
	out := ids[:0]
	cursor := 0
	for _, id := range ids {
		if id.start < cursor || id.end > len(source) || source[id.start:id.end] != id.name {
			continue
		}
		out = append(out, id)
		cursor = id.end
	}
	return out
}

// spliceCompound reconstructs the expression as an ordered sequence of
// literal text fragments and rewritten sub-expressions. Each occurrence
// contributes the literal text since the previous occurrence with its
// prefix appended, then a sub-expression carrying the bare identifier with
// a source location advanced through the original text.
func spliceCompound(node *ast.SimpleExpression, source string, ids []*identifierOccurrence) []ast.ExpressionChild {
	children := make([]ast.ExpressionChild, 0, 2*len(ids)+1)
	start := node.SourceSpan().Start
	cursor := 0
	for _, id := range ids {
		children = append(children, ast.TextFragment(source[cursor:id.start]+id.prefix))
		span := util.NewParseSourceSpan(start.MoveBy(id.start), start.MoveBy(id.end), nil)
		children = append(children, ast.NewSimpleExpression(id.name, false, span))
		cursor = id.end
	}
	if cursor < len(source) {
		children = append(children, ast.TextFragment(source[cursor:]))
	}
	return children
}
