package expression_parser

import (
	"fmt"

	jsast "github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
)

// The raw text is wrapped in a delimiting pair before parsing so that it
// always parses as a standalone expression, even when it would otherwise be
// read as a block, a statement, or a sequence ("{ foo }" for instance).
const (
	wrapPrefix = "("
	wrapSuffix = ")"
)

// Parser turns raw expression text into a range-annotated syntax tree.
// It is stateless with respect to input and safe to share across any number
// of concurrent invocations.
type Parser struct {
	// Index reported by the underlying parser for the first character of
	// the unwrapped text. All reported node ranges are shifted by this
	// amount relative to the original text.
	correction int
}

// NewParser creates a new Parser. The offset correction between the
// wrapped parse buffer and the original text is derived by probing the
// underlying parser, not assumed, since index conventions differ between
// parsers.
func NewParser() *Parser {
	// goja reports 1-based indices, so the expected delta is the wrap
	// prefix length plus one.
	p := &Parser{correction: len(wrapPrefix) + 1}
	if expr, err := p.Parse("a"); err == nil {
		if id, ok := expr.(*jsast.Identifier); ok {
			p.correction = int(id.Idx)
		}
	}
	return p
}

// Parse parses source as a single expression and returns the root of the
// range-annotated tree. Node ranges are in wrapped-buffer coordinates; use
// SourceOffset to map them back onto source.
func (p *Parser) Parse(source string) (jsast.Expression, error) {
	program, err := parser.ParseFile(nil, "", wrapPrefix+source+wrapSuffix, 0)
	if err != nil {
		return nil, err
	}
	if len(program.Body) != 1 {
		return nil, fmt.Errorf("expected a single expression, got %d statements", len(program.Body))
	}
	stmt, ok := program.Body[0].(*jsast.ExpressionStatement)
	if !ok {
		return nil, fmt.Errorf("expected an expression, got a statement")
	}
	return stmt.Expression, nil
}

// SourceOffset converts a parser-reported index into a character offset
// within the original unwrapped text
func (p *Parser) SourceOffset(idx file.Idx) int {
	return int(idx) - p.correction
}

// SourceRange returns the start and end offsets of a node within the
// original unwrapped text
func (p *Parser) SourceRange(n jsast.Node) (int, int) {
	return p.SourceOffset(n.Idx0()), p.SourceOffset(n.Idx1())
}
