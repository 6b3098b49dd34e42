package transforms

import (
	"sync"

	"vtc-go/packages/compiler-core/src/expression_parser"
	"vtc-go/packages/compiler-core/src/util"
)

// DefaultPrefix is the context prefix inserted before free identifier
// references when no other prefix is configured
const DefaultPrefix = "_ctx."

// TransformOptions configures a TransformContext
type TransformOptions struct {
	// Prefix is the literal text inserted before each rewritten identifier.
	// Defaults to DefaultPrefix.
	Prefix string
	// Identifiers is the base set of names considered bound by the
	// enclosing template context. Read-only from the transform's
	// perspective.
	Identifiers map[string]bool
	// AllowedGlobals replaces the default global allow-list when non-nil
	AllowedGlobals map[string]bool
	// Parser is the expression-parsing service. A shared default is used
	// when nil.
	Parser *expression_parser.Parser
	// OnError receives parse errors. Reporting an error for one node never
	// aborts processing of other nodes.
	OnError func(*util.ParseError)
}

// TransformContext carries the per-template state the expression transform
// reads: the base known-identifier set and the error sink, plus the shared
// parser handle and prefix configuration
type TransformContext struct {
	Identifiers map[string]bool
	Prefix      string

	allowedGlobals map[string]bool
	parser         *expression_parser.Parser
	onError        func(*util.ParseError)
}

var sharedParser = sync.OnceValue(expression_parser.NewParser)

// NewTransformContext creates a new TransformContext
func NewTransformContext(options TransformOptions) *TransformContext {
	prefix := options.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	identifiers := options.Identifiers
	if identifiers == nil {
		identifiers = map[string]bool{}
	}
	allowedGlobals := options.AllowedGlobals
	if allowedGlobals == nil {
		allowedGlobals = defaultAllowedGlobals
	}
	p := options.Parser
	if p == nil {
		p = sharedParser()
	}
	return &TransformContext{
		Identifiers:    identifiers,
		Prefix:         prefix,
		allowedGlobals: allowedGlobals,
		parser:         p,
		onError:        options.OnError,
	}
}

// ReportError sends an error to the context's error sink
func (c *TransformContext) ReportError(err *util.ParseError) {
	if c.onError != nil {
		c.onError(err)
	}
}

func (c *TransformContext) isKnown(name string) bool {
	return c.Identifiers[name]
}

func (c *TransformContext) isAllowedGlobal(name string) bool {
	return c.allowedGlobals[name]
}
