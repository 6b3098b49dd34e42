package transforms

import (
	"sort"

	jsast "github.com/dop251/goja/ast"
)

// identifierOccurrence records one identifier reference that needs to be
// rewritten. Offsets are character positions within the original unwrapped
// expression text; start offsets are unique per occurrence and used for
// ordering and deduplication.
type identifierOccurrence struct {
	name   string
	start  int
	end    int
	prefix string
}

// identifierResolver performs a single depth-first traversal of a parsed
// expression tree, maintaining the scope chain and collecting identifier
// occurrences that the eligibility policy accepts
type identifierResolver struct {
	ctx   *TransformContext
	scope *scopeChain
	seen  map[int]bool
	ids   []*identifierOccurrence
}

func newIdentifierResolver(ctx *TransformContext) *identifierResolver {
	return &identifierResolver{
		ctx:   ctx,
		scope: newScopeChain(ctx.Identifiers),
		seen:  map[int]bool{},
	}
}

// resolve walks the tree and returns the collected occurrences sorted by
// ascending start offset
func (r *identifierResolver) resolve(root jsast.Expression) []*identifierOccurrence {
	r.walkExpression(root, nil)
	sort.Slice(r.ids, func(i, j int) bool {
		return r.ids[i].start < r.ids[j].start
	})
	return r.ids
}

func (r *identifierResolver) visitIdentifier(id *jsast.Identifier, parent jsast.Node) {
	start := r.ctx.parser.SourceOffset(id.Idx0())
	if r.seen[start] {
		return
	}
	name := id.Name.String()
	if r.scope.known(name) {
		return
	}
	prefix, eligible := r.eligiblePrefix(id, parent)
	if !eligible {
		return
	}
	r.seen[start] = true
	// The reported end index counts escaped characters for non-ASCII
	// names; the end offset is derived from the name's source bytes
	// instead.
	r.ids = append(r.ids, &identifierOccurrence{
		name:   name,
		start:  start,
		end:    start + len(name),
		prefix: prefix,
	})
}

// eligiblePrefix is the prefixing-eligibility policy: a pure function of an
// identifier node and its immediate syntactic parent. It returns the literal
// prefix text to insert before the identifier, or eligible=false when the
// identifier must not be rewritten.
func (r *identifierResolver) eligiblePrefix(id *jsast.Identifier, parent jsast.Node) (string, bool) {
	switch p := parent.(type) {
	case *jsast.FunctionLiteral:
		// The function's own declared name.
		if p.Name == id {
			return "", false
		}
	case *jsast.Binding:
		// A declared parameter or other binding target.
		if p.Target == jsast.BindingTarget(id) {
			return "", false
		}
	case *jsast.PropertyKeyed:
		// Non-computed object keys are emitted verbatim.
		if !p.Computed && p.Key == jsast.Expression(id) {
			return "", false
		}
	case *jsast.PropertyShort:
		if &p.Name == id {
			// Shorthand is desugared into an explicit pair; the key half
			// is emitted verbatim and only the value half is prefixed.
			return id.Name.String() + ": " + r.ctx.Prefix, true
		}
	case *jsast.DotExpression:
		// The property name of a member access.
		if &p.Identifier == id {
			return "", false
		}
	case *jsast.ArrayPattern:
		// A binding position inside an array-destructuring pattern.
		return "", false
	}
	if r.ctx.isAllowedGlobal(id.Name.String()) {
		return "", false
	}
	return r.ctx.Prefix, true
}

func (r *identifierResolver) walkExpression(n jsast.Expression, parent jsast.Node) {
	switch e := n.(type) {
	case nil:
	case *jsast.Identifier:
		r.visitIdentifier(e, parent)
	case *jsast.DotExpression:
		r.walkExpression(e.Left, e)
		r.visitIdentifier(&e.Identifier, e)
	case *jsast.BracketExpression:
		r.walkExpression(e.Left, e)
		r.walkExpression(e.Member, e)
	case *jsast.CallExpression:
		r.walkExpression(e.Callee, e)
		for _, arg := range e.ArgumentList {
			r.walkExpression(arg, e)
		}
	case *jsast.NewExpression:
		r.walkExpression(e.Callee, e)
		for _, arg := range e.ArgumentList {
			r.walkExpression(arg, e)
		}
	case *jsast.BinaryExpression:
		r.walkExpression(e.Left, e)
		r.walkExpression(e.Right, e)
	case *jsast.AssignExpression:
		r.walkExpression(e.Left, e)
		r.walkExpression(e.Right, e)
	case *jsast.ConditionalExpression:
		r.walkExpression(e.Test, e)
		r.walkExpression(e.Consequent, e)
		r.walkExpression(e.Alternate, e)
	case *jsast.UnaryExpression:
		r.walkExpression(e.Operand, e)
	case *jsast.SequenceExpression:
		for _, x := range e.Sequence {
			r.walkExpression(x, e)
		}
	case *jsast.ArrayLiteral:
		for _, el := range e.Value {
			r.walkExpression(el, e)
		}
	case *jsast.ObjectLiteral:
		for _, prop := range e.Value {
			r.walkProperty(prop, e)
		}
	case *jsast.ArrayPattern:
		for _, el := range e.Elements {
			r.walkExpression(el, e)
		}
		r.walkExpression(e.Rest, e)
	case *jsast.ObjectPattern:
		for _, prop := range e.Properties {
			r.walkProperty(prop, e)
		}
		r.walkExpression(e.Rest, e)
	case *jsast.TemplateLiteral:
		r.walkExpression(e.Tag, e)
		for _, x := range e.Expressions {
			r.walkExpression(x, e)
		}
	case *jsast.SpreadElement:
		r.walkExpression(e.Expression, e)
	case *jsast.ArrowFunctionLiteral:
		frame := parameterNames(e.ParameterList)
		r.scope.push(frame)
		r.walkParameterList(e.ParameterList, e)
		r.walkConciseBody(e.Body, e)
		r.scope.pop()
	case *jsast.FunctionLiteral:
		frame := parameterNames(e.ParameterList)
		if e.Name != nil {
			frame[e.Name.Name.String()] = true
		}
		r.scope.push(frame)
		r.walkParameterList(e.ParameterList, e)
		r.walkStatement(e.Body, e)
		r.scope.pop()
	default:
		// Literals and unrecognized shapes contribute no occurrences.
	}
}

func (r *identifierResolver) walkProperty(p jsast.Property, parent jsast.Node) {
	switch prop := p.(type) {
	case *jsast.PropertyKeyed:
		if key, ok := prop.Key.(*jsast.Identifier); ok && !prop.Computed {
			r.visitIdentifier(key, prop)
		} else {
			r.walkExpression(prop.Key, prop)
		}
		r.walkExpression(prop.Value, prop)
	case *jsast.PropertyShort:
		r.visitIdentifier(&prop.Name, prop)
		r.walkExpression(prop.Initializer, prop)
	case *jsast.SpreadElement:
		r.walkExpression(prop.Expression, prop)
	}
}

func (r *identifierResolver) walkConciseBody(body jsast.ConciseBody, parent jsast.Node) {
	switch b := body.(type) {
	case *jsast.ExpressionBody:
		r.walkExpression(b.Expression, b)
	case *jsast.BlockStatement:
		r.walkStatement(b, parent)
	}
}

// walkStatement covers the statement forms that occur inside function
// bodies embedded in template expressions; anything else is skipped
func (r *identifierResolver) walkStatement(s jsast.Statement, parent jsast.Node) {
	switch st := s.(type) {
	case nil:
	case *jsast.BlockStatement:
		for _, inner := range st.List {
			r.walkStatement(inner, st)
		}
	case *jsast.ExpressionStatement:
		r.walkExpression(st.Expression, st)
	case *jsast.ReturnStatement:
		r.walkExpression(st.Argument, st)
	case *jsast.IfStatement:
		r.walkExpression(st.Test, st)
		r.walkStatement(st.Consequent, st)
		r.walkStatement(st.Alternate, st)
	case *jsast.ThrowStatement:
		r.walkExpression(st.Argument, st)
	case *jsast.VariableStatement:
		for _, b := range st.List {
			r.walkBinding(b)
		}
	case *jsast.LexicalDeclaration:
		for _, b := range st.List {
			r.walkBinding(b)
		}
	}
}

func (r *identifierResolver) walkParameterList(pl *jsast.ParameterList, parent jsast.Node) {
	if pl == nil {
		return
	}
	for _, b := range pl.List {
		r.walkBinding(b)
	}
	r.walkExpression(pl.Rest, parent)
}

func (r *identifierResolver) walkBinding(b *jsast.Binding) {
	r.walkExpression(b.Target, b)
	r.walkExpression(b.Initializer, b)
}

// parameterNames collects every name bound by a parameter list, including
// names nested inside destructuring patterns
func parameterNames(pl *jsast.ParameterList) map[string]bool {
	names := map[string]bool{}
	if pl == nil {
		return names
	}
	for _, b := range pl.List {
		collectBoundNames(b.Target, names)
	}
	collectBoundNames(pl.Rest, names)
	return names
}

func collectBoundNames(target jsast.Expression, names map[string]bool) {
	switch t := target.(type) {
	case nil:
	case *jsast.Identifier:
		names[t.Name.String()] = true
	case *jsast.ArrayPattern:
		for _, el := range t.Elements {
			collectBoundNames(el, names)
		}
		collectBoundNames(t.Rest, names)
	case *jsast.ObjectPattern:
		for _, p := range t.Properties {
			switch prop := p.(type) {
			case *jsast.PropertyShort:
				names[prop.Name.Name.String()] = true
			case *jsast.PropertyKeyed:
				collectBoundNames(prop.Value, names)
			}
		}
		collectBoundNames(t.Rest, names)
	case *jsast.AssignExpression:
		// Pattern element with a default value.
		collectBoundNames(t.Left, names)
	case *jsast.Binding:
		collectBoundNames(t.Target, names)
	case *jsast.SpreadElement:
		collectBoundNames(t.Expression, names)
	}
}
