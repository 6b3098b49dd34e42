package transforms

// scopeChain tracks which names are locally bound while the resolver walks
// an expression tree. The base layer is the read-only known-identifier set
// inherited from the enclosing template context; each nested function scope
// pushes a frame of its parameter-bound names and pops it on exit, so a
// name bound only inside an inner function never leaks to an outer scope.
type scopeChain struct {
	base   map[string]bool
	frames []map[string]bool
}

func newScopeChain(base map[string]bool) *scopeChain {
	return &scopeChain{base: base}
}

func (s *scopeChain) push(frame map[string]bool) {
	s.frames = append(s.frames, frame)
}

func (s *scopeChain) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// known reports whether name is bound in any frame, innermost first, or in
// the base layer
func (s *scopeChain) known(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i][name] {
			return true
		}
	}
	return s.base[name]
}
