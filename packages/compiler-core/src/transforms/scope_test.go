package transforms

import "testing"

func TestScopeChainLookup(t *testing.T) {
	base := map[string]bool{"item": true}
	s := newScopeChain(base)

	if !s.known("item") {
		t.Errorf("base identifier not found")
	}
	if s.known("x") {
		t.Errorf("unbound name reported as known")
	}

	s.push(map[string]bool{"x": true})
	if !s.known("x") || !s.known("item") {
		t.Errorf("pushed frame or base not visible")
	}

	s.push(map[string]bool{"y": true})
	if !s.known("y") || !s.known("x") {
		t.Errorf("lookup does not walk outward through frames")
	}

	s.pop()
	if s.known("y") {
		t.Errorf("name leaked out of popped frame")
	}
	if !s.known("x") {
		t.Errorf("outer frame lost after inner pop")
	}

	s.pop()
	if s.known("x") {
		t.Errorf("name leaked out of popped frame")
	}
	if !s.known("item") {
		t.Errorf("base layer lost after pops")
	}
}

func TestScopeChainShadowing(t *testing.T) {
	s := newScopeChain(map[string]bool{"a": true})
	s.push(map[string]bool{"a": true})
	s.pop()
	if !s.known("a") {
		t.Errorf("popping a shadowing frame removed the base binding")
	}
}
