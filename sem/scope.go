package sem

// Scope is a single lexical scope.
type Scope struct {
	// Parent is the index of the enclosing scope or -1 for the root scope.
	Parent int

	// Symbols are the symbols defined in the scope in definition order.
	Symbols []*Symbol
}

// Arena stores every scope created during a compilation.  Scopes are
// addressed by index and are never freed: popping a scope only moves the
// arena's current position back to the scope's parent.
type Arena struct {
	scopes  []*Scope
	current int
}

// NewArena creates a new arena holding a single root scope.
func NewArena() *Arena {
	return &Arena{
		scopes: []*Scope{{Parent: -1}},
	}
}

// Push creates a new scope nested in the current scope, makes it current and
// returns its index.
func (a *Arena) Push() int {
	a.scopes = append(a.scopes, &Scope{Parent: a.current})
	a.current = len(a.scopes) - 1
	return a.current
}

// Pop makes the parent of the current scope current.  The root scope is never
// popped.
func (a *Arena) Pop() {
	if parent := a.scopes[a.current].Parent; parent >= 0 {
		a.current = parent
	}
}

// Current returns the index of the current scope.
func (a *Arena) Current() int {
	return a.current
}

// Enter makes the scope at the given index current and returns the index of
// the previously current scope so the caller can restore it.
func (a *Arena) Enter(index int) int {
	prev := a.current
	a.current = index
	return prev
}

// Scope returns the scope at the given index.
func (a *Arena) Scope(index int) *Scope {
	return a.scopes[index]
}

// Define adds a symbol to the current scope.
func (a *Arena) Define(sym *Symbol) {
	scope := a.scopes[a.current]
	scope.Symbols = append(scope.Symbols, sym)
}

// Lookup looks up a symbol by name in the current scope and then in each
// enclosing scope in turn.  Later definitions in a scope shadow earlier ones.
func (a *Arena) Lookup(name string) (*Symbol, bool) {
	for i := a.current; i >= 0; i = a.scopes[i].Parent {
		if sym, ok := a.scopes[i].lookup(name); ok {
			return sym, true
		}
	}

	return nil, false
}

// LookupLocal looks up a symbol only in the current scope.
func (a *Arena) LookupLocal(name string) (*Symbol, bool) {
	return a.scopes[a.current].lookup(name)
}

func (s *Scope) lookup(name string) (*Symbol, bool) {
	for i := len(s.Symbols) - 1; i >= 0; i-- {
		if s.Symbols[i].Name == name {
			return s.Symbols[i], true
		}
	}

	return nil, false
}
