package scope

// Scope is one `{ }` block's set of declared names.
type Scope struct {
	Names map[string]int // name -> line of declaration
	Outer *Scope
	Line  int // line of the opening brace, 0 for file scope
}

func NewScope(outer *Scope, line int) *Scope {
	return &Scope{
		Names: make(map[string]int),
		Outer: outer,
		Line:  line,
	}
}

// Define adds a name to this scope level only. A later declaration of the
// same name keeps the first line.
func (s *Scope) Define(name string, line int) {
	if _, exists := s.Names[name]; !exists {
		s.Names[name] = line
	}
}

// Lookup searches from this scope outwards.
func (s *Scope) Lookup(name string) (int, bool) {
	for sc := s; sc != nil; sc = sc.Outer {
		if line, ok := sc.Names[name]; ok {
			return line, true
		}
	}
	return 0, false
}

// LookupCurrentScope checks only this scope level.
func (s *Scope) LookupCurrentScope(name string) (int, bool) {
	line, ok := s.Names[name]
	return line, ok
}

// Stack is the chain of scopes for one validation run. The file scope is
// always present and is never popped.
type Stack struct {
	current *Scope
	depth   int
}

func NewStack() *Stack {
	return &Stack{current: NewScope(nil, 0)}
}

func (st *Stack) Push(line int) {
	st.current = NewScope(st.current, line)
	st.depth++
}

// Pop leaves the innermost block. It reports false when only the file
// scope is left.
func (st *Stack) Pop() bool {
	if st.depth == 0 {
		return false
	}
	st.current = st.current.Outer
	st.depth--
	return true
}

func (st *Stack) Depth() int { return st.depth }

func (st *Stack) Current() *Scope { return st.current }

func (st *Stack) Define(name string, line int) { st.current.Define(name, line) }

func (st *Stack) Lookup(name string) (int, bool) { return st.current.Lookup(name) }
