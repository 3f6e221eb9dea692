package patalg

// CompiledPattern is the unit algebra operations consume and produce: an
// immutable (source AST + automaton + derived bounds) bundle. Compiled
// patterns are value-like — safe to share by reference across concurrent
// callers, since nothing here is ever mutated after construction (§5).
type CompiledPattern struct {
	Source      string
	AST         *PathPattern
	QuickReject QuickRejectFilter
	Automaton   *SegmentAutomaton
	IsUnbounded bool
	MinSegments int
	MaxSegments *int
	IsNegation  bool
}

// DeterminizeOptions bundles the knobs that affect subset construction.
type DeterminizeOptions struct {
	MaxStates int
}

// DefaultDeterminizeOptions matches spec.md §4.4's default state cap.
var DefaultDeterminizeOptions = DeterminizeOptions{MaxStates: 10000}

// Compile parses, builds, and determinizes a pattern in one step. The
// resulting CompiledPattern always carries a complete DFA: every algebra
// operation in C6/C7 requires a determinized, completed input, so compiling
// eagerly means callers never need to branch on whether a given
// CompiledPattern's automaton happens to be ready for algebra.
//
// Compile always parses with the default ParseConfig; use CompileWithOptions
// to pass ParseOptions (e.g. AllowAlternation(false)).
func Compile(source string, opts ...DeterminizeOptions) (*CompiledPattern, error) {
	opt := DefaultDeterminizeOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	return CompileWithOptions(source, opt)
}

// CompileWithOptions is Compile with explicit determinization and parse
// options.
func CompileWithOptions(source string, detOpts DeterminizeOptions, parseOpts ...ParseOption) (*CompiledPattern, error) {
	ast, err := ParsePattern(source, parseOpts...)
	if err != nil {
		return nil, err
	}

	nfa, minSeg, maxSeg := BuildAutomaton(ast)
	dfa, err := Determinize(nfa, detOpts)
	if err != nil {
		return nil, err
	}

	return &CompiledPattern{
		Source:      source,
		AST:         ast,
		QuickReject: computeQuickReject(ast.Root),
		Automaton:   dfa,
		IsUnbounded: maxSeg == nil,
		MinSegments: minSeg,
		MaxSegments: maxSeg,
		IsNegation:  ast.IsNegation,
	}, nil
}

// MustCompile calls Compile and panics on error.
func MustCompile(source string) *CompiledPattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

// Matches reports whether path matches the compiled pattern.
func (c *CompiledPattern) Matches(path string) bool {
	return Matches(path, c)
}
