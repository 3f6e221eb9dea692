package patalg

// Complement returns a CompiledPattern that matches exactly the paths p does
// not (C7). It requires p.Automaton to be a complete DFA — true for every
// CompiledPattern produced by Compile/Intersect/Union/Difference, since this
// repo always determinizes eagerly (compiled.go).
//
// The result always carries IsNegation: false — its Automaton is flipped
// directly to recognize NOT L(p), so no further flip belongs in Matches.
// p itself may be a negated pattern (IsNegation: true); effectiveAutomaton
// accounts for that before this flips it again.
func Complement(p *CompiledPattern) (*CompiledPattern, error) {
	dfa := effectiveAutomaton(p)
	for _, s := range dfa.States {
		s.Accepting = !s.Accepting
	}
	dfa.recomputeAccepting()

	return &CompiledPattern{
		Source:      "!(" + p.Source + ")",
		AST:         p.AST,
		QuickReject: QuickRejectFilter{}, // a complement can match almost anything; no safe fast-reject
		Automaton:   dfa,
		IsUnbounded: true,
		MinSegments: 0,
		MaxSegments: nil,
		IsNegation:  false,
	}, nil
}

// effectiveAutomaton returns a clone of p's automaton that directly
// recognizes p's actual matched language — flipping p.Automaton's Accepting
// bits first if p.IsNegation, so every caller gets a literal, flip-free
// representation of L(p) to build on.
func effectiveAutomaton(p *CompiledPattern) *SegmentAutomaton {
	dfa := cloneAutomaton(p.Automaton)
	if p.IsNegation {
		for _, s := range dfa.States {
			s.Accepting = !s.Accepting
		}
		dfa.recomputeAccepting()
	}
	return dfa
}

// cloneAutomaton deep-copies an automaton's states and transitions so
// mutating the copy (e.g. Complement flipping Accepting bits) never affects
// the original — CompiledPattern values are meant to be safely shared.
func cloneAutomaton(a *SegmentAutomaton) *SegmentAutomaton {
	out := &SegmentAutomaton{
		Initial:         a.Initial,
		IsDeterministic: a.IsDeterministic,
		States:          make([]*State, len(a.States)),
	}
	for i, s := range a.States {
		out.States[i] = &State{
			ID:        s.ID,
			Accepting: s.Accepting,
			Out:       append([]Transition(nil), s.Out...),
		}
	}
	out.recomputeAccepting()
	return out
}

// normalizeNegation returns p unchanged if it is not a negated pattern, or a
// CompiledPattern whose Automaton directly recognizes p's actual matched
// language otherwise. Intersect and Union both call this first so the
// automata they combine always denote their operand's actual matching set,
// never the pre-negation body (spec.md §4.3's negation-flip happens outside
// automaton simulation, so algebra operations must materialize it first).
func normalizeNegation(p *CompiledPattern) (*CompiledPattern, error) {
	if !p.IsNegation {
		return p, nil
	}
	return &CompiledPattern{
		Source:      p.Source,
		AST:         p.AST,
		QuickReject: QuickRejectFilter{},
		Automaton:   effectiveAutomaton(p),
		IsUnbounded: true,
		MinSegments: 0,
		MaxSegments: nil,
		IsNegation:  false,
	}, nil
}
