package patalg

// Intersect returns a CompiledPattern matching exactly the paths both a and
// b match (C6). Negated operands are first materialized via normalizeNegation so
// the automata being combined always denote the operand's actual matching
// set.
func Intersect(a, b *CompiledPattern) (*CompiledPattern, error) {
	na, err := normalizeNegation(a)
	if err != nil {
		return nil, err
	}
	nb, err := normalizeNegation(b)
	if err != nil {
		return nil, err
	}

	raw := productIntersect(na.Automaton, nb.Automaton)
	dfa, err := Determinize(raw, DefaultDeterminizeOptions)
	if err != nil {
		return nil, err
	}
	minSeg, maxSeg := Bounds(dfa)

	return &CompiledPattern{
		Source:      "(" + a.Source + ")&&(" + b.Source + ")",
		QuickReject: composeIntersectFilter(na.QuickReject, nb.QuickReject),
		Automaton:   dfa,
		IsUnbounded: maxSeg == nil,
		MinSegments: minSeg,
		MaxSegments: maxSeg,
	}, nil
}

// Union returns a CompiledPattern matching exactly the paths a or b (or
// both) match (C6). It splices the two operands' automata under a shared
// epsilon-start and determinizes the result, rather than computing a
// product — a union never needs the cross-product state space an
// intersection does.
func Union(a, b *CompiledPattern) (*CompiledPattern, error) {
	na, err := normalizeNegation(a)
	if err != nil {
		return nil, err
	}
	nb, err := normalizeNegation(b)
	if err != nil {
		return nil, err
	}

	raw := spliceUnion(na.Automaton, nb.Automaton)
	dfa, err := Determinize(raw, DefaultDeterminizeOptions)
	if err != nil {
		return nil, err
	}
	minSeg, maxSeg := Bounds(dfa)

	return &CompiledPattern{
		Source:      "(" + a.Source + ")||(" + b.Source + ")",
		QuickReject: composeUnionFilter(na.QuickReject, nb.QuickReject),
		Automaton:   dfa,
		IsUnbounded: maxSeg == nil,
		MinSegments: minSeg,
		MaxSegments: maxSeg,
	}, nil
}

// spliceUnion builds a raw (non-deterministic) automaton whose language is
// exactly L(a) ∪ L(b): copy both operands' state graphs in, unmodified, and
// epsilon-wire a fresh initial state to each of their original initial
// states.
func spliceUnion(a, b *SegmentAutomaton) *SegmentAutomaton {
	out := newAutomaton()
	start := out.addState()
	baseA := appendAutomaton(out, a)
	baseB := appendAutomaton(out, b)
	out.addTransition(start, Transition{Kind: TransEpsilon, Target: baseA + a.Initial})
	out.addTransition(start, Transition{Kind: TransEpsilon, Target: baseB + b.Initial})
	out.Initial = start
	out.recomputeAccepting()
	return out
}

// appendAutomaton copies every state and transition of src into dst,
// retargeting edges by the offset at which src's states landed, and returns
// that offset.
func appendAutomaton(dst *SegmentAutomaton, src *SegmentAutomaton) (base int) {
	base = len(dst.States)
	for range src.States {
		dst.addState()
	}
	for _, s := range src.States {
		newID := base + s.ID
		dst.States[newID].Accepting = s.Accepting
		for _, t := range s.Out {
			nt := t
			switch t.Kind {
			case TransLiteral, TransWildcard, TransEpsilon:
				nt.Target = t.Target + base
			case TransGlobstar:
				nt.SelfLoop = t.SelfLoop + base
				nt.Exit = t.Exit + base
			}
			dst.addTransition(newID, nt)
		}
	}
	return base
}

// productIntersect builds a raw automaton whose language is exactly
// L(a) ∩ L(b), by pairing up a's and b's states and, for every pair of
// outgoing transitions, adding a product edge only when the two transitions
// can fire on the same segment (spec.md §4.5's combination table). Because
// a and b are complete DFAs their only transition kinds are Literal and
// Wildcard — no Epsilon or Globstar edges survive determinization — so that
// is all this needs to handle.
func productIntersect(a, b *SegmentAutomaton) *SegmentAutomaton {
	out := newAutomaton()

	type pair struct{ a, b int }
	seen := make(map[pair]int)
	var pairs []pair

	addPair := func(pa, pb int) (id int, isNew bool) {
		key := pair{pa, pb}
		if id, ok := seen[key]; ok {
			return id, false
		}
		id = out.addState()
		seen[key] = id
		pairs = append(pairs, key)
		return id, true
	}

	startID, _ := addPair(a.Initial, b.Initial)
	out.Initial = startID

	worklist := []int{startID}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		p := pairs[id]
		sa, sb := a.States[p.a], b.States[p.b]
		out.States[id].Accepting = sa.Accepting && sb.Accepting

		for _, ta := range sa.Out {
			for _, tb := range sb.Out {
				switch {
				case ta.Kind == TransLiteral && tb.Kind == TransLiteral:
					if ta.Segment == tb.Segment {
						target, isNew := addPair(ta.Target, tb.Target)
						if isNew {
							worklist = append(worklist, target)
						}
						out.addTransition(id, Transition{Kind: TransLiteral, Segment: ta.Segment, Target: target})
					}

				case ta.Kind == TransLiteral && tb.Kind == TransWildcard:
					if tb.Matcher.Match(ta.Segment) {
						target, isNew := addPair(ta.Target, tb.Target)
						if isNew {
							worklist = append(worklist, target)
						}
						out.addTransition(id, Transition{Kind: TransLiteral, Segment: ta.Segment, Target: target})
					}

				case ta.Kind == TransWildcard && tb.Kind == TransLiteral:
					if ta.Matcher.Match(tb.Segment) {
						target, isNew := addPair(ta.Target, tb.Target)
						if isNew {
							worklist = append(worklist, target)
						}
						out.addTransition(id, Transition{Kind: TransLiteral, Segment: tb.Segment, Target: target})
					}

				case ta.Kind == TransWildcard && tb.Kind == TransWildcard:
					target, isNew := addPair(ta.Target, tb.Target)
					if isNew {
						worklist = append(worklist, target)
					}
					out.addTransition(id, Transition{Kind: TransWildcard, Matcher: combineWildcards(ta.Matcher, tb.Matcher), Target: target})
				}
			}
		}
	}

	out.recomputeAccepting()
	return out
}

// combineWildcards returns the matcher for the conjunction of two wildcard
// predicates, collapsing away the universal catch-all matcher on either
// side instead of wrapping it in a needless andMatcher.
func combineWildcards(a, b SegmentMatcher) SegmentMatcher {
	if a.Tag() == "*" {
		return b
	}
	if b.Tag() == "*" {
		return a
	}
	return &andMatcher{a: a, b: b}
}
