package patalg

// BuildAutomaton compiles a PathPattern's AST into a non-deterministic
// SegmentAutomaton (C3), Thompson-style over the segment alphabet. It also
// returns the pattern's minSegments and maxSegments bounds (nil maxSegments
// means unbounded — some reachable path includes a globstar).
func BuildAutomaton(pattern *PathPattern) (automaton *SegmentAutomaton, minSegments int, maxSegments *int) {
	a := newAutomaton()
	res := buildNode(a, pattern.Root)
	a.Initial = res.start
	a.States[res.end].Accepting = true
	a.recomputeAccepting()
	return a, res.minSegments, res.maxSegments
}

type buildResult struct {
	start, end  int
	minSegments int
	maxSegments *int // nil means unbounded
}

func buildNode(a *SegmentAutomaton, node PatternNode) buildResult {
	switch n := node.(type) {
	case SequenceNode:
		return buildSequence(a, n)
	case AlternationNode:
		return buildAlternation(a, n)
	default:
		// Defensive fallback: treat as an empty sequence so a malformed
		// synthetic AST never panics the builder.
		start := a.addState()
		zero := 0
		return buildResult{start: start, end: start, minSegments: 0, maxSegments: &zero}
	}
}

func buildSequence(a *SegmentAutomaton, seq SequenceNode) buildResult {
	start := a.addState()
	if len(seq.Segments) == 0 {
		// The empty sequence represents "/" or "~" alone: one epsilon from
		// start straight to accept.
		end := a.addState()
		a.addTransition(start, Transition{Kind: TransEpsilon, Target: end})
		zero := 0
		return buildResult{start: start, end: end, minSegments: 0, maxSegments: &zero}
	}

	cur := start
	minSegments := 0
	maxSegments := 0
	unbounded := false

	for i, seg := range seq.Segments {
		next := a.addState()
		switch s := seg.(type) {
		case LiteralSegment:
			a.addTransition(cur, Transition{Kind: TransLiteral, Segment: s.Value, Target: next})
			minSegments++
			maxSegments++

		case GlobstarSegment:
			a.addTransition(cur, Transition{Kind: TransGlobstar, SelfLoop: cur, Exit: next})
			unbounded = true
			// The globstar's own state doesn't advance; don't consume the
			// freshly-allocated "next" id as a dead end — it simply becomes
			// the following segment's origin.

		case WildcardSegment, CharclassSegment, CompositeSegment:
			matcher := NewRegexMatcher(ToRegex(seg), regexSourceOf(seg))
			a.addTransition(cur, Transition{Kind: TransWildcard, Matcher: matcher, Target: next})
			minSegments++
			maxSegments++
		}
		cur = next
		_ = i
	}

	var max *int
	if !unbounded {
		m := maxSegments
		max = &m
	}
	return buildResult{start: start, end: cur, minSegments: minSegments, maxSegments: max}
}

func buildAlternation(a *SegmentAutomaton, alt AlternationNode) buildResult {
	altStart := a.addState()
	altAccept := a.addState()

	minSegments := -1
	var maxSegments *int
	unbounded := false

	for _, branch := range alt.Branches {
		res := buildNode(a, branch)
		a.addTransition(altStart, Transition{Kind: TransEpsilon, Target: res.start})
		a.addTransition(res.end, Transition{Kind: TransEpsilon, Target: altAccept})

		if minSegments < 0 || res.minSegments < minSegments {
			minSegments = res.minSegments
		}
		if res.maxSegments == nil {
			unbounded = true
		} else if maxSegments == nil || *res.maxSegments > *maxSegments {
			m := *res.maxSegments
			maxSegments = &m
		}
	}
	if minSegments < 0 {
		minSegments = 0
	}
	if unbounded {
		maxSegments = nil
	}
	return buildResult{start: altStart, end: altAccept, minSegments: minSegments, maxSegments: maxSegments}
}

// regexSourceOf returns the anchored regex source text for a segment node,
// used as the SegmentMatcher's source tag (alphabet identity in C5).
func regexSourceOf(seg SegmentNode) string {
	re := ToRegex(seg)
	if re == nil {
		return ""
	}
	return re.String()
}
