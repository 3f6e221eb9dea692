package patalg

import (
	"sort"
	"strconv"
	"strings"
)

// Determinize runs subset construction over an NFA built by BuildAutomaton
// (or synthesized by the algebra operations in product.go/complement.go),
// producing a complete DFA: every state has exactly one transition that
// fires for any given segment, guaranteed by the completion pass at the end.
// Completeness is what lets Complement simply flip every Accepting bit.
func Determinize(nfa *SegmentAutomaton, opts DeterminizeOptions) (*SegmentAutomaton, error) {
	literals, wildcardTags, repr := collectAlphabet(nfa)

	dfa := newAutomaton()
	dfa.IsDeterministic = true

	setKey := func(set stateSet) string {
		ids := make([]int, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		return strings.Join(parts, ",")
	}

	seen := make(map[string]int) // subset key -> dfa state id
	var sets []stateSet          // indexed by dfa state id

	// addState returns the dfa state id for set (reusing one if this exact
	// subset has been seen before), whether it was newly created, and
	// whether creating it pushed the automaton past opts.MaxStates.
	addState := func(set stateSet) (id int, isNew bool, overLimit bool) {
		key := setKey(set)
		if id, ok := seen[key]; ok {
			return id, false, false
		}
		id = dfa.addState()
		seen[key] = id
		sets = append(sets, set)
		return id, true, len(dfa.States) > opts.MaxStates
	}

	startSet := epsilonClosure(nfa, singletonSet(nfa.Initial))
	startID, _, overLimit := addState(startSet)
	if overLimit {
		return nil, &LimitError{Code: ErrDFAStateLimit, Limit: opts.MaxStates, Actual: len(dfa.States)}
	}
	dfa.Initial = startID

	worklist := []int{startID}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		set := sets[id]

		for _, lit := range literals {
			moved := moveOnLiteral(nfa, set, lit)
			if len(moved) == 0 {
				continue
			}
			target, isNew, full := addState(epsilonClosure(nfa, moved))
			if full {
				return nil, &LimitError{Code: ErrDFAStateLimit, Limit: opts.MaxStates, Actual: len(dfa.States)}
			}
			if isNew {
				worklist = append(worklist, target)
			}
			dfa.addTransition(id, Transition{Kind: TransLiteral, Segment: lit, Target: target})
		}

		for _, tag := range wildcardTags {
			moved := moveOnWildcardTag(nfa, set, tag)
			if len(moved) == 0 {
				continue
			}
			target, isNew, full := addState(epsilonClosure(nfa, moved))
			if full {
				return nil, &LimitError{Code: ErrDFAStateLimit, Limit: opts.MaxStates, Actual: len(dfa.States)}
			}
			if isNew {
				worklist = append(worklist, target)
			}
			dfa.addTransition(id, Transition{Kind: TransWildcard, Matcher: repr[tag], Target: target})
		}

		moved := moveOnAny(nfa, set)
		if len(moved) > 0 {
			target, isNew, full := addState(epsilonClosure(nfa, moved))
			if full {
				return nil, &LimitError{Code: ErrDFAStateLimit, Limit: opts.MaxStates, Actual: len(dfa.States)}
			}
			if isNew {
				worklist = append(worklist, target)
			}
			dfa.addTransition(id, Transition{Kind: TransWildcard, Matcher: theUniversalMatcher, Target: target})
		}
	}

	for id, set := range sets {
		accepting := false
		for nfaID := range set {
			if nfa.States[nfaID].Accepting {
				accepting = true
				break
			}
		}
		dfa.States[id].Accepting = accepting
	}
	dfa.recomputeAccepting()

	completeDFA(dfa)
	return dfa, nil
}

// collectAlphabet gathers the distinct literal segment strings and distinct
// wildcard tags used anywhere in the NFA, plus one representative matcher
// per wildcard tag. The "any" symbol (segments matched by no listed literal
// or wildcard) is handled separately by moveOnAny — it has no alphabet
// entry of its own, and neither has the universal matcher (tag "*") that
// fires on it.
func collectAlphabet(nfa *SegmentAutomaton) (literals, wildcardTags []string, repr map[string]SegmentMatcher) {
	litSet := make(map[string]struct{})
	repr = make(map[string]SegmentMatcher)
	for _, s := range nfa.States {
		for _, t := range s.Out {
			switch t.Kind {
			case TransLiteral:
				litSet[t.Segment] = struct{}{}
			case TransWildcard:
				tag := t.Matcher.Tag()
				if tag == "*" {
					continue
				}
				if _, ok := repr[tag]; !ok {
					repr[tag] = t.Matcher
				}
			}
		}
	}
	for lit := range litSet {
		literals = append(literals, lit)
	}
	sort.Strings(literals)
	for tag := range repr {
		wildcardTags = append(wildcardTags, tag)
	}
	sort.Strings(wildcardTags)
	return literals, wildcardTags, repr
}

// moveOnLiteral computes the NFA states reachable from set by consuming the
// concrete segment lit: literal transitions with a matching segment,
// wildcard transitions whose matcher actually accepts lit, and every
// globstar self-loop.
func moveOnLiteral(nfa *SegmentAutomaton, set stateSet, lit string) stateSet {
	next := make(stateSet)
	for id := range set {
		for _, t := range nfa.States[id].Out {
			switch t.Kind {
			case TransLiteral:
				if t.Segment == lit {
					next[t.Target] = struct{}{}
				}
			case TransWildcard:
				if t.Matcher.Match(lit) {
					next[t.Target] = struct{}{}
				}
			case TransGlobstar:
				next[t.SelfLoop] = struct{}{}
			}
		}
	}
	return next
}

// moveOnWildcardTag computes the NFA states reachable from set on the
// symbol representing "some segment this wildcard tag matches": only
// same-tag wildcard transitions, universal (tag "*") wildcard transitions
// and globstar self-loops fire. This is a
// deliberate approximation (spec.md's Non-goals license it): it never
// cross-checks against literal strings or other wildcard tags, so the
// resulting DFA may accept a strict superset of segments that move on this
// symbol in the exact sense, never a subset.
func moveOnWildcardTag(nfa *SegmentAutomaton, set stateSet, tag string) stateSet {
	next := make(stateSet)
	for id := range set {
		for _, t := range nfa.States[id].Out {
			switch t.Kind {
			case TransWildcard:
				if t.Matcher.Tag() == tag || t.Matcher.Tag() == "*" {
					next[t.Target] = struct{}{}
				}
			case TransGlobstar:
				next[t.SelfLoop] = struct{}{}
			}
		}
	}
	return next
}

// moveOnAny computes the NFA states reachable on a segment matched by
// nothing but a globstar self-loop or a universal (tag "*") wildcard
// transition.
func moveOnAny(nfa *SegmentAutomaton, set stateSet) stateSet {
	next := make(stateSet)
	for id := range set {
		for _, t := range nfa.States[id].Out {
			switch {
			case t.Kind == TransGlobstar:
				next[t.SelfLoop] = struct{}{}
			case t.Kind == TransWildcard && t.Matcher.Tag() == "*":
				next[t.Target] = struct{}{}
			}
		}
	}
	return next
}

// completeDFA ensures every state has a transition that fires for any
// segment: a state that already has a Wildcard transition tagged "*" (from
// moveOnAny finding a live globstar self-loop or universal transition) is
// already complete;
// everything else gets a sink-directed catch-all appended after its real
// transitions, so specific literal/wildcard matches are still tried first.
func completeDFA(dfa *SegmentAutomaton) {
	hasCatchAll := func(s *State) bool {
		for _, t := range s.Out {
			if t.Kind == TransWildcard && t.Matcher.Tag() == "*" {
				return true
			}
		}
		return false
	}

	needsSink := false
	for _, s := range dfa.States {
		if !hasCatchAll(s) {
			needsSink = true
			break
		}
	}
	if !needsSink {
		return
	}

	sink := dfa.addState()
	dfa.addTransition(sink, Transition{Kind: TransWildcard, Matcher: theUniversalMatcher, Target: sink})

	for _, s := range dfa.States {
		if s.ID == sink || hasCatchAll(s) {
			continue
		}
		dfa.addTransition(s.ID, Transition{Kind: TransWildcard, Matcher: theUniversalMatcher, Target: sink})
	}
}
