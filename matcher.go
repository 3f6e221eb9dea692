package patalg

import "strings"

// stateSet is a set of automaton state IDs.
type stateSet map[int]struct{}

func singletonSet(id int) stateSet { return stateSet{id: {}} }

// epsilonClosure extends a state set with every state reachable without
// consuming a segment: Epsilon.Target and Globstar.Exit (a globstar may
// match zero segments).
func epsilonClosure(a *SegmentAutomaton, set stateSet) stateSet {
	closure := make(stateSet, len(set))
	queue := make([]int, 0, len(set))
	for id := range set {
		closure[id] = struct{}{}
		queue = append(queue, id)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, t := range a.States[id].Out {
			var target int
			switch t.Kind {
			case TransEpsilon:
				target = t.Target
			case TransGlobstar:
				target = t.Exit
			default:
				continue
			}
			if _, ok := closure[target]; !ok {
				closure[target] = struct{}{}
				queue = append(queue, target)
			}
		}
	}
	return closure
}

// stepNFA computes, for every state in the current set, the set of states
// reachable by consuming one input segment (not yet epsilon-closed).
func stepNFA(a *SegmentAutomaton, set stateSet, segment string) stateSet {
	next := make(stateSet)
	for id := range set {
		for _, t := range a.States[id].Out {
			switch t.Kind {
			case TransLiteral:
				if t.Segment == segment {
					next[t.Target] = struct{}{}
				}
			case TransWildcard:
				if t.Matcher.Match(segment) {
					next[t.Target] = struct{}{}
				}
			case TransGlobstar:
				next[t.SelfLoop] = struct{}{}
			case TransEpsilon:
				// never fires on input
			}
		}
	}
	return next
}

// stepDFA computes the next state set under the DFA-mode priority rule
// (§4.3): for each current state, try Literal, then Wildcard, then
// Globstar, and take only the first that fires. This ordering is what makes
// a determinizer-inserted catch-all sink invisible whenever a more specific
// transition exists, which is required for complement to be correct.
func stepDFA(a *SegmentAutomaton, set stateSet, segment string) stateSet {
	next := make(stateSet)
	for id := range set {
		out := a.States[id].Out
		fired := false
		for _, t := range out {
			if t.Kind == TransLiteral && t.Segment == segment {
				next[t.Target] = struct{}{}
				fired = true
				break
			}
		}
		if fired {
			continue
		}
		for _, t := range out {
			if t.Kind == TransWildcard && t.Matcher.Match(segment) {
				next[t.Target] = struct{}{}
				fired = true
				break
			}
		}
		if fired {
			continue
		}
		for _, t := range out {
			if t.Kind == TransGlobstar {
				next[t.SelfLoop] = struct{}{}
				break
			}
		}
	}
	return next
}

// MatchSegments simulates an automaton over a pre-split segment list,
// applying DFA-mode priority when a.IsDeterministic.
func MatchSegments(a *SegmentAutomaton, segments []string) bool {
	set := epsilonClosure(a, singletonSet(a.Initial))
	for _, seg := range segments {
		if len(set) == 0 {
			return false
		}
		var next stateSet
		if a.IsDeterministic {
			next = stepDFA(a, set, seg)
		} else {
			next = stepNFA(a, set, seg)
		}
		set = epsilonClosure(a, next)
	}
	for id := range set {
		if a.States[id].Accepting {
			return true
		}
	}
	return false
}

// SplitSegments splits a normalized absolute path into segments, dropping
// empty segments and the leading slash, per §4.3.
func SplitSegments(path string) []string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Matches reports whether path matches compiled, applying the quick-reject
// filter, the min/max segment-count bounds, automaton simulation, and
// finally the outer negation flip (§4.3).
func Matches(path string, compiled *CompiledPattern) bool {
	result := matchesPositive(path, compiled)
	if compiled.IsNegation {
		return !result
	}
	return result
}

func matchesPositive(path string, compiled *CompiledPattern) bool {
	if compiled.QuickReject.Reject(path) {
		return false
	}
	segments := SplitSegments(path)
	if len(segments) < compiled.MinSegments {
		return false
	}
	if compiled.MaxSegments != nil && len(segments) > *compiled.MaxSegments {
		return false
	}
	return MatchSegments(compiled.Automaton, segments)
}
