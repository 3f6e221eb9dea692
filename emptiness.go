package patalg

import "strings"

// IsEmpty reports whether a accepts no input at all: no accepting state is
// reachable from the initial state via any transition (C8).
func IsEmpty(a *SegmentAutomaton) bool {
	reachable := reachableStates(a, a.Initial)
	for _, id := range a.AcceptingStates {
		if reachable[id] {
			return false
		}
	}
	return true
}

// synthesisCandidates are representative concrete segment strings tried
// against a wildcard matcher when a witness path needs to cross it. They
// are deliberately varied (extension, dashed, plain) to have a decent
// chance of satisfying whatever the matcher actually is.
var synthesisCandidates = []string{"file0.ts", "file0.js", "test-0", "match0", "a"}

// synthesizeForMatcher returns the first synthesisCandidate the matcher
// accepts or, failing that, a segment derived from the matcher's tag (its
// regex source with anchors and backslashes dropped and each ".*" replaced
// by "x") when the matcher accepts that.
func synthesizeForMatcher(m SegmentMatcher) (string, bool) {
	for _, c := range synthesisCandidates {
		if m.Match(c) {
			return c, true
		}
	}
	fromTag := strings.NewReplacer(`\`, "", ".*", "x", "^", "", "$", "").Replace(m.Tag())
	if fromTag != "" && m.Match(fromTag) {
		return fromTag, true
	}
	return "", false
}

// FindWitness returns a sample path that a accepts, or nil if a is empty.
// It performs a breadth-first search over the automaton, synthesizing
// concrete segments for wildcard edges with synthesizeForMatcher and taking
// a globstar only via its zero-segment Exit (never its SelfLoop) — enough
// to prove non-emptiness, though not to explore every shape of accepted
// path; that richer sampling is sample.go's job.
//
// A candidate path is never returned on the strength of graph reachability
// alone: productIntersect (C6) can leave a structurally-reachable accepting
// state behind a wildcard transition whose combined matcher (an andMatcher
// from two different-tagged wildcards) no real segment actually satisfies —
// reachability sees the edge, not the predicate behind it. Per spec.md §9's
// witness-verification guidance, every candidate is re-run through
// MatchSegments — an independent simulation that does evaluate each
// transition's matcher — before being trusted; a candidate that fails
// verification is discarded and the search continues rather than returning
// a false witness.
func FindWitness(a *SegmentAutomaton) *string {
	type item struct {
		state int
		path  []string
	}

	visited := make(map[int]bool)
	start := epsilonClosure(a, singletonSet(a.Initial))
	queue := make([]item, 0, len(start))
	for id := range start {
		if !visited[id] {
			visited[id] = true
			queue = append(queue, item{state: id, path: nil})
		}
	}

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if a.States[it.state].Accepting {
			if MatchSegments(a, it.path) {
				witness := "/" + strings.Join(it.path, "/")
				return &witness
			}
		}
		for _, t := range a.States[it.state].Out {
			var seg string
			switch t.Kind {
			case TransLiteral:
				seg = t.Segment
			case TransWildcard:
				s, ok := synthesizeForMatcher(t.Matcher)
				if !ok {
					continue
				}
				seg = s
			default:
				continue
			}
			target := t.Target
			nextPath := append(append([]string(nil), it.path...), seg)
			for id := range epsilonClosure(a, singletonSet(target)) {
				if !visited[id] {
					visited[id] = true
					queue = append(queue, item{state: id, path: nextPath})
				}
			}
		}
	}
	return nil
}

// CountPaths gives a cheap, approximate sense of how an automaton's
// accepted language is distributed by length: for each depth from 0 to
// maxDepth, the number of distinct automaton states reachable at exactly
// that many consumed segments that are accepting. It counts reachable
// accepting *states*, not distinct accepted strings — with wildcard
// transitions collapsing infinitely many strings into one edge, an exact
// string count has no finite closed form, so this is a structural proxy
// rather than a literal path count.
func CountPaths(a *SegmentAutomaton, maxDepth int) map[int]int {
	literals, wildcardTags, _ := collectAlphabet(a)

	counts := make(map[int]int)
	current := epsilonClosure(a, singletonSet(a.Initial))
	for d := 0; d <= maxDepth; d++ {
		n := 0
		for id := range current {
			if a.States[id].Accepting {
				n++
			}
		}
		counts[d] = n
		if d == maxDepth {
			break
		}

		next := make(stateSet)
		for _, lit := range literals {
			for id := range epsilonClosure(a, moveOnLiteral(a, current, lit)) {
				next[id] = struct{}{}
			}
		}
		for _, tag := range wildcardTags {
			for id := range epsilonClosure(a, moveOnWildcardTag(a, current, tag)) {
				next[id] = struct{}{}
			}
		}
		for id := range epsilonClosure(a, moveOnAny(a, current)) {
			next[id] = struct{}{}
		}
		current = next
	}
	return counts
}

// reachableStates returns every state reachable from start via any edge
// (epsilon, literal, wildcard, or globstar).
func reachableStates(a *SegmentAutomaton, start int) map[int]bool {
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, t := range a.States[u].Out {
			var targets []int
			switch t.Kind {
			case TransLiteral, TransWildcard, TransEpsilon:
				targets = []int{t.Target}
			case TransGlobstar:
				targets = []int{t.SelfLoop, t.Exit}
			}
			for _, v := range targets {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}
	return seen
}
