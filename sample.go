package patalg

import (
	"fmt"
	"strings"
)

// SamplePaths explores an automaton breadth-first and returns up to
// maxSamples distinct paths it accepts, synthesizing concrete segments for
// wildcard edges with synthesizeForMatcher and taking a globstar's
// self-loop, or a determinized automaton's universal (tag "*") edge, a
// bounded number of times so samples of more than one length get
// generated. It is a generator for examples, not a decision procedure —
// containment.go uses it only to sanity-check the automaton-based
// relationship it computes.
func SamplePaths(a *SegmentAutomaton, maxSamples int) []string {
	const maxGlobstarRepeat = 3
	const workBudget = 500

	type item struct {
		state        int
		path         []string
		globstarUses int
	}

	var results []string
	seenPaths := make(map[string]bool)
	seenStates := make(map[[2]int]bool)

	var queue []item
	for id := range epsilonClosure(a, singletonSet(a.Initial)) {
		queue = append(queue, item{state: id})
	}

	work := 0
	for len(queue) > 0 && len(results) < maxSamples && work < workBudget {
		it := queue[0]
		queue = queue[1:]
		work++

		key := [2]int{it.state, it.globstarUses}
		if seenStates[key] {
			continue
		}
		seenStates[key] = true

		if a.States[it.state].Accepting {
			p := "/" + strings.Join(it.path, "/")
			if !seenPaths[p] {
				seenPaths[p] = true
				results = append(results, p)
			}
		}

		for _, t := range a.States[it.state].Out {
			switch t.Kind {
			case TransLiteral:
				next := append(append([]string(nil), it.path...), t.Segment)
				for id := range epsilonClosure(a, singletonSet(t.Target)) {
					queue = append(queue, item{state: id, path: next, globstarUses: it.globstarUses})
				}

			case TransWildcard:
				uses := it.globstarUses
				var seg string
				if t.Matcher.Tag() == "*" {
					if uses >= maxGlobstarRepeat {
						continue
					}
					seg = fmt.Sprintf("dir%d", uses)
					uses++
				} else {
					s, ok := synthesizeForMatcher(t.Matcher)
					if !ok {
						continue
					}
					seg = s
				}
				next := append(append([]string(nil), it.path...), seg)
				for id := range epsilonClosure(a, singletonSet(t.Target)) {
					queue = append(queue, item{state: id, path: next, globstarUses: uses})
				}

			case TransGlobstar:
				for id := range epsilonClosure(a, singletonSet(t.Exit)) {
					queue = append(queue, item{state: id, path: it.path, globstarUses: it.globstarUses})
				}
				if it.globstarUses < maxGlobstarRepeat {
					seg := fmt.Sprintf("dir%d", it.globstarUses)
					next := append(append([]string(nil), it.path...), seg)
					queue = append(queue, item{state: t.SelfLoop, path: next, globstarUses: it.globstarUses + 1})
				}
			}
		}
	}
	return results
}
