package patalg

// Bounds computes the minimum and maximum number of segments any path
// accepted by a can have, by walking the automaton's graph structure
// directly rather than the AST (AST-based bounds only exist for freshly
// Compile()'d patterns — synthesized automata from product.go/complement.go
// have no AST to walk). A nil maxSegments means unbounded.
//
// Literal/Wildcard transitions and a Globstar's SelfLoop consume one
// segment; Epsilon transitions and a Globstar's Exit consume none.
func Bounds(a *SegmentAutomaton) (minSegments int, maxSegments *int) {
	type edge struct {
		to     int
		weight int
	}
	adj := make([][]edge, len(a.States))
	for _, s := range a.States {
		for _, t := range s.Out {
			switch t.Kind {
			case TransLiteral, TransWildcard:
				adj[s.ID] = append(adj[s.ID], edge{to: t.Target, weight: 1})
			case TransEpsilon:
				adj[s.ID] = append(adj[s.ID], edge{to: t.Target, weight: 0})
			case TransGlobstar:
				adj[s.ID] = append(adj[s.ID], edge{to: t.SelfLoop, weight: 1})
				adj[s.ID] = append(adj[s.ID], edge{to: t.Exit, weight: 0})
			}
		}
	}

	// 0-1 BFS for the shortest (minimum-segment) accepting path.
	const unset = -1
	dist := make([]int, len(a.States))
	for i := range dist {
		dist[i] = unset
	}
	dist[a.Initial] = 0
	deque := []int{a.Initial}
	for len(deque) > 0 {
		u := deque[0]
		deque = deque[1:]
		for _, e := range adj[u] {
			nd := dist[u] + e.weight
			if dist[e.to] == unset || nd < dist[e.to] {
				dist[e.to] = nd
				if e.weight == 0 {
					deque = append([]int{e.to}, deque...)
				} else {
					deque = append(deque, e.to)
				}
			}
		}
	}
	minSet := false
	for _, id := range a.AcceptingStates {
		if dist[id] != unset && (!minSet || dist[id] < minSegments) {
			minSegments = dist[id]
			minSet = true
		}
	}

	// reachableFrom/reachesAccept restrict the unbounded check and the
	// longest-path DP to states on some initial-to-accepting path.
	reachableFrom := func(start int) map[int]bool {
		seen := map[int]bool{start: true}
		queue := []int{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, e := range adj[u] {
				if !seen[e.to] {
					seen[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
		return seen
	}

	reverse := make([][]int, len(a.States))
	for u, edges := range adj {
		for _, e := range edges {
			reverse[e.to] = append(reverse[e.to], u)
		}
	}
	reachesAccept := make(map[int]bool)
	queue := append([]int{}, a.AcceptingStates...)
	for _, id := range a.AcceptingStates {
		reachesAccept[id] = true
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, p := range reverse[u] {
			if !reachesAccept[p] {
				reachesAccept[p] = true
				queue = append(queue, p)
			}
		}
	}

	reachableFromInit := reachableFrom(a.Initial)
	useful := make(map[int]bool, len(a.States))
	for id := range reachableFromInit {
		if reachesAccept[id] {
			useful[id] = true
		}
	}

	unbounded := false
	for u := range useful {
		for _, e := range adj[u] {
			if e.weight == 1 && useful[e.to] && reachableFrom(e.to)[u] {
				unbounded = true
				break
			}
		}
		if unbounded {
			break
		}
	}
	if unbounded {
		return minSegments, nil
	}

	memo := make(map[int]int)
	onStack := make(map[int]bool)
	var longestFrom func(u int) int
	longestFrom = func(u int) int {
		if onStack[u] {
			return 0
		}
		if v, ok := memo[u]; ok {
			return v
		}
		onStack[u] = true
		best := -1
		if a.States[u].Accepting {
			best = 0
		}
		for _, e := range adj[u] {
			if !useful[e.to] {
				continue
			}
			sub := longestFrom(e.to)
			if sub >= 0 && sub+e.weight > best {
				best = sub + e.weight
			}
		}
		onStack[u] = false
		memo[u] = best
		return best
	}

	max := longestFrom(a.Initial)
	if max < 0 {
		max = 0
	}
	return minSegments, &max
}
