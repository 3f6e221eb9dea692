package patalg

import "sort"

// TransitionKind tags which of the four transition variants an edge is.
type TransitionKind int

const (
	TransLiteral TransitionKind = iota
	TransWildcard
	TransGlobstar
	TransEpsilon
)

// Transition is one outgoing edge from a State. The fields that are valid
// depend on Kind, following the closed tagged-union described in spec.md §3:
// Literal/Wildcard/Epsilon carry a single Target; Globstar carries SelfLoop
// (consumes one segment, stays put) and Exit (epsilon-like, zero segments).
type Transition struct {
	Kind TransitionKind

	// Literal
	Segment string

	// Wildcard
	Matcher SegmentMatcher

	// Globstar
	SelfLoop int
	Exit     int

	// Target is used by Literal, Wildcard, and Epsilon.
	Target int
}

// State is one vertex of a SegmentAutomaton. The ID is also the vertex's
// index into SegmentAutomaton.States.
type State struct {
	ID        int
	Out       []Transition
	Accepting bool
}

// SegmentAutomaton is a directed graph of States connected by Transitions,
// operating over the segment alphabet rather than characters.
type SegmentAutomaton struct {
	States          []*State
	Initial         int
	AcceptingStates []int
	IsDeterministic bool
}

// newAutomaton returns an automaton with no states yet.
func newAutomaton() *SegmentAutomaton {
	return &SegmentAutomaton{}
}

// addState appends a fresh, non-accepting state and returns its ID.
func (a *SegmentAutomaton) addState() int {
	id := len(a.States)
	a.States = append(a.States, &State{ID: id})
	return id
}

// addTransition appends t to the outgoing edge list of state id.
func (a *SegmentAutomaton) addTransition(id int, t Transition) {
	a.States[id].Out = append(a.States[id].Out, t)
}

// recomputeAccepting rebuilds AcceptingStates from each State's Accepting
// bit, so the two are never allowed to drift apart (spec.md §3 invariant).
func (a *SegmentAutomaton) recomputeAccepting() {
	ids := make([]int, 0, len(a.States))
	for _, s := range a.States {
		if s.Accepting {
			ids = append(ids, s.ID)
		}
	}
	sort.Ints(ids)
	a.AcceptingStates = ids
}

// setAccepting sets the Accepting bit on state id and keeps AcceptingStates
// in sync.
func (a *SegmentAutomaton) setAccepting(id int, accepting bool) {
	a.States[id].Accepting = accepting
	a.recomputeAccepting()
}

// SegmentMatcher tests one segment string against a compiled predicate.
// RegexMatcher, andMatcher, and universalMatcher are the concrete
// implementations used throughout C2/C5/C6.
type SegmentMatcher interface {
	Match(segment string) bool
	Tag() string
}
