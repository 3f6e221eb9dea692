package patalg

import "strings"

// Relationship names how two patterns' matching sets relate, using the
// exact lowercase tokens external callers compare against.
type Relationship string

const (
	RelEqual    Relationship = "equal"
	RelSubset   Relationship = "subset"   // a ⊆ b, a ≠ b
	RelSuperset Relationship = "superset" // a ⊇ b, a ≠ b
	RelOverlap  Relationship = "overlapping"
	RelDisjoint Relationship = "disjoint"
)

// WitnessKind categorizes a sample path attached to a ContainmentResult.
type WitnessKind string

const (
	WitnessCounterexample        WitnessKind = "counterexample"
	WitnessReverseCounterexample WitnessKind = "reverse_counterexample"
	WitnessShared                WitnessKind = "shared"
)

// Witness is one categorized sample path backing a containment verdict.
type Witness struct {
	Path string
	Kind WitnessKind
}

// SegmentConstraint describes what one side requires at one segment
// position, for the segment-by-segment comparison in Explanation.
type SegmentConstraint struct {
	Position    int
	Description string
}

// SegmentComparison compares what a and b each require at one segment
// position and whether a's requirement is a subset of b's there.
type SegmentComparison struct {
	Position   int
	A          SegmentConstraint
	B          SegmentConstraint
	ASubsetOfB bool
	Difference string
}

// Explanation is the structured breakdown behind a ContainmentResult:
// why containment held or failed, segment-by-segment, plus the witnesses
// that back the verdict.
type Explanation struct {
	Summary            string
	FailureReasons     []string
	SegmentComparisons []SegmentComparison
	Witnesses          []Witness
}

// ContainmentResult is the outcome of CheckContainment: the four boolean
// facets spec.md §4.8 requires, the derived Relationship, counterexamples
// for each direction, and a structured Explanation.
type ContainmentResult struct {
	Relationship Relationship
	IsSubset     bool
	IsSuperset   bool
	IsEqual      bool
	HasOverlap   bool

	// Counterexample is a path a matches that b does not (nil if IsSubset).
	Counterexample *string
	// ReverseCounterexample is a path b matches that a does not (nil if IsSuperset).
	ReverseCounterexample *string
	OverlapExample        *string

	ApproximationWarning bool
	Explanation          Explanation
}

// CheckContainment decides how a and b's matching sets relate (C9).
//
// a ⊆ b iff a ∩ ¬b has no verified witness, computed via real automaton
// intersection, complement, and a witness search that re-checks every
// candidate against MatchSegments (see FindWitness) rather than trusting
// raw graph reachability. Raw reachability alone is unsound here: a product
// automaton can contain a structurally-reachable accepting state behind a
// wildcard edge whose combined predicate (two different-tagged wildcards
// ANDed together) no real segment satisfies, which is exactly spec.md §8's
// binding `"**/*.ts"` vs `"**/*.js"` scenario. The remaining source of
// unsoundness is determinize.go's wildcard-tag approximation (a wildcard
// alphabet symbol's move set is keyed only by tag, not cross-checked
// against other wildcards or literals), which can make an automaton accept
// a superset of its true language. That only ever pushes a relationship
// toward subset/equal/overlapping and away from disjoint, which is why
// sample cross-checking below only ever raises ApproximationWarning, never
// silently "fixes" the relationship — a concrete contradicting path is
// reported so the caller can decide how much to trust the verdict.
func CheckContainment(a, b *CompiledPattern) (*ContainmentResult, error) {
	notA, err := Complement(a)
	if err != nil {
		return nil, err
	}
	notB, err := Complement(b)
	if err != nil {
		return nil, err
	}
	aMinusB, err := Intersect(a, notB)
	if err != nil {
		return nil, err
	}
	bMinusA, err := Intersect(b, notA)
	if err != nil {
		return nil, err
	}
	overlap, err := Intersect(a, b)
	if err != nil {
		return nil, err
	}

	// IsEmpty alone is not trustworthy here: productIntersect (C6) can leave
	// a structurally-reachable accepting state behind a wildcard transition
	// whose combined matcher no real segment satisfies (e.g. intersecting
	// "**/*.ts" with "**/*.js" — the andMatcher edge exists in the graph,
	// but ".ts" XOR ".js" means nothing ever crosses it). FindWitness
	// re-verifies every candidate against MatchSegments before returning
	// it, so "no witness found" is the authoritative signal for emptiness
	// here, not raw graph reachability.
	aNotB := FindWitness(aMinusB.Automaton)
	bNotA := FindWitness(bMinusA.Automaton)
	ov := FindWitness(overlap.Automaton)

	aSubsetB := aNotB == nil
	bSubsetA := bNotA == nil
	overlaps := ov != nil

	var rel Relationship
	switch {
	case aSubsetB && bSubsetA:
		rel = RelEqual
	case aSubsetB:
		rel = RelSubset
	case bSubsetA:
		rel = RelSuperset
	case overlaps:
		rel = RelOverlap
	default:
		rel = RelDisjoint
	}

	warning := sampleCrossCheck(a, b, aSubsetB, bSubsetA)

	return &ContainmentResult{
		Relationship:          rel,
		IsSubset:              aSubsetB,
		IsSuperset:            bSubsetA,
		IsEqual:               aSubsetB && bSubsetA,
		HasOverlap:            overlaps,
		Counterexample:        aNotB,
		ReverseCounterexample: bNotA,
		OverlapExample:        ov,
		ApproximationWarning:  warning,
		Explanation:           explainContainment(rel, a, b, aSubsetB, bSubsetA, aNotB, bNotA, ov),
	}, nil
}

// sampleCrossCheck draws concrete samples from each automaton and checks
// them against the other CompiledPattern's full Matches (quick-reject,
// bounds, and DFA simulation together — not just the raw automaton), which
// exercises strictly more of the matching path than the automaton-only
// emptiness check above. A contradiction here means the automaton-derived
// relationship is only a best-effort hint.
func sampleCrossCheck(a, b *CompiledPattern, aSubsetB, bSubsetA bool) bool {
	if aSubsetB {
		for _, p := range SamplePaths(a.Automaton, 8) {
			if !Matches(p, b) {
				return true
			}
		}
	}
	if bSubsetA {
		for _, p := range SamplePaths(b.Automaton, 8) {
			if !Matches(p, a) {
				return true
			}
		}
	}
	return false
}

// explainContainment builds the structured Explanation: a one-line summary
// (spec.md §4.8's prose requirement), the failure reasons for whichever
// direction(s) actually failed, a best-effort segment-by-segment
// comparison, and the categorized witnesses.
func explainContainment(rel Relationship, a, b *CompiledPattern, aSubsetB, bSubsetA bool, aNotB, bNotA, overlapExample *string) Explanation {
	var summary string
	switch rel {
	case RelEqual:
		summary = "the two patterns match exactly the same set of paths"
	case RelSubset:
		summary = "every path the first pattern matches is also matched by the second"
	case RelSuperset:
		summary = "every path the second pattern matches is also matched by the first"
	case RelOverlap:
		summary = "the patterns match some but not all of the same paths"
		if overlapExample != nil {
			summary += "; for example " + *overlapExample + " matches both"
		}
	case RelDisjoint:
		summary = "the patterns share no matching paths"
	}

	var reasons []string
	if !aSubsetB {
		reasons = append(reasons, failureReasons(a, b, aNotB)...)
	}
	if !bSubsetA {
		reasons = append(reasons, failureReasons(b, a, bNotA)...)
	}

	var witnesses []Witness
	if aNotB != nil {
		witnesses = append(witnesses, Witness{Path: *aNotB, Kind: WitnessCounterexample})
	}
	if bNotA != nil {
		witnesses = append(witnesses, Witness{Path: *bNotA, Kind: WitnessReverseCounterexample})
	}
	if overlapExample != nil {
		witnesses = append(witnesses, Witness{Path: *overlapExample, Kind: WitnessShared})
	}

	return Explanation{
		Summary:            summary,
		FailureReasons:     reasons,
		SegmentComparisons: segmentComparisons(a, b),
		Witnesses:          witnesses,
	}
}

// failureReasons compares x against y's depth bounds, required
// prefix/suffix, and anchoring to explain why x is not a subset of y. If
// none of those structural facets differ but a counterexample still
// exists, the mismatch must be in the segment grammar itself rather than
// any of these coarse signals, so it is classified as "segment_mismatch"
// (spec.md §4.8 step 7).
func failureReasons(x, y *CompiledPattern, counterexample *string) []string {
	var reasons []string
	switch {
	case x.IsUnbounded && !y.IsUnbounded:
		reasons = append(reasons, "depth_mismatch: unbounded pattern cannot be a subset of a depth-bounded one")
	case !x.IsUnbounded && !y.IsUnbounded && y.MaxSegments != nil && x.MaxSegments != nil && *x.MaxSegments > *y.MaxSegments:
		reasons = append(reasons, "depth_mismatch: longer paths are allowed than the other pattern permits")
	case x.MinSegments < y.MinSegments:
		reasons = append(reasons, "depth_mismatch: shorter paths are allowed than the other pattern permits")
	}
	if y.QuickReject.RequiredPrefix != "" && !strings.HasPrefix(x.QuickReject.RequiredPrefix, y.QuickReject.RequiredPrefix) {
		reasons = append(reasons, "prefix_mismatch: required prefix does not satisfy the other pattern's")
	}
	if y.QuickReject.RequiredSuffix != "" && !strings.HasSuffix(x.QuickReject.RequiredSuffix, y.QuickReject.RequiredSuffix) {
		reasons = append(reasons, "suffix_mismatch: required suffix does not satisfy the other pattern's")
	}
	if x.AST != nil && y.AST != nil && x.AST.IsAbsolute != y.AST.IsAbsolute {
		reasons = append(reasons, "anchoring_mismatch: absolute/relative anchoring differs")
	}
	if len(reasons) == 0 && counterexample != nil {
		reasons = append(reasons, "segment_mismatch")
	}
	return reasons
}

// segmentComparisons builds a best-effort, position-by-position comparison
// of up to five segments. It only has something to say when both sides
// parsed down to a plain SequenceNode — synthesized patterns from
// Intersect/Union have no segment AST to walk (see bounds.go's
// equivalent caveat for why synthesized automata fall back to a different
// strategy), so this returns nil for those rather than guessing. A
// Complement keeps its operand's AST, so its operand's segments are compared.
func segmentComparisons(a, b *CompiledPattern) []SegmentComparison {
	if a.AST == nil || b.AST == nil {
		return nil
	}
	aSeq, ok := a.AST.Root.(SequenceNode)
	if !ok {
		return nil
	}
	bSeq, ok := b.AST.Root.(SequenceNode)
	if !ok {
		return nil
	}

	n := len(aSeq.Segments)
	if len(bSeq.Segments) > n {
		n = len(bSeq.Segments)
	}
	if n > 5 {
		n = 5
	}

	var out []SegmentComparison
	for i := 0; i < n; i++ {
		var aNode, bNode SegmentNode
		if i < len(aSeq.Segments) {
			aNode = aSeq.Segments[i]
		}
		if i < len(bSeq.Segments) {
			bNode = bSeq.Segments[i]
		}
		aSub, diff := segmentSubsetOf(aNode, bNode)
		out = append(out, SegmentComparison{
			Position:   i,
			A:          SegmentConstraint{Position: i, Description: describeSegment(aNode)},
			B:          SegmentConstraint{Position: i, Description: describeSegment(bNode)},
			ASubsetOfB: aSub,
			Difference: diff,
		})
	}
	return out
}

// segmentSubsetOf reports whether position-wise, a's segment language is
// provably a subset of b's. This is exact for the literal-vs-anything case
// (a concrete value either is or isn't accepted by b's node via
// MatchSegment) and otherwise falls back to structural equality — the same
// trade-off spec.md §4.8 makes for containment overall: sound in the
// direction that produces a concrete counterexample, approximate otherwise.
func segmentSubsetOf(a, b SegmentNode) (bool, string) {
	switch {
	case a == nil && b == nil:
		return true, ""
	case a == nil:
		return false, "first pattern has no segment here, second requires " + describeSegment(b)
	case b == nil:
		return false, "first pattern requires " + describeSegment(a) + ", second has no segment here"
	}
	if lit, ok := a.(LiteralSegment); ok {
		if MatchSegment(lit.Value, b) {
			return true, ""
		}
		return false, describeSegment(a) + " is not accepted by " + describeSegment(b)
	}
	if sameSegmentShape(a, b) {
		return true, ""
	}
	return false, describeSegment(a) + " is not structurally contained in " + describeSegment(b)
}

func sameSegmentShape(a, b SegmentNode) bool {
	switch x := a.(type) {
	case LiteralSegment:
		y, ok := b.(LiteralSegment)
		return ok && x.Value == y.Value
	case GlobstarSegment:
		_, ok := b.(GlobstarSegment)
		return ok
	default:
		return false
	}
}

func describeSegment(n SegmentNode) string {
	switch s := n.(type) {
	case nil:
		return "(absent)"
	case LiteralSegment:
		return "literal \"" + s.Value + "\""
	case GlobstarSegment:
		return "globstar (any depth)"
	case WildcardSegment:
		return "wildcard pattern"
	case CharclassSegment:
		return "character class"
	case CompositeSegment:
		return "composite pattern"
	default:
		return "unknown segment"
	}
}
