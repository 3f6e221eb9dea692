package patalg

import "testing"

func TestCheckContainmentEqual(t *testing.T) {
	a := MustCompile("/a/*.go")
	b := MustCompile("/a/*.go")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelEqual {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelEqual)
	}
	if string(res.Relationship) != "equal" {
		t.Errorf("Relationship = %q, want the literal token %q", res.Relationship, "equal")
	}
	if !res.IsSubset || !res.IsSuperset || !res.IsEqual {
		t.Errorf("IsSubset/IsSuperset/IsEqual = %v/%v/%v, want all true", res.IsSubset, res.IsSuperset, res.IsEqual)
	}
}

func TestCheckContainmentSubset(t *testing.T) {
	a := MustCompile("/src/main.go")
	b := MustCompile("/src/*.go")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelSubset {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelSubset)
	}
	if string(res.Relationship) != "subset" {
		t.Errorf("Relationship = %q, want the literal token %q", res.Relationship, "subset")
	}
	if !res.IsSubset || res.IsSuperset || res.IsEqual {
		t.Errorf("IsSubset/IsSuperset/IsEqual = %v/%v/%v, want true/false/false", res.IsSubset, res.IsSuperset, res.IsEqual)
	}
	if res.ReverseCounterexample == nil {
		t.Error("ReverseCounterexample = nil, want a witness showing b is strictly larger than a")
	}
	if len(res.Explanation.FailureReasons) == 0 {
		t.Error("Explanation.FailureReasons is empty, want at least one reason why a is not a superset of b")
	}
}

func TestCheckContainmentSuperset(t *testing.T) {
	a := MustCompile("/src/*.go")
	b := MustCompile("/src/main.go")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelSuperset {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelSuperset)
	}
	if string(res.Relationship) != "superset" {
		t.Errorf("Relationship = %q, want the literal token %q", res.Relationship, "superset")
	}
	if res.Counterexample == nil {
		t.Error("Counterexample = nil, want a witness showing a is strictly larger than b")
	}
	if len(res.Explanation.SegmentComparisons) == 0 {
		t.Error("Explanation.SegmentComparisons is empty, want a comparison for both freshly-parsed sequence patterns")
	}
}

func TestCheckContainmentOverlap(t *testing.T) {
	a := MustCompile("/src/*.go")
	b := MustCompile("/*/main.go")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelOverlap {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelOverlap)
	}
	if string(res.Relationship) != "overlapping" {
		t.Errorf("Relationship = %q, want the literal token %q", res.Relationship, "overlapping")
	}
	if res.IsSubset || res.IsSuperset || res.IsEqual || !res.HasOverlap {
		t.Errorf("IsSubset/IsSuperset/IsEqual/HasOverlap = %v/%v/%v/%v, want false/false/false/true", res.IsSubset, res.IsSuperset, res.IsEqual, res.HasOverlap)
	}
	if res.OverlapExample == nil {
		t.Error("OverlapExample = nil, want a witness for the shared path")
	}
	foundShared := false
	for _, w := range res.Explanation.Witnesses {
		if w.Kind == WitnessShared {
			foundShared = true
		}
	}
	if !foundShared {
		t.Errorf("Explanation.Witnesses = %v, want a %q witness", res.Explanation.Witnesses, WitnessShared)
	}
}

func TestCheckContainmentDisjoint(t *testing.T) {
	a := MustCompile("/src/**")
	b := MustCompile("/docs/**")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelDisjoint {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelDisjoint)
	}
	if string(res.Relationship) != "disjoint" {
		t.Errorf("Relationship = %q, want the literal token %q", res.Relationship, "disjoint")
	}
	if res.IsSubset || res.IsSuperset || res.IsEqual || res.HasOverlap {
		t.Errorf("IsSubset/IsSuperset/IsEqual/HasOverlap = %v/%v/%v/%v, want all false", res.IsSubset, res.IsSuperset, res.IsEqual, res.HasOverlap)
	}
}

func TestCheckContainmentDisjointWildcardExtensions(t *testing.T) {
	a := MustCompile("**/*.ts")
	b := MustCompile("**/*.js")
	res, err := CheckContainment(a, b)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelDisjoint {
		t.Errorf("Relationship = %s, want %s", res.Relationship, RelDisjoint)
	}
	if res.IsSubset || res.IsSuperset || res.IsEqual || res.HasOverlap {
		t.Errorf("IsSubset/IsSuperset/IsEqual/HasOverlap = %v/%v/%v/%v, want all false", res.IsSubset, res.IsSuperset, res.IsEqual, res.HasOverlap)
	}
	if res.OverlapExample != nil {
		t.Errorf("OverlapExample = %v, want nil: no path can end in both .ts and .js", *res.OverlapExample)
	}
}

func TestContainsEqualsOverlaps(t *testing.T) {
	superset := MustCompile("/src/**")
	subset := MustCompile("/src/main.go")

	if ok, err := Contains(superset, subset); err != nil || !ok {
		t.Errorf("Contains(superset, subset) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := Contains(subset, superset); err != nil || ok {
		t.Errorf("Contains(subset, superset) = %v, %v, want false, nil", ok, err)
	}
	if ok, err := Equals(superset, MustCompile("/src/**")); err != nil || !ok {
		t.Errorf("Equals(superset, superset) = %v, %v, want true, nil", ok, err)
	}
	if ok, err := Overlaps(superset, subset); err != nil || !ok {
		t.Errorf("Overlaps(superset, subset) = %v, %v, want true, nil", ok, err)
	}
	disjoint := MustCompile("/docs/**")
	if ok, err := Overlaps(superset, disjoint); err != nil || ok {
		t.Errorf("Overlaps(superset, disjoint) = %v, %v, want false, nil", ok, err)
	}
}

func TestCheckContainmentWithNegation(t *testing.T) {
	all := MustCompile("/**")
	notSecret := MustCompile("!/secret/**")
	res, err := CheckContainment(notSecret, all)
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Relationship != RelSubset {
		t.Errorf("Relationship = %s, want %s (everything except /secret/** is still a subset of everything)", res.Relationship, RelSubset)
	}
}

func TestCheckContainmentSegmentComparisonsNilForSynthesizedPatterns(t *testing.T) {
	union, err := Union(MustCompile("/a/**"), MustCompile("/b/**"))
	if err != nil {
		t.Fatalf("Union error = %v", err)
	}
	res, err := CheckContainment(union, MustCompile("/**"))
	if err != nil {
		t.Fatalf("CheckContainment error = %v", err)
	}
	if res.Explanation.SegmentComparisons != nil {
		t.Errorf("Explanation.SegmentComparisons = %v, want nil (union has no segment AST to compare)", res.Explanation.SegmentComparisons)
	}
	if res.Explanation.Summary == "" {
		t.Error("Explanation.Summary is empty even without a segment comparison")
	}
}
