package patalg

import "testing"

func TestSamplePathsMatchTheirOwnAutomaton(t *testing.T) {
	c := MustCompile("/src/**/*.go")
	samples := SamplePaths(c.Automaton, 5)
	if len(samples) == 0 {
		t.Fatal("SamplePaths returned no samples for a non-empty pattern")
	}
	for _, p := range samples {
		if !c.Matches(p) {
			t.Errorf("SamplePaths produced %q which Compile(%q).Matches rejects", p, c.Source)
		}
	}
}

func TestSamplePathsRespectsMaxSamples(t *testing.T) {
	c := MustCompile("/{a,b,c,d,e}/{a,b,c,d,e}")
	samples := SamplePaths(c.Automaton, 3)
	if len(samples) > 3 {
		t.Errorf("len(SamplePaths(..., 3)) = %d, want <= 3", len(samples))
	}
}

func TestSamplePathsEmptyAutomaton(t *testing.T) {
	a := MustCompile("/a/**")
	b := MustCompile("/b/**")
	empty, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect error = %v", err)
	}
	if samples := SamplePaths(empty.Automaton, 5); len(samples) != 0 {
		t.Errorf("SamplePaths(empty automaton) = %v, want none", samples)
	}
}

func TestSamplePathsVariesGlobstarLength(t *testing.T) {
	c := MustCompile("/a/**/z")
	samples := SamplePaths(c.Automaton, 10)
	lengths := map[int]bool{}
	for _, p := range samples {
		lengths[len(SplitSegments(p))] = true
	}
	if len(lengths) < 2 {
		t.Errorf("SamplePaths(/a/**/z) produced only one distinct length, want samples of more than one globstar expansion depth: %v", samples)
	}
}
