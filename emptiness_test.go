package patalg

import "testing"

func TestIsEmptyOnNonEmptyAutomaton(t *testing.T) {
	dfa := buildDFA(t, "/a/b")
	if IsEmpty(dfa) {
		t.Error("IsEmpty(/a/b) = true, want false")
	}
}

func TestIsEmptyOnDisjointIntersection(t *testing.T) {
	a := MustCompile("/a/**")
	b := MustCompile("/b/**")
	product, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect error = %v", err)
	}
	if !IsEmpty(product.Automaton) {
		t.Error("IsEmpty(Intersect(/a/**, /b/**)) = false, want true")
	}
}

func TestFindWitnessNonEmpty(t *testing.T) {
	dfa := buildDFA(t, "/a/*.go")
	w := FindWitness(dfa)
	if w == nil {
		t.Fatal("FindWitness = nil, want a witness")
	}
	if !MatchSegments(dfa, SplitSegments(*w)) {
		t.Errorf("FindWitness returned %q, which the automaton does not accept", *w)
	}
}

func TestFindWitnessEmpty(t *testing.T) {
	a := MustCompile("/a/**")
	b := MustCompile("/b/**")
	product, err := Intersect(a, b)
	if err != nil {
		t.Fatalf("Intersect error = %v", err)
	}
	if w := FindWitness(product.Automaton); w != nil {
		t.Errorf("FindWitness(empty automaton) = %q, want nil", *w)
	}
}

func TestSynthesizeForMatcher(t *testing.T) {
	m := NewRegexMatcher(ToRegex(WildcardSegment{Parts: []Part{{Kind: PartStar}, {Kind: PartLiteral, Literal: ".ts"}}}), "*.ts")
	seg, ok := synthesizeForMatcher(m)
	if !ok {
		t.Fatal("synthesizeForMatcher found no candidate for *.ts")
	}
	if !m.Match(seg) {
		t.Errorf("synthesized segment %q does not actually satisfy the matcher", seg)
	}
}

func TestCountPaths(t *testing.T) {
	dfa := buildDFA(t, "/a/b")
	counts := CountPaths(dfa, 3)
	if counts[2] == 0 {
		t.Error("CountPaths(/a/b, 3)[2] = 0, want at least one accepting state at depth 2")
	}
	if counts[0] != 0 {
		t.Errorf("CountPaths(/a/b, 3)[0] = %d, want 0 (not accepting before consuming anything)", counts[0])
	}
}
