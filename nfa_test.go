package patalg

import "testing"

func TestBuildAutomatonBounds(t *testing.T) {
	tests := []struct {
		pattern string
		wantMin int
		wantMax *int
	}{
		{"/a/b/c", 3, intPtr(3)},
		{"/a/*/c", 3, intPtr(3)},
		{"/a/**/b", 2, nil},
		{"/**", 0, nil},
		{"/a/{b,c}", 2, intPtr(2)},
		{"/a/{b,c/d}", 2, intPtr(3)},
	}
	for _, test := range tests {
		ast, err := ParsePattern(test.pattern)
		if err != nil {
			t.Fatalf("ParsePattern(%q) error = %v", test.pattern, err)
		}
		_, minSeg, maxSeg := BuildAutomaton(ast)
		if minSeg != test.wantMin {
			t.Errorf("BuildAutomaton(%q) minSegments = %d, want %d", test.pattern, minSeg, test.wantMin)
		}
		if (maxSeg == nil) != (test.wantMax == nil) {
			t.Errorf("BuildAutomaton(%q) maxSegments = %v, want %v", test.pattern, maxSeg, test.wantMax)
			continue
		}
		if maxSeg != nil && *maxSeg != *test.wantMax {
			t.Errorf("BuildAutomaton(%q) maxSegments = %d, want %d", test.pattern, *maxSeg, *test.wantMax)
		}
	}
}

func TestBuildAutomatonMatchesNFA(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b", "/a/c", false},
		{"/a/*/c", "/a/xyz/c", true},
		{"/a/**/b", "/a/b", true},
		{"/a/**/b", "/a/x/y/b", true},
		{"/a/**/b", "/a/b/c", false},
		{"/a/{b,c}", "/a/c", true},
		{"/a/{b,c}", "/a/d", false},
	}
	for _, test := range tests {
		ast, err := ParsePattern(test.pattern)
		if err != nil {
			t.Fatalf("ParsePattern(%q) error = %v", test.pattern, err)
		}
		nfa, _, _ := BuildAutomaton(ast)
		segments := SplitSegments(test.path)
		if got := MatchSegments(nfa, segments); got != test.want {
			t.Errorf("MatchSegments(NFA(%q), %q) = %v, want %v", test.pattern, test.path, got, test.want)
		}
	}
}

func intPtr(n int) *int { return &n }
