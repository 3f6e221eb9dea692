package patalg

import "testing"

func TestMatchesSegment(t *testing.T) {
	tests := []struct {
		node    SegmentNode
		segment string
		want    bool
	}{
		{LiteralSegment{Value: "abc"}, "abc", true},
		{LiteralSegment{Value: "abc"}, "abd", false},
		{GlobstarSegment{}, "anything", true},
		{CharclassSegment{Charclass{Chars: "abc"}}, "b", true},
		{CharclassSegment{Charclass{Chars: "abc"}}, "d", false},
		{CharclassSegment{Charclass{Chars: "abc"}}, "ab", false}, // charclass matches exactly one rune
		{WildcardSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartStar}, {Kind: PartLiteral, Literal: "b"}}}, "acccb", true},
		{WildcardSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartStar}, {Kind: PartLiteral, Literal: "b"}}}, "abc", false},
		{WildcardSegment{Parts: []Part{{Kind: PartQuestion}}}, "x", true},
		{WildcardSegment{Parts: []Part{{Kind: PartQuestion}}}, "xy", false},
		{CompositeSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartCharclass, Charclass: &Charclass{Chars: "bc"}}}}, "ab", true},
		{CompositeSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartCharclass, Charclass: &Charclass{Chars: "bc"}}}}, "ad", false},
	}
	for _, test := range tests {
		if got := MatchSegment(test.segment, test.node); got != test.want {
			t.Errorf("MatchSegment(%q, %#v) = %v, want %v", test.segment, test.node, got, test.want)
		}
	}
}

func TestMatchesBacktracking(t *testing.T) {
	// multiple stars force backtracking; a naive greedy match could fail here
	node := WildcardSegment{Parts: []Part{
		{Kind: PartStar},
		{Kind: PartLiteral, Literal: "a"},
		{Kind: PartStar},
		{Kind: PartLiteral, Literal: "a"},
		{Kind: PartStar},
	}}
	if !MatchSegment("aaaa", node) {
		t.Error(`MatchSegment("aaaa", *a*a*) = false, want true`)
	}
	if MatchSegment("b", node) {
		t.Error(`MatchSegment("b", *a*a*) = true, want false`)
	}
}

func TestCharclassMatches(t *testing.T) {
	tests := []struct {
		cc   Charclass
		r    rune
		want bool
	}{
		{Charclass{Chars: "abc"}, 'b', true},
		{Charclass{Chars: "abc"}, 'd', false},
		{Charclass{Ranges: []CharRange{{Start: 'a', End: 'z'}}}, 'm', true},
		{Charclass{Ranges: []CharRange{{Start: 'a', End: 'z'}}}, 'M', false},
		{Charclass{Negated: true, Chars: "abc"}, 'd', true},
		{Charclass{Negated: true, Chars: "abc"}, 'a', false},
	}
	for _, test := range tests {
		if got := test.cc.Matches(test.r); got != test.want {
			t.Errorf("%#v.Matches(%q) = %v, want %v", test.cc, test.r, got, test.want)
		}
	}
}

func TestToRegexLiteralIsNil(t *testing.T) {
	if re := ToRegex(LiteralSegment{Value: "a"}); re != nil {
		t.Errorf("ToRegex(LiteralSegment) = %v, want nil", re)
	}
}

func TestToRegexMatchesSamePredicate(t *testing.T) {
	tests := []SegmentNode{
		WildcardSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartStar}}},
		CharclassSegment{Charclass{Chars: "xyz"}},
		CompositeSegment{Parts: []Part{{Kind: PartCharclass, Charclass: &Charclass{Ranges: []CharRange{{Start: '0', End: '9'}}}}, {Kind: PartStar}}},
	}
	candidates := []string{"a", "ab", "x", "d", "0", "09ab", ""}
	for _, node := range tests {
		re := ToRegex(node)
		for _, c := range candidates {
			if got, want := re.MatchString(c), MatchSegment(c, node); got != want {
				t.Errorf("ToRegex(%#v).MatchString(%q) = %v, MatchSegment disagreed (%v)", node, c, got, want)
			}
		}
	}
}

func TestAndMatcher(t *testing.T) {
	a := NewRegexMatcher(ToRegex(WildcardSegment{Parts: []Part{{Kind: PartLiteral, Literal: "a"}, {Kind: PartStar}}}), "a*")
	b := NewRegexMatcher(ToRegex(WildcardSegment{Parts: []Part{{Kind: PartStar}, {Kind: PartLiteral, Literal: "z"}}}), "*z")
	combo := &andMatcher{a: a, b: b}
	if !combo.Match("az") {
		t.Error(`andMatcher(a*, *z).Match("az") = false, want true`)
	}
	if combo.Match("ax") {
		t.Error(`andMatcher(a*, *z).Match("ax") = true, want false`)
	}
	if combo.Match("xz") {
		t.Error(`andMatcher(a*, *z).Match("xz") = true, want false`)
	}
}

func TestUniversalMatcher(t *testing.T) {
	if !theUniversalMatcher.Match("") {
		t.Error(`universalMatcher.Match("") = false, want true`)
	}
	if theUniversalMatcher.Tag() != "*" {
		t.Errorf("universalMatcher.Tag() = %q, want %q", theUniversalMatcher.Tag(), "*")
	}
}
