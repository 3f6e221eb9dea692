package patalg

import (
	"regexp"
	"strings"
)

// MatchSegment tests one string segment against one segment node (C2).
func MatchSegment(segment string, node SegmentNode) bool {
	switch n := node.(type) {
	case LiteralSegment:
		return segment == n.Value
	case GlobstarSegment:
		return true
	case CharclassSegment:
		rs := []rune(segment)
		if len(rs) != 1 {
			return false
		}
		return n.Charclass.Matches(rs[0])
	case WildcardSegment:
		return matchParts(n.Parts, []rune(segment))
	case CompositeSegment:
		return matchParts(n.Parts, []rune(segment))
	default:
		return false
	}
}

// matchParts performs backtracking matching of a part sequence against a
// segment's runes (a star tries the shortest consumption first), memoized on (part index, rune index) to avoid
// exponential blowup on patterns with several stars.
func matchParts(parts []Part, rs []rune) bool {
	memo := make(map[[2]int]bool)
	var rec func(pi, ri int) bool
	rec = func(pi, ri int) bool {
		if pi == len(parts) {
			return ri == len(rs)
		}
		key := [2]int{pi, ri}
		if v, ok := memo[key]; ok {
			return v
		}
		var ok bool
		switch parts[pi].Kind {
		case PartLiteral:
			lr := []rune(parts[pi].Literal)
			if ri+len(lr) <= len(rs) {
				match := true
				for i, r := range lr {
					if rs[ri+i] != r {
						match = false
						break
					}
				}
				if match {
					ok = rec(pi+1, ri+len(lr))
				}
			}
		case PartStar:
			for n := ri; n <= len(rs); n++ {
				if rec(pi+1, n) {
					ok = true
					break
				}
			}
		case PartQuestion:
			if ri < len(rs) {
				ok = rec(pi+1, ri+1)
			}
		case PartCharclass:
			if ri < len(rs) && parts[pi].Charclass.Matches(rs[ri]) {
				ok = rec(pi+1, ri+1)
			}
		}
		memo[key] = ok
		return ok
	}
	return rec(0, 0)
}

// ToRegex lowers a segment node to an anchored regex that accepts exactly
// the segment's language. Literal segments return nil — callers should use
// exact string comparison instead, which is both correct and cheaper.
func ToRegex(node SegmentNode) *regexp.Regexp {
	switch n := node.(type) {
	case LiteralSegment:
		return nil
	case GlobstarSegment:
		return regexp.MustCompile(`^.*$`)
	case CharclassSegment:
		return regexp.MustCompile("^" + charclassRegexSource(n.Charclass) + "$")
	case WildcardSegment:
		return regexp.MustCompile(partsRegexSource(n.Parts))
	case CompositeSegment:
		return regexp.MustCompile(partsRegexSource(n.Parts))
	default:
		return nil
	}
}

func partsRegexSource(parts []Part) string {
	var b strings.Builder
	b.WriteString("^")
	for _, p := range parts {
		switch p.Kind {
		case PartLiteral:
			b.WriteString(regexp.QuoteMeta(p.Literal))
		case PartStar:
			b.WriteString(".*")
		case PartQuestion:
			b.WriteString(".")
		case PartCharclass:
			b.WriteString(charclassRegexSource(*p.Charclass))
		}
	}
	b.WriteString("$")
	return b.String()
}

func charclassRegexSource(c Charclass) string {
	var b strings.Builder
	b.WriteString("[")
	if c.Negated {
		b.WriteString("^")
	}
	for _, r := range c.Chars {
		writeEscapedClassRune(&b, r)
	}
	for _, rg := range c.Ranges {
		writeEscapedClassRune(&b, rg.Start)
		b.WriteString("-")
		writeEscapedClassRune(&b, rg.End)
	}
	b.WriteString("]")
	return b.String()
}

// writeEscapedClassRune escapes the four characters that are meaningful
// inside a regex character class (spec.md §4.1).
func writeEscapedClassRune(b *strings.Builder, r rune) {
	switch r {
	case '^', '-', ']', '\\':
		b.WriteRune('\\')
	}
	b.WriteRune(r)
}

// RegexMatcher wraps a compiled regex as a SegmentMatcher; Tag is the regex
// source, which doubles as the alphabet-identity key the determinizer (C5)
// uses to collapse syntactically distinct but semantically equal wildcards
// into a single symbol.
type RegexMatcher struct {
	Re  *regexp.Regexp
	tag string
}

// NewRegexMatcher builds a SegmentMatcher from a compiled regex and its
// source text.
func NewRegexMatcher(re *regexp.Regexp, source string) *RegexMatcher {
	return &RegexMatcher{Re: re, tag: source}
}

func (m *RegexMatcher) Match(segment string) bool { return m.Re.MatchString(segment) }
func (m *RegexMatcher) Tag() string               { return m.tag }

// andMatcher is the composite predicate used when two wildcards are
// intersected (C6): it matches iff both operands match. True regex
// intersection over character alphabets has no closed surface
// representation, so the engine stores the conjunction directly rather than
// trying to synthesize one; see spec.md §4.5's rationale.
type andMatcher struct {
	a, b SegmentMatcher
}

func (m *andMatcher) Match(segment string) bool { return m.a.Match(segment) && m.b.Match(segment) }
func (m *andMatcher) Tag() string               { return "(" + m.a.Tag() + ")∩(" + m.b.Tag() + ")" }

// universalMatcher matches any segment, including the empty string. It is used for the
// determinizer's completion sink and for the "any" alphabet symbol.
type universalMatcher struct{}

func (universalMatcher) Match(string) bool { return true }
func (universalMatcher) Tag() string       { return "*" }

var theUniversalMatcher SegmentMatcher = universalMatcher{}
