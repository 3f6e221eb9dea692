package patalg

import (
	"strconv"
	"strings"
)

// ExpandOptions bounds the cost of brace and numeric-range expansion.
type ExpandOptions struct {
	MaxExpansions int // total cross-product size across all brace groups
	MaxRangeSize  int // elements produced by a single {m..n} group
}

// DefaultExpandOptions matches spec.md §5/§6's defaults.
var DefaultExpandOptions = ExpandOptions{MaxExpansions: 100, MaxRangeSize: 50}

// ExpandBraces expands every top-level {a,b,c} alternation and {m..n}
// numeric range in pattern into the cross product of concrete strings.
// Braces do not nest (spec.md §6) — a brace group containing another
// unescaped '{' is a NESTED_BRACES error.
func ExpandBraces(pattern string, opts ...ExpandOptions) ([]string, error) {
	opt := DefaultExpandOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	results, err := expandOne(pattern, opt)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func expandOne(pattern string, opt ExpandOptions) ([]string, error) {
	start := findUnescaped(pattern, 0, '{')
	if start < 0 {
		return []string{pattern}, nil
	}

	end, err := findBraceEnd(pattern, start)
	if err != nil {
		return nil, err
	}

	inner := pattern[start+1 : end]
	branches, err := expandInner(inner, opt)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, b := range branches {
		candidate := pattern[:start] + b + pattern[end+1:]
		rest, err := expandOne(candidate, opt)
		if err != nil {
			return nil, err
		}
		out = append(out, rest...)
		if len(out) > opt.MaxExpansions {
			return nil, &LimitError{Code: ErrExpansionLimit, Limit: opt.MaxExpansions, Actual: len(out)}
		}
	}
	return out, nil
}

// findBraceEnd finds the closing '}' for the '{' at position start, erroring
// if an unescaped '{' appears first (braces do not nest).
func findBraceEnd(pattern string, start int) (int, error) {
	i := start + 1
	for i < len(pattern) {
		c := pattern[i]
		if c == '\\' && i+1 < len(pattern) {
			i += 2
			continue
		}
		if c == '{' {
			return 0, &PatternError{Code: ErrNestedBraces, Message: "nested braces are not supported", Position: i, Length: 1}
		}
		if c == '}' {
			return i, nil
		}
		i++
	}
	return 0, &PatternError{Code: ErrUnclosedBrace, Message: "missing closing brace", Position: start, Length: 1}
}

// expandInner expands the content between one pair of braces: either a
// {m..n} numeric range, or a {a,b,c} comma-separated alternation (branches
// may be empty, e.g. "{,a}").
func expandInner(inner string, opt ExpandOptions) ([]string, error) {
	if lo, hi, ok := parseNumericRange(inner); ok {
		return expandNumericRange(lo, hi, opt)
	}
	return splitUnescaped(inner, ','), nil
}

func parseNumericRange(inner string) (lo, hi int, ok bool) {
	idx := strings.Index(inner, "..")
	if idx < 0 {
		return 0, 0, false
	}
	loStr, hiStr := inner[:idx], inner[idx+2:]
	if loStr == "" || hiStr == "" {
		return 0, 0, false
	}
	lo64, err1 := strconv.Atoi(loStr)
	hi64, err2 := strconv.Atoi(hiStr)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo64, hi64, true
}

func expandNumericRange(lo, hi int, opt ExpandOptions) ([]string, error) {
	var count int
	if lo <= hi {
		count = hi - lo + 1
	} else {
		count = lo - hi + 1
	}
	if count > opt.MaxRangeSize {
		return nil, &LimitError{Code: ErrExpansionLimit, Limit: opt.MaxRangeSize, Actual: count}
	}
	out := make([]string, 0, count)
	if lo <= hi {
		for v := lo; v <= hi; v++ {
			out = append(out, strconv.Itoa(v))
		}
	} else {
		for v := lo; v >= hi; v-- {
			out = append(out, strconv.Itoa(v))
		}
	}
	return out, nil
}

// findUnescaped returns the index of the first occurrence of target at or
// after from that is not preceded by an unescaped backslash, or -1.
func findUnescaped(s string, from int, target byte) int {
	escaped := false
	for i := from; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		if s[i] == '\\' {
			escaped = true
			continue
		}
		if s[i] == target {
			return i
		}
	}
	return -1
}

// splitUnescaped splits s on unescaped occurrences of sep, leaving escape
// sequences intact in the resulting pieces.
func splitUnescaped(s string, sep byte) []string {
	var out []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			cur.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			cur.WriteByte(c)
			escaped = true
			continue
		}
		if c == sep {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	out = append(out, cur.String())
	return out
}
