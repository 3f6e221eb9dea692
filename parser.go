package patalg

import "strings"

// ParsePattern tokenizes, brace-expands, and parses source into a
// PathPattern (C1's AST, built by the A1–A3 external collaborators).
//
// Parse errors (UNCLOSED_BRACE, NESTED_BRACES, INVALID_GLOBSTAR, ...) are
// collected on the returned pattern rather than failing the call — the
// erroneous nodes degrade to a best-effort matcher, and it is the caller's
// responsibility to check PathPattern.Errors. The brace-expansion limit is
// the one exception: it is an operational limit (spec.md §7) and is
// returned as a genuine error, matching the determinizer's DFAStateLimit.
func ParsePattern(source string, opts ...ParseOption) (*PathPattern, error) {
	cfg := defaultParseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	remainder := source
	if cfg.swapSlashes {
		remainder = swapSlashes(remainder)
	}

	isNegation := false
	if strings.HasPrefix(remainder, "!") {
		isNegation = true
		remainder = remainder[1:]
	}

	isAbsolute := false
	switch {
	case cfg.expandTilde && strings.HasPrefix(remainder, "~"):
		isAbsolute = true
		remainder = remainder[1:]
		remainder = strings.TrimPrefix(remainder, "/")
	case strings.HasPrefix(remainder, "/"):
		isAbsolute = true
		remainder = remainder[1:]
	}

	var errs []PatternError
	var branches []string
	if cfg.allowAlternation {
		expanded, err := ExpandBraces(remainder)
		if err != nil {
			switch e := err.(type) {
			case *LimitError:
				return nil, e
			case *PatternError:
				errs = append(errs, *e)
				branches = []string{remainder}
			default:
				return nil, err
			}
		} else {
			branches = expanded
		}
	} else {
		branches = []string{remainder}
	}

	sequences := make([]PatternNode, 0, len(branches))
	for _, branch := range branches {
		sequences = append(sequences, parseSequenceString(branch, &errs, &cfg))
	}

	var root PatternNode
	if len(sequences) == 1 {
		root = sequences[0]
	} else {
		root = AlternationNode{Branches: sequences}
	}

	return &PathPattern{
		Source:     source,
		Root:       root,
		IsAbsolute: isAbsolute,
		IsNegation: isNegation,
		Errors:     errs,
	}, nil
}

// MustParsePattern calls ParsePattern and panics on error (brace-expansion
// limit only — plain PatternErrors never fail the call).
func MustParsePattern(source string, opts ...ParseOption) *PathPattern {
	p, err := ParsePattern(source, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// swapSlashes exchanges the roles of / and \, for WithSwapSlashes: the
// pattern is always processed downstream with / as the segment separator
// and \ as the escape character.
func swapSlashes(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/':
			out[i] = '\\'
		case '\\':
			out[i] = '/'
		default:
			out[i] = s[i]
		}
	}
	return string(out)
}

// parseSequenceString parses one brace-free branch string (still containing
// '/' segment separators) into a SequenceNode.
func parseSequenceString(branch string, errs *[]PatternError, cfg *ParseConfig) SequenceNode {
	if branch == "" {
		return SequenceNode{}
	}
	rawSegments := splitUnescaped(branch, '/')
	segments := make([]SegmentNode, 0, len(rawSegments))
	for _, raw := range rawSegments {
		segments = append(segments, parseSegmentString(raw, errs, cfg))
	}
	return SequenceNode{Segments: segments}
}

func parseSegmentString(raw string, errs *[]PatternError, cfg *ParseConfig) SegmentNode {
	if cfg.allowStar && cfg.allowDoubleStar && raw == "**" {
		return GlobstarSegment{}
	}
	if cfg.allowStar && cfg.allowDoubleStar && hasBareDoubleStar(raw) {
		*errs = append(*errs, PatternError{
			Code:     ErrInvalidGlobstar,
			Message:  "** must be the whole segment",
			Position: -1,
		})
	}
	return newSegmentScanner(raw, errs, cfg).scan()
}

// hasBareDoubleStar reports whether raw contains an unescaped "**" that
// does not make up the entire segment (spec.md §6: ** must be the whole
// segment).
func hasBareDoubleStar(raw string) bool {
	escaped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '*' && i+1 < len(raw) && raw[i+1] == '*' {
			return true
		}
	}
	return false
}
