package patalg

import (
	"strings"
	"testing"
)

func TestWriteDotSmoke(t *testing.T) {
	patterns := []string{
		"/a/b",
		"/a/b*c/d?e/{f,g}/[ij]/**/k",
		"!/a/**",
	}
	for _, pattern := range patterns {
		c, err := Compile(pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", pattern, err)
		}
		var buf strings.Builder
		if err := WriteDot(c.Automaton, &buf); err != nil {
			t.Errorf("WriteDot(%q) error = %v", pattern, err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "digraph {") {
			t.Errorf("WriteDot(%q) output doesn't start with \"digraph {\": %q", pattern, out)
		}
		if !strings.HasSuffix(strings.TrimSpace(out), "}") {
			t.Errorf("WriteDot(%q) output doesn't end with \"}\": %q", pattern, out)
		}
	}
}

func TestTransitionEdgesGlobstarHasTwoEdges(t *testing.T) {
	dfa := buildDFA(t, "/a/**/b")
	var globstarState *State
	for _, s := range dfa.States {
		for _, tr := range s.Out {
			if tr.Kind == TransGlobstar {
				globstarState = s
			}
		}
	}
	if globstarState == nil {
		// Determinize lowers Globstar to Wildcard-tagged "*" transitions in
		// the DFA, so check the pre-determinization NFA instead.
		ast, err := ParsePattern("/a/**/b")
		if err != nil {
			t.Fatalf("ParsePattern error = %v", err)
		}
		nfa, _, _ := BuildAutomaton(ast)
		for _, s := range nfa.States {
			for _, tr := range s.Out {
				if tr.Kind == TransGlobstar {
					edges := transitionEdges(tr)
					if len(edges) != 2 {
						t.Fatalf("transitionEdges(Globstar) = %v, want 2 edges (SelfLoop and Exit)", edges)
					}
					return
				}
			}
		}
		t.Fatal("no Globstar transition found in the NFA")
	}
}
