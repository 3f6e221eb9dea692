package patalg

import (
	"fmt"
	"io"
)

// WriteDot writes a as a GraphViz digraph, in the same rankdir=LR, invisible
// initial-arrow, doublecircle-for-accepting style the teacher library
// renders its own state machine with.
func WriteDot(a *SegmentAutomaton, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\tinitial -> state_%d;\n", a.Initial); err != nil {
		return err
	}

	for _, s := range a.States {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"%d\", shape=%s];\n", s.ID, s.ID, shape); err != nil {
			return err
		}
		for _, t := range s.Out {
			for _, e := range transitionEdges(t) {
				if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%q];\n", s.ID, e.target, e.label); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

type dotEdge struct {
	label  string
	target int
}

func transitionEdges(t Transition) []dotEdge {
	switch t.Kind {
	case TransLiteral:
		return []dotEdge{{t.Segment, t.Target}}
	case TransWildcard:
		return []dotEdge{{t.Matcher.Tag(), t.Target}}
	case TransGlobstar:
		return []dotEdge{{"**", t.SelfLoop}, {"ε", t.Exit}}
	case TransEpsilon:
		return []dotEdge{{"ε", t.Target}}
	default:
		return nil
	}
}
