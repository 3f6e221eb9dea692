// The patalg command evaluates and combines glob-style path patterns.
//
// Examples:
//
//	$ patalg match '**/*_test.go' fixtures/spec/foo_test.go
//	true
//
//	$ patalg contains 'src/**' 'src/app/main.go'
//	true
//
//	$ patalg dot '**/*.ts'
//	digraph { ... }
package main

import (
	"fmt"
	"os"

	patalg "github.com/mike-north/pattern-algebra"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "match":
		runMatch(os.Args[2:])
	case "contains", "equals", "overlaps":
		runRelationship(os.Args[1], os.Args[2:])
	case "dot":
		runDot(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s match|contains|equals|overlaps|dot ...\n", os.Args[0])
}

func runMatch(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: patalg match pattern path")
		os.Exit(1)
	}
	p, err := patalg.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Println(p.Matches(args[1]))
}

func runRelationship(cmd string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: patalg %s patternA patternB\n", cmd)
		os.Exit(1)
	}
	a, err := patalg.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", args[0], err)
		os.Exit(1)
	}
	b, err := patalg.Compile(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", args[1], err)
		os.Exit(1)
	}

	var result bool
	switch cmd {
	case "contains":
		result, err = patalg.Contains(a, b)
	case "equals":
		result, err = patalg.Equals(a, b)
	case "overlaps":
		result, err = patalg.Overlaps(a, b)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compare patterns: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func runDot(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: patalg dot pattern")
		os.Exit(1)
	}
	p, err := patalg.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", args[0], err)
		os.Exit(1)
	}
	if err := patalg.WriteDot(p.Automaton, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
