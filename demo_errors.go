//go:build ignore

package main

import (
	"fmt"

	pubgrub "github.com/contriboss/pubgrub-go"
)

// Run with `go run demo_errors.go` to see how NoSolutionError renders
// under both the default and collapsed reporters, and what a successful
// solve's output looks like.
func main() {
	runMissingDependency()
	runConflictingVersions()
	runSuccessfulResolution()
}

func runMissingDependency() {
	fmt.Println("Scenario 1: dependency has no published versions")
	fmt.Println("-------------------------------------------------")

	source := &pubgrub.InMemorySource{}
	source.AddPackage(pubgrub.MakeName("app"), pubgrub.SimpleVersion("1.0.0"), []pubgrub.Term{
		pubgrub.NewTerm(pubgrub.MakeName("missing-dep"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.0.0")}),
	})

	root := pubgrub.NewRootSource()
	root.AddPackage(pubgrub.MakeName("app"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.0.0")})

	solver := pubgrub.NewSolver(root, source).EnableIncompatibilityTracking()
	if _, err := solver.Solve(root.Term()); err != nil {
		fmt.Printf("Error:\n%s\n\n", err)
	}
}

func runConflictingVersions() {
	fmt.Println("Scenario 2: two requirements pin incompatible versions")
	fmt.Println("--------------------------------------------------------")

	source := &pubgrub.InMemorySource{}
	source.AddPackage(pubgrub.MakeName("dropdown"), pubgrub.SimpleVersion("2.0.0"), []pubgrub.Term{
		pubgrub.NewTerm(pubgrub.MakeName("icons"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("2.0.0")}),
	})
	source.AddPackage(pubgrub.MakeName("menu"), pubgrub.SimpleVersion("1.1.0"), []pubgrub.Term{
		pubgrub.NewTerm(pubgrub.MakeName("dropdown"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("2.0.0")}),
	})
	source.AddPackage(pubgrub.MakeName("icons"), pubgrub.SimpleVersion("1.0.0"), nil)

	root := pubgrub.NewRootSource()
	root.AddPackage(pubgrub.MakeName("menu"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.1.0")})
	root.AddPackage(pubgrub.MakeName("icons"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.0.0")})

	solver := pubgrub.NewSolver(root, source).EnableIncompatibilityTracking()
	_, err := solver.Solve(root.Term())
	if err == nil {
		return
	}
	fmt.Printf("Error with DefaultReporter:\n%s\n\n", err)

	nsErr, ok := err.(*pubgrub.NoSolutionError)
	if !ok {
		return
	}
	collapsed := nsErr.WithReporter(&pubgrub.CollapsedReporter{})
	fmt.Printf("Same error with CollapsedReporter:\n%s\n\n", collapsed)
}

func runSuccessfulResolution() {
	fmt.Println("Scenario 3: resolvable graph")
	fmt.Println("-----------------------------")

	source := &pubgrub.InMemorySource{}
	source.AddPackage(pubgrub.MakeName("web"), pubgrub.SimpleVersion("1.0.0"), []pubgrub.Term{
		pubgrub.NewTerm(pubgrub.MakeName("http"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("2.0.0")}),
	})
	source.AddPackage(pubgrub.MakeName("http"), pubgrub.SimpleVersion("2.0.0"), []pubgrub.Term{
		pubgrub.NewTerm(pubgrub.MakeName("json"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.5.0")}),
	})
	source.AddPackage(pubgrub.MakeName("json"), pubgrub.SimpleVersion("1.5.0"), nil)

	root := pubgrub.NewRootSource()
	root.AddPackage(pubgrub.MakeName("web"), pubgrub.EqualsCondition{Version: pubgrub.SimpleVersion("1.0.0")})

	solver := pubgrub.NewSolver(root, source).EnableIncompatibilityTracking()
	solution, err := solver.Solve(root.Term())
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		return
	}

	fmt.Println("Solution found:")
	for _, nv := range solution {
		if nv.Name == pubgrub.MakeName("$$root") {
			continue
		}
		fmt.Printf("  - %s %s\n", nv.Name.Value(), nv.Version)
	}
}
