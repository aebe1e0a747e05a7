// Command lambdacore is a thin demo wrapper around the inference core: it
// loads a term (and, optionally, a constraint skeleton) from a YAML
// fixture and prints the inferred type. Building a real surface-syntax
// front end is out of scope for this repository — a parser and REPL are
// external collaborators; this exists only so the core is reachable from
// a command line at all.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sunholo/lambdacore/internal/api"
	"github.com/sunholo/lambdacore/internal/fixture"
	"github.com/sunholo/lambdacore/internal/infer"
	"github.com/sunholo/lambdacore/internal/term"
	"github.com/sunholo/lambdacore/internal/typ"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func main() {
	var constraintPath string
	flag.StringVar(&constraintPath, "constraint", "", "path to a YAML constraint-tree fixture")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lambdacore [-constraint FILE] TERM.yaml")
		os.Exit(2)
	}

	t, err := fixture.LoadTerm(flag.Arg(0))
	if err != nil {
		fail(err)
	}
	fmt.Println(cyan(t.String()))

	if constraintPath != "" {
		ctree, err := fixture.LoadConstraint(constraintPath)
		if err != nil {
			fail(err)
		}
		named, typedTerm, err := api.InferTypeWithConstraint(t, ctree)
		report(t, named, typedTerm, err)
		return
	}

	named, typedTerm, err := api.InferType(t)
	report(t, named, typedTerm, err)
}

func report(t term.Term, named typ.NamedType, typedTerm infer.NamedTypedTerm, err error) {
	if err != nil {
		fmt.Println(red(err.Error()))
		os.Exit(1)
	}
	fmt.Println(green(fmt.Sprintf("%s : %s", api.ShowTypeTree(t, typedTerm), named.String())))
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, red("error: "+err.Error()))
	os.Exit(1)
}
