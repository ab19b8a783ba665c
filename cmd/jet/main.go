// Package main provides the jet CLI: evaluate expressions with exact gradients,
// render them as Graphviz, and verify hand-written backward passes.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0"

func usage() {
	fmt.Fprintln(os.Stderr, "jet - forward-mode automatic differentiation")
	fmt.Fprintf(os.Stderr, "Version: %s\n\n", version)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  eval [-dtype float64] [-at x=1,y=2] EXPR   value and gradient of EXPR")
	fmt.Fprintln(os.Stderr, "  dot [-at x=1,y=2] EXPR                      Graphviz rendering of EXPR")
	fmt.Fprintln(os.Stderr, "  check [-points 16] [-seed 1] [-expr EXPR]   verify backward passes")
	fmt.Fprintln(os.Stderr, "  version                                     show version")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("jet: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "eval":
		err = runEval(args, os.Stdout)
	case "dot":
		err = runDot(args, os.Stdout)
	case "check":
		var ok bool
		ok, err = runCheck(args, os.Stdout)
		if err == nil && !ok {
			os.Exit(1)
		}
	case "version":
		fmt.Printf("jet %s\n", version)
	case "help", "-h", "--help":
		usage()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
