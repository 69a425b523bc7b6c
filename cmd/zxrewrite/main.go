// Command zxrewrite checks rule libraries, lists the candidate rewrites of a
// ZX diagram, applies one of them and generates random test circuits.
//
// Usage:
//
//	zxrewrite check      --rules rules.json
//	zxrewrite candidates --rules rules.json diagram.json
//	zxrewrite apply      --rules rules.json --index 3 -o out.json diagram.json
//	zxrewrite generate   --qubits 4 --depth 6 --seed 1 -o circuit.json
//
// Settings are read from an optional YAML file (--config) and overridden by flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zxrewrite:", err)
		os.Exit(1)
	}
}
