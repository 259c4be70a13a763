// Command gcc-demo posts a Dom-consistent global cardinality constraint
// over a small variable array and prints the resulting domains, the way
// the teacher's cmd/example walks through a solver scenario.
package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/gokando-gcc/pkg/gcc"
)

func main() {
	sp := gcc.NewSpace()
	x0 := sp.NewVar("x0", 1, 3)
	x1 := sp.NewVar("x1", 1, 2)
	x2 := sp.NewVar("x2", 1, 2)
	x3 := sp.NewVar("x3", 1, 3)

	cards := []*gcc.Card{
		gcc.NewFixedCard(1, 1, 1),
		gcc.NewFixedCard(2, 1, 2),
		gcc.NewFixedCard(3, 0, 1),
	}

	_, status, err := gcc.PostDom(sp.Views(), cards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "post failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("status: %v\n", status)
	for _, v := range []*gcc.DomainVar{x0, x1, x2, x3} {
		fmt.Printf("%s: ", v.Name())
		v.Each(func(val int) { fmt.Printf("%d ", val) })
		fmt.Println()
	}
}
