package core_test

import (
	"fmt"

	"github.com/lvlath-labs/hsearch/core"
)

// ExampleOpenSet_basic demonstrates seeding an OpenSet with a handful of
// nodes and draining it in F order, the access pattern every searcher in
// this module relies on.
func ExampleOpenSet_basic() {
	open := core.NewOpenSet()
	for id, gh := range map[int][2]int{
		1: {5, 1}, // f=6
		2: {1, 1}, // f=2
		3: {2, 2}, // f=4
	} {
		n := core.NewNode(newFakeState(id), gh[0], gh[1], core.Forward, nil)
		if err := open.Append(n); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	for open.Len() > 0 {
		n, _ := open.Pop()
		fmt.Printf("f=%d g=%d\n", n.F(), n.G)
	}
	// Output:
	// f=2 g=1
	// f=4 g=2
	// f=6 g=5
}
