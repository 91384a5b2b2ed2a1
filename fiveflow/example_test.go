package fiveflow_test

import (
	"fmt"

	"github.com/lattark/nzflow/cubic"
	"github.com/lattark/nzflow/fiveflow"
)

// ExampleFind solves the Petersen graph end to end: sign assignment,
// basis construction, bounded search.
func ExampleFind() {
	opts := fiveflow.DefaultOptions()
	opts.Seed = 42
	opts.MaxAttempts = 10

	res, err := fiveflow.Find(cubic.Petersen(), opts)
	if err != nil {
		fmt.Println("no flow:", err)

		return
	}

	fmt.Printf("found a nowhere-zero 5-flow with bound %d on %d edges\n",
		res.Bound, len(res.Flow))
}
