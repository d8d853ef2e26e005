package lagoon_test

import (
	"fmt"

	"github.com/bft-labs/lagoon/pkg/lagoon"
)

func ExampleSolve() {
	plan := "R 2 (#000020)\nD 2 (#000021)\nL 2 (#000022)\nU 2 (#000023)\n"

	res, err := lagoon.Solve(plan)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Answer", res.Total)
	// Output: Answer 9
}

func ExampleWithDecoder() {
	d, _ := lagoon.DecoderByName("literal")

	res, err := lagoon.Solve("R 3 (#000000)\nD 1 (#000000)\nL 3 (#000000)\nU 1 (#000000)\n", lagoon.WithDecoder(d))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Answer", res.Total)
	// Output: Answer 8
}
