package operator_test

import (
	"fmt"

	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/operator"
)

func ExampleNewSecondDerivative() {
	m1, _ := mesher.NewUniform(0, 4, 5)
	m, _ := mesher.NewComposite(m1)
	dxx, _ := operator.NewSecondDerivative(0, m)

	for i := range dxx.Size() {
		lower, diag, upper := dxx.Row(i)
		fmt.Printf("%g %g %g\n", lower, diag, upper)
	}
	// Output:
	// 0 0 0
	// 1 -2 1
	// 1 -2 1
	// 1 -2 1
	// 0 0 0
}

func ExampleTripleBand_SolveSplitting() {
	m1, _ := mesher.NewUniform(0, 1, 3)
	m, _ := mesher.NewComposite(m1)
	op, _ := operator.NewTripleBand(0, m)
	op.SetRow(0, 0, 2, 0)
	op.SetRow(1, 0, 4, 0)
	op.SetRow(2, 0, 8, 0)

	// (op + I) x = r
	x, err := op.SolveSplitting([]float64{3, 5, 9}, 1, 1)
	fmt.Println(x, err)
	// Output:
	// [1 1 1] <nil>
}
