package gca_test

import (
	"fmt"

	"github.com/katalvlaran/gcalg/gca"
	"github.com/katalvlaran/gcalg/ring"
)

// ExampleNew builds the algebra with generators x, y, z, t of degrees
// 1, 2, 2, 3 truncated above degree 6 and shows the graded sign rule.
func ExampleNew() {
	A, err := gca.New[int64](ring.Integers{},
		gca.WithNames("x", "y", "z", "t"),
		gca.WithDegrees(1, 2, 2, 3),
		gca.WithMaxDegree(6))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	x, _ := A.GeneratorByName("x")
	t, _ := A.GeneratorByName("t")

	fmt.Println(A)
	fmt.Println(A.Format(A.Mul(t, x)))
	fmt.Println(A.Format(A.Add(A.Mul(t, x), A.Mul(x, t))))
	fmt.Println(A.Format(A.Mul(x, x)))
	// Output:
	// Graded commutative algebra with generators ('x', 'y', 'z', 't') in degrees (1, 2, 2, 3) with maximal degree 6
	// -x*t
	// 0
	// 0
}

// ExampleAlgebra_Basis lists the basis of the exterior algebra on x, y, z
// of degree one, in canonical order.
func ExampleAlgebra_Basis() {
	A, _ := gca.New[int64](ring.Integers{}, gca.WithNameString("x,y,z"), gca.WithMaxDegree(3))
	for i, b := range A.Basis() {
		deg, _ := A.DegreeOf(b)
		fmt.Printf("%d: %s (degree %d)\n", i, A.Format(b), deg)
	}
	// Output:
	// 0: 1 (degree 0)
	// 1: z (degree 1)
	// 2: y (degree 1)
	// 3: x (degree 1)
	// 4: y*z (degree 2)
	// 5: x*z (degree 2)
	// 6: x*y (degree 2)
	// 7: x*y*z (degree 3)
}

// ExampleAlgebra_ParseElement evaluates an expression with the super sign rule.
func ExampleAlgebra_ParseElement() {
	A, _ := gca.New[int64](ring.Integers{},
		gca.WithNames("x", "y", "z"),
		gca.WithDegrees(1, 2, 3),
		gca.WithMaxDegree(5),
		gca.WithLatexMulSymbol(`\smile`))
	e, err := A.ParseElement("2*x*y - z*x")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(A.Format(e))
	fmt.Println(A.Latex(e))
	// Output:
	// 2*x*y + x*z
	// 2 x\smile y + x\smile z
}
