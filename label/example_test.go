package label_test

import (
	"fmt"
	"os"

	"github.com/survtab/survtab/label"
	"github.com/survtab/survtab/table"
)

// ExampleEncode walks the canonical transform end to end.
//
// Scenario:
//
//	Two subjects with covariates (x_0, x_1): the first died at t=5, the
//	second left the study at t=10 (right-censored). The censored row's
//	label comes out negative.
func ExampleEncode() {
	tbl, err := table.New(
		table.Series{Name: "x_0", Values: []float64{1.0, 3.0}},
		table.Series{Name: "x_1", Values: []float64{2.0, 4.0}},
		table.Series{Name: "t", Values: []float64{5, 10}},
		table.Series{Name: "e", Values: []float64{1, 0}},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	out, err := label.Encode(tbl, "t", "e", "Y")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = table.WriteCSV(os.Stdout, out)
	// Output:
	// x_0,x_1,Y
	// 1,2,5
	// 3,4,-10
}

// ExampleWithExclude drops an identifier column from the encoded output.
func ExampleWithExclude() {
	tbl, _ := table.New(
		table.Series{Name: "id", Values: []float64{101, 102}},
		table.Series{Name: "age", Values: []float64{61, 47}},
		table.Series{Name: "t", Values: []float64{5, 10}},
		table.Series{Name: "e", Values: []float64{1, 0}},
	)

	out, err := label.Encode(tbl, "t", "e", "Y", label.WithExclude("id"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(out.Names())
	// Output:
	// [age Y]
}
