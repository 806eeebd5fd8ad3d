package num_test

import (
	"fmt"

	"github.com/npillmayer/rateval/num"
)

func ExampleMakeRational() {
	fmt.Println(num.MakeRational(120, -30))
	fmt.Println(num.MakeRational(44, 14))
	fmt.Println(num.MakeRational(1, 0))

	// Output:
	// -4 <nil>
	// 22/7 <nil>
	// <nil> division by zero
}

func ExampleAdd() {
	sum, err := num.Add(num.MustRational(1, 2), num.MustRational(1, 3))
	fmt.Println(sum, err)
	_, err = num.Add(num.Text("Input string"), num.MakeInteger(1))
	fmt.Println(err)

	// Output:
	// 5/6 <nil>
	// Add requires two numbers
}
