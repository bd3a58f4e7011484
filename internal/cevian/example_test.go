package cevian

import (
	"context"
	"fmt"
)

// ExampleTrigCeva lists the seven concurrent triples for n = 3: the three
// angle bisectors plus the six permutations of (1, 2, 3).
func ExampleTrigCeva() {
	res, err := TrigCeva{}.Calculate(context.Background(), 3, Options{CollectWitnesses: true})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(res.Count)
	for _, w := range res.Witnesses {
		fmt.Println(w)
	}
	// Output:
	// 7
	// (1, 2, 3)
	// (1, 3, 2)
	// (2, 1, 3)
	// (2, 2, 2)
	// (2, 3, 1)
	// (3, 1, 2)
	// (3, 2, 1)
}

// ExampleNewDefaultFactory shows the registered methods and runs one of
// them.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())

	calc, err := factory.Get(MethodExact)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, n := range []int{1, 2, 9} {
		res, _ := calc.Calculate(context.Background(), n, Options{})
		fmt.Printf("d(%d) = %d\n", n, res.Count)
	}
	// Output:
	// [exact rule trig]
	// d(1) = 1
	// d(2) = 0
	// d(9) = 37
}

// ExampleRuleValue evaluates the closed form on odd n.
func ExampleRuleValue() {
	for _, n := range []int{1, 3, 9, 19} {
		fmt.Printf("a(%d) = %d\n", n, RuleValue(n))
	}
	// Output:
	// a(1) = 1
	// a(3) = 7
	// a(9) = 37
	// a(19) = 67
}
