package ofm_test

import (
	"fmt"

	"github.com/katalvlaran/strix/ofm"
)

func ExampleOfm() {
	o := ofm.New[string]()
	o.PushBack("b")
	o.PushBack("c")
	o.PushFront("a")

	o.ForEach(func(s string) bool {
		fmt.Print(s)

		return true
	})
	fmt.Println()
	// Output: abc
}
