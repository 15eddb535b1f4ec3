package intern_test

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/intern"
)

func Example() {
	table := intern.New()

	id := table.Add("Mr. Smith")
	fmt.Println(id, table.Add("Mr. Smith"), table.MustGet(id))

	// Output: 0 0 Mr. Smith
}

func ExampleTable_Get() {
	table := intern.New()
	table.Add("USD")

	_, err := table.Get(1)
	fmt.Println(errors.Is(err, intern.ErrOutOfRange))
	fmt.Println(err)

	// Output:
	// true
	// intern: id 1 out of range [0, 1)
}
