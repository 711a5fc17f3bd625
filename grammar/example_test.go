package grammar_test

import (
	"fmt"

	"github.com/lingolabs/minigram/grammar"
)

// ExampleParse derives a clause with one embedded complement clause and
// prints its yield.
func ExampleParse() {
	obj, err := grammar.Parse("the student claims that the teacher arrived",
		grammar.DefaultLexicon())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("complete:", obj.IsComplete())
	fmt.Println("yield:", obj.Linearize())
	// Output:
	// complete: true
	// yield: the student claims that the teacher arrived
}

// ExampleGenerateMatchedPattern builds the three-pair witness string and
// recognizes it.
func ExampleGenerateMatchedPattern() {
	s := grammar.GenerateMatchedPattern(3)
	fmt.Println(s)
	fmt.Println(grammar.IsMatchedPattern(s))
	// Output:
	// a a a b b b
	// true
}
