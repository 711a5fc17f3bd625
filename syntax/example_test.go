package syntax_test

import (
	"fmt"

	"github.com/lingolabs/minigram/feature"
	"github.com/lingolabs/minigram/syntax"
)

// ExampleObject_Linearize builds the tree for "the student left" by hand
// and reads back its surface string.
func ExampleObject_Linearize() {
	the := syntax.NewLeaf(syntax.NewLexicalItem("the",
		feature.Sel(feature.Noun), feature.Cat(feature.Det)))
	student := syntax.NewLeaf(syntax.NewLexicalItem("student",
		feature.Cat(feature.Noun)))
	left := syntax.NewLeaf(syntax.NewLexicalItem("left",
		feature.Sel(feature.Det)))

	np, _ := syntax.NewInternal(feature.Noun,
		[]feature.Feature{feature.Cat(feature.Det)}, the, student)
	root, _ := syntax.NewInternal(feature.Det, nil, np, left)

	fmt.Println(root.Linearize())
	fmt.Println("complete:", root.IsComplete())
	fmt.Println("tree:", root)
	// Output:
	// the student left
	// complete: true
	// tree: (D (N the student) left)
}
