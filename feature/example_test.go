package feature_test

import (
	"fmt"

	"github.com/lingolabs/minigram/feature"
)

// ExampleFeature_Satisfies shows the satisfaction relation that drives
// Combine: a selector is discharged exactly by the matching category.
func ExampleFeature_Satisfies() {
	sel := feature.Sel(feature.Noun)
	fmt.Println(sel, "satisfied by", feature.Cat(feature.Noun), "→", sel.Satisfies(feature.Cat(feature.Noun)))
	fmt.Println(sel, "satisfied by", feature.Cat(feature.Verb), "→", sel.Satisfies(feature.Cat(feature.Verb)))
	// Output:
	// sel(N) satisfied by cat(N) → true
	// sel(N) satisfied by cat(V) → false
}

// ExampleFeature_Licenses shows the licensing relation that drives Displace.
func ExampleFeature_Licenses() {
	pos := feature.Pos(1)
	fmt.Println(pos, "licenses", feature.Neg(1), "→", pos.Licenses(feature.Neg(1)))
	fmt.Println(pos, "licenses", feature.Neg(2), "→", pos.Licenses(feature.Neg(2)))
	// Output:
	// pos(1) licenses neg(1) → true
	// pos(1) licenses neg(2) → false
}
