package combine

import (
	"errors"

	"github.com/lingolabs/minigram/feature"
	"github.com/lingolabs/minigram/syntax"
)

var (
	// ErrIncompatibleFeatures indicates that neither ordering of the two
	// operands admits Merge. Recoverable: the caller may try other pairings.
	ErrIncompatibleFeatures = errors.New("combine: incompatible features")

	// ErrNilObject indicates a nil operand.
	ErrNilObject = errors.New("combine: nil syntactic object")
)

// Combine merges two syntactic objects, a leftward of b in surface order.
// It first tries a selecting b, then — when a is a derived phrase — b
// selecting a. On success both matched features are discharged; the result
// is labeled with the selected category, carries the selecting side's
// remaining features followed by the selected side's remaining features,
// and keeps [a, b] as its children in surface order.
//
// Pure function: neither operand is mutated.
// Returns ErrIncompatibleFeatures when no ordering matches.
func Combine(a, b *syntax.Object) (*syntax.Object, error) {
	// 1. Validate operands.
	if a == nil || b == nil {
		return nil, ErrNilObject
	}

	// 2. Head-complement: a selects b, complement merges rightward.
	if sel, ok := selects(a, b); ok {
		return build(sel, a, b, true)
	}

	// 3. Specifier: b selects a, legal only for a derived left phrase.
	if a.IsInternal() {
		if sel, ok := selects(b, a); ok {
			return build(sel, a, b, false)
		}
	}

	return nil, ErrIncompatibleFeatures
}

// CanCombine reports whether Combine(a, b) would succeed.
func CanCombine(a, b *syntax.Object) bool {
	if a == nil || b == nil {
		return false
	}
	if _, ok := selects(a, b); ok {
		return true
	}
	if a.IsInternal() {
		if _, ok := selects(b, a); ok {
			return true
		}
	}

	return false
}

// selects reports whether x's outermost feature is a selector satisfied by
// y's outermost category feature, returning the selected category.
func selects(x, y *syntax.Object) (feature.Category, bool) {
	fx, ok := x.OutermostFeature()
	if !ok {
		return 0, false
	}
	fy, ok := y.OutermostFeature()
	if !ok {
		return 0, false
	}
	if !fx.Satisfies(fy) {
		return 0, false
	}
	cat, _ := fx.CategoryOf()

	return cat, true
}

// build assembles the merged node. aSelects fixes which side contributes
// its remainder first; children stay in surface order [a, b] either way.
func build(label feature.Category, a, b *syntax.Object, aSelects bool) (*syntax.Object, error) {
	restA := a.Features()[1:]
	restB := b.Features()[1:]

	residual := make([]feature.Feature, 0, len(restA)+len(restB))
	if aSelects {
		residual = append(residual, restA...)
		residual = append(residual, restB...)
	} else {
		residual = append(residual, restB...)
		residual = append(residual, restA...)
	}

	return syntax.NewInternal(label, residual, a, b)
}
