// This file declares LexicalItem and the package's sentinel errors.
package syntax

import (
	"errors"

	"github.com/lingolabs/minigram/feature"
)

// ErrNilChild indicates that NewInternal was given a nil child; internal
// nodes always hold an ordered pair of real subtrees.
var ErrNilChild = errors.New("syntax: internal node child is nil")

// LexicalItem pairs a phonological surface form with its ordered initial
// feature list. Immutable; construct with NewLexicalItem.
type LexicalItem struct {
	phon  string
	feats []feature.Feature
}

// NewLexicalItem builds a LexicalItem from a surface form and its feature
// list. The feature slice is copied, so callers may reuse their slice.
func NewLexicalItem(phon string, feats ...feature.Feature) LexicalItem {
	cp := make([]feature.Feature, len(feats))
	copy(cp, feats)

	return LexicalItem{phon: phon, feats: cp}
}

// Phon returns the phonological surface form.
func (li LexicalItem) Phon() string { return li.phon }

// Features returns a copy of the ordered feature list.
func (li LexicalItem) Features() []feature.Feature {
	cp := make([]feature.Feature, len(li.feats))
	copy(cp, li.feats)

	return cp
}
