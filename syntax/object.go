// This file declares Object, its constructors, and its query operations.
package syntax

import (
	"strings"

	"github.com/lingolabs/minigram/feature"
)

// nodeKind discriminates the three node variants of a derivation tree.
type nodeKind uint8

const (
	leafNode nodeKind = iota // wraps a LexicalItem
	traceNode                // phonologically silent displacement site
	internalNode             // labeled pair of children
)

// Object is one node of an immutable derivation tree: a leaf wrapping a
// lexical item, a silent trace, or an internal node holding a resolved
// category label, a residual feature list, and an ordered pair of children.
//
// Objects are never mutated after construction; Combine and Displace build
// new trees around existing ones. A tree exclusively owns its children.
type Object struct {
	kind  nodeKind
	phon  string            // leaves only
	label feature.Category  // internal nodes only
	feats []feature.Feature // residual (undischarged) features
	left  *Object           // internal nodes only
	right *Object           // internal nodes only
}

// NewLeaf wraps a lexical item as a derivation leaf. The leaf's residual
// feature list starts as the item's initial feature list.
func NewLeaf(li LexicalItem) *Object {
	return &Object{kind: leafNode, phon: li.phon, feats: li.Features()}
}

// NewTrace returns the phonologically silent, featureless leaf that marks
// the original site of a displaced constituent.
func NewTrace() *Object {
	return &Object{kind: traceNode}
}

// NewInternal builds an internal node from a resolved label, a residual
// feature list (copied), and an ordered pair of children.
// Returns ErrNilChild if either child is nil.
func NewInternal(label feature.Category, feats []feature.Feature, left, right *Object) (*Object, error) {
	if left == nil || right == nil {
		return nil, ErrNilChild
	}
	cp := make([]feature.Feature, len(feats))
	copy(cp, feats)

	return &Object{kind: internalNode, label: label, feats: cp, left: left, right: right}, nil
}

// IsLeaf reports whether o wraps a lexical item.
func (o *Object) IsLeaf() bool { return o.kind == leafNode }

// IsTrace reports whether o is a silent displacement trace.
func (o *Object) IsTrace() bool { return o.kind == traceNode }

// IsInternal reports whether o is a derived (internal) node.
func (o *Object) IsInternal() bool { return o.kind == internalNode }

// Phon returns the surface form for leaves; the empty string otherwise.
func (o *Object) Phon() string { return o.phon }

// Label returns the node's category label. Internal nodes report their
// resolved label; a leaf reports the category of its first categorial
// feature, if any. Traces and category-free leaves report false.
func (o *Object) Label() (feature.Category, bool) {
	if o.kind == internalNode {
		return o.label, true
	}
	var f feature.Feature
	for _, f = range o.feats {
		if c, ok := f.CategoryOf(); ok && f.IsCategorial() {
			return c, true
		}
	}

	return 0, false
}

// Features returns a copy of the residual (undischarged) feature list.
func (o *Object) Features() []feature.Feature {
	cp := make([]feature.Feature, len(o.feats))
	copy(cp, o.feats)

	return cp
}

// OutermostFeature returns the feature governing the next legal operation
// on o, or false if the residual list is empty.
func (o *Object) OutermostFeature() (feature.Feature, bool) {
	if len(o.feats) == 0 {
		return feature.Feature{}, false
	}

	return o.feats[0], true
}

// WithoutOutermostFeature returns a copy of o with its outermost feature
// discharged (kind, phon, label and children preserved), or false if the
// residual list is already empty.
func (o *Object) WithoutOutermostFeature() (*Object, bool) {
	if len(o.feats) == 0 {
		return nil, false
	}
	cp := *o
	cp.feats = make([]feature.Feature, len(o.feats)-1)
	copy(cp.feats, o.feats[1:])

	return &cp, true
}

// WithoutFeature returns a copy of o with the first occurrence of f
// discharged from its residual list (kind, phon, label and children
// preserved), or false if f is not present.
func (o *Object) WithoutFeature(f feature.Feature) (*Object, bool) {
	var i int
	for i = range o.feats {
		if o.feats[i] == f {
			cp := *o
			cp.feats = make([]feature.Feature, 0, len(o.feats)-1)
			cp.feats = append(cp.feats, o.feats[:i]...)
			cp.feats = append(cp.feats, o.feats[i+1:]...)

			return &cp, true
		}
	}

	return nil, false
}

// Left returns the left child of an internal node, or false otherwise.
func (o *Object) Left() (*Object, bool) {
	if o.kind != internalNode {
		return nil, false
	}

	return o.left, true
}

// Right returns the right child of an internal node, or false otherwise.
func (o *Object) Right() (*Object, bool) {
	if o.kind != internalNode {
		return nil, false
	}

	return o.right, true
}

// IsComplete reports whether the residual feature list is empty — the
// success criterion for a finished derivation root.
func (o *Object) IsComplete() bool { return len(o.feats) == 0 }

// Linearize produces the surface string by in-order leaf traversal,
// respecting recorded displacement: traces contribute nothing, leaf forms
// are joined by single spaces. Linearizing twice yields identical strings.
func (o *Object) Linearize() string {
	var tokens []string
	o.collectPhon(&tokens)

	return strings.Join(tokens, " ")
}

// collectPhon appends the non-silent leaf forms of o in order.
func (o *Object) collectPhon(tokens *[]string) {
	switch o.kind {
	case leafNode:
		if o.phon != "" {
			*tokens = append(*tokens, o.phon)
		}
	case internalNode:
		o.left.collectPhon(tokens)
		o.right.collectPhon(tokens)
	case traceNode:
		// silent
	}
}

// NodeCount returns the number of nodes in the tree rooted at o.
func (o *Object) NodeCount() int {
	if o.kind != internalNode {
		return 1
	}

	return 1 + o.left.NodeCount() + o.right.NodeCount()
}

// FeatureCount returns the number of residual features at the root of o.
func (o *Object) FeatureCount() int { return len(o.feats) }

// Size returns the workspace memory footprint of o: tree nodes plus
// residual root features.
func (o *Object) Size() int { return o.NodeCount() + o.FeatureCount() }

// String renders the tree in compact bracket notation: leaves as their
// surface form, traces as "t", internal nodes as (Label left right).
func (o *Object) String() string {
	switch o.kind {
	case leafNode:
		return o.phon
	case traceNode:
		return "t"
	default:
		return "(" + o.label.String() + " " + o.left.String() + " " + o.right.String() + ")"
	}
}
