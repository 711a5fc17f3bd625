package displace

import (
	"errors"

	"github.com/lingolabs/minigram/feature"
	"github.com/lingolabs/minigram/syntax"
)

var (
	// ErrNoLicensingPair indicates that no displacement is available: the
	// object's outermost feature is not a positive license, or no proper
	// descendant carries the matching negative license.
	ErrNoLicensingPair = errors.New("displace: no licensing pair")

	// ErrNilObject indicates a nil operand.
	ErrNilObject = errors.New("displace: nil syntactic object")
)

// Displace resolves exactly one licensing pair on obj: the outermost
// positive feature Pos(k) against the nearest proper descendant whose
// residual feature list carries Neg(k). Because Merge concatenates
// remainders upward, the nearest carrier is the maximal phrase containing
// the licensee, so the whole phrase relocates (pied-piping). Both features
// are discharged — the positive license and any flowed-up copy of the
// negative from obj's residual, and the negative from the relocated copy —
// the target fronts as the new left child, and a silent trace marks its
// original site.
//
// Pure function: obj is never mutated.
// Returns ErrNoLicensingPair when no displacement is available.
func Displace(obj *syntax.Object) (*syntax.Object, error) {
	// 1. Validate operand.
	if obj == nil {
		return nil, ErrNilObject
	}

	// 2. The outermost feature governs: it must be a positive license.
	pos, ok := obj.OutermostFeature()
	if !ok || !pos.IsPositive() {
		return nil, ErrNoLicensingPair
	}
	id, _ := pos.LicenseID()
	neg := feature.Neg(id)

	// 3. Nearest carrier among proper descendants: minimal depth wins,
	//    leftmost wins at equal depth.
	target := nearestCarrier(obj, neg)
	if target == nil {
		return nil, ErrNoLicensingPair
	}

	// 4. Discharge the negative license on the relocated copy.
	moved, _ := target.WithoutFeature(neg)

	// 5. Leave a trace at the original site.
	remnant := replaceWithTrace(obj, target)

	// 6. Discharge the positive license, and the flowed-up negative copy
	//    if Merge carried one into obj's residual.
	residual := obj.Features()[1:]
	residual = without(residual, neg)

	label, _ := obj.Label()

	return syntax.NewInternal(label, residual, moved, remnant)
}

// CanDisplace reports whether Displace(obj) would succeed.
func CanDisplace(obj *syntax.Object) bool {
	if obj == nil {
		return false
	}
	pos, ok := obj.OutermostFeature()
	if !ok || !pos.IsPositive() {
		return false
	}
	id, _ := pos.LicenseID()

	return nearestCarrier(obj, feature.Neg(id)) != nil
}

// nearestCarrier scans the proper descendants of root breadth-first,
// left to right, for the first constituent whose residual feature list
// carries neg. Frontier order alone realizes the locality tie-breaking:
// shallower matches are dequeued before deeper ones, leftward before
// rightward at equal depth.
func nearestCarrier(root *syntax.Object, neg feature.Feature) *syntax.Object {
	queue := make([]*syntax.Object, 0, root.NodeCount())
	if l, ok := root.Left(); ok {
		queue = append(queue, l)
	}
	if r, ok := root.Right(); ok {
		queue = append(queue, r)
	}

	var node *syntax.Object
	for len(queue) > 0 {
		node, queue = queue[0], queue[1:]

		if carries(node, neg) {
			return node
		}

		if l, ok := node.Left(); ok {
			queue = append(queue, l)
		}
		if r, ok := node.Right(); ok {
			queue = append(queue, r)
		}
	}

	return nil
}

// carries reports whether node's residual feature list contains f.
func carries(node *syntax.Object, f feature.Feature) bool {
	var g feature.Feature
	for _, g = range node.Features() {
		if g == f {
			return true
		}
	}

	return false
}

// without returns feats with the first occurrence of f removed, if any.
func without(feats []feature.Feature, f feature.Feature) []feature.Feature {
	var i int
	for i = range feats {
		if feats[i] == f {
			return append(feats[:i], feats[i+1:]...)
		}
	}

	return feats
}

// replaceWithTrace rebuilds the spine from node down to target, substituting
// a silent trace at target's site. Subtrees off the spine are reused as-is;
// node identity locates the site, which is unambiguous in exclusively-owned
// trees.
func replaceWithTrace(node, target *syntax.Object) *syntax.Object {
	if node == target {
		return syntax.NewTrace()
	}
	if !node.IsInternal() {
		return node
	}

	l, _ := node.Left()
	r, _ := node.Right()
	nl := replaceWithTrace(l, target)
	nr := replaceWithTrace(r, target)
	if nl == l && nr == r {
		return node
	}

	label, _ := node.Label()
	out, err := syntax.NewInternal(label, node.Features(), nl, nr)
	if err != nil {
		// Children of an existing internal node are never nil.
		return node
	}

	return out
}
