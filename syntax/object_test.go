package syntax_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lingolabs/minigram/feature"
	"github.com/lingolabs/minigram/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaf builds a leaf object directly from a form and features.
func leaf(phon string, feats ...feature.Feature) *syntax.Object {
	return syntax.NewLeaf(syntax.NewLexicalItem(phon, feats...))
}

// TestLexicalItem_DefensiveCopies verifies the feature list cannot be
// mutated through either the constructor argument or the accessor.
func TestLexicalItem_DefensiveCopies(t *testing.T) {
	feats := []feature.Feature{feature.Sel(feature.Noun), feature.Cat(feature.Det)}
	li := syntax.NewLexicalItem("the", feats...)

	feats[0] = feature.Cat(feature.Verb)
	assert.Equal(t, feature.Sel(feature.Noun), li.Features()[0],
		"mutating the constructor slice must not reach the item")

	got := li.Features()
	got[1] = feature.Cat(feature.Verb)
	assert.Equal(t, feature.Cat(feature.Det), li.Features()[1],
		"mutating an accessor copy must not reach the item")
}

// TestNewInternal_NilChild verifies ErrNilChild on either side.
func TestNewInternal_NilChild(t *testing.T) {
	l := leaf("the", feature.Cat(feature.Det))

	_, err := syntax.NewInternal(feature.Det, nil, nil, l)
	assert.ErrorIs(t, err, syntax.ErrNilChild, "nil left child must error")

	_, err = syntax.NewInternal(feature.Det, nil, l, nil)
	assert.ErrorIs(t, err, syntax.ErrNilChild, "nil right child must error")
}

// TestObject_Kinds verifies the three node variants report themselves.
func TestObject_Kinds(t *testing.T) {
	l := leaf("student", feature.Cat(feature.Noun))
	tr := syntax.NewTrace()
	in, err := syntax.NewInternal(feature.Noun, nil, l, tr)
	require.NoError(t, err)

	assert.True(t, l.IsLeaf())
	assert.True(t, tr.IsTrace())
	assert.True(t, in.IsInternal())
	assert.False(t, l.IsInternal())
	assert.False(t, in.IsLeaf())
}

// TestObject_Label covers internal labels, leaf category inference,
// and label-free nodes.
func TestObject_Label(t *testing.T) {
	l := leaf("student", feature.Cat(feature.Noun))
	c, ok := l.Label()
	assert.True(t, ok, "leaf with a categorial feature has a label")
	assert.Equal(t, feature.Noun, c)

	// Selector-only leaf: no categorial feature, no label.
	v := leaf("smiled", feature.Sel(feature.Det))
	_, ok = v.Label()
	assert.False(t, ok, "selector-only leaf has no label")

	_, ok = syntax.NewTrace().Label()
	assert.False(t, ok, "traces have no label")

	in, err := syntax.NewInternal(feature.DetPhrase, nil, l, v)
	require.NoError(t, err)
	c, ok = in.Label()
	assert.True(t, ok)
	assert.Equal(t, feature.DetPhrase, c)
}

// TestObject_OutermostFeature verifies ordered feature access.
func TestObject_OutermostFeature(t *testing.T) {
	l := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))

	f, ok := l.OutermostFeature()
	assert.True(t, ok)
	assert.Equal(t, feature.Sel(feature.Noun), f, "outermost is the first listed feature")

	_, ok = syntax.NewTrace().OutermostFeature()
	assert.False(t, ok, "trace has no features")
}

// TestObject_WithoutOutermostFeature verifies discharge copies and leaves
// the original untouched.
func TestObject_WithoutOutermostFeature(t *testing.T) {
	l := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))

	rest, ok := l.WithoutOutermostFeature()
	require.True(t, ok)
	assert.Equal(t, []feature.Feature{feature.Cat(feature.Det)}, rest.Features())
	assert.Equal(t, "the", rest.Phon(), "discharge preserves the surface form")
	assert.Len(t, l.Features(), 2, "original object is unchanged")

	_, ok = syntax.NewTrace().WithoutOutermostFeature()
	assert.False(t, ok, "nothing to discharge on a trace")
}

// TestObject_WithoutFeature verifies removal of the first occurrence of a
// named feature, anywhere in the residual list.
func TestObject_WithoutFeature(t *testing.T) {
	l := leaf("who", feature.Cat(feature.Det), feature.Neg(1))

	rest, ok := l.WithoutFeature(feature.Neg(1))
	require.True(t, ok)
	assert.Equal(t, []feature.Feature{feature.Cat(feature.Det)}, rest.Features())
	assert.Equal(t, "who", rest.Phon())
	assert.Len(t, l.Features(), 2, "original object is unchanged")

	// Only the first occurrence goes.
	d := leaf("whom", feature.Neg(1), feature.Neg(1))
	rest, ok = d.WithoutFeature(feature.Neg(1))
	require.True(t, ok)
	assert.Equal(t, []feature.Feature{feature.Neg(1)}, rest.Features())

	_, ok = l.WithoutFeature(feature.Neg(2))
	assert.False(t, ok, "absent feature cannot be removed")

	_, ok = syntax.NewTrace().WithoutFeature(feature.Neg(1))
	assert.False(t, ok, "traces carry no features")
}

// TestObject_IsComplete verifies the empty-residual success criterion.
func TestObject_IsComplete(t *testing.T) {
	assert.False(t, leaf("student", feature.Cat(feature.Noun)).IsComplete())
	assert.True(t, syntax.NewTrace().IsComplete())

	in, err := syntax.NewInternal(feature.Det, nil,
		leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det)),
		leaf("student", feature.Cat(feature.Noun)))
	require.NoError(t, err)
	assert.True(t, in.IsComplete(), "empty residual list means complete")
}

// TestObject_Linearize covers leaf order, trace silence, and idempotence.
func TestObject_Linearize(t *testing.T) {
	the := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))
	student := leaf("student", feature.Cat(feature.Noun))
	np, err := syntax.NewInternal(feature.Noun, []feature.Feature{feature.Cat(feature.Det)}, the, student)
	require.NoError(t, err)

	left := leaf("left", feature.Sel(feature.Det))
	root, err := syntax.NewInternal(feature.Det, nil, np, left)
	require.NoError(t, err)

	assert.Equal(t, "the student left", root.Linearize())
	assert.Equal(t, root.Linearize(), root.Linearize(), "linearization is idempotent")

	// A trace at the original site stays silent.
	withTrace, err := syntax.NewInternal(feature.Det, nil, np, syntax.NewTrace())
	require.NoError(t, err)
	assert.Equal(t, "the student", withTrace.Linearize())
}

// TestObject_SizeAccounting verifies node, feature, and combined size counts.
func TestObject_SizeAccounting(t *testing.T) {
	the := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))
	student := leaf("student", feature.Cat(feature.Noun))
	np, err := syntax.NewInternal(feature.Noun, []feature.Feature{feature.Cat(feature.Det)}, the, student)
	require.NoError(t, err)

	assert.Equal(t, 3, np.NodeCount(), "two leaves plus one internal node")
	assert.Equal(t, 1, np.FeatureCount(), "one residual feature at the root")
	assert.Equal(t, 4, np.Size())
}

// TestObject_Immutability verifies that building a new tree around an
// object leaves the original structurally identical.
func TestObject_Immutability(t *testing.T) {
	the := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))
	before := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))

	student := leaf("student", feature.Cat(feature.Noun))
	_, err := syntax.NewInternal(feature.Noun, []feature.Feature{feature.Cat(feature.Det)}, the, student)
	require.NoError(t, err)

	if diff := cmp.Diff(before, the, cmp.AllowUnexported(syntax.Object{}, feature.Feature{})); diff != "" {
		t.Errorf("object mutated by tree construction (-want +got):\n%s", diff)
	}
}

// TestObject_String covers the bracket rendering of all node kinds.
func TestObject_String(t *testing.T) {
	the := leaf("the", feature.Sel(feature.Noun), feature.Cat(feature.Det))
	student := leaf("student", feature.Cat(feature.Noun))
	np, err := syntax.NewInternal(feature.Noun, nil, the, student)
	require.NoError(t, err)

	assert.Equal(t, "(N the student)", np.String())
	assert.Equal(t, "t", syntax.NewTrace().String())
}
