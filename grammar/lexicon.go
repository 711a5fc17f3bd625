// This file declares Lexicon and the built-in demonstration vocabulary.
package grammar

import (
	"github.com/lingolabs/minigram/feature"
	"github.com/lingolabs/minigram/syntax"
)

// Lexicon maps surface forms to their ordered initial feature lists.
// It is passed explicitly into each Parse call; this package never holds
// one as ambient state.
type Lexicon map[string][]feature.Feature

// Lookup resolves a token to a lexical item, copying the feature list.
func (lx Lexicon) Lookup(token string) (syntax.LexicalItem, bool) {
	feats, ok := lx[token]
	if !ok {
		return syntax.LexicalItem{}, false
	}

	return syntax.NewLexicalItem(token, feats...), true
}

// DefaultLexicon returns a small built-in English fragment for
// demonstrations and tests: determiners select nouns, matrix intransitives
// select determiner phrases, "that"-clauses embed under clause-taking
// verbs, and "who"/"praised" carry a licensing pair for displacement.
func DefaultLexicon() Lexicon {
	return Lexicon{
		// Determiners.
		"the": {feature.Sel(feature.Noun), feature.Cat(feature.Det)},
		"a":   {feature.Sel(feature.Noun), feature.Cat(feature.Det)},

		// Nouns.
		"student": {feature.Cat(feature.Noun)},
		"tutor":   {feature.Cat(feature.Noun)},
		"teacher": {feature.Cat(feature.Noun)},
		"doctor":  {feature.Cat(feature.Noun)},

		// Matrix intransitives: close off a clause.
		"left":   {feature.Sel(feature.Det)},
		"smiled": {feature.Sel(feature.Det)},

		// Embedded intransitive: projects a verb category for "that".
		"arrived": {feature.Sel(feature.Det), feature.Cat(feature.Verb)},

		// Clause-taking verbs: matrix and embeddable variants.
		"claims": {feature.Sel(feature.Comp), feature.Sel(feature.Det)},
		"thinks": {feature.Sel(feature.Comp), feature.Sel(feature.Det)},
		"said":   {feature.Sel(feature.Comp), feature.Sel(feature.Det), feature.Cat(feature.Verb)},

		// Complementizer.
		"that": {feature.Sel(feature.Verb), feature.Cat(feature.Comp)},

		// Displacement pair: "praised who" derives fronted "who praised".
		"who":     {feature.Cat(feature.Det), feature.Neg(1)},
		"praised": {feature.Sel(feature.Det), feature.Pos(1)},
	}
}
