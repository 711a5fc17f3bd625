// This file declares Category, Kind, and Feature, their constructors,
// and the satisfaction/licensing relations.
package feature

import "strconv"

// Category is a syntactic type label. The set is closed: lexical heads
// (Noun, Verb, Det, Comp, Sentence) and their phrasal projections.
type Category uint8

const (
	// Noun is the lexical noun category (N).
	Noun Category = iota

	// Verb is the lexical verb category (V).
	Verb

	// Det is the determiner category (D).
	Det

	// Comp is the complementizer category (C).
	Comp

	// Sentence is the clause category (S).
	Sentence

	// NounPhrase is the phrasal projection of Noun (NP).
	NounPhrase

	// VerbPhrase is the phrasal projection of Verb (VP).
	VerbPhrase

	// DetPhrase is the phrasal projection of Det (DP).
	DetPhrase

	// CompPhrase is the phrasal projection of Comp (CP).
	CompPhrase
)

// categoryNames maps Category values to their conventional abbreviations.
var categoryNames = [...]string{"N", "V", "D", "C", "S", "NP", "VP", "DP", "CP"}

// String returns the conventional abbreviation for c, or "?" if c is
// outside the closed set.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return "?"
}

// Kind discriminates the four feature variants.
type Kind uint8

const (
	// Categorial marks a feature naming the object's own category.
	Categorial Kind = iota

	// Selector marks a feature requiring Combine with a matching category.
	Selector

	// Positive marks a licensing feature that triggers Displace.
	Positive

	// Negative marks a licensing feature that is the target of Displace.
	Negative
)

// kindNames maps Kind values to display prefixes.
var kindNames = [...]string{"cat", "sel", "pos", "neg"}

// String returns the short name of k, or "?" if k is out of range.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "?"
}

// Feature is an atomic requirement or capability governing which operations
// a syntactic object may legally participate in. It is an immutable,
// comparable value: category-flavored features (Categorial, Selector) carry
// a Category, licensing features (Positive, Negative) carry a numeric id.
type Feature struct {
	kind Kind
	cat  Category
	id   uint8
}

// Cat returns the categorial feature for c.
func Cat(c Category) Feature { return Feature{kind: Categorial, cat: c} }

// Sel returns the selector feature requiring a merge partner of category c.
func Sel(c Category) Feature { return Feature{kind: Selector, cat: c} }

// Pos returns the positive licensing feature with identifier id.
func Pos(id uint8) Feature { return Feature{kind: Positive, id: id} }

// Neg returns the negative licensing feature with identifier id.
func Neg(id uint8) Feature { return Feature{kind: Negative, id: id} }

// Kind reports which of the four variants f is.
func (f Feature) Kind() Kind { return f.kind }

// IsCategorial reports whether f is a categorial feature.
func (f Feature) IsCategorial() bool { return f.kind == Categorial }

// IsSelector reports whether f is a selector feature.
func (f Feature) IsSelector() bool { return f.kind == Selector }

// IsPositive reports whether f is a positive licensing feature.
func (f Feature) IsPositive() bool { return f.kind == Positive }

// IsNegative reports whether f is a negative licensing feature.
func (f Feature) IsNegative() bool { return f.kind == Negative }

// CategoryOf returns the category carried by f and true for categorial and
// selector features; the zero Category and false otherwise.
func (f Feature) CategoryOf() (Category, bool) {
	if f.kind == Categorial || f.kind == Selector {
		return f.cat, true
	}

	return 0, false
}

// LicenseID returns the licensing identifier carried by f and true for
// positive and negative features; zero and false otherwise.
func (f Feature) LicenseID() (uint8, bool) {
	if f.kind == Positive || f.kind == Negative {
		return f.id, true
	}

	return 0, false
}

// Satisfies reports whether f, as a selector, is satisfied by g:
// Sel(C) is satisfied exactly by Cat(C).
func (f Feature) Satisfies(g Feature) bool {
	return f.kind == Selector && g.kind == Categorial && f.cat == g.cat
}

// Licenses reports whether f, as a positive licensing feature, pairs with g:
// Pos(k) licenses exactly Neg(k).
func (f Feature) Licenses(g Feature) bool {
	return f.kind == Positive && g.kind == Negative && f.id == g.id
}

// String renders f in the compact "kind(payload)" form, e.g. sel(N), pos(1).
func (f Feature) String() string {
	switch f.kind {
	case Categorial, Selector:
		return f.kind.String() + "(" + f.cat.String() + ")"
	default:
		return f.kind.String() + "(" + strconv.Itoa(int(f.id)) + ")"
	}
}
