// Package feature defines the syntactic Category set and the four feature
// kinds of the minimalist-grammar feature calculus, together with the
// satisfaction and licensing relations that drive Combine and Displace.
//
// What:
//
//   - Category: closed set of syntactic types (Noun, Verb, Det, Comp,
//     Sentence and their phrasal projections).
//   - Feature: a tagged value — Categorial(C), Selector(C), Positive(id),
//     or Negative(id). Feature lists are ordered; the outermost feature
//     governs the next legal operation on an object.
//   - Satisfies: Selector(C) is satisfied exactly by Categorial(C).
//   - Licenses: Positive(k) pairs exactly with Negative(k).
//
// Why:
//
//   - Combine discharges a Selector against a matching Categorial feature.
//   - Displace discharges a Positive against a matching Negative feature.
//   - Both relations are pure equality checks on immutable values, so every
//     derivation step is deterministic and trivially reproducible.
//
// All types are comparable value types with no mutable state and no errors.
package feature
