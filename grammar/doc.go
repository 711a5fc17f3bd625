// Package grammar is the parse/generate façade over the derivation engine.
//
// What:
//
//   - Parse(input, lexicon, opts...): tokenizes on whitespace, resolves
//     each token through the lexicon, seeds a fresh derivation workspace,
//     and drives it to termination. Success returns the single complete
//     syntactic object; failure returns one of the typed errors
//     (ErrUnknownToken, derive.ErrStuck, derive.ErrMemoryExceeded,
//     derive.ErrStepLimitExceeded, derive.ErrEmptyWorkspace).
//   - Lexicon: a mapping from surface forms to ordered feature lists,
//     passed explicitly into each Parse call — no ambient global state, so
//     derivations stay independent and testable in isolation. Loading
//     lexicons from files is owned by external collaborators;
//     DefaultLexicon provides a built-in demonstration vocabulary.
//   - GenerateMatchedPattern(n): the canonical matched-count witness — n
//     opening symbols followed by n closing symbols — built by direct
//     recursive center construction, independent of any lexicon or
//     derivation. The aⁿbⁿ language is the standard proof that the
//     grammar's generative power exceeds finite-state recognition.
//   - IsMatchedPattern(s): the recognizer for the witness language.
//
// Complexity: Parse is bounded by the workspace ceilings; pattern
// generation and recognition are O(n) in the symbol count.
//
// Errors:
//
//   - ErrUnknownToken — a token absent from the lexicon; a caller-input
//     defect, surfaced immediately and never retried internally.
package grammar
