// Package displace implements Move, the unary structure-building operation:
// a constituent carrying a negative licensing feature relocates to the top
// of an object whose outermost feature is the matching positive license.
//
// What:
//
//   - Displace(obj): obj's outermost feature must be Positive(k). The proper
//     descendants of obj (never obj itself) are searched breadth-first,
//     left to right, for the nearest constituent whose residual feature
//     list carries Negative(k) — minimal tree distance wins, leftmost wins
//     at equal depth. Both features are discharged: the relocated
//     constituent fronts as the new left child, and a phonologically silent
//     trace marks its original site. Exactly one licensing pair is resolved
//     per call; successive displacements take successive calls.
//   - CanDisplace(obj): the success predicate, without building the result.
//
// Why:
//
//	Locality. The nearest-match discipline is the standard minimality
//	condition on movement, and because Merge concatenates remainders
//	upward, the nearest carrier is the maximal phrase containing the
//	licensee — the whole phrase relocates, as in pied-piping. Resolving one
//	pair per call keeps every derivation step small, bounded, and
//	deterministic.
//
// Complexity: O(n·f) in tree nodes and feature-list length for the search,
// plus O(d) for the spine rebuild at displacement depth d.
//
// Errors:
//
//   - ErrNoLicensingPair — no positive license governs obj, or no proper
//     descendant answers it. A recoverable control signal: the derivation
//     engine reads it as "no displacement available at this step".
//   - ErrNilObject      — obj is nil.
package displace
