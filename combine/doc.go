// Package combine implements Merge, the binary structure-building
// operation: two syntactic objects join when one's outermost selector
// feature is satisfied by the other's outermost category feature.
//
// What:
//
//   - Combine(a, b): a is the leftward operand in surface order. Two
//     orderings are attempted — a selecting b (a head taking its complement
//     rightward), then b selecting a (a specifier landing leftward, legal
//     only when a is already a derived phrase). On success both features
//     are discharged: the result is labeled with the selected category, its
//     residual features are the selecting side's remainder followed by the
//     selected side's remainder, and its children keep surface order, so
//     linearization preserves input order with no extra bookkeeping.
//   - CanCombine(a, b): the success predicate, without building the result.
//
// Why:
//
//	The one-directional head-complement case plus the derived-phrase
//	condition on the swapped case is the Stabler linearization discipline:
//	first merge extends rightward, later merges leftward. It is what makes
//	"the student left" derive while "student the left" sticks.
//
// Complexity: O(f) in the operands' residual feature list lengths.
//
// Errors:
//
//   - ErrIncompatibleFeatures — no ordering admits Merge. A recoverable
//     control signal: the derivation engine uses it to try other pairings.
//   - ErrNilObject           — either operand is nil.
package combine
