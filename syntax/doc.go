// Package syntax represents partial and complete derivations as immutable
// trees of syntactic objects.
//
// What:
//
//   - LexicalItem: a phonological string paired with an ordered initial
//     feature list, sourced from an external lexicon.
//   - Object: an immutable tree node — a leaf wrapping a LexicalItem, a
//     silent trace left behind by displacement, or an internal node holding
//     a resolved Category label, a residual feature list, and an ordered
//     pair of children.
//
// Why:
//
//   - Combine and Displace never mutate their operands; every operation
//     returns a new Object, preserving an acyclic, inspectable derivation
//     history. Each tree exclusively owns its children — never a cycle,
//     never a shared-reference graph.
//
// Key operations:
//
//   - IsComplete: the residual feature list is empty.
//   - Linearize: surface string via in-order leaf traversal; traces are
//     phonologically silent. Deterministic and idempotent.
//   - Size: node count plus residual feature count, the unit in which the
//     derivation workspace meters its memory ceiling.
//
// Complexity: Linearize, NodeCount and Size are O(n) in tree nodes;
// accessors are O(1) (feature accessors copy, O(f) in list length).
//
// Errors:
//
//   - ErrNilChild — NewInternal received a nil child.
package syntax
