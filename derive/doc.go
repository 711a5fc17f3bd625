// Package derive implements the bounded derivation engine: a Workspace
// holding an ordered sequence of syntactic objects, driven by repeated
// Combine and Displace steps until one complete object remains or a
// failure condition triggers.
//
// What:
//
//   - Phase machine: Populating → Deriving → Succeeded | Failed.
//     Populating accepts lexical leaves via Push; the first Step seals the
//     workspace and starts Deriving.
//   - Step: one bounded derivation step. Ceilings first — the step counter
//     against StepLimit and the workspace memory footprint against
//     MemoryLimit — then the greedy scan: the leftmost adjacent pair
//     admitting Combine is applied; failing that, the leftmost object
//     admitting Displace; failing both, the derivation is stuck.
//   - Derive: drives Step to termination and returns the single complete
//     object, or the terminal failure.
//
// Why greedy:
//
//	First compatible pair wins and there is no backtracking, trading
//	completeness (some valid derivations may be missed) for bounded,
//	predictable cost. Pairs are adjacent in the ordered workspace, so a
//	successful parse always linearizes back to its input. This is a
//	documented simplification, not a defect.
//
// Resource model: single-threaded and synchronous. Each derivation owns
// its Workspace exclusively and discards it at termination; bounding is
// achieved purely through the caller-supplied step and memory ceilings,
// checked at every step boundary. There is no interrupt mechanism and no
// internal retry.
//
// Complexity: one Step is O(k·f) for k workspace objects with feature
// lists of length f, plus O(n) memory metering over tree nodes.
//
// Errors:
//
//   - ErrStuck             — no operation applies; wraps the structural
//     cause (combine.ErrIncompatibleFeatures or
//     displace.ErrNoLicensingPair).
//   - ErrMemoryExceeded    — memory ceiling breached; terminal.
//   - ErrStepLimitExceeded — step ceiling reached; terminal.
//   - ErrEmptyWorkspace    — Step or Derive on an unpopulated workspace.
//   - ErrWorkspaceSealed   — Push after derivation started.
//   - ErrBadLimit          — non-positive ceiling configured.
package derive
