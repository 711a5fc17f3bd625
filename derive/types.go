// This file declares the Phase machine, Options, functional Option setters,
// and the package's sentinel errors.
package derive

import "errors"

// Sentinel errors for derivation. Structural causes from the operation
// packages surface only wrapped inside ErrStuck; match with errors.Is.
var (
	// ErrStuck indicates that no Combine or Displace applies and the
	// workspace has not converged to a single complete object.
	ErrStuck = errors.New("derive: derivation stuck")

	// ErrMemoryExceeded indicates the workspace memory footprint breached
	// the configured ceiling. Terminal; never silently truncated.
	ErrMemoryExceeded = errors.New("derive: memory ceiling exceeded")

	// ErrStepLimitExceeded indicates the step counter reached the
	// configured ceiling. Terminal.
	ErrStepLimitExceeded = errors.New("derive: step ceiling exceeded")

	// ErrEmptyWorkspace indicates Step or Derive was called before any
	// lexical leaf was pushed.
	ErrEmptyWorkspace = errors.New("derive: empty workspace")

	// ErrWorkspaceSealed indicates Push was called after derivation
	// started or terminated.
	ErrWorkspaceSealed = errors.New("derive: workspace is sealed")

	// ErrBadLimit indicates a non-positive step or memory ceiling.
	ErrBadLimit = errors.New("derive: ceiling must be positive")
)

// Phase is the lifecycle state of a Workspace.
type Phase uint8

const (
	// Populating: the workspace accepts lexical leaves via Push.
	Populating Phase = iota

	// Deriving: steps are being applied; Push is rejected.
	Deriving

	// Succeeded: exactly one complete object remains.
	Succeeded

	// Failed: a terminal failure was recorded; see Workspace.Failure.
	Failed
)

// phaseNames maps Phase values to display names.
var phaseNames = [...]string{"Populating", "Deriving", "Succeeded", "Failed"}

// String returns the phase name, or "?" if p is out of range.
func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}

	return "?"
}

// Default ceilings, sized so ordinary sentences derive comfortably while
// runaway derivations terminate quickly.
const (
	// DefaultStepLimit bounds the number of derivation steps.
	DefaultStepLimit = 128

	// DefaultMemoryLimit bounds the workspace footprint in size units
	// (tree nodes plus residual features; see syntax.Object.Size).
	DefaultMemoryLimit = 1024
)

// Options holds the configurable ceilings of a Workspace.
type Options struct {
	// StepLimit is the maximum number of derivation steps.
	StepLimit int

	// MemoryLimit is the maximum workspace footprint, in size units.
	MemoryLimit int
}

// DefaultOptions returns Options with DefaultStepLimit and DefaultMemoryLimit.
func DefaultOptions() Options {
	return Options{StepLimit: DefaultStepLimit, MemoryLimit: DefaultMemoryLimit}
}

// Option configures a Workspace at construction.
// Use with NewWorkspace(opts...).
type Option func(*Options)

// WithStepLimit returns an Option that sets the step ceiling.
// NewWorkspace rejects non-positive values with ErrBadLimit.
func WithStepLimit(n int) Option {
	return func(o *Options) { o.StepLimit = n }
}

// WithMemoryLimit returns an Option that sets the memory ceiling,
// in size units. NewWorkspace rejects non-positive values with ErrBadLimit.
func WithMemoryLimit(n int) Option {
	return func(o *Options) { o.MemoryLimit = n }
}
