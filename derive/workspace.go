package derive

import (
	"fmt"

	"github.com/lingolabs/minigram/combine"
	"github.com/lingolabs/minigram/displace"
	"github.com/lingolabs/minigram/syntax"
)

// Workspace is the bounded, mutable container holding the in-progress
// objects of one derivation attempt. Created empty, populated with lexical
// leaves, then driven by Step/Derive to a terminal phase. A Workspace is
// owned by exactly one derivation and must not be shared across goroutines.
type Workspace struct {
	items   []*syntax.Object
	opts    Options
	phase   Phase
	steps   int
	failure error
}

// NewWorkspace creates an empty workspace in the Populating phase.
// Returns ErrBadLimit if any configured ceiling is non-positive.
func NewWorkspace(opts ...Option) (*Workspace, error) {
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.StepLimit <= 0 || o.MemoryLimit <= 0 {
		return nil, ErrBadLimit
	}

	return &Workspace{opts: o, phase: Populating}, nil
}

// Push appends a lexical leaf to the workspace.
// Returns ErrWorkspaceSealed once derivation has started or terminated.
func (w *Workspace) Push(li syntax.LexicalItem) error {
	if w.phase != Populating {
		return ErrWorkspaceSealed
	}
	w.items = append(w.items, syntax.NewLeaf(li))

	return nil
}

// Len returns the number of objects not yet combined.
func (w *Workspace) Len() int { return len(w.items) }

// Steps returns the number of derivation steps applied so far.
func (w *Workspace) Steps() int { return w.steps }

// Phase returns the workspace lifecycle state.
func (w *Workspace) Phase() Phase { return w.phase }

// Failure returns the terminal failure, or nil before any.
func (w *Workspace) Failure() error { return w.failure }

// MemoryUsage returns the live workspace footprint in size units
// (tree nodes plus residual features, summed over all objects).
func (w *Workspace) MemoryUsage() int {
	total := 0
	var obj *syntax.Object
	for _, obj = range w.items {
		total += obj.Size()
	}

	return total
}

// Objects returns the current derivation roots in workspace order.
// The objects themselves are immutable; the returned slice is a copy.
func (w *Workspace) Objects() []*syntax.Object {
	cp := make([]*syntax.Object, len(w.items))
	copy(cp, w.items)

	return cp
}

// Step applies one bounded derivation step:
//
//  1. Ceilings: the step counter against StepLimit, then the memory
//     footprint against MemoryLimit. A breach is terminal.
//  2. Combine: the leftmost adjacent pair admitting Merge is replaced by
//     the merged object.
//  3. Displace: failing that, the leftmost object admitting Move is
//     replaced by the displaced object.
//  4. Stuck: failing both, the derivation terminates with ErrStuck,
//     wrapping the structural cause.
//
// Step is a no-op after success and repeats the recorded failure after one.
func (w *Workspace) Step() error {
	// Terminal phases are sticky.
	if w.phase == Succeeded {
		return nil
	}
	if w.phase == Failed {
		return w.failure
	}
	if len(w.items) == 0 {
		return w.fail(ErrEmptyWorkspace)
	}
	w.phase = Deriving

	// 1. Step ceiling, checked at every step boundary.
	if w.steps >= w.opts.StepLimit {
		return w.fail(ErrStepLimitExceeded)
	}
	w.steps++

	// 2. Memory ceiling: breach is terminal, never silent truncation.
	if w.MemoryUsage() > w.opts.MemoryLimit {
		return w.fail(ErrMemoryExceeded)
	}

	// 3. Greedy Combine: first adjacent pair wins, left to right.
	var i int
	for i = 0; i+1 < len(w.items); i++ {
		merged, err := combine.Combine(w.items[i], w.items[i+1])
		if err != nil {
			continue // recoverable: try the next pairing
		}
		w.items[i] = merged
		w.items = append(w.items[:i+1], w.items[i+2:]...)

		return nil
	}

	// 4. Displace: first object admitting Move, left to right.
	for i = 0; i < len(w.items); i++ {
		moved, err := displace.Displace(w.items[i])
		if err != nil {
			continue // recoverable: try the next object
		}
		w.items[i] = moved

		return nil
	}

	// 5. Neither operation applies and the workspace has not converged.
	cause := displace.ErrNoLicensingPair
	if len(w.items) > 1 {
		cause = combine.ErrIncompatibleFeatures
	}

	return w.fail(fmt.Errorf("%w: %w", ErrStuck, cause))
}

// Derive drives Step until exactly one complete object remains, returning
// it, or until a terminal failure, returning that failure. Repeated calls
// after termination replay the recorded outcome.
func (w *Workspace) Derive() (*syntax.Object, error) {
	if w.phase == Failed {
		return nil, w.failure
	}

	for {
		// Success: a single complete object.
		if len(w.items) == 1 && w.items[0].IsComplete() {
			w.phase = Succeeded

			return w.items[0], nil
		}
		if err := w.Step(); err != nil {
			return nil, err
		}
	}
}

// fail records err as the terminal failure and returns it.
func (w *Workspace) fail(err error) error {
	w.phase = Failed
	w.failure = err

	return err
}
