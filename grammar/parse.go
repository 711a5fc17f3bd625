// This file implements the parse entry point over the derivation engine.
package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lingolabs/minigram/derive"
	"github.com/lingolabs/minigram/syntax"
)

// ErrUnknownToken marks an input token absent from the lexicon.
var ErrUnknownToken = errors.New("grammar: unknown token")

// Parse tokenizes input on whitespace, resolves each token through lex,
// seeds a fresh workspace, and derives until termination.
//
// Returns the single complete syntactic object on success. On failure the
// error is ErrUnknownToken (naming the offending token), or one of the
// engine's terminal errors: derive.ErrStuck, derive.ErrMemoryExceeded,
// derive.ErrStepLimitExceeded, derive.ErrEmptyWorkspace.
func Parse(input string, lex Lexicon, opts ...derive.Option) (*syntax.Object, error) {
	// Step 1: create the workspace before touching the input, so option
	// defects surface first.
	w, err := derive.NewWorkspace(opts...)
	if err != nil {
		return nil, err
	}

	// Step 2: resolve tokens and seed the workspace in surface order.
	var tok string
	for _, tok = range strings.Fields(input) {
		li, ok := lex.Lookup(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
		}
		if err = w.Push(li); err != nil {
			return nil, err
		}
	}

	// Step 3: drive the derivation to termination.
	return w.Derive()
}
