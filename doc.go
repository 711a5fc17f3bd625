// Package minigram is a minimalist-grammar derivation engine:
// it builds and validates hierarchical sentence structures from lexical
// items using two structure-building operations, Combine (Merge) and
// Displace (Move), governed by a feature-checking discipline.
//
// 🚀 What is minigram?
//
//	A small, deterministic, resource-bounded grammar core:
//		• feature  — syntactic categories and the four feature kinds
//		• syntax   — immutable derivation trees (leaves, traces, pairs)
//		• combine  — binary Merge with selector/category discharge
//		• displace — unary Move resolving licensing feature pairs
//		• derive   — the bounded greedy workspace engine
//		• grammar  — parse façade, demo lexicon, aⁿbⁿ witness generator
//
// ✨ Why choose minigram?
//
//   - Every failure is a typed, returned value — no panics, no logging
//   - Strict step and memory ceilings checked at every step boundary
//   - Deterministic tie-breaking — same input, same derivation, always
//   - Pure Go, exclusively-owned trees — no arenas, no shared pointers
//
// The matched-count witness (aⁿbⁿ) generator demonstrates that the
// grammar's generative power exceeds finite-state recognition; see
// grammar.GenerateMatchedPattern.
//
// Quick ASCII example, deriving "the student left":
//
//	        D (complete)
//	       /            \
//	    N [Cat D]       left
//	   /        \
//	 the      student
//
// Statistical continuation sampling, network services, CLIs and lexicon
// file loading are collaborators outside this module; they talk to the
// engine only through grammar.Parse and the derive package.
//
//	go get github.com/lingolabs/minigram
package minigram
