// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel error set for OpenSet and ClosedSet.
// Policy:
//   - One sentinel per precondition, returned via errors.New, never wrapped
//     at this layer.

package core

import "errors"

// Sentinel errors returned by OpenSet and ClosedSet operations.
var (
	// ErrAlreadyOpen indicates Append was called for a (state, direction)
	// key that already has an entry in the OpenSet.
	ErrAlreadyOpen = errors.New("core: node already present in open set")

	// ErrNotInOpen indicates Get, Replace or Remove was called for a
	// (state, direction) key absent from the OpenSet.
	ErrNotInOpen = errors.New("core: node not present in open set")

	// ErrEmptyOpen indicates Peek or Pop was called on an empty OpenSet.
	ErrEmptyOpen = errors.New("core: open set is empty")

	// ErrNilNode indicates a nil *Node was passed where a populated node
	// was required.
	ErrNilNode = errors.New("core: node is nil")
)
