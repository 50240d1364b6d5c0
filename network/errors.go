// SPDX-License-Identifier: MIT
// Package network: sentinel error set. Messages are prefixed "network: ...";
// match them with errors.Is.

package network

import "errors"

var (
	// ErrNilMatrix indicates FromCoo was given a nil coordinate matrix.
	ErrNilMatrix = errors.New("network: coordinate matrix is nil")

	// ErrDimensionMismatch indicates the string list does not match the matrix dimension.
	ErrDimensionMismatch = errors.New("network: string count does not match matrix dimension")

	// ErrUnknownNode indicates a link endpoint that is not a node id.
	ErrUnknownNode = errors.New("network: link references unknown node")

	// ErrSelfLoop indicates a link whose source equals its target. Pairs never
	// compare a string with itself.
	ErrSelfLoop = errors.New("network: self-loop link")

	// ErrNilGraph indicates a nil *Graph receiver.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrWrite indicates that the sink rejected serialized output; the I/O
	// error is wrapped alongside it.
	ErrWrite = errors.New("network: write failed")

	// ErrDecode indicates a node-link document that could not be decoded.
	ErrDecode = errors.New("network: decode failed")
)
