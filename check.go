// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshtools provides CPU-side algorithms over [mesh.Mesh] values:
// merging independently laid out meshes into one interleaved
// vertex/index buffer ([Concatenate], [ConcatenateInto]), synthesizing
// index buffers that flatten strip, loop, fan and quad topology into
// plain lines and triangles ([GenerateIndices], [GenerateQuadIndices]),
// index compression, normal generation, and vertex deduplication.
//
// All operations are synchronous, deterministic transforms with no
// shared state. Failures are contract violations (caller errors), not
// runtime conditions: with [Checks] enabled (the default) a violated
// precondition logs a descriptive diagnostic and the operation returns a
// zero value; with Checks disabled the guards are skipped entirely and
// the operation relies on the preconditions actually holding.
package meshtools

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// Checks enables the contract checks guarding every operation in this
// package. It is on by default; performance-critical callers that
// guarantee their inputs can turn it off to skip the guards, trading
// diagnostics for speed. With Checks off a violated precondition
// produces garbage output or an out-of-range panic instead of a logged
// diagnostic.
var Checks = true

// checkf returns true when cond holds or Checks is disabled; otherwise
// it logs the formatted contract-violation diagnostic and returns false,
// and the caller is expected to bail with a zero value.
func checkf(cond bool, format string, args ...any) bool {
	if !Checks || cond {
		return true
	}
	errors.Log(fmt.Errorf(format, args...))
	return false
}
