// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = fmt.Errorf("builder: parameter too small: %w", network.ErrConfiguration)

// ErrConstructFailed indicates a nil constructor was passed to BuildEdges.
var ErrConstructFailed = fmt.Errorf("builder: construct failed: %w", network.ErrConfiguration)
