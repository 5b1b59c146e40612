// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"

	"github.com/gogpu/shadermath/ir"
)

// Error reports a type that has no layout under a rule.
type Error struct {
	// Rule is the rule that rejected the type.
	Rule Rule

	// Type is the rejected type.
	Type ir.TypeInner

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("layout %s %s: %s", e.Rule, ir.TypeString(e.Type), e.Message)
}
