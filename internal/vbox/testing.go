// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import (
	"context"
	"slices"
)

// CommandRecorder is a [Runner] that captures argument vectors and replies
// with canned output instead of executing anything. The zero value records
// all calls and replies with empty output.
type CommandRecorder struct {
	// Calls are the recorded argument vectors in invocation order.
	Calls [][]string

	// Stdout maps the leading argument of an invocation to its reply.
	Stdout map[string]string

	// Errs maps the leading argument of an invocation to a forced error.
	Errs map[string]error
}

// Run implements the [Runner] interface.
func (r *CommandRecorder) Run(
	_ context.Context,
	_ string,
	args []string,
) (string, error) {
	r.Calls = append(r.Calls, slices.Clone(args))

	key := ""
	if len(args) > 0 {
		key = args[0]
	}

	if err, exists := r.Errs[key]; exists {
		return "", err
	}

	return r.Stdout[key], nil
}
