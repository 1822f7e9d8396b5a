// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound is returned if no VBoxManage executable can be located on the
// host.
var ErrNotFound = errors.New("VBoxManage executable not found")

// CommandError wraps a control program invocation that failed.
type CommandError struct {
	// Args is the argument vector of the failed invocation.
	Args []string

	// ExitCode is the exit code of the control program, or -1 if it did
	// not run to completion.
	ExitCode int

	// Output is the captured error output of the invocation.
	Output string

	// Err is the underlying process error.
	Err error
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	var sb strings.Builder

	sb.WriteString("VBoxManage")

	if len(e.Args) > 0 {
		sb.WriteString(" " + e.Args[0])
	}

	sb.WriteString(" failed with exit code ")
	sb.WriteString(strconv.Itoa(e.ExitCode))

	if e.Output != "" {
		sb.WriteString(": " + e.Output)
	}

	return sb.String()
}

// Is implements the [errors.Is] interface.
func (e *CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
