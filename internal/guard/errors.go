// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package guard

import "errors"

var (
	// ErrNotElevated is returned if the process lacks the administrative
	// privileges raw disk access requires.
	ErrNotElevated = errors.New("administrative privileges required")

	// ErrSameDisk is returned if the launcher runs from the disk that also
	// holds the running operating system.
	ErrSameDisk = errors.New("launcher disk holds the running system")

	// ErrMachineRunning is returned if the target machine is already
	// executing.
	ErrMachineRunning = errors.New("machine is already running")

	// ErrManagerRunning is returned if the hypervisor GUI is open.
	ErrManagerRunning = errors.New("VirtualBox manager is running")
)
