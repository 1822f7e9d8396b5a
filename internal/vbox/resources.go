// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

// VRAMLimitMB is the largest video memory allocation the hypervisor accepts
// for a machine.
const VRAMLimitMB = 256

// Resources are the hardware allocation parameters of a machine.
type Resources struct {
	// MemoryMB is the main memory of the machine in megabytes.
	MemoryMB uint64

	// VRAMMB is the video memory of the machine in megabytes.
	VRAMMB uint64

	// CPUs is the number of virtual CPUs of the machine.
	CPUs uint64
}
