// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package boot

import (
	"fmt"

	"github.com/vboxboot/vboxboot/internal/vbox"
)

// MinMemoryMB is the least available host memory a boot proceeds with.
const MinMemoryMB = 1024

// ComputeResources derives the machine sizing from the host facts: half
// the logical cores (at least one), half the available memory, a sixth
// of the available memory as video memory capped at [vbox.VRAMLimitMB].
// All divisions round down.
//
// Hosts with less than [MinMemoryMB] of available memory are rejected
// with [ErrLowMemory].
func ComputeResources(cores int, availableMB uint64) (vbox.Resources, error) {
	if availableMB < MinMemoryMB {
		return vbox.Resources{}, fmt.Errorf(
			"%w: %d MB available, %d MB required",
			ErrLowMemory, availableMB, MinMemoryMB,
		)
	}

	return vbox.Resources{
		MemoryMB: availableMB / 2,
		VRAMMB:   min(availableMB/6, vbox.VRAMLimitMB),
		CPUs:     uint64(max(cores/2, 1)),
	}, nil
}
