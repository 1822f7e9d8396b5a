// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package vbox

import "context"

// CreateRawDiskLink writes a virtual disk file at path that links the whole
// physical device into the hypervisor without copying any data. Reads and
// writes of a machine using the file go directly to the device.
func (m *Manage) CreateRawDiskLink(
	ctx context.Context,
	path, device string,
) error {
	_, err := m.run(ctx, "internalcommands", "createrawvmdk",
		"-filename", path,
		"-rawdisk", device)

	return err
}
