// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package diskmap

import "errors"

var (
	// ErrDeviceNotFound is returned if no physical disk device is mapped
	// for a volume.
	ErrDeviceNotFound = errors.New("no physical disk device found")

	// ErrEnumerationNotSupported is returned by [HostEnumerator] on
	// platforms without a volume enumeration implementation.
	ErrEnumerationNotSupported = errors.New(
		"disk enumeration not supported on this platform",
	)
)
