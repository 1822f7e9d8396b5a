// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build !windows

package diskmap

import "context"

// HostEnumerator returns the [Enumerator] for the local host. Volume
// enumeration is only implemented for Windows hosts, so the returned
// enumerator fails with [ErrEnumerationNotSupported].
func HostEnumerator() Enumerator {
	return EnumerateFunc(func(_ context.Context) ([]Entry, error) {
		return nil, ErrEnumerationNotSupported
	})
}
