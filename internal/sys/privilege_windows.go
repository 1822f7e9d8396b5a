// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

//go:build windows

package sys

import "golang.org/x/sys/windows"

// Elevated reports whether the current process runs with administrative
// privileges. Attaching a raw physical disk requires them.
func Elevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}
