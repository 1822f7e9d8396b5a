// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package sys

import "errors"

// ErrPlatformNotSupported is returned if the host operating system cannot
// run the raw disk boot workflow.
var ErrPlatformNotSupported = errors.New("host platform not supported")
