// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package boot

import "errors"

// ErrLowMemory is returned if the host has too little available memory
// to give the machine a useful share.
var ErrLowMemory = errors.New("not enough available memory")
