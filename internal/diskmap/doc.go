// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package diskmap resolves mounted volumes to the physical disk devices
// backing them.
//
// A [Mapping] is an immutable snapshot built by a single enumeration pass.
// Consumers hold and query the snapshot instead of re-enumerating, so all
// lookups of one run agree on the same view of the host.
package diskmap
