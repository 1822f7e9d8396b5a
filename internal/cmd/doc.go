// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI entry point for vboxboot. It handles
// command and flag parsing, configuration loading, error handling, and
// the operator pause on failure.
package cmd
