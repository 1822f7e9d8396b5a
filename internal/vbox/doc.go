// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

// Package vbox drives Oracle VirtualBox through its VBoxManage control
// program.
//
// Every operation is one short-lived VBoxManage invocation with a fully
// specified argument vector. The client holds no state besides the location
// of the executable; all machine state lives in the hypervisor.
package vbox
