// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// waitForEnter blocks until the operator presses enter, keeping the
// console window open when the program was started by double-click. It
// returns immediately if stdin is not a terminal.
func waitForEnter(cfg IO) {
	file, ok := cfg.Stdin.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return
	}

	fmt.Fprintln(cfg.Stderr, "Press Enter to close.")

	_, _ = bufio.NewReader(file).ReadString('\n')
}
