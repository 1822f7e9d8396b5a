// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vboxboot/vboxboot/internal/boot"
)

func newTeardownCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Delete the machine and its workspace without booting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTeardown(cmd.Context(), opts)
		},
	}
}

func runTeardown(ctx context.Context, opts *options) error {
	hv, err := newHypervisor(ctx)
	if err != nil {
		return err
	}

	spec, err := newBootSpec(opts.cfg, "")
	if err != nil {
		return err
	}

	err = boot.Teardown(ctx, spec, hv)
	if err != nil {
		return err
	}

	err = os.RemoveAll(spec.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("remove workspace: %w", err)
	}

	slog.Info("Removed machine and workspace",
		slog.String("name", spec.MachineName),
		slog.String("workspace", spec.WorkspaceDir),
	)

	return nil
}
