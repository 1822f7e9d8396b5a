// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vboxboot/vboxboot/internal/diskmap"
)

func newDevicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List physical disks and the volumes they back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mapping, err := diskmap.New(cmd.Context(), diskmap.HostEnumerator())
			if err != nil {
				return err
			}

			return mapping.WriteTable(cmd.OutOrStdout())
		},
	}
}
