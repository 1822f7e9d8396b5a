// SPDX-FileCopyrightText: 2026 The vboxboot authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/vboxboot/vboxboot/internal/config"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// options collects flag values and the loaded machine profile.
type options struct {
	configFile string
	debug      bool
	noPause    bool
	name       string
	osType     string

	cfg *config.Config
}

// loadConfig loads the machine profile and applies flag overrides.
func (o *options) loadConfig() error {
	loaded, err := config.Load(o.configFile)
	if err != nil {
		return err
	}

	if o.name != "" {
		loaded.MachineName = o.name
	}

	if o.osType != "" {
		loaded.OSType = o.osType
	}

	o.cfg = loaded

	return nil
}

func newRootCommand(cfg IO, opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "vboxboot",
		Short: "Boot the physical disk this program runs from in VirtualBox",
		Long: `vboxboot links the physical disk it is started from into VirtualBox
and boots it in a fresh virtual machine. It is made for a portable
Linux install on an external drive: plug the drive into a Windows
host, run vboxboot as administrator, and the drive's system comes up
in a window.

The machine is deleted and recreated on every run so the disk is
always attached correctly and nothing stale is cached.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogging(cfg.Stderr, opts.debug)

			return opts.loadConfig()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoot(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default vboxboot.yaml next to the executable)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false,
		"enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noPause, "no-pause", false,
		"do not wait for enter before exiting on failure")
	root.PersistentFlags().StringVar(&opts.name, "name", "",
		"virtual machine name (overrides config)")
	root.PersistentFlags().StringVar(&opts.osType, "ostype", "",
		"guest OS type (overrides config)")

	root.AddCommand(newDevicesCommand())
	root.AddCommand(newTeardownCommand(opts))

	return root
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	// Double-clicking the binary in Explorer is the intended launch path.
	cobra.MousetrapHelpText = ""

	opts := &options{}

	root := newRootCommand(cfg, opts)
	root.SetArgs(args)
	root.SetIn(cfg.Stdin)
	root.SetOut(cfg.Stdout)
	root.SetErr(cfg.Stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		slog.Error(err.Error())

		if !opts.noPause {
			waitForEnter(cfg)
		}

		return 1
	}

	return 0
}

func buildVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "unknown"
	}

	return buildInfo.Main.Version
}
