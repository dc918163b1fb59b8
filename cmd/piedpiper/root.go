// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/parososi/piedpiper"
)

// Exit codes, one per failure class so calling scripts can discriminate.
const (
	exitOK = iota
	exitUsage
	exitIO
	exitInvalidArgument
	exitOutputTooSmall
	exitMalformed
	exitChecksumMismatch
	exitInterrupted
)

// errInterrupted is the sentinel returned when a subcommand is cancelled via
// the host-level interrupt mechanism described in SPEC_FULL.md §5.
var errInterrupted = errors.New("piedpiper: interrupted")

// requireArgs wraps cobra.ExactArgs so a wrong argument count surfaces as
// errUsage (and so exitCodeFor maps it to exitUsage) instead of falling
// through to the default I/O exit code.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return nil
	}
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "piedpiper",
		Short:         "Pied Piper LZ77 compressor/decompressor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newCompressCommand(log))
	root.AddCommand(newDecompressCommand(log))

	return root
}

// exitCodeFor maps a command error to a stable process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInterrupted):
		return exitInterrupted
	case errors.Is(err, piedpiper.ErrInvalidArgument):
		return exitInvalidArgument
	case errors.Is(err, piedpiper.ErrOutputTooSmall):
		return exitOutputTooSmall
	case errors.Is(err, piedpiper.ErrMalformed):
		return exitMalformed
	case errors.Is(err, piedpiper.ErrChecksumMismatch):
		return exitChecksumMismatch
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		return exitIO
	}
}
