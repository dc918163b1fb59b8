// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/parososi/piedpiper"
)

func newDecompressCommand(log *logrus.Logger) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "decompress <input_path> <output_path>",
		Short: "Decompress a Pied Piper artifact",
		Args:  requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCancellable(func() error {
				return runDecompress(log, args[0], args[1], quiet)
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")

	return cmd
}

func runDecompress(log *logrus.Logger, inPath, outPath string, quiet bool) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var bar *progressbar.ProgressBar
	progress := piedpiper.ProgressFunc(nil)
	if !quiet {
		bar = progressbar.Default(100, "decompressing")
		progress = newCancellableProgress(ctx, bar)
	}

	log.WithField("input", inPath).Debug("starting decompress")

	out, err := piedpiper.Decompress(input, &piedpiper.DecompressOptions{Progress: progress})
	if err != nil {
		if required, ok := piedpiper.AsOutputTooSmall(err); ok {
			log.WithField("required_bytes", required).Error("output buffer too small")
		}
		return err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input_bytes":  len(input),
		"output_bytes": len(out),
	}).Info("decompress complete")

	if !quiet {
		fmt.Fprintln(os.Stderr)
	}
	return nil
}
