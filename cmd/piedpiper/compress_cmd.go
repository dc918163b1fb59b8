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

func newCompressCommand(log *logrus.Logger) *cobra.Command {
	var level int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "compress <input_path> <output_path>",
		Short: "Compress a file into a Pied Piper artifact",
		Args:  requireArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCancellable(func() error {
				return runCompress(log, args[0], args[1], level, quiet)
			})
		},
	}

	cmd.Flags().IntVar(&level, "level", 6, "advisory compression level 1-9")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")

	return cmd
}

func runCompress(log *logrus.Logger, inPath, outPath string, level int, quiet bool) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var bar *progressbar.ProgressBar
	progress := piedpiper.ProgressFunc(nil)
	if !quiet {
		bar = progressbar.Default(100, "compressing")
		progress = newCancellableProgress(ctx, bar)
	}

	log.WithFields(logrus.Fields{"input": inPath, "level": level}).Debug("starting compress")

	out, err := piedpiper.Compress(input, &piedpiper.CompressOptions{Level: level, Progress: progress})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input_bytes":  len(input),
		"output_bytes": len(out),
	}).Info("compress complete")

	if !quiet {
		fmt.Fprintln(os.Stderr)
	}
	return nil
}
