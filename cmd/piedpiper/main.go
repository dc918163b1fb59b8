// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

// Command piedpiper is a thin front end over the piedpiper package: it reads
// an input file, calls Compress or Decompress, and writes the result. It is
// an external collaborator to the codec, not part of its correctness
// contract — see SPEC_FULL.md §4.8.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	root := newRootCommand(log)
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
