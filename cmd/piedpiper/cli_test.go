// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestCompressDecompress_RoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.txt")
	cmpPath := filepath.Join(dir, "out.pp")
	outPath := filepath.Join(dir, "roundtrip.txt")

	payload := []byte("the quick brown fox jumps over the lazy dog, " +
		"the quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(inPath, payload, 0o644))

	log := discardLogger()

	require.NoError(t, runCompress(log, inPath, cmpPath, 6, true))
	require.NoError(t, runDecompress(log, cmpPath, outPath, true))

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestRunCompress_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := runCompress(discardLogger(), filepath.Join(dir, "missing"), filepath.Join(dir, "out.pp"), 6, true)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestRunDecompress_RejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "not-piedpiper.bin")
	require.NoError(t, os.WriteFile(inPath, []byte("definitely not a pp artifact"), 0o644))

	err := runDecompress(discardLogger(), inPath, filepath.Join(dir, "out"), true)
	require.Error(t, err)
}

func TestRootCommand_UnknownSubcommandFails(t *testing.T) {
	root := newRootCommand(discardLogger())
	root.SetArgs([]string{"frobnicate"})
	err := root.Execute()
	require.Error(t, err)
}

func TestRootCommand_CompressRequiresTwoArgs(t *testing.T) {
	root := newRootCommand(discardLogger())
	root.SetArgs([]string{"compress", "only-one-arg"})
	err := root.Execute()
	require.Error(t, err)
	require.ErrorIs(t, err, errUsage)
	require.Equal(t, exitUsage, exitCodeFor(err))
}

func TestExitCodeFor(t *testing.T) {
	require.Equal(t, exitOK, exitCodeFor(nil))
	require.Equal(t, exitInterrupted, exitCodeFor(errInterrupted))
	require.Equal(t, exitUsage, exitCodeFor(errUsage))
}
