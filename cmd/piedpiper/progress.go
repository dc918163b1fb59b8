// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package main

import (
	"context"
	"errors"

	"github.com/schollz/progressbar/v3"

	"github.com/parososi/piedpiper"
)

// errUsage marks a cobra argument-validation failure.
var errUsage = errors.New("piedpiper: usage error")

// interruptiblePanic is the private sentinel panicked by newCancellableProgress
// and recovered by runCancellable. It never crosses a goroutine boundary and
// never re-enters the codec, honoring "MUST NOT re-enter the codec instance."
type interruptiblePanic struct{}

// newCancellableProgress renders percent ticks on bar and panics with
// interruptiblePanic{} if ctx is done, so an interrupted Compress/Decompress
// call unwinds instead of running to completion.
func newCancellableProgress(ctx context.Context, bar *progressbar.ProgressBar) piedpiper.ProgressFunc {
	last := 0
	return func(percent int) {
		if ctx.Err() != nil {
			panic(interruptiblePanic{})
		}
		_ = bar.Add(percent - last)
		last = percent
	}
}

// runCancellable invokes fn and converts an interruptiblePanic into
// errInterrupted. Any other panic propagates unchanged.
func runCancellable(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(interruptiblePanic); ok {
				err = errInterrupted
				return
			}
			panic(r)
		}
	}()
	return fn()
}
