// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Process exit statuses.
const (
	exitUsage    = 1
	exitTemplate = 2
	exitEnv      = 3
)

var errUsage = errors.New("expected an output path and at least one input sheet")

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCode maps err to an exit status. Errors without one, such as cobra
// flag errors, count as usage errors.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func isUsage(err error) bool {
	return errors.Is(err, errUsage)
}

// outputAndInputs requires the output path and at least one input sheet.
func outputAndInputs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return withCode(exitUsage, fmt.Errorf("%w (got %d arguments)", errUsage, len(args)))
	}
	return nil
}
