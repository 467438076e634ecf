// Package core defines sentinel errors.
package core

import "errors"

var (
	// Capture source errors
	ErrCaptureRead = errors.New("synaudit: capture read failed")

	// Report sink errors
	ErrUnknownFormat = errors.New("synaudit: unknown report format")

	// Configuration errors
	ErrConfigInvalid = errors.New("synaudit: invalid configuration")
)
