// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, calculation, timeout) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapping error types implement the Unwrap() method to support errors.Is() and errors.As().
//
// The number-theoretic error taxonomy (not a unit, not convergent, precision
// lost, ...) lives in the padic package next to the operations that raise it;
// this package covers the application shell around the kernel.
package apperrors
