// Package orchestration coordinates the concurrent execution of the
// algorithmic variants of a kernel operation and the consistency
// analysis of their results. All exp and log variants must agree on
// the reduced result; a disagreement is a critical defect surfaced
// with its own exit code.
package orchestration
