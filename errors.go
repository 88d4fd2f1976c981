package bnctx

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by contexts and allocators.
var (
	// ErrTooManyTemporaries is returned by Get once a context has failed.
	ErrTooManyTemporaries = errors.New("bnctx: too many temporary variables")

	// ErrOutOfMemory is returned by an Allocator or Buffers implementation
	// that cannot satisfy a request.
	ErrOutOfMemory = errors.New("bnctx: out of memory")
)

// ModuleBN is the module tag contexts report under.
const ModuleBN = "BN"

// Code identifies a failure cause on an ErrorQueue.
type Code int

// CodeTooManyTemporaries means the temporary variable capacity of a context
// is exhausted. It is the only code a context reports.
const CodeTooManyTemporaries Code = 109

// String returns the human readable reason for c.
func (c Code) String() string {
	switch c {
	case CodeTooManyTemporaries:
		return "too many temporary variables"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Err returns the sentinel error matching c, or a generic error for codes
// this package does not define.
func (c Code) Err() error {
	if c == CodeTooManyTemporaries {
		return ErrTooManyTemporaries
	}
	return fmt.Errorf("bnctx: %s", c)
}

// ErrorQueue records failure causes. Implementations are shared by many
// contexts and must be safe for concurrent use.
type ErrorQueue interface {
	Report(module string, code Code)
}
