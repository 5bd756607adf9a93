//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// ParseError describes a malformed circuit file. Line is 1-based and
// counts every line of the file, including blank ones.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ValidationError describes caller-supplied data that disagrees with
// the circuit details: an input vector of the wrong width, or RGC files
// that are internally inconsistent. The caller can recover by supplying
// correct data.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, a ...interface{}) error {
	return &ValidationError{
		Msg: fmt.Sprintf(format, a...),
	}
}

// IntegrityError describes a broken circuit invariant: a wire ID
// outside the declared range, a gate output not strictly after its
// parents, or a garbled circuit whose output differs from the
// original's. It is always a defect, never a legitimate input
// condition.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return e.Msg
}

func integrityf(format string, a ...interface{}) error {
	return &IntegrityError{
		Msg: fmt.Sprintf(format, a...),
	}
}
