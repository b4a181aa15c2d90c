// SPDX-License-Identifier: MIT
// Package capability: sentinel and typed errors.

package capability

import (
	"errors"
	"fmt"
)

// ErrMissing is matched (errors.Is) by every *MissingError.
var ErrMissing = errors.New("capability: missing operator")

// MissingError is the CapabilityError: the element type lacks a required
// operator. It carries both the operator signature and the type name.
type MissingError struct {
	Type     Type
	Operator Operator
}

// Error implements error.
func (e *MissingError) Error() string {
	return fmt.Sprintf("capability: %s lacks %s", e.Type.Name, e.Operator.Signature())
}

// Is makes errors.Is(err, ErrMissing) true.
func (e *MissingError) Is(target error) bool { return target == ErrMissing }
