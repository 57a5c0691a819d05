package stream

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is returned for malformed input or a signer without a public key.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a stream account is absent or cannot be decoded.
	ErrNotFound = errors.New("stream not found")

	// ErrDecode is returned when raw account bytes do not match a known layout.
	ErrDecode = errors.New("decode error")

	// ErrContract matches every *ContractError.
	ErrContract = errors.New("contract error")
)

// ContractError wraps a failure of an external call (RPC, signer, program).
// Code is a stable backend error name when one could be extracted.
type ContractError struct {
	Code string
	Err  error
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s [%s]: %v", ErrContract, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrContract, e.Err)
}

// Unwrap returns the original error.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// Is reports ErrContract as a match.
func (e *ContractError) Is(target error) bool {
	return target == ErrContract
}

// CodeOf returns the backend error code carried by err, if any.
func CodeOf(err error) string {
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
