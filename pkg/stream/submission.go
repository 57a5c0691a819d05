package stream

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrAlreadySubmitted is matched by DuplicateSubmissionError.
	ErrAlreadySubmitted = errors.New("transaction already submitted")

	// ErrSubmissionInProgress is returned when another submission holds the key.
	ErrSubmissionInProgress = errors.New("submission in progress")
)

// DuplicateSubmissionError reports a key whose transaction was already confirmed.
type DuplicateSubmissionError struct {
	Key  string
	TxID string
}

// Error implements the error interface.
func (e *DuplicateSubmissionError) Error() string {
	return fmt.Sprintf("%s: key %s confirmed as %s", ErrAlreadySubmitted, e.Key, e.TxID)
}

// Is reports ErrAlreadySubmitted as a match.
func (e *DuplicateSubmissionError) Is(target error) bool {
	return target == ErrAlreadySubmitted
}

// SubmissionGuard keeps a submission key from being broadcast twice.
//
// Claim must fail with ErrSubmissionInProgress while the key is held and with
// a *DuplicateSubmissionError once it was completed. Release frees a claim
// whose submission definitely failed.
type SubmissionGuard interface {
	Claim(ctx context.Context, key string) error
	Complete(ctx context.Context, key, txID string) error
	Release(ctx context.Context, key string) error
}

type nopGuard struct{}

// NopGuard returns a SubmissionGuard that allows everything.
func NopGuard() SubmissionGuard {
	return nopGuard{}
}

func (nopGuard) Claim(context.Context, string) error            { return nil }
func (nopGuard) Complete(context.Context, string, string) error { return nil }
func (nopGuard) Release(context.Context, string) error          { return nil }
