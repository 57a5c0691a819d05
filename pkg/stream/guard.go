package stream

import (
	"context"
	"errors"
)

// CodeExtractor maps a backend failure to a stable error code, or "".
type CodeExtractor func(err error) string

// Guard runs op and normalizes its failure into a *ContractError carrying the
// code found by extract (which may be nil). Success is forwarded unchanged.
// Context cancellation and deadline errors pass through untouched, and errors
// that already are a *ContractError are not wrapped twice.
func Guard[T any](ctx context.Context, op func(context.Context) (T, error), extract CodeExtractor) (T, error) {
	v, err := op(ctx)
	if err == nil {
		return v, nil
	}

	var zero T
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return zero, err
	}

	var ce *ContractError
	if errors.As(err, &ce) {
		return zero, err
	}

	var code string
	if extract != nil {
		code = extract(err)
	}

	return zero, &ContractError{Code: code, Err: err}
}

// GuardErr is Guard for operations without a result.
func GuardErr(ctx context.Context, op func(context.Context) error, extract CodeExtractor) error {
	_, err := Guard(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, extract)
	return err
}
