package stream

import (
	"context"
	"math/big"

	"github.com/gabapcia/streamkit/pkg/batch"
)

// Schedule holds the creation parameters shared by Create and CreateMultiple.
type Schedule struct {
	Mint                    string `validate:"required"`
	Start                   uint64 // unix seconds, 0 means as soon as the ledger processes it
	Period                  uint64 `validate:"gt=0"`
	Cliff                   uint64
	CancelableBySender      bool
	CancelableByRecipient   bool
	TransferableBySender    bool
	TransferableByRecipient bool
	CanTopup                bool
	AutomaticWithdrawal     bool
	WithdrawalFrequency     uint64
	Partner                 string // fee sharing partner, empty for none
	IsNative                bool   // wrap native currency into the token before depositing
}

// CreateParams describes one stream to create.
type CreateParams struct {
	Schedule
	Recipient       string   `validate:"required"`
	Name            string   `validate:"max=64"`
	Deposited       *big.Int `validate:"required"`
	AmountPerPeriod *big.Int `validate:"required"`
	CliffAmount     *big.Int
	IdempotencyKey  string `validate:"max=128"`
}

// Recipient is one entry of a CreateMultiple call.
type Recipient struct {
	Recipient       string   `validate:"required"`
	Name            string   `validate:"max=64"`
	Deposited       *big.Int `validate:"required"`
	AmountPerPeriod *big.Int `validate:"required"`
	CliffAmount     *big.Int
}

// CreateMultipleParams describes streams sharing one schedule and sender.
type CreateMultipleParams struct {
	Schedule
	Recipients []Recipient `validate:"required,min=1,dive"`
}

// WithdrawParams withdraws from a stream. A nil Amount withdraws everything available.
type WithdrawParams struct {
	ID             string `validate:"required"`
	Amount         *big.Int
	IdempotencyKey string `validate:"max=128"`
}

// CancelParams cancels a stream.
type CancelParams struct {
	ID             string `validate:"required"`
	IdempotencyKey string `validate:"max=128"`
}

// TransferParams hands the recipient role of a stream to NewRecipient.
type TransferParams struct {
	ID             string `validate:"required"`
	NewRecipient   string `validate:"required"`
	IdempotencyKey string `validate:"max=128"`
}

// TopupParams adds Amount to a stream's deposit.
type TopupParams struct {
	ID             string   `validate:"required"`
	Amount         *big.Int `validate:"required"`
	IsNative       bool
	IdempotencyKey string `validate:"max=128"`
}

// GetParams selects the streams in which Address takes part.
type GetParams struct {
	Address   string    `validate:"required"`
	Direction Direction `validate:"omitempty,oneof=all incoming outgoing"`
	Type      Type      `validate:"omitempty,oneof=all stream vesting"`
}

// CreateResult is the outcome of a single stream creation.
type CreateResult struct {
	TxID     string `json:"txId"`
	StreamID string `json:"streamId"`
}

// TxResult is the outcome of a single mutation.
type TxResult struct {
	TxID string `json:"txId"`
}

// Entry pairs a stream with its account address.
type Entry struct {
	ID     string `json:"id"`
	Stream Stream `json:"stream"`
}

// Client is the lifecycle contract every ledger backend implements. S is the
// backend's signer capability.
//
// Mutations build one transaction, collect one signature and block until the
// ledger reports it final. They are never retried. Withdraw, Cancel, Transfer
// and Topup read the stream first and route funds through the accounts it
// records, failing with ErrNotFound when the account is absent or does not
// decode. A failed ledger read is not ErrNotFound: it surfaces as a
// *ContractError wrapping the ledger error, so callers can tell a missing
// stream from an unreachable ledger.
type Client[S any] interface {
	// Create creates one stream funded by the signer.
	Create(ctx context.Context, params CreateParams, signer S) (CreateResult, error)

	// CreateMultiple creates one stream per recipient with a single signing
	// round. A partially failed batch is reported through the result.
	CreateMultiple(ctx context.Context, params CreateMultipleParams, signer S) (batch.Result, error)

	// Withdraw moves unlocked funds to the recipient.
	Withdraw(ctx context.Context, params WithdrawParams, signer S) (TxResult, error)

	// Cancel stops the stream, paying out unlocked funds and returning the rest.
	Cancel(ctx context.Context, params CancelParams, signer S) (TxResult, error)

	// Transfer changes the stream recipient.
	Transfer(ctx context.Context, params TransferParams, signer S) (TxResult, error)

	// Topup increases the stream deposit.
	Topup(ctx context.Context, params TopupParams, signer S) (TxResult, error)

	// GetOne fetches and decodes one stream.
	GetOne(ctx context.Context, id string) (Stream, error)

	// Get lists the streams of an address, newest start first. Streams an
	// address sends to itself appear once per matching direction.
	Get(ctx context.Context, params GetParams) ([]Entry, error)
}
