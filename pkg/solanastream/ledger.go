// Package solanastream implements the stream lifecycle against the Streamflow
// timelock program on Solana-like ledgers.
//
// Transactions are built with solana-go, program arguments are Borsh encoded,
// escrow accounts are program derived and token accounts are associated token
// accounts. Ledger access goes through the Ledger interface.
package solanastream

import (
	"context"
	"errors"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrConfirmationTimeout is returned when a transaction was not confirmed
	// before its blockhash expired.
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	// ErrTransactionFailed is returned when the ledger executed a transaction
	// and reported an error.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrUnconfirmed is returned when a transaction may have reached the
	// ledger but its outcome could not be observed.
	ErrUnconfirmed = errors.New("transaction outcome unknown")
)

// Blockhash is a recent blockhash and the last block height at which a
// transaction referencing it can still land.
type Blockhash struct {
	Hash                 solana.Hash
	LastValidBlockHeight uint64
}

// KeyedAccount is an account and its address.
type KeyedAccount struct {
	Address solana.PublicKey
	Data    []byte
}

// Ledger is the RPC surface the client needs.
type Ledger interface {
	// GetAccountInfo returns the account data, or nil when the account does not exist.
	GetAccountInfo(ctx context.Context, address solana.PublicKey) ([]byte, error)

	// GetLatestBlockhash returns a blockhash to build transactions with.
	GetLatestBlockhash(ctx context.Context) (Blockhash, error)

	// SubmitAndConfirm broadcasts a signed transaction and waits until it
	// reaches the configured commitment. It fails with ErrConfirmationTimeout
	// once the block height passes lastValidBlockHeight and with
	// ErrTransactionFailed when the transaction errored. Any other failure
	// after the broadcast may have reached the ledger, including a done ctx,
	// wraps ErrUnconfirmed. It must not retry.
	SubmitAndConfirm(ctx context.Context, tx *solana.Transaction, lastValidBlockHeight uint64) (solana.Signature, error)

	// GetProgramAccounts returns the accounts owned by programID whose bytes at
	// offset equal value.
	GetProgramAccounts(ctx context.Context, programID solana.PublicKey, offset uint64, value []byte) ([]KeyedAccount, error)

	// GetMintDecimals returns the decimals of a token mint.
	GetMintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error)
}
