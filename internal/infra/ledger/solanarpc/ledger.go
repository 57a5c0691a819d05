// Package solanarpc implements solanastream.Ledger over the Solana JSON-RPC
// API. Reads are retried; transaction broadcasts never are.
package solanarpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/streamkit/internal/pkg/resilience/retry"
	"github.com/gabapcia/streamkit/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streamkit/pkg/solanastream"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

const (
	// mintSize is the length of an SPL token mint account.
	mintSize = 82

	// mintDecimalsOffset is the position of the decimals byte in a mint account.
	mintDecimalsOffset = 44
)

// ErrInvalidResponse is returned when the node answers with a payload that
// can not be interpreted.
var ErrInvalidResponse = errors.New("invalid rpc response")

// permanentCodes are JSON-RPC error codes that no retry can fix.
var permanentCodes = map[int]struct{}{
	-32600: {}, // invalid request
	-32601: {}, // method not found
	-32602: {}, // invalid params
}

// isRetryable keeps the default retry policy but gives up on requests the node
// rejected as malformed.
func isRetryable(err error) bool {
	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		if _, ok := permanentCodes[rpcErr.Code]; ok {
			return false
		}
	}
	return retry.IsTransient(err)
}

type config struct {
	commitment   rpc.CommitmentType
	pollInterval time.Duration
	retry        retry.Retry
	logger       *zap.SugaredLogger
}

// Option configures the ledger.
type Option func(*config)

// WithCommitment sets the commitment used for reads and confirmation.
func WithCommitment(c rpc.CommitmentType) Option {
	return func(cfg *config) {
		cfg.commitment = c
	}
}

// WithPollInterval sets how often a submitted transaction is checked.
func WithPollInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.pollInterval = d
	}
}

// WithRetry replaces the retry policy of reads.
func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// ledger talks to one Solana RPC node.
type ledger struct {
	conn jsonrpc.Client
	cfg  config
}

// Compile-time assertion that ledger implements solanastream.Ledger.
var _ solanastream.Ledger = (*ledger)(nil)

// NewLedger returns a ledger backed by conn. Reads default to the confirmed
// commitment and are attempted three times.
func NewLedger(conn jsonrpc.Client, opts ...Option) *ledger {
	cfg := config{
		commitment:   rpc.CommitmentConfirmed,
		pollInterval: 2 * time.Second,
		logger:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.retry == nil {
		cfg.retry = retry.New(retry.WithRetryIf(isRetryable))
	}

	return &ledger{
		conn: conn,
		cfg:  cfg,
	}
}

// read calls method with retries and decodes its result into out.
func (l *ledger) read(ctx context.Context, out any, method string, params ...any) error {
	data, err := retry.Do(ctx, l.cfg.retry, func() (json.RawMessage, error) {
		return l.conn.Fetch(ctx, method, params...)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, method, err)
	}
	return nil
}

// GetAccountInfo implements solanastream.Ledger.
func (l *ledger) GetAccountInfo(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	var resp accountInfoResponse
	err := l.read(ctx, &resp, "getAccountInfo", address.String(), accountConfig{
		Encoding:   encodingBase64,
		Commitment: l.cfg.commitment,
	})
	if err != nil {
		return nil, err
	}
	if resp.Value == nil {
		return nil, nil
	}

	data, err := resp.Value.Data.bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: account %s: %w", ErrInvalidResponse, address, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// GetLatestBlockhash implements solanastream.Ledger.
func (l *ledger) GetLatestBlockhash(ctx context.Context) (solanastream.Blockhash, error) {
	var resp blockhashResponse
	if err := l.read(ctx, &resp, "getLatestBlockhash", commitmentConfig{Commitment: l.cfg.commitment}); err != nil {
		return solanastream.Blockhash{}, err
	}

	hash, err := solana.HashFromBase58(resp.Value.Blockhash)
	if err != nil {
		return solanastream.Blockhash{}, fmt.Errorf("%w: blockhash %q: %w", ErrInvalidResponse, resp.Value.Blockhash, err)
	}

	return solanastream.Blockhash{
		Hash:                 hash,
		LastValidBlockHeight: resp.Value.LastValidBlockHeight,
	}, nil
}

// GetProgramAccounts implements solanastream.Ledger.
func (l *ledger) GetProgramAccounts(ctx context.Context, programID solana.PublicKey, offset uint64, value []byte) ([]solanastream.KeyedAccount, error) {
	var resp []keyedAccountResponse
	err := l.read(ctx, &resp, "getProgramAccounts", programID.String(), programAccountsConfig{
		Encoding:   encodingBase64,
		Commitment: l.cfg.commitment,
		Filters: []programAccountsFilter{
			{Memcmp: &memcmp{Offset: offset, Bytes: solana.Base58(value).String()}},
		},
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]solanastream.KeyedAccount, 0, len(resp))
	for _, entry := range resp {
		address, err := solana.PublicKeyFromBase58(entry.Pubkey)
		if err != nil {
			return nil, fmt.Errorf("%w: account address %q: %w", ErrInvalidResponse, entry.Pubkey, err)
		}

		data, err := entry.Account.Data.bytes()
		if err != nil {
			return nil, fmt.Errorf("%w: account %s: %w", ErrInvalidResponse, address, err)
		}

		accounts = append(accounts, solanastream.KeyedAccount{Address: address, Data: data})
	}

	l.cfg.logger.Debugw("program accounts fetched",
		"program.id", programID.String(),
		"filter.offset", offset,
		"accounts", len(accounts),
	)
	return accounts, nil
}

// GetMintDecimals implements solanastream.Ledger.
func (l *ledger) GetMintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	data, err := l.GetAccountInfo(ctx, mint)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, fmt.Errorf("mint %s does not exist", mint)
	}
	if len(data) < mintSize {
		return 0, fmt.Errorf("%w: mint %s has %d bytes, want %d", ErrInvalidResponse, mint, len(data), mintSize)
	}
	return data[mintDecimalsOffset], nil
}
