package solanarpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/streamkit/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/streamkit/internal/pkg/x/chflow"
	"github.com/gabapcia/streamkit/pkg/solanastream"

	"github.com/gagliardetto/solana-go"
)

// SubmitAndConfirm implements solanastream.Ledger.
func (l *ledger) SubmitAndConfirm(ctx context.Context, tx *solana.Transaction, lastValidBlockHeight uint64) (solana.Signature, error) {
	sig, err := l.send(ctx, tx)
	if err != nil {
		return solana.Signature{}, err
	}

	log := l.cfg.logger.With("tx.id", sig.String())
	log.Debugw("transaction sent", "last_valid_block_height", lastValidBlockHeight)

	ticker := time.NewTicker(l.cfg.pollInterval)
	defer ticker.Stop()

	for {
		done, err := l.checkStatus(ctx, sig)
		if errors.Is(err, solanastream.ErrTransactionFailed) {
			return sig, err
		}
		if err != nil {
			return sig, unconfirmed(sig, err)
		}
		if done {
			return sig, nil
		}

		var height uint64
		if err := l.read(ctx, &height, "getBlockHeight", commitmentConfig{Commitment: l.cfg.commitment}); err != nil {
			return sig, unconfirmed(sig, err)
		}
		if height > lastValidBlockHeight {
			log.Warnw("transaction expired before confirmation", "block_height", height)
			return sig, fmt.Errorf("%w: %s: block height %d passed %d", solanastream.ErrConfirmationTimeout, sig, height, lastValidBlockHeight)
		}

		if _, ok := chflow.Receive(ctx, ticker.C); !ok {
			return sig, unconfirmed(sig, ctx.Err())
		}
	}
}

// unconfirmed marks err as raised after sig was broadcast.
func unconfirmed(sig solana.Signature, err error) error {
	return fmt.Errorf("%w: %s: %w", solanastream.ErrUnconfirmed, sig, err)
}

// send broadcasts tx once. A failed preflight simulation is reported as
// solanastream.ErrTransactionFailed.
func (l *ledger) send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return solana.Signature{}, fmt.Errorf("encode transaction: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}

	data, err := l.conn.Fetch(ctx, "sendTransaction", base64.StdEncoding.EncodeToString(raw), sendConfig{
		Encoding:            encodingBase64,
		PreflightCommitment: l.cfg.commitment,
	})
	if err != nil {
		return solana.Signature{}, broadcastError(tx, err)
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return solana.Signature{}, fmt.Errorf("%w: sendTransaction: %w", ErrInvalidResponse, err)
	}

	sig, err := solana.SignatureFromBase58(text)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("%w: signature %q: %w", ErrInvalidResponse, text, err)
	}
	return sig, nil
}

// broadcastError classifies a failed sendTransaction. A JSON-RPC error means
// the node answered and rejected the transaction. Without an answer the
// request may still have been forwarded, so the outcome is unknown.
func broadcastError(tx *solana.Transaction, err error) error {
	var rpcErr *jsonrpc.Error
	if !errors.As(err, &rpcErr) {
		if len(tx.Signatures) > 0 {
			return unconfirmed(tx.Signatures[0], fmt.Errorf("sendTransaction: %w", err))
		}
		return fmt.Errorf("%w: sendTransaction: %w", solanastream.ErrUnconfirmed, err)
	}
	return simulationError(rpcErr, err)
}

// simulationError turns a rejected broadcast carrying a simulation result into
// a transaction failure. Other rejections are returned unchanged.
func simulationError(rpcErr *jsonrpc.Error, err error) error {
	if len(rpcErr.Data) == 0 {
		return fmt.Errorf("sendTransaction: %w", err)
	}

	var failure simulationFailure
	if jsonErr := json.Unmarshal(rpcErr.Data, &failure); jsonErr != nil || len(failure.Err) == 0 || string(failure.Err) == "null" {
		return fmt.Errorf("sendTransaction: %w", err)
	}

	msg := describeTransactionError(failure.Err)
	if len(failure.Logs) > 0 {
		msg += "; logs: " + strings.Join(failure.Logs, " | ")
	}
	return fmt.Errorf("%w: simulation: %s: %w", solanastream.ErrTransactionFailed, msg, err)
}

// checkStatus reports whether sig reached the configured commitment. A
// transaction that landed with an error fails with
// solanastream.ErrTransactionFailed.
func (l *ledger) checkStatus(ctx context.Context, sig solana.Signature) (bool, error) {
	var resp signatureStatusesResponse
	err := l.read(ctx, &resp, "getSignatureStatuses", []string{sig.String()}, signatureStatusConfig{})
	if err != nil {
		return false, err
	}
	if len(resp.Value) == 0 || resp.Value[0] == nil {
		return false, nil
	}

	status := resp.Value[0]
	if status.failed() {
		return false, fmt.Errorf("%w: %s: %s", solanastream.ErrTransactionFailed, sig, describeTransactionError(status.Err))
	}
	return status.reached(l.cfg.commitment), nil
}
