package solanarpc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/streamkit/internal/pkg/resilience/retry"
	"github.com/gabapcia/streamkit/internal/pkg/transport/jsonrpc"
	jsonrpctest "github.com/gabapcia/streamkit/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gabapcia/streamkit/pkg/solanastream"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLedger(conn jsonrpc.Client, opts ...Option) *ledger {
	opts = append([]Option{
		WithRetry(retry.New(retry.WithAttempts(2), retry.WithDelay(time.Millisecond), retry.WithRetryIf(isRetryable))),
		WithPollInterval(time.Millisecond),
	}, opts...)
	return NewLedger(conn, opts...)
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func accountJSON(data []byte) map[string]any {
	return map[string]any{
		"data":       []string{base64.StdEncoding.EncodeToString(data), "base64"},
		"owner":      solana.TokenProgramID.String(),
		"lamports":   2039280,
		"executable": false,
	}
}

func TestNewLedger(t *testing.T) {
	t.Run("should default to confirmed commitment", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		l := NewLedger(conn)

		assert.Equal(t, conn, l.conn)
		assert.Equal(t, rpc.CommitmentConfirmed, l.cfg.commitment)
		assert.NotNil(t, l.cfg.retry)
		assert.NotNil(t, l.cfg.logger)
	})

	t.Run("should apply options", func(t *testing.T) {
		l := NewLedger(jsonrpctest.NewClient(t), WithCommitment(rpc.CommitmentFinalized), WithPollInterval(time.Second))

		assert.Equal(t, rpc.CommitmentFinalized, l.cfg.commitment)
		assert.Equal(t, time.Second, l.cfg.pollInterval)
	})
}

func TestIsRetryable(t *testing.T) {
	t.Run("should give up on malformed requests", func(t *testing.T) {
		assert.False(t, isRetryable(&jsonrpc.Error{Code: -32602, Message: "invalid params"}))
	})

	t.Run("should retry node side failures", func(t *testing.T) {
		assert.True(t, isRetryable(&jsonrpc.Error{Code: -32005, Message: "node is behind"}))
		assert.True(t, isRetryable(errors.New("connection reset")))
	})
}

func TestGetAccountInfo(t *testing.T) {
	address := solana.NewWallet().PublicKey()
	config := accountConfig{Encoding: "base64", Commitment: rpc.CommitmentConfirmed}

	t.Run("should decode the account data", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(raw(t, map[string]any{"context": map[string]any{"slot": 1}, "value": accountJSON([]byte{1, 2, 3})}), nil).Once()

		data, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, data)
	})

	t.Run("should return nil for a missing account", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(json.RawMessage(`{"context":{"slot":1},"value":null}`), nil).Once()

		data, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("should retry a transient failure", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(nil, errors.New("connection reset")).Once()
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(raw(t, map[string]any{"value": accountJSON([]byte{9})}), nil).Once()

		data, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		require.NoError(t, err)
		assert.Equal(t, []byte{9}, data)
	})

	t.Run("should not retry invalid params", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(nil, &jsonrpc.Error{Code: -32602, Message: "invalid params"}).Once()

		_, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
	})

	t.Run("should reject an unexpected encoding", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(json.RawMessage(`{"value":{"data":["AQID","base58"]}}`), nil).Once()

		_, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("should reject a malformed result", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", address.String(), config).
			Return(json.RawMessage(`[]`), nil).Once()

		_, err := newTestLedger(conn).GetAccountInfo(t.Context(), address)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetLatestBlockhash(t *testing.T) {
	hash := solana.Hash{1, 2, 3}

	t.Run("should parse the blockhash", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getLatestBlockhash", commitmentConfig{Commitment: rpc.CommitmentConfirmed}).
			Return(raw(t, map[string]any{"value": map[string]any{
				"blockhash":            hash.String(),
				"lastValidBlockHeight": 3090,
			}}), nil).Once()

		bh, err := newTestLedger(conn).GetLatestBlockhash(t.Context())
		require.NoError(t, err)
		assert.Equal(t, hash, bh.Hash)
		assert.Equal(t, uint64(3090), bh.LastValidBlockHeight)
	})

	t.Run("should reject an invalid blockhash", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getLatestBlockhash", mock.Anything).
			Return(json.RawMessage(`{"value":{"blockhash":"0OIl","lastValidBlockHeight":1}}`), nil).Once()

		_, err := newTestLedger(conn).GetLatestBlockhash(t.Context())
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetProgramAccounts(t *testing.T) {
	programID := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	account := solana.NewWallet().PublicKey()

	config := programAccountsConfig{
		Encoding:   "base64",
		Commitment: rpc.CommitmentConfirmed,
		Filters:    []programAccountsFilter{{Memcmp: &memcmp{Offset: 49, Bytes: owner.String()}}},
	}

	t.Run("should filter by the address bytes at offset", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getProgramAccounts", programID.String(), config).
			Return(raw(t, []map[string]any{{"pubkey": account.String(), "account": accountJSON([]byte{7, 7})}}), nil).Once()

		accounts, err := newTestLedger(conn).GetProgramAccounts(t.Context(), programID, 49, owner.Bytes())
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, account, accounts[0].Address)
		assert.Equal(t, []byte{7, 7}, accounts[0].Data)
	})

	t.Run("should reject an invalid account address", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getProgramAccounts", programID.String(), config).
			Return(json.RawMessage(`[{"pubkey":"nope","account":{"data":["","base64"]}}]`), nil).Once()

		_, err := newTestLedger(conn).GetProgramAccounts(t.Context(), programID, 49, owner.Bytes())
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestGetMintDecimals(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	t.Run("should read the decimals byte", func(t *testing.T) {
		data := make([]byte, mintSize)
		data[mintDecimalsOffset] = 6

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", mint.String(), mock.Anything).
			Return(raw(t, map[string]any{"value": accountJSON(data)}), nil).Once()

		decimals, err := newTestLedger(conn).GetMintDecimals(t.Context(), mint)
		require.NoError(t, err)
		assert.Equal(t, uint8(6), decimals)
	})

	t.Run("should fail for a missing mint", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", mint.String(), mock.Anything).
			Return(json.RawMessage(`{"value":null}`), nil).Once()

		_, err := newTestLedger(conn).GetMintDecimals(t.Context(), mint)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("should reject an account that is not a mint", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "getAccountInfo", mint.String(), mock.Anything).
			Return(raw(t, map[string]any{"value": accountJSON([]byte{1})}), nil).Once()

		_, err := newTestLedger(conn).GetMintDecimals(t.Context(), mint)
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}

func TestSubmitAndConfirm(t *testing.T) {
	payer := solana.NewWallet().PrivateKey

	signedTx := func(t *testing.T) *solana.Transaction {
		t.Helper()

		tx, err := solana.NewTransaction(
			[]solana.Instruction{solana.NewInstruction(solana.MemoProgramID, solana.AccountMetaSlice{
				solana.NewAccountMeta(payer.PublicKey(), true, true),
			}, []byte("hello"))},
			solana.Hash{4},
			solana.TransactionPayer(payer.PublicKey()),
		)
		require.NoError(t, err)

		_, err = tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
			if pub.Equals(payer.PublicKey()) {
				return &payer
			}
			return nil
		})
		require.NoError(t, err)
		return tx
	}

	statuses := func(t *testing.T, status any) json.RawMessage {
		return raw(t, map[string]any{"context": map[string]any{"slot": 10}, "value": []any{status}})
	}

	t.Run("should poll until the commitment is reached", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, params ...any) (json.RawMessage, error) {
				encoded, ok := params[0].(string)
				require.True(t, ok)

				decoded, err := solana.TransactionFromDecoder(bin.NewBinDecoder(mustBase64(t, encoded)))
				require.NoError(t, err)
				assert.Equal(t, sig, decoded.Signatures[0])
				return raw(t, sig.String()), nil
			}).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", []string{sig.String()}, signatureStatusConfig{}).
			Return(statuses(t, nil), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getBlockHeight", mock.Anything).
			Return(raw(t, 95), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", []string{sig.String()}, signatureStatusConfig{}).
			Return(statuses(t, map[string]any{"slot": 10, "err": nil, "confirmationStatus": "processed"}), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getBlockHeight", mock.Anything).
			Return(raw(t, 96), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", []string{sig.String()}, signatureStatusConfig{}).
			Return(statuses(t, map[string]any{"slot": 10, "err": nil, "confirmationStatus": "confirmed"}), nil).Once()

		got, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), tx, 100)
		require.NoError(t, err)
		assert.Equal(t, sig, got)
	})

	t.Run("should time out once the blockhash expires", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(raw(t, sig.String()), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", mock.Anything, mock.Anything).
			Return(statuses(t, nil), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getBlockHeight", mock.Anything).
			Return(raw(t, 101), nil).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), tx, 100)
		assert.ErrorIs(t, err, solanastream.ErrConfirmationTimeout)
	})

	t.Run("should report a landed transaction error", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(raw(t, sig.String()), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", mock.Anything, mock.Anything).
			Return(statuses(t, map[string]any{
				"slot":               10,
				"err":                map[string]any{"InstructionError": []any{0, map[string]any{"Custom": 6013}}},
				"confirmationStatus": "confirmed",
			}), nil).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), tx, 100)
		assert.ErrorIs(t, err, solanastream.ErrTransactionFailed)
		assert.ErrorContains(t, err, "custom program error: 0x177d")
		assert.Equal(t, "NoFunds", solanastream.ExtractProgramErrorCode(err))
		assert.NotErrorIs(t, err, solanastream.ErrUnconfirmed)
	})

	t.Run("should report a failed simulation without polling", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(nil, &jsonrpc.Error{
				Code:    -32002,
				Message: "Transaction simulation failed",
				Data:    json.RawMessage(`{"err":{"InstructionError":[1,{"Custom":6017}]},"logs":["Program log: cancel not allowed"]}`),
			}).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), signedTx(t), 100)
		assert.ErrorIs(t, err, solanastream.ErrTransactionFailed)
		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
		assert.Equal(t, "CancelNotAllowed", solanastream.ExtractProgramErrorCode(err))
	})

	t.Run("should not retry a failed broadcast", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(nil, errors.New("connection reset")).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), signedTx(t), 100)
		assert.ErrorContains(t, err, "connection reset")
		assert.ErrorIs(t, err, solanastream.ErrUnconfirmed)
		assert.NotErrorIs(t, err, solanastream.ErrTransactionFailed)
	})

	t.Run("should treat a rejected broadcast as definite", func(t *testing.T) {
		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(nil, &jsonrpc.Error{Code: -32002, Message: "Blockhash not found"}).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), signedTx(t), 100)
		assert.ErrorIs(t, err, jsonrpc.ErrProviderReturnedError)
		assert.NotErrorIs(t, err, solanastream.ErrUnconfirmed)
	})

	t.Run("should not broadcast with a done context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := newTestLedger(jsonrpctest.NewClient(t)).SubmitAndConfirm(ctx, signedTx(t), 100)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, solanastream.ErrUnconfirmed)
	})

	t.Run("should report an unknown outcome when the status read fails", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(raw(t, sig.String()), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", mock.Anything, mock.Anything).
			Return(nil, &jsonrpc.Error{Code: -32602, Message: "invalid params"}).Once()

		got, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), tx, 100)
		assert.ErrorIs(t, err, solanastream.ErrUnconfirmed)
		assert.ErrorContains(t, err, sig.String())
		assert.Equal(t, sig, got)
	})

	t.Run("should report an unknown outcome when the block height read fails", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(raw(t, sig.String()), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", mock.Anything, mock.Anything).
			Return(statuses(t, nil), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getBlockHeight", mock.Anything).
			Return(nil, &jsonrpc.Error{Code: -32601, Message: "method not found"}).Once()

		_, err := newTestLedger(conn).SubmitAndConfirm(t.Context(), tx, 100)
		assert.ErrorIs(t, err, solanastream.ErrUnconfirmed)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		tx := signedTx(t)
		sig := tx.Signatures[0]
		ctx, cancel := context.WithCancel(t.Context())

		conn := jsonrpctest.NewClient(t)
		conn.EXPECT().Fetch(mock.Anything, "sendTransaction", mock.Anything, mock.Anything).
			Return(raw(t, sig.String()), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getSignatureStatuses", mock.Anything, mock.Anything).
			Return(statuses(t, nil), nil).Once()
		conn.EXPECT().Fetch(mock.Anything, "getBlockHeight", mock.Anything).
			RunAndReturn(func(context.Context, string, ...any) (json.RawMessage, error) {
				cancel()
				return raw(t, 1), nil
			}).Once()

		_, err := newTestLedger(conn, WithPollInterval(time.Hour)).SubmitAndConfirm(ctx, tx, 100)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, solanastream.ErrUnconfirmed)
	})
}

func mustBase64(t *testing.T, s string) []byte {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return data
}
