package solanastream

import (
	"context"
	"fmt"

	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
)

// mutation is what every stream mutation shares: the signer authority and the
// stream it acts on.
type mutation struct {
	authority solana.PublicKey
	stream    stream.Stream
	routing   routing
}

// prepare resolves the signer and reads the stream at id.
func (c *client) prepare(ctx context.Context, id string, signer Signer) (mutation, error) {
	authority, err := signerKey(signer)
	if err != nil {
		return mutation{}, err
	}

	address, err := parseAddress("id", id)
	if err != nil {
		return mutation{}, err
	}

	s, err := c.fetch(ctx, address)
	if err != nil {
		return mutation{}, err
	}

	r, err := routingOf(s)
	if err != nil {
		return mutation{}, err
	}

	return mutation{authority: authority, stream: s, routing: r}, nil
}

// execute signs and submits instructions paid by authority.
func (c *client) execute(ctx context.Context, signer Signer, authority solana.PublicKey, instructions []solana.Instruction, key string) (stream.TxResult, error) {
	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return stream.TxResult{}, err
	}

	tx, err := newTransaction(instructions, blockhash, authority)
	if err != nil {
		return stream.TxResult{}, err
	}

	sig, err := c.signAndSubmit(ctx, signer, tx, blockhash, key)
	if err != nil {
		return stream.TxResult{}, err
	}
	return stream.TxResult{TxID: sig.String()}, nil
}

// Withdraw implements stream.Client.
func (c *client) Withdraw(ctx context.Context, params stream.WithdrawParams, signer Signer) (result stream.TxResult, err error) {
	ctx, span := c.startSpan(ctx, "withdraw", attribute.String("stream.id", params.ID))
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return stream.TxResult{}, err
	}

	amount := withdrawAll
	if params.Amount != nil {
		if amount, err = toU64("amount", params.Amount, false); err != nil {
			return stream.TxResult{}, err
		}
	}

	m, err := c.prepare(ctx, params.ID, signer)
	if err != nil {
		return stream.TxResult{}, err
	}

	ix, err := newWithdrawInstruction(c.network, m.authority, m.routing, amount)
	if err != nil {
		return stream.TxResult{}, err
	}

	result, err = c.execute(ctx, signer, m.authority, []solana.Instruction{ix}, params.IdempotencyKey)
	if err != nil {
		return stream.TxResult{}, err
	}

	c.logger.Infow("stream withdrawn", "stream.id", params.ID, "tx.id", result.TxID, "authority", m.authority.String())
	return result, nil
}

// Cancel implements stream.Client.
func (c *client) Cancel(ctx context.Context, params stream.CancelParams, signer Signer) (result stream.TxResult, err error) {
	ctx, span := c.startSpan(ctx, "cancel", attribute.String("stream.id", params.ID))
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return stream.TxResult{}, err
	}

	m, err := c.prepare(ctx, params.ID, signer)
	if err != nil {
		return stream.TxResult{}, err
	}

	ix, err := newCancelInstruction(c.network, m.authority, m.routing)
	if err != nil {
		return stream.TxResult{}, err
	}

	result, err = c.execute(ctx, signer, m.authority, []solana.Instruction{ix}, params.IdempotencyKey)
	if err != nil {
		return stream.TxResult{}, err
	}

	c.logger.Infow("stream canceled", "stream.id", params.ID, "tx.id", result.TxID, "authority", m.authority.String())
	return result, nil
}

// Transfer implements stream.Client.
func (c *client) Transfer(ctx context.Context, params stream.TransferParams, signer Signer) (result stream.TxResult, err error) {
	ctx, span := c.startSpan(ctx, "transfer", attribute.String("stream.id", params.ID))
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return stream.TxResult{}, err
	}

	newRecipient, err := parseAddress("new recipient", params.NewRecipient)
	if err != nil {
		return stream.TxResult{}, err
	}

	m, err := c.prepare(ctx, params.ID, signer)
	if err != nil {
		return stream.TxResult{}, err
	}

	newRecipientTokens, err := tokenAccount(newRecipient, m.routing.Mint)
	if err != nil {
		return stream.TxResult{}, err
	}

	ix, err := newTransferInstruction(c.network, m.authority, newRecipient, newRecipientTokens, m.routing)
	if err != nil {
		return stream.TxResult{}, err
	}

	result, err = c.execute(ctx, signer, m.authority, []solana.Instruction{ix}, params.IdempotencyKey)
	if err != nil {
		return stream.TxResult{}, err
	}

	c.logger.Infow("stream transferred",
		"stream.id", params.ID,
		"tx.id", result.TxID,
		"recipient.old", m.stream.Recipient,
		"recipient.new", newRecipient.String(),
	)
	return result, nil
}

// Topup implements stream.Client.
func (c *client) Topup(ctx context.Context, params stream.TopupParams, signer Signer) (result stream.TxResult, err error) {
	ctx, span := c.startSpan(ctx, "topup", attribute.String("stream.id", params.ID))
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return stream.TxResult{}, err
	}

	amount, err := toU64("amount", params.Amount, false)
	if err != nil {
		return stream.TxResult{}, err
	}

	m, err := c.prepare(ctx, params.ID, signer)
	if err != nil {
		return stream.TxResult{}, err
	}
	if params.IsNative && !m.routing.Mint.Equals(NativeMint) {
		return stream.TxResult{}, fmt.Errorf("%w: stream %s is not a %s stream", stream.ErrValidation, params.ID, NativeMint)
	}

	senderTokens, err := tokenAccount(m.authority, m.routing.Mint)
	if err != nil {
		return stream.TxResult{}, err
	}

	var instructions []solana.Instruction
	if params.IsNative {
		wrap, err := wrapNativeInstructions(m.authority, amount)
		if err != nil {
			return stream.TxResult{}, err
		}
		instructions = append(instructions, wrap...)
	}

	ix, err := newTopupInstruction(c.network, m.authority, senderTokens, m.routing, amount)
	if err != nil {
		return stream.TxResult{}, err
	}
	instructions = append(instructions, ix)

	result, err = c.execute(ctx, signer, m.authority, instructions, params.IdempotencyKey)
	if err != nil {
		return stream.TxResult{}, err
	}

	c.logger.Infow("stream topped up", "stream.id", params.ID, "tx.id", result.TxID, "amount", params.Amount.String())
	return result, nil
}
