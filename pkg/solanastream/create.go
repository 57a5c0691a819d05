package solanastream

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/streamkit/pkg/batch"
	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/attribute"
)

// createPlan is the create instruction of one stream.
type createPlan struct {
	instruction solana.Instruction
	deposited   uint64
}

// planCreate validates one stream of a schedule and builds its create instruction.
func (c *client) planCreate(sender, metadata solana.PublicKey, schedule stream.Schedule, recipient stream.Recipient) (createPlan, error) {
	mint, err := parseAddress("mint", schedule.Mint)
	if err != nil {
		return createPlan{}, err
	}
	if schedule.IsNative && !mint.Equals(NativeMint) {
		return createPlan{}, fmt.Errorf("%w: native deposits require the %s mint", stream.ErrValidation, NativeMint)
	}

	recipientKey, err := parseAddress("recipient", recipient.Recipient)
	if err != nil {
		return createPlan{}, err
	}

	partner := c.network.Treasury
	if schedule.Partner != "" {
		if partner, err = parseAddress("partner", schedule.Partner); err != nil {
			return createPlan{}, err
		}
	}

	if len(recipient.Name) > stream.NameSize {
		return createPlan{}, fmt.Errorf("%w: name is %d bytes, at most %d fit", stream.ErrValidation, len(recipient.Name), stream.NameSize)
	}

	deposited, err := toU64("deposited amount", recipient.Deposited, false)
	if err != nil {
		return createPlan{}, err
	}
	amountPerPeriod, err := toU64("amount per period", recipient.AmountPerPeriod, false)
	if err != nil {
		return createPlan{}, err
	}
	cliffAmount, err := toU64("cliff amount", recipient.CliffAmount, true)
	if err != nil {
		return createPlan{}, err
	}
	if cliffAmount > deposited {
		return createPlan{}, fmt.Errorf("%w: cliff amount %d exceeds deposited amount %d", stream.ErrValidation, cliffAmount, deposited)
	}

	cliff := schedule.Cliff
	if cliff == 0 {
		cliff = schedule.Start
	}
	if cliff < schedule.Start {
		return createPlan{}, fmt.Errorf("%w: cliff %d is before start %d", stream.ErrValidation, cliff, schedule.Start)
	}

	r := routing{
		Metadata:  metadata,
		Mint:      mint,
		Sender:    sender,
		Recipient: recipientKey,
		Treasury:  c.network.Treasury,
		Partner:   partner,
	}
	if r.EscrowTokens, err = c.network.EscrowAddress(metadata); err != nil {
		return createPlan{}, fmt.Errorf("derive escrow of %s: %w", metadata, err)
	}
	for _, ata := range []struct {
		dst   *solana.PublicKey
		owner solana.PublicKey
	}{
		{&r.SenderTokens, sender},
		{&r.RecipientTokens, recipientKey},
		{&r.TreasuryTokens, c.network.Treasury},
		{&r.PartnerTokens, partner},
	} {
		if *ata.dst, err = tokenAccount(ata.owner, mint); err != nil {
			return createPlan{}, err
		}
	}

	ix, err := newCreateInstruction(c.network, r, createArgs{
		StartTime:               schedule.Start,
		NetAmountDeposited:      deposited,
		Period:                  schedule.Period,
		AmountPerPeriod:         amountPerPeriod,
		Cliff:                   cliff,
		CliffAmount:             cliffAmount,
		CancelableBySender:      schedule.CancelableBySender,
		CancelableByRecipient:   schedule.CancelableByRecipient,
		AutomaticWithdrawal:     schedule.AutomaticWithdrawal,
		TransferableBySender:    schedule.TransferableBySender,
		TransferableByRecipient: schedule.TransferableByRecipient,
		CanTopup:                schedule.CanTopup,
		StreamName:              streamName(recipient.Name),
		WithdrawFrequency:       schedule.WithdrawalFrequency,
	})
	if err != nil {
		return createPlan{}, err
	}

	return createPlan{instruction: ix, deposited: deposited}, nil
}

// Create implements stream.Client.
func (c *client) Create(ctx context.Context, params stream.CreateParams, signer Signer) (result stream.CreateResult, err error) {
	ctx, span := c.startSpan(ctx, "create", attribute.String("stream.mint", params.Mint))
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return stream.CreateResult{}, err
	}

	sender, err := signerKey(signer)
	if err != nil {
		return stream.CreateResult{}, err
	}

	metadata, err := c.newKey()
	if err != nil {
		return stream.CreateResult{}, fmt.Errorf("generate stream account key: %w", err)
	}

	plan, err := c.planCreate(sender, metadata.PublicKey(), params.Schedule, stream.Recipient{
		Recipient:       params.Recipient,
		Name:            params.Name,
		Deposited:       params.Deposited,
		AmountPerPeriod: params.AmountPerPeriod,
		CliffAmount:     params.CliffAmount,
	})
	if err != nil {
		return stream.CreateResult{}, err
	}

	var instructions []solana.Instruction
	if params.IsNative {
		wrap, err := wrapNativeInstructions(sender, plan.deposited)
		if err != nil {
			return stream.CreateResult{}, err
		}
		instructions = append(instructions, wrap...)
	}
	instructions = append(instructions, plan.instruction)

	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return stream.CreateResult{}, err
	}

	tx, err := newTransaction(instructions, blockhash, sender)
	if err != nil {
		return stream.CreateResult{}, err
	}
	if err := partialSign(tx, metadata); err != nil {
		return stream.CreateResult{}, fmt.Errorf("sign with stream account key: %w", err)
	}

	sig, err := c.signAndSubmit(ctx, signer, tx, blockhash, params.IdempotencyKey)
	if err != nil {
		return stream.CreateResult{}, err
	}

	result = stream.CreateResult{TxID: sig.String(), StreamID: metadata.PublicKey().String()}
	span.SetAttributes(attribute.String("stream.id", result.StreamID), attribute.String("tx.id", result.TxID))
	c.logger.Infow("stream created", "stream.id", result.StreamID, "tx.id", result.TxID, "sender", sender.String())

	return result, nil
}

// CreateMultiple implements stream.Client.
func (c *client) CreateMultiple(ctx context.Context, params stream.CreateMultipleParams, signer Signer) (result batch.Result, err error) {
	ctx, span := c.startSpan(ctx, "create_multiple",
		attribute.String("stream.mint", params.Mint),
		attribute.Int("batch.recipients", len(params.Recipients)),
	)
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return batch.Result{}, err
	}

	sender, err := signerKey(signer)
	if err != nil {
		return batch.Result{}, err
	}
	if err := checkCapability(signer); err != nil {
		return batch.Result{}, err
	}

	blockhash, err := c.latestBlockhash(ctx)
	if err != nil {
		return batch.Result{}, err
	}

	items := make([]batch.Item[*solana.Transaction], 0, len(params.Recipients))
	total := new(big.Int)
	for i, recipient := range params.Recipients {
		metadata, err := c.newKey()
		if err != nil {
			return batch.Result{}, fmt.Errorf("generate stream account key: %w", err)
		}

		plan, err := c.planCreate(sender, metadata.PublicKey(), params.Schedule, recipient)
		if err != nil {
			return batch.Result{}, fmt.Errorf("recipient %d: %w", i, err)
		}

		tx, err := newTransaction([]solana.Instruction{plan.instruction}, blockhash, sender)
		if err != nil {
			return batch.Result{}, err
		}
		if err := partialSign(tx, metadata); err != nil {
			return batch.Result{}, fmt.Errorf("sign with stream account key: %w", err)
		}

		items = append(items, batch.Item[*solana.Transaction]{
			Tx:        tx,
			Recipient: recipient.Recipient,
			StreamID:  metadata.PublicKey().String(),
		})
		total.Add(total, new(big.Int).SetUint64(plan.deposited))
	}

	var wrap *batch.Item[*solana.Transaction]
	if params.IsNative {
		lamports, err := toU64("total deposit", total, false)
		if err != nil {
			return batch.Result{}, err
		}
		instructions, err := wrapNativeInstructions(sender, lamports)
		if err != nil {
			return batch.Result{}, err
		}
		tx, err := newTransaction(instructions, blockhash, sender)
		if err != nil {
			return batch.Result{}, err
		}
		wrap = &batch.Item[*solana.Transaction]{Tx: tx, Recipient: sender.String()}
	}

	signAllFn := func(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error) {
		return stream.Guard(ctx, func(ctx context.Context) ([]*solana.Transaction, error) {
			return signAll(ctx, signer, txs)
		}, nil)
	}
	submitFn := func(ctx context.Context, tx *solana.Transaction) (string, error) {
		sig, err := c.submit(ctx, tx, blockhash.LastValidBlockHeight, "")
		if err != nil {
			return "", err
		}
		return sig.String(), nil
	}

	result, err = c.orchestrator.Run(ctx, items, wrap, signAllFn, submitFn)
	if err != nil {
		return batch.Result{}, err
	}

	c.logger.Infow("streams created",
		"sender", sender.String(),
		"batch.succeeded", len(result.TxIDs),
		"batch.failed", len(result.Errors),
	)
	return result, nil
}
