package solanastream

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/streamkit/internal/pkg/validator"
	"github.com/gabapcia/streamkit/pkg/batch"
	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/gabapcia/streamkit/pkg/solanastream"

type config struct {
	logger           *zap.SugaredLogger
	guard            stream.SubmissionGuard
	batchConcurrency int
	newKey           func() (solana.PrivateKey, error)
}

// Option configures the client.
type Option func(*config)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithSubmissionGuard protects submissions against double broadcast. The
// default guard allows everything.
func WithSubmissionGuard(g stream.SubmissionGuard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithBatchConcurrency bounds the in-flight submissions of CreateMultiple.
func WithBatchConcurrency(n int) Option {
	return func(c *config) {
		c.batchConcurrency = n
	}
}

type client struct {
	ledger       Ledger
	network      Network
	logger       *zap.SugaredLogger
	guard        stream.SubmissionGuard
	orchestrator *batch.Orchestrator[*solana.Transaction]
	tracer       trace.Tracer
	newKey       func() (solana.PrivateKey, error)
}

// Compile-time assertion that client implements stream.Client.
var _ stream.Client[Signer] = (*client)(nil)

// New returns a stream client for network backed by ledger.
func New(ledger Ledger, network Network, opts ...Option) *client {
	cfg := config{
		logger: zap.NewNop().Sugar(),
		guard:  stream.NopGuard(),
		newKey: solana.NewRandomPrivateKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		ledger:  ledger,
		network: network,
		logger:  cfg.logger,
		guard:   cfg.guard,
		orchestrator: batch.New[*solana.Transaction](
			batch.WithConcurrency(cfg.batchConcurrency),
			batch.WithLogger(cfg.logger),
		),
		tracer: otel.Tracer(instrumentationName),
		newKey: cfg.newKey,
	}
}

// startSpan starts the span of a client operation.
func (c *client) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "solanastream."+name, trace.WithAttributes(attrs...))
}

// endSpan records err on span and ends it.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// validate checks params against their validate tags.
func validate(params any) error {
	if err := validator.Validate(params); err != nil {
		return fmt.Errorf("%w: %w", stream.ErrValidation, err)
	}
	return nil
}

// parseAddress parses a base58 address or fails with stream.ErrValidation.
func parseAddress(field, text string) (solana.PublicKey, error) {
	pub, err := solana.PublicKeyFromBase58(text)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w: %s %q is not a valid address: %w", stream.ErrValidation, field, text, err)
	}
	return pub, nil
}

// toU64 converts a smallest-unit amount to the program's u64.
func toU64(field string, v *big.Int, allowZero bool) (uint64, error) {
	if v == nil {
		if allowZero {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %s is required", stream.ErrValidation, field)
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s %s is out of the u64 range", stream.ErrValidation, field, v)
	}
	if v.Sign() == 0 && !allowZero {
		return 0, fmt.Errorf("%w: %s must be positive", stream.ErrValidation, field)
	}
	return v.Uint64(), nil
}

func encodeAddress(raw [32]byte) string {
	return solana.PublicKeyFromBytes(raw[:]).String()
}

// fetch reads and decodes the stream at id.
func (c *client) fetch(ctx context.Context, id solana.PublicKey) (stream.Stream, error) {
	raw, err := stream.Guard(ctx, func(ctx context.Context) ([]byte, error) {
		return c.ledger.GetAccountInfo(ctx, id)
	}, ExtractProgramErrorCode)
	if err != nil {
		return stream.Stream{}, err
	}
	if raw == nil {
		return stream.Stream{}, fmt.Errorf("%w: %s", stream.ErrNotFound, id)
	}

	s, err := stream.Decode(raw, encodeAddress)
	if err != nil {
		return stream.Stream{}, fmt.Errorf("%w: %s: %w", stream.ErrNotFound, id, err)
	}
	s.ID = id.String()
	return s, nil
}

// routingOf parses the accounts recorded in a decoded stream.
func routingOf(s stream.Stream) (routing, error) {
	var (
		r    routing
		errs []error
	)
	parse := func(dst *solana.PublicKey, field, text string) {
		pub, err := solana.PublicKeyFromBase58(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return
		}
		*dst = pub
	}

	parse(&r.Metadata, "id", s.ID)
	parse(&r.EscrowTokens, "escrow tokens", s.EscrowTokens)
	parse(&r.Mint, "mint", s.Mint)
	parse(&r.Sender, "sender", s.Sender)
	parse(&r.SenderTokens, "sender tokens", s.SenderTokens)
	parse(&r.Recipient, "recipient", s.Recipient)
	parse(&r.RecipientTokens, "recipient tokens", s.RecipientTokens)
	parse(&r.Treasury, "treasury", s.Treasury)
	parse(&r.TreasuryTokens, "treasury tokens", s.TreasuryTokens)
	parse(&r.Partner, "partner", s.Partner)
	parse(&r.PartnerTokens, "partner tokens", s.PartnerTokens)

	if len(errs) > 0 {
		return routing{}, fmt.Errorf("%w: stream %s: %w", stream.ErrNotFound, s.ID, errors.Join(errs...))
	}
	return r, nil
}

// latestBlockhash fetches a blockhash through the error guard.
func (c *client) latestBlockhash(ctx context.Context) (Blockhash, error) {
	return stream.Guard(ctx, c.ledger.GetLatestBlockhash, ExtractProgramErrorCode)
}

// newTransaction builds a transaction paid by payer.
func newTransaction(instructions []solana.Instruction, blockhash Blockhash, payer solana.PublicKey) (*solana.Transaction, error) {
	tx, err := solana.NewTransaction(instructions, blockhash.Hash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, fmt.Errorf("build transaction: %w", err)
	}
	return tx, nil
}

// sign obtains the signer's signature on tx through the error guard.
func (c *client) sign(ctx context.Context, signer Signer, tx *solana.Transaction) (*solana.Transaction, error) {
	if err := checkCapability(signer); err != nil {
		return nil, err
	}
	return stream.Guard(ctx, func(ctx context.Context) (*solana.Transaction, error) {
		return signOne(ctx, signer, tx)
	}, nil)
}

// submissionKey returns the idempotency key, defaulting to the transaction id.
func submissionKey(key string, tx *solana.Transaction) string {
	if key != "" {
		return key
	}
	if len(tx.Signatures) > 0 {
		return tx.Signatures[0].String()
	}
	return ""
}

// outcomeUnknown reports whether err leaves open that the transaction lands.
func outcomeUnknown(err error) bool {
	return errors.Is(err, ErrUnconfirmed) ||
		errors.Is(err, ErrConfirmationTimeout) ||
		errors.Is(err, context.DeadlineExceeded)
}

// submit broadcasts tx once per key and waits for its confirmation.
//
// The claim is released only when the submission failed for sure. While the
// transaction may still land the claim stays pending until it expires.
func (c *client) submit(ctx context.Context, tx *solana.Transaction, lastValidBlockHeight uint64, key string) (solana.Signature, error) {
	key = submissionKey(key, tx)
	if err := c.guard.Claim(ctx, key); err != nil {
		return solana.Signature{}, err
	}

	sig, err := stream.Guard(ctx, func(ctx context.Context) (solana.Signature, error) {
		return c.ledger.SubmitAndConfirm(ctx, tx, lastValidBlockHeight)
	}, ExtractProgramErrorCode)
	if err != nil {
		if outcomeUnknown(err) {
			c.logger.Warnw("keeping submission claim of unconfirmed transaction", "submission.key", key, "error", err)
		} else if releaseErr := c.guard.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
			c.logger.Warnw("failed to release submission claim", "submission.key", key, "error", releaseErr)
		}
		return solana.Signature{}, err
	}

	if completeErr := c.guard.Complete(context.WithoutCancel(ctx), key, sig.String()); completeErr != nil {
		c.logger.Warnw("failed to complete submission claim", "submission.key", key, "tx.id", sig.String(), "error", completeErr)
	}
	return sig, nil
}

// signAndSubmit signs a single transaction and submits it.
func (c *client) signAndSubmit(ctx context.Context, signer Signer, tx *solana.Transaction, blockhash Blockhash, key string) (solana.Signature, error) {
	signed, err := c.sign(ctx, signer, tx)
	if err != nil {
		return solana.Signature{}, err
	}
	return c.submit(ctx, signed, blockhash.LastValidBlockHeight, key)
}
