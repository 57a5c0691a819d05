// Package batch submits a set of independently signed transactions with a
// single signing round, isolating failures per item.
//
// The orchestrator is ledger agnostic: it is generic over the transaction type
// and delegates signing and submission to caller supplied functions.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/streamkit/internal/pkg/types"
	"github.com/gabapcia/streamkit/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/gabapcia/streamkit/pkg/batch"

var (
	// ErrEmptyBatch is returned when Run receives no items.
	ErrEmptyBatch = errors.New("empty batch")

	// ErrSigning is returned when the signing round fails. Nothing was submitted.
	ErrSigning = errors.New("batch signing failed")

	// ErrWrap is returned when the wrap transaction fails. No item was submitted.
	ErrWrap = errors.New("batch wrap transaction failed")
)

// Item is one transaction of a batch and the stream it creates.
type Item[T any] struct {
	Tx        T
	Recipient string
	StreamID  string
}

// SignAllFunc signs every transaction in one round and returns them in order.
type SignAllFunc[T any] func(ctx context.Context, txs []T) ([]T, error)

// SubmitFunc submits one signed transaction, waits for finality and returns
// its id.
type SubmitFunc[T any] func(ctx context.Context, tx T) (string, error)

// ItemError is the failure of one batch item.
type ItemError struct {
	Index     int
	Recipient string
	StreamID  string
	Err       error
}

// Error implements the error interface.
func (e ItemError) Error() string {
	return fmt.Sprintf("item %d (recipient %s): %v", e.Index, e.Recipient, e.Err)
}

// Unwrap returns the submission error.
func (e ItemError) Unwrap() error {
	return e.Err
}

// MarshalJSON renders the error message in place of the error value.
func (e ItemError) MarshalJSON() ([]byte, error) {
	var msg string
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return json.Marshal(struct {
		Index     int    `json:"index"`
		Recipient string `json:"recipient"`
		StreamID  string `json:"streamId"`
		Error     string `json:"error"`
	}{e.Index, e.Recipient, e.StreamID, msg})
}

// Result accounts for every item of a batch.
type Result struct {
	// TxIDs holds the ids of the successful submissions, in input order.
	TxIDs []string `json:"txIds"`
	// StreamIDs holds one stream id per attempted item, in input order.
	StreamIDs []string `json:"streamIds"`
	// Recipients maps every stream id to its recipient.
	Recipients map[string]string `json:"recipients"`
	// WrapTxID is the id of the wrap transaction, when one was requested.
	WrapTxID string `json:"wrapTxId,omitempty"`
	// Errors holds the failed items, in input order.
	Errors []ItemError `json:"errors"`
}

// Partial reports whether some, but not all, items failed.
func (r Result) Partial() bool {
	return len(r.Errors) > 0 && len(r.TxIDs) > 0
}

// Failed reports whether every item failed.
func (r Result) Failed() bool {
	return len(r.Errors) > 0 && len(r.TxIDs) == 0
}

// ErrorsByRecipient groups the item failures by recipient.
func (r Result) ErrorsByRecipient() map[string][]error {
	grouped := types.NewDefaultMap[string](func() []error { return nil })
	for _, e := range r.Errors {
		grouped.Update(e.Recipient, func(errs []error) []error { return append(errs, e.Err) })
	}
	return grouped.ToMap()
}

type config struct {
	concurrency int
	logger      *zap.SugaredLogger
}

// Option configures an Orchestrator.
type Option func(*config)

// WithConcurrency bounds the number of in-flight submissions. Zero, the
// default, submits every item at once.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

// WithLogger sets the logger used to report item failures.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Orchestrator runs batches of T transactions.
type Orchestrator[T any] struct {
	cfg       config
	submitted metric.Int64Counter
	failed    metric.Int64Counter
}

// New returns an Orchestrator. Metrics go to the global MeterProvider.
func New[T any](opts ...Option) *Orchestrator[T] {
	cfg := config{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)
	submitted, err := meter.Int64Counter("streamkit.batch.items.submitted",
		metric.WithDescription("Batch items confirmed by the ledger"))
	if err != nil {
		submitted = noop.Int64Counter{}
	}
	failed, err := meter.Int64Counter("streamkit.batch.items.failed",
		metric.WithDescription("Batch items whose submission failed"))
	if err != nil {
		failed = noop.Int64Counter{}
	}

	return &Orchestrator[T]{
		cfg:       cfg,
		submitted: submitted,
		failed:    failed,
	}
}

type outcome struct {
	txID string
	err  error
}

// Run signs items (and wrap, when not nil) with one signAll call, submits and
// confirms wrap alone, then submits every item concurrently and waits for all
// of them to settle.
//
// A failure of the signing round or of the wrap transaction aborts the batch
// with an error. Once items are submitted, their failures are reported in the
// Result and Run returns a nil error.
func (o *Orchestrator[T]) Run(ctx context.Context, items []Item[T], wrap *Item[T], signAll SignAllFunc[T], submit SubmitFunc[T]) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrEmptyBatch
	}

	batchID := uuid.NewString()
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "batch.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("batch.id", batchID),
		attribute.Int("batch.items", len(items)),
		attribute.Bool("batch.wrap", wrap != nil),
	)
	log := o.cfg.logger.With("batch.id", batchID)

	txs := make([]T, 0, len(items)+1)
	for _, item := range items {
		txs = append(txs, item.Tx)
	}
	if wrap != nil {
		txs = append(txs, wrap.Tx)
	}

	signed, err := signAll(ctx, txs)
	if err != nil {
		span.SetStatus(codes.Error, "signing failed")
		span.RecordError(err)
		return Result{}, fmt.Errorf("%w: %w", ErrSigning, err)
	}
	if len(signed) != len(txs) {
		err := fmt.Errorf("%w: signer returned %d transactions for %d", ErrSigning, len(signed), len(txs))
		span.SetStatus(codes.Error, "signing failed")
		return Result{}, err
	}

	var result Result
	if wrap != nil {
		txID, err := submit(ctx, signed[len(items)])
		if err != nil {
			span.SetStatus(codes.Error, "wrap failed")
			span.RecordError(err)
			return Result{}, fmt.Errorf("%w: %w", ErrWrap, err)
		}
		result.WrapTxID = txID
		log.Debugw("wrap transaction confirmed", "tx.id", txID)
	}

	outcomes := o.submitAll(ctx, signed[:len(items)], submit)

	result.TxIDs = make([]string, 0, len(items))
	result.StreamIDs = make([]string, 0, len(items))
	result.Recipients = make(map[string]string, len(items))
	for i, item := range items {
		result.StreamIDs = append(result.StreamIDs, item.StreamID)
		result.Recipients[item.StreamID] = item.Recipient

		if err := outcomes[i].err; err != nil {
			result.Errors = append(result.Errors, ItemError{
				Index:     i,
				Recipient: item.Recipient,
				StreamID:  item.StreamID,
				Err:       err,
			})
			log.Warnw("batch item failed", "item.index", i, "recipient", item.Recipient, "error", err)
			continue
		}
		result.TxIDs = append(result.TxIDs, outcomes[i].txID)
	}

	o.submitted.Add(ctx, int64(len(result.TxIDs)))
	o.failed.Add(ctx, int64(len(result.Errors)))
	span.SetAttributes(
		attribute.Int("batch.succeeded", len(result.TxIDs)),
		attribute.Int("batch.failed", len(result.Errors)),
	)
	if len(result.Errors) > 0 {
		span.SetStatus(codes.Error, "some items failed")
	}

	return result, nil
}

// submitAll submits every transaction on its own goroutine and returns the
// outcomes in input order once all of them settled.
func (o *Orchestrator[T]) submitAll(ctx context.Context, txs []T, submit SubmitFunc[T]) []outcome {
	outcomes := make([]outcome, len(txs))
	sem := chflow.NewSemaphore(o.cfg.concurrency)

	var wg sync.WaitGroup
	for i, tx := range txs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if !sem.Acquire(ctx) {
				outcomes[i] = outcome{err: ctx.Err()}
				return
			}
			defer sem.Release()

			txID, err := submit(ctx, tx)
			outcomes[i] = outcome{txID: txID, err: err}
		}()
	}
	wg.Wait()

	return outcomes
}
