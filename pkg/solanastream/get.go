package solanastream

import (
	"cmp"
	"context"
	"slices"

	"github.com/gabapcia/streamkit/pkg/stream"

	"go.opentelemetry.io/otel/attribute"
)

// GetOne implements stream.Client.
func (c *client) GetOne(ctx context.Context, id string) (s stream.Stream, err error) {
	ctx, span := c.startSpan(ctx, "get_one", attribute.String("stream.id", id))
	defer func() { endSpan(span, err) }()

	address, err := parseAddress("id", id)
	if err != nil {
		return stream.Stream{}, err
	}
	return c.fetch(ctx, address)
}

// Get implements stream.Client.
func (c *client) Get(ctx context.Context, params stream.GetParams) (entries []stream.Entry, err error) {
	ctx, span := c.startSpan(ctx, "get",
		attribute.String("stream.address", params.Address),
		attribute.String("stream.direction", string(params.Direction)),
		attribute.String("stream.type", string(params.Type)),
	)
	defer func() { endSpan(span, err) }()

	if err := validate(params); err != nil {
		return nil, err
	}

	address, err := parseAddress("address", params.Address)
	if err != nil {
		return nil, err
	}

	var offsets []uint64
	switch params.Direction {
	case stream.DirectionOutgoing:
		offsets = []uint64{stream.SenderOffset}
	case stream.DirectionIncoming:
		offsets = []uint64{stream.RecipientOffset}
	default:
		offsets = []uint64{stream.SenderOffset, stream.RecipientOffset}
	}

	entries = []stream.Entry{}
	for _, offset := range offsets {
		accounts, err := stream.Guard(ctx, func(ctx context.Context) ([]KeyedAccount, error) {
			return c.ledger.GetProgramAccounts(ctx, c.network.ProgramID, offset, address.Bytes())
		}, ExtractProgramErrorCode)
		if err != nil {
			return nil, err
		}

		for _, account := range accounts {
			s, err := stream.Decode(account.Data, encodeAddress)
			if err != nil {
				c.logger.Warnw("skipping undecodable stream account", "stream.id", account.Address.String(), "error", err)
				continue
			}
			s.ID = account.Address.String()

			if !s.Matches(params.Type) {
				continue
			}
			entries = append(entries, stream.Entry{ID: s.ID, Stream: s})
		}
	}

	slices.SortStableFunc(entries, func(a, b stream.Entry) int {
		return cmp.Compare(b.Stream.Start, a.Stream.Start)
	})

	span.SetAttributes(attribute.Int("stream.count", len(entries)))
	return entries, nil
}

// MintDecimals returns the decimals of mint, used to convert display amounts.
func (c *client) MintDecimals(ctx context.Context, mint string) (decimals uint8, err error) {
	ctx, span := c.startSpan(ctx, "mint_decimals", attribute.String("stream.mint", mint))
	defer func() { endSpan(span, err) }()

	address, err := parseAddress("mint", mint)
	if err != nil {
		return 0, err
	}
	return stream.Guard(ctx, func(ctx context.Context) (uint8, error) {
		return c.ledger.GetMintDecimals(ctx, address)
	}, ExtractProgramErrorCode)
}

