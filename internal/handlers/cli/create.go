package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/streamkit/pkg/batch"
	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/urfave/cli/v3"
)

// scheduleFlags are shared by create and create-multiple.
func scheduleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "mint", Usage: "Token mint address", Required: true},
		&cli.Uint64Flag{Name: "start", Usage: "Unix start time in seconds, 0 starts immediately"},
		&cli.Uint64Flag{Name: "period", Usage: "Seconds between unlocks", Value: 1},
		&cli.Uint64Flag{Name: "cliff", Usage: "Unix cliff time in seconds, 0 uses the start"},
		&cli.BoolFlag{Name: "cancelable-by-sender", Usage: "Sender may cancel", Value: true},
		&cli.BoolFlag{Name: "cancelable-by-recipient", Usage: "Recipient may cancel"},
		&cli.BoolFlag{Name: "transferable-by-sender", Usage: "Sender may transfer the recipient role"},
		&cli.BoolFlag{Name: "transferable-by-recipient", Usage: "Recipient may transfer the recipient role", Value: true},
		&cli.BoolFlag{Name: "can-topup", Usage: "Allow topups, making it a payment stream"},
		&cli.BoolFlag{Name: "automatic-withdrawal", Usage: "Let the fee payer withdraw for the recipient"},
		&cli.Uint64Flag{Name: "withdrawal-frequency", Usage: "Seconds between automatic withdrawals"},
		&cli.StringFlag{Name: "partner", Usage: "Fee sharing partner address"},
		&cli.BoolFlag{Name: "native", Usage: "Wrap native currency into the mint before depositing"},
	}
}

func scheduleFrom(c *cli.Command) stream.Schedule {
	return stream.Schedule{
		Mint:                    c.String("mint"),
		Start:                   c.Uint64("start"),
		Period:                  c.Uint64("period"),
		Cliff:                   c.Uint64("cliff"),
		CancelableBySender:      c.Bool("cancelable-by-sender"),
		CancelableByRecipient:   c.Bool("cancelable-by-recipient"),
		TransferableBySender:    c.Bool("transferable-by-sender"),
		TransferableByRecipient: c.Bool("transferable-by-recipient"),
		CanTopup:                c.Bool("can-topup"),
		AutomaticWithdrawal:     c.Bool("automatic-withdrawal"),
		WithdrawalFrequency:     c.Uint64("withdrawal-frequency"),
		Partner:                 c.String("partner"),
		IsNative:                c.Bool("native"),
	}
}

// createCommand creates one stream.
//
// Usage example:
//
//	streamkit --keypair id.json create --mint So11... --recipient 7xKX... --amount 100 --rate 1 --period 86400
func createCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	flags := append(scheduleFlags(),
		&cli.StringFlag{Name: "recipient", Usage: "Recipient address", Required: true},
		&cli.StringFlag{Name: "amount", Usage: "Deposit in whole tokens", Required: true},
		&cli.StringFlag{Name: "rate", Usage: "Amount released per period in whole tokens", Required: true},
		&cli.StringFlag{Name: "cliff-amount", Usage: "Amount released at the cliff in whole tokens", Value: "0"},
		&cli.StringFlag{Name: "name", Usage: "Stream name, up to 64 bytes"},
		&cli.StringFlag{Name: "idempotency-key", Usage: "Key that prevents the same stream from being submitted twice"},
	)

	return &cli.Command{
		Name:        "create",
		Description: "Create a stream funded by the keypair owner.",
		Usage:       "Creates one stream.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			schedule := scheduleFrom(c)
			u, err := unitsOf(ctx, svc, schedule.Mint)
			if err != nil {
				return err
			}

			deposited, err := u.parse("amount", c.String("amount"))
			if err != nil {
				return err
			}
			rate, err := u.parse("rate", c.String("rate"))
			if err != nil {
				return err
			}
			cliffAmount, err := u.parse("cliff amount", c.String("cliff-amount"))
			if err != nil {
				return err
			}

			result, err := svc.Create(ctx, stream.CreateParams{
				Schedule:        schedule,
				Recipient:       c.String("recipient"),
				Name:            c.String("name"),
				Deposited:       deposited,
				AmountPerPeriod: rate,
				CliffAmount:     cliffAmount,
				IdempotencyKey:  c.String("idempotency-key"),
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, result)
		},
	}
}

// batchReport is the output of create-multiple, with item errors rendered as text.
type batchReport struct {
	TxIDs      []string          `json:"txIds"`
	StreamIDs  []string          `json:"streamIds"`
	Recipients map[string]string `json:"recipients"`
	WrapTxID   string            `json:"wrapTxId,omitempty"`
	Errors     []string          `json:"errors"`
}

func newBatchReport(r batch.Result) batchReport {
	errs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, e.Error())
	}

	return batchReport{
		TxIDs:      r.TxIDs,
		StreamIDs:  r.StreamIDs,
		Recipients: r.Recipients,
		WrapTxID:   r.WrapTxID,
		Errors:     errs,
	}
}

// parseRecipient reads an "address:amount:rate[:name]" entry. The name may
// contain colons.
func parseRecipient(u units, entry string) (stream.Recipient, error) {
	parts := strings.SplitN(entry, ":", 4)
	if len(parts) < 3 {
		return stream.Recipient{}, fmt.Errorf("invalid recipient %q: expected address:amount:rate[:name]", entry)
	}

	deposited, err := u.parse("amount", parts[1])
	if err != nil {
		return stream.Recipient{}, fmt.Errorf("invalid recipient %q: %w", entry, err)
	}
	rate, err := u.parse("rate", parts[2])
	if err != nil {
		return stream.Recipient{}, fmt.Errorf("invalid recipient %q: %w", entry, err)
	}

	r := stream.Recipient{
		Recipient:       parts[0],
		Deposited:       deposited,
		AmountPerPeriod: rate,
	}
	if len(parts) == 4 {
		r.Name = parts[3]
	}

	return r, nil
}

// createMultipleCommand creates one stream per recipient with a single signing round.
//
// Usage example:
//
//	streamkit --keypair id.json create-multiple --mint So11... --recipient 7xKX...:100:1:alice --recipient 9sWk...:50:0.5
func createMultipleCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	flags := append(scheduleFlags(),
		&cli.StringSliceFlag{
			Name:     "recipient",
			Usage:    "Recipient as address:amount:rate[:name], amounts in whole tokens. Repeat for each stream",
			Required: true,
		},
	)

	return &cli.Command{
		Name:        "create-multiple",
		Description: "Create one stream per recipient sharing the same schedule. Failed items are reported without aborting the rest.",
		Usage:       "Creates a batch of streams.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			schedule := scheduleFrom(c)
			u, err := unitsOf(ctx, svc, schedule.Mint)
			if err != nil {
				return err
			}

			entries := c.StringSlice("recipient")
			recipients := make([]stream.Recipient, 0, len(entries))
			for _, entry := range entries {
				r, err := parseRecipient(u, entry)
				if err != nil {
					return err
				}
				recipients = append(recipients, r)
			}

			result, err := svc.CreateMultiple(ctx, stream.CreateMultipleParams{
				Schedule:   schedule,
				Recipients: recipients,
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, newBatchReport(result))
		},
	}
}
