package cli

import (
	"context"
	"math/big"

	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/urfave/cli/v3"
)

func idFlag() cli.Flag {
	return &cli.StringFlag{Name: "id", Usage: "Stream account address", Required: true}
}

func idempotencyKeyFlag() cli.Flag {
	return &cli.StringFlag{Name: "idempotency-key", Usage: "Key that prevents the same operation from being submitted twice"}
}

// streamUnits looks up the stream to learn which mint its amounts are in.
func streamUnits(ctx context.Context, svc Service, id string) (units, error) {
	s, err := svc.GetOne(ctx, id)
	if err != nil {
		return units{}, err
	}
	return unitsOf(ctx, svc, s.Mint)
}

// withdrawCommand withdraws unlocked funds to the recipient.
//
// Usage example:
//
//	streamkit --keypair id.json withdraw --id 9sWk... --amount 10
func withdrawCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	return &cli.Command{
		Name:        "withdraw",
		Description: "Withdraw unlocked funds from a stream to its recipient. Without --amount everything available is withdrawn.",
		Usage:       "Withdraws from a stream.",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{Name: "amount", Usage: "Amount in whole tokens, defaults to everything available"},
			idempotencyKeyFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			id := c.String("id")
			var value *big.Int
			if text := c.String("amount"); text != "" {
				u, err := streamUnits(ctx, svc, id)
				if err != nil {
					return err
				}
				if value, err = u.parse("amount", text); err != nil {
					return err
				}
			}

			result, err := svc.Withdraw(ctx, stream.WithdrawParams{
				ID:             id,
				Amount:         value,
				IdempotencyKey: c.String("idempotency-key"),
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, result)
		},
	}
}

// cancelCommand cancels a stream.
//
// Usage example:
//
//	streamkit --keypair id.json cancel --id 9sWk...
func cancelCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	return &cli.Command{
		Name:        "cancel",
		Description: "Cancel a stream, paying unlocked funds to the recipient and returning the rest to the sender.",
		Usage:       "Cancels a stream.",
		Flags:       []cli.Flag{idFlag(), idempotencyKeyFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			result, err := svc.Cancel(ctx, stream.CancelParams{
				ID:             c.String("id"),
				IdempotencyKey: c.String("idempotency-key"),
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, result)
		},
	}
}

// transferCommand hands the recipient role of a stream to another address.
//
// Usage example:
//
//	streamkit --keypair id.json transfer --id 9sWk... --new-recipient 7xKX...
func transferCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	return &cli.Command{
		Name:        "transfer",
		Description: "Transfer the recipient role of a stream to a new address.",
		Usage:       "Transfers a stream.",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{Name: "new-recipient", Usage: "Address of the new recipient", Required: true},
			idempotencyKeyFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			result, err := svc.Transfer(ctx, stream.TransferParams{
				ID:             c.String("id"),
				NewRecipient:   c.String("new-recipient"),
				IdempotencyKey: c.String("idempotency-key"),
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, result)
		},
	}
}

// topupCommand adds funds to a stream.
//
// Usage example:
//
//	streamkit --keypair id.json topup --id 9sWk... --amount 25
func topupCommand(svc Service, loadSigner SignerLoader) *cli.Command {
	return &cli.Command{
		Name:        "topup",
		Description: "Add funds to a stream that accepts topups.",
		Usage:       "Tops up a stream.",
		Flags: []cli.Flag{
			idFlag(),
			&cli.StringFlag{Name: "amount", Usage: "Amount in whole tokens", Required: true},
			&cli.BoolFlag{Name: "native", Usage: "Wrap native currency before depositing"},
			idempotencyKeyFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			signer, err := signerFrom(c, loadSigner)
			if err != nil {
				return err
			}

			id := c.String("id")
			u, err := streamUnits(ctx, svc, id)
			if err != nil {
				return err
			}
			value, err := u.parse("amount", c.String("amount"))
			if err != nil {
				return err
			}

			result, err := svc.Topup(ctx, stream.TopupParams{
				ID:             id,
				Amount:         value,
				IsNative:       c.Bool("native"),
				IdempotencyKey: c.String("idempotency-key"),
			}, signer)
			if err != nil {
				return err
			}

			return writeJSON(c, result)
		},
	}
}
