package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/gabapcia/streamkit/pkg/amount"
	"github.com/gabapcia/streamkit/pkg/solanastream"
	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/urfave/cli/v3"
)

// ErrMissingKeypair is returned by commands that sign when --keypair is not set.
var ErrMissingKeypair = errors.New("a --keypair is required for this command")

// Service is the stream client the commands drive.
type Service interface {
	stream.Client[solanastream.Signer]

	// MintDecimals returns the number of decimals of a token mint.
	MintDecimals(ctx context.Context, mint string) (uint8, error)
}

// SignerLoader opens the signer stored at path.
type SignerLoader func(path string) (solanastream.Signer, error)

// Run initializes and executes the streamkit CLI application.
//
// Read commands (get, get-one, unlocked) only need the RPC endpoint. Every
// other command signs with the keypair given through the global --keypair
// flag. Amounts are accepted in whole tokens and converted with the mint
// decimals before they reach the client.
func Run(ctx context.Context, svc Service, loadSigner SignerLoader) error {
	return newApp(svc, loadSigner).Run(ctx, os.Args)
}

func newApp(svc Service, loadSigner SignerLoader) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "streamkit",
		Description:           "Command-line interface for creating and managing token streams.",
		Usage:                 "streamkit [command] [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "keypair",
				Usage:   "Path to a solana-keygen JSON keypair used to sign transactions",
				Sources: cli.EnvVars("STREAMKIT_KEYPAIR"),
			},
		},
		Commands: []*cli.Command{
			getCommand(svc),
			getOneCommand(svc),
			unlockedCommand(svc),
			createCommand(svc, loadSigner),
			createMultipleCommand(svc, loadSigner),
			withdrawCommand(svc, loadSigner),
			cancelCommand(svc, loadSigner),
			transferCommand(svc, loadSigner),
			topupCommand(svc, loadSigner),
		},
	}
}

// signerFrom loads the signer named by the global --keypair flag.
func signerFrom(c *cli.Command, loadSigner SignerLoader) (solanastream.Signer, error) {
	path := c.String("keypair")
	if path == "" {
		return nil, ErrMissingKeypair
	}
	return loadSigner(path)
}

// units converts whole-token amounts of one mint into smallest units.
type units struct {
	decimals int
}

// unitsOf looks up the decimals of mint.
func unitsOf(ctx context.Context, svc Service, mint string) (units, error) {
	decimals, err := svc.MintDecimals(ctx, mint)
	if err != nil {
		return units{}, err
	}
	return units{decimals: int(decimals)}, nil
}

func (u units) parse(field, value string) (*big.Int, error) {
	v, err := amount.ParseSmallestUnits(value, u.decimals)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return v, nil
}

// writeJSON writes v as indented JSON to the application writer.
func writeJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
