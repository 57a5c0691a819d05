package solanastream

import "github.com/gagliardetto/solana-go"

// NativeMint is the wrapped native currency mint.
var NativeMint = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

// Network holds the ledger-wide program addresses of one cluster.
type Network struct {
	ProgramID solana.PublicKey
	Treasury  solana.PublicKey
	FeeOracle solana.PublicKey
}

// escrowSeed prefixes the escrow token account derivation.
var escrowSeed = []byte("strm")

// EscrowAddress derives the escrow token account of a stream.
func (n Network) EscrowAddress(metadata solana.PublicKey) (solana.PublicKey, error) {
	escrow, _, err := solana.FindProgramAddress([][]byte{escrowSeed, metadata.Bytes()}, n.ProgramID)
	return escrow, err
}
