package solanastream

import (
	"context"
	"fmt"

	"github.com/gabapcia/streamkit/pkg/stream"

	"github.com/gagliardetto/solana-go"
)

// Signer is any signing capability. The public key is reported as absent by
// wallets that are not connected.
type Signer interface {
	PublicKey() (solana.PublicKey, bool)
}

// InteractiveSigner signs through a wallet, usually with user approval.
type InteractiveSigner interface {
	Signer
	SignTransaction(ctx context.Context, tx *solana.Transaction) (*solana.Transaction, error)
	SignAllTransactions(ctx context.Context, txs []*solana.Transaction) ([]*solana.Transaction, error)
}

// DirectSigner holds the key and signs in process.
type DirectSigner interface {
	Signer
	PartialSign(tx *solana.Transaction) error
}

// KeypairSigner is a DirectSigner over a private key.
type KeypairSigner struct {
	key solana.PrivateKey
}

var _ DirectSigner = KeypairSigner{}

// NewKeypairSigner returns a signer for key.
func NewKeypairSigner(key solana.PrivateKey) KeypairSigner {
	return KeypairSigner{key: key}
}

// LoadKeypairSigner reads a keypair file in the solana-keygen JSON format.
func LoadKeypairSigner(path string) (KeypairSigner, error) {
	key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return KeypairSigner{}, fmt.Errorf("load keypair %s: %w", path, err)
	}
	return NewKeypairSigner(key), nil
}

// PublicKey implements Signer.
func (k KeypairSigner) PublicKey() (solana.PublicKey, bool) {
	if len(k.key) == 0 {
		return solana.PublicKey{}, false
	}
	return k.key.PublicKey(), true
}

// PartialSign implements DirectSigner.
func (k KeypairSigner) PartialSign(tx *solana.Transaction) error {
	return partialSign(tx, k.key)
}

// partialSign adds the signatures of keys to tx, leaving the other signers untouched.
func partialSign(tx *solana.Transaction, keys ...solana.PrivateKey) error {
	_, err := tx.PartialSign(func(pub solana.PublicKey) *solana.PrivateKey {
		for i := range keys {
			if keys[i].PublicKey().Equals(pub) {
				return &keys[i]
			}
		}
		return nil
	})
	return err
}

// signerKey returns the public key of signer or fails with stream.ErrValidation.
func signerKey(signer Signer) (solana.PublicKey, error) {
	if signer == nil {
		return solana.PublicKey{}, fmt.Errorf("%w: signer is required", stream.ErrValidation)
	}
	pub, ok := signer.PublicKey()
	if !ok || pub == (solana.PublicKey{}) {
		return solana.PublicKey{}, fmt.Errorf("%w: signer public key is not available", stream.ErrValidation)
	}
	return pub, nil
}

// checkCapability fails with stream.ErrValidation when signer can not sign.
func checkCapability(signer Signer) error {
	switch signer.(type) {
	case DirectSigner, InteractiveSigner:
		return nil
	default:
		return fmt.Errorf("%w: signer %T can neither sign nor partially sign", stream.ErrValidation, signer)
	}
}

// signOne signs tx with whatever capability signer has.
func signOne(ctx context.Context, signer Signer, tx *solana.Transaction) (*solana.Transaction, error) {
	switch s := signer.(type) {
	case DirectSigner:
		if err := s.PartialSign(tx); err != nil {
			return nil, err
		}
		return tx, nil
	case InteractiveSigner:
		return s.SignTransaction(ctx, tx)
	default:
		return nil, fmt.Errorf("%w: signer %T can neither sign nor partially sign", stream.ErrValidation, signer)
	}
}

// signAll signs txs in one round for interactive signers.
func signAll(ctx context.Context, signer Signer, txs []*solana.Transaction) ([]*solana.Transaction, error) {
	switch s := signer.(type) {
	case DirectSigner:
		for _, tx := range txs {
			if err := s.PartialSign(tx); err != nil {
				return nil, err
			}
		}
		return txs, nil
	case InteractiveSigner:
		return s.SignAllTransactions(ctx, txs)
	default:
		return nil, fmt.Errorf("%w: signer %T can neither sign nor partially sign", stream.ErrValidation, signer)
	}
}
