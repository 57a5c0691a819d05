package solanastream

import (
	"encoding/binary"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNetwork() Network {
	return Network{
		ProgramID: solana.MustPublicKeyFromBase58("HqDGZjaVRXJ9MGRQEw7qDc2rAr6iH1n1kAQdCZaCMfMZ"),
		Treasury:  solana.MustPublicKeyFromBase58("5SEpbdjFK5FxwTvfsGMXVQTD2v4M2c5tyRTxhdsPkgDw"),
		FeeOracle: solana.MustPublicKeyFromBase58("B743wFVk2pCYhV91cn287e1xY7f1vt4gdY48hhNiuQmT"),
	}
}

func testRouting(t *testing.T) routing {
	t.Helper()

	keys := make([]solana.PublicKey, 11)
	for i := range keys {
		keys[i] = solana.NewWallet().PublicKey()
	}
	return routing{
		Metadata:        keys[0],
		EscrowTokens:    keys[1],
		Mint:            keys[2],
		Sender:          keys[3],
		SenderTokens:    keys[4],
		Recipient:       keys[5],
		RecipientTokens: keys[6],
		Treasury:        keys[7],
		TreasuryTokens:  keys[8],
		Partner:         keys[9],
		PartnerTokens:   keys[10],
	}
}

func instructionBytes(t *testing.T, ix solana.Instruction) []byte {
	t.Helper()

	data, err := ix.Data()
	require.NoError(t, err)
	return data
}

func TestNewCreateInstruction(t *testing.T) {
	network := testNetwork()
	r := testRouting(t)

	args := createArgs{
		StartTime:             1000,
		NetAmountDeposited:    1_000_000,
		Period:                1,
		AmountPerPeriod:       10,
		Cliff:                 1000,
		CliffAmount:           0,
		CancelableBySender:    true,
		CanTopup:              true,
		StreamName:            streamName("payroll"),
		WithdrawFrequency:     60,
		TransferableBySender:  true,
		CancelableByRecipient: false,
	}

	ix, err := newCreateInstruction(network, r, args)
	require.NoError(t, err)

	t.Run("should target the program", func(t *testing.T) {
		assert.Equal(t, network.ProgramID, ix.ProgramID())
	})

	t.Run("should encode the tag and borsh arguments", func(t *testing.T) {
		data := instructionBytes(t, ix)
		require.Len(t, data, 1+6*8+6+64+8)
		assert.Equal(t, tagCreate, data[0])
		assert.Equal(t, uint64(1000), binary.LittleEndian.Uint64(data[1:9]))
		assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[9:17]))

		var decoded createArgs
		require.NoError(t, bin.NewBorshDecoder(data[1:]).Decode(&decoded))
		assert.Equal(t, args, decoded)
	})

	t.Run("should require the sender and stream account signatures", func(t *testing.T) {
		accounts := ix.Accounts()
		require.Len(t, accounts, 17)

		var signers []solana.PublicKey
		for _, a := range accounts {
			if a.IsSigner {
				signers = append(signers, a.PublicKey)
			}
		}
		assert.Equal(t, []solana.PublicKey{r.Sender, r.Metadata}, signers)
		assert.Equal(t, r.Mint, accounts[10].PublicKey)
		assert.Equal(t, network.FeeOracle, accounts[11].PublicKey)
		assert.False(t, accounts[10].IsWritable)
	})
}

func TestNewWithdrawInstruction(t *testing.T) {
	network := testNetwork()
	r := testRouting(t)
	authority := solana.NewWallet().PublicKey()

	t.Run("should encode the amount", func(t *testing.T) {
		ix, err := newWithdrawInstruction(network, authority, r, 42)
		require.NoError(t, err)

		data := instructionBytes(t, ix)
		assert.Equal(t, []byte{tagWithdraw, 42, 0, 0, 0, 0, 0, 0, 0}, data)
		assert.Equal(t, authority, ix.Accounts()[0].PublicKey)
		assert.True(t, ix.Accounts()[0].IsSigner)
		assert.Equal(t, r.RecipientTokens, ix.Accounts()[2].PublicKey)
	})

	t.Run("should encode withdraw all as u64 max", func(t *testing.T) {
		ix, err := newWithdrawInstruction(network, authority, r, withdrawAll)
		require.NoError(t, err)

		data := instructionBytes(t, ix)
		assert.Equal(t, ^uint64(0), binary.LittleEndian.Uint64(data[1:]))
	})
}

func TestNewCancelInstruction(t *testing.T) {
	r := testRouting(t)
	authority := solana.NewWallet().PublicKey()

	t.Run("should carry only the tag", func(t *testing.T) {
		ix, err := newCancelInstruction(testNetwork(), authority, r)
		require.NoError(t, err)

		assert.Equal(t, []byte{tagCancel}, instructionBytes(t, ix))
		assert.Len(t, ix.Accounts(), 13)
		assert.Equal(t, r.SenderTokens, ix.Accounts()[2].PublicKey)
	})
}

func TestNewTransferInstruction(t *testing.T) {
	r := testRouting(t)
	authority := solana.NewWallet().PublicKey()
	newRecipient := solana.NewWallet().PublicKey()
	newRecipientTokens := solana.NewWallet().PublicKey()

	t.Run("should route to the new recipient", func(t *testing.T) {
		ix, err := newTransferInstruction(testNetwork(), authority, newRecipient, newRecipientTokens, r)
		require.NoError(t, err)

		assert.Equal(t, []byte{tagTransfer}, instructionBytes(t, ix))
		assert.Equal(t, newRecipient, ix.Accounts()[1].PublicKey)
		assert.Equal(t, newRecipientTokens, ix.Accounts()[2].PublicKey)
		assert.Equal(t, r.Metadata, ix.Accounts()[3].PublicKey)
	})
}

func TestNewTopupInstruction(t *testing.T) {
	r := testRouting(t)
	sender := solana.NewWallet().PublicKey()
	senderTokens := solana.NewWallet().PublicKey()

	t.Run("should encode the amount from the sender tokens", func(t *testing.T) {
		ix, err := newTopupInstruction(testNetwork(), sender, senderTokens, r, 500)
		require.NoError(t, err)

		data := instructionBytes(t, ix)
		assert.Equal(t, tagTopup, data[0])
		assert.Equal(t, uint64(500), binary.LittleEndian.Uint64(data[1:]))
		assert.Equal(t, senderTokens, ix.Accounts()[1].PublicKey)
	})
}

func TestWrapNativeInstructions(t *testing.T) {
	owner := solana.NewWallet().PublicKey()

	t.Run("should create the account, fund it and sync", func(t *testing.T) {
		ixs, err := wrapNativeInstructions(owner, 5_000)
		require.NoError(t, err)
		require.Len(t, ixs, 3)

		ata, err := tokenAccount(owner, NativeMint)
		require.NoError(t, err)

		assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, ixs[0].ProgramID())
		assert.Equal(t, []byte{createIdempotentTag}, instructionBytes(t, ixs[0]))
		assert.Equal(t, ata, ixs[0].Accounts()[1].PublicKey)

		assert.Equal(t, solana.SystemProgramID, ixs[1].ProgramID())
		assert.Equal(t, ata, ixs[1].Accounts()[1].PublicKey)

		assert.Equal(t, solana.TokenProgramID, ixs[2].ProgramID())
		assert.Equal(t, ata, ixs[2].Accounts()[0].PublicKey)
	})
}

func TestStreamName(t *testing.T) {
	t.Run("should pad with zeros", func(t *testing.T) {
		name := streamName("ab")
		assert.Equal(t, byte('a'), name[0])
		assert.Equal(t, byte('b'), name[1])
		assert.Equal(t, [62]byte{}, [62]byte(name[2:]))
	})
}

func TestEscrowAddress(t *testing.T) {
	network := testNetwork()
	metadata := solana.NewWallet().PublicKey()

	t.Run("should be deterministic per stream", func(t *testing.T) {
		a, err := network.EscrowAddress(metadata)
		require.NoError(t, err)
		b, err := network.EscrowAddress(metadata)
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.NotEqual(t, metadata, a)

		other, err := network.EscrowAddress(solana.NewWallet().PublicKey())
		require.NoError(t, err)
		assert.NotEqual(t, a, other)
	})
}
