package solanastream

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Timelock program instruction tags.
const (
	tagCreate   uint8 = 0
	tagWithdraw uint8 = 1
	tagCancel   uint8 = 2
	tagTransfer uint8 = 3
	tagTopup    uint8 = 4
)

// createIdempotentTag is the associated token account program instruction that
// succeeds when the account already exists.
const createIdempotentTag byte = 1

// withdrawAll asks the program to withdraw everything available.
const withdrawAll = ^uint64(0)

// createArgs is the Borsh layout of the create instruction arguments.
type createArgs struct {
	StartTime               uint64
	NetAmountDeposited      uint64
	Period                  uint64
	AmountPerPeriod         uint64
	Cliff                   uint64
	CliffAmount             uint64
	CancelableBySender      bool
	CancelableByRecipient   bool
	AutomaticWithdrawal     bool
	TransferableBySender    bool
	TransferableByRecipient bool
	CanTopup                bool
	StreamName              [64]byte
	WithdrawFrequency       uint64
}

// amountArgs is the Borsh layout of withdraw and topup arguments.
type amountArgs struct {
	Amount uint64
}

func instructionData(tag uint8, args any) ([]byte, error) {
	if args == nil {
		return []byte{tag}, nil
	}

	encoded, err := bin.MarshalBorsh(args)
	if err != nil {
		return nil, fmt.Errorf("encode instruction %d arguments: %w", tag, err)
	}
	return append([]byte{tag}, encoded...), nil
}

func writable(pub solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(pub, true, false)
}

func readonly(pub solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(pub, false, false)
}

func signerMeta(pub solana.PublicKey) *solana.AccountMeta {
	return solana.NewAccountMeta(pub, true, true)
}

// routing holds the accounts a stream routes funds through.
type routing struct {
	Metadata        solana.PublicKey
	EscrowTokens    solana.PublicKey
	Mint            solana.PublicKey
	Sender          solana.PublicKey
	SenderTokens    solana.PublicKey
	Recipient       solana.PublicKey
	RecipientTokens solana.PublicKey
	Treasury        solana.PublicKey
	TreasuryTokens  solana.PublicKey
	Partner         solana.PublicKey
	PartnerTokens   solana.PublicKey
}

func newCreateInstruction(network Network, r routing, args createArgs) (solana.Instruction, error) {
	data, err := instructionData(tagCreate, args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(network.ProgramID, solana.AccountMetaSlice{
		signerMeta(r.Sender),
		writable(r.SenderTokens),
		writable(r.Recipient),
		signerMeta(r.Metadata),
		writable(r.EscrowTokens),
		writable(r.RecipientTokens),
		writable(r.Treasury),
		writable(r.TreasuryTokens),
		writable(r.Partner),
		writable(r.PartnerTokens),
		readonly(r.Mint),
		readonly(network.FeeOracle),
		readonly(solana.SysVarRentPubkey),
		readonly(network.ProgramID),
		readonly(solana.TokenProgramID),
		readonly(solana.SPLAssociatedTokenAccountProgramID),
		readonly(solana.SystemProgramID),
	}, data), nil
}

func newWithdrawInstruction(network Network, authority solana.PublicKey, r routing, amount uint64) (solana.Instruction, error) {
	data, err := instructionData(tagWithdraw, amountArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(network.ProgramID, solana.AccountMetaSlice{
		signerMeta(authority),
		writable(r.Recipient),
		writable(r.RecipientTokens),
		writable(r.Metadata),
		writable(r.EscrowTokens),
		writable(r.Treasury),
		writable(r.TreasuryTokens),
		writable(r.Partner),
		writable(r.PartnerTokens),
		readonly(r.Mint),
		readonly(solana.TokenProgramID),
	}, data), nil
}

func newCancelInstruction(network Network, authority solana.PublicKey, r routing) (solana.Instruction, error) {
	data, err := instructionData(tagCancel, nil)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(network.ProgramID, solana.AccountMetaSlice{
		signerMeta(authority),
		writable(r.Sender),
		writable(r.SenderTokens),
		writable(r.Recipient),
		writable(r.RecipientTokens),
		writable(r.Metadata),
		writable(r.EscrowTokens),
		writable(r.Treasury),
		writable(r.TreasuryTokens),
		writable(r.Partner),
		writable(r.PartnerTokens),
		readonly(r.Mint),
		readonly(solana.TokenProgramID),
	}, data), nil
}

func newTransferInstruction(network Network, authority, newRecipient, newRecipientTokens solana.PublicKey, r routing) (solana.Instruction, error) {
	data, err := instructionData(tagTransfer, nil)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(network.ProgramID, solana.AccountMetaSlice{
		signerMeta(authority),
		writable(newRecipient),
		writable(newRecipientTokens),
		writable(r.Metadata),
		readonly(r.Mint),
		readonly(solana.SysVarRentPubkey),
		readonly(solana.TokenProgramID),
		readonly(solana.SPLAssociatedTokenAccountProgramID),
		readonly(solana.SystemProgramID),
	}, data), nil
}

func newTopupInstruction(network Network, sender, senderTokens solana.PublicKey, r routing, amount uint64) (solana.Instruction, error) {
	data, err := instructionData(tagTopup, amountArgs{Amount: amount})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(network.ProgramID, solana.AccountMetaSlice{
		signerMeta(sender),
		writable(senderTokens),
		writable(r.Metadata),
		writable(r.EscrowTokens),
		writable(r.Treasury),
		writable(r.TreasuryTokens),
		writable(r.Partner),
		writable(r.PartnerTokens),
		readonly(r.Mint),
		readonly(solana.TokenProgramID),
		readonly(solana.SystemProgramID),
	}, data), nil
}

// tokenAccount derives the associated token account of owner for mint.
func tokenAccount(owner, mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("derive token account of %s for %s: %w", owner, mint, err)
	}
	return ata, nil
}

// newCreateTokenAccountInstruction creates the associated token account of
// owner for mint unless it already exists.
func newCreateTokenAccountInstruction(payer, owner, mint solana.PublicKey) (solana.Instruction, solana.PublicKey, error) {
	ata, err := tokenAccount(owner, mint)
	if err != nil {
		return nil, solana.PublicKey{}, err
	}

	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, solana.AccountMetaSlice{
		signerMeta(payer),
		writable(ata),
		readonly(owner),
		readonly(mint),
		readonly(solana.SystemProgramID),
		readonly(solana.TokenProgramID),
	}, []byte{createIdempotentTag}), ata, nil
}

// wrapNativeInstructions moves lamports from owner into its wrapped native
// token account, creating the account when needed.
func wrapNativeInstructions(owner solana.PublicKey, lamports uint64) ([]solana.Instruction, error) {
	create, ata, err := newCreateTokenAccountInstruction(owner, owner, NativeMint)
	if err != nil {
		return nil, err
	}

	return []solana.Instruction{
		create,
		system.NewTransferInstruction(lamports, owner, ata).Build(),
		token.NewSyncNativeInstruction(ata).Build(),
	}, nil
}

// streamName pads name into the fixed program field.
func streamName(name string) [64]byte {
	var out [64]byte
	copy(out[:], name)
	return out
}
