package stream

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode/utf8"
)

// AddressEncoder renders a raw 32 byte address in the ledger's text encoding.
type AddressEncoder func(raw [32]byte) string

// AddressDecoder parses an address from the ledger's text encoding.
type AddressDecoder func(text string) ([32]byte, error)

var (
	magicUnchecked = [8]byte{'S', 'T', 'R', 'M', 'U', 'N', 'C', 'K'}
	magicChecked   = [8]byte{'S', 'T', 'R', 'M', 'C', 'H', 'K', 'D'}
)

// Byte offsets of the stream account fields. Integers are little endian.
const (
	MagicOffset                         = 0
	VersionOffset                       = 8
	CreatedAtOffset                     = 9
	WithdrawnAmountOffset               = 17
	CanceledAtOffset                    = 25
	EndOffset                           = 33
	LastWithdrawnAtOffset               = 41
	SenderOffset                        = 49
	SenderTokensOffset                  = 81
	RecipientOffset                     = 113
	RecipientTokensOffset               = 145
	MintOffset                          = 177
	EscrowTokensOffset                  = 209
	TreasuryOffset                      = 241
	TreasuryTokensOffset                = 273
	StreamflowFeeTotalOffset            = 305
	StreamflowFeeWithdrawnOffset        = 313
	StreamflowFeePercentOffset          = 321
	PartnerOffset                       = 325
	PartnerTokensOffset                 = 357
	PartnerFeeTotalOffset               = 389
	PartnerFeeWithdrawnOffset           = 397
	PartnerFeePercentOffset             = 405
	StartOffset                         = 409
	DepositedAmountOffset               = 417
	PeriodOffset                        = 425
	AmountPerPeriodOffset               = 433
	CliffOffset                         = 441
	CliffAmountOffset                   = 449
	CancelableBySenderOffset            = 457
	CancelableByRecipientOffset         = 458
	AutomaticWithdrawalOffset           = 459
	TransferableBySenderOffset          = 460
	TransferableByRecipientOffset       = 461
	CanTopupOffset                      = 462
	NameOffset                          = 463
	WithdrawFrequencyOffset             = 527
	ClosedOffset                        = 535
	LastRateChangeTimeOffset            = 536
	FundsUnlockedAtLastRateChangeOffset = 544
	CurrentPauseStartOffset             = 552
	PauseCumulativeOffset               = 560
	PausableOffset                      = 568
	CanUpdateRateOffset                 = 569

	NameSize      = 64
	addressSize   = 32
	feeBasisScale = 10000
)

// Account sizes per layout.
const (
	UncheckedSize = 552
	CheckedSize   = 570
)

// Size returns the account size of layout, or 0 for an unknown layout.
func (l Layout) Size() int {
	switch l {
	case LayoutUnchecked:
		return UncheckedSize
	case LayoutChecked:
		return CheckedSize
	default:
		return 0
	}
}

func (l Layout) magic() [8]byte {
	if l == LayoutChecked {
		return magicChecked
	}
	return magicUnchecked
}

// detectLayout identifies the layout from the magic bytes.
func detectLayout(raw []byte) (Layout, error) {
	if len(raw) < VersionOffset+1 {
		return 0, fmt.Errorf("%w: account truncated to %d bytes", ErrDecode, len(raw))
	}

	var layout Layout
	switch {
	case bytes.Equal(raw[MagicOffset:VersionOffset], magicUnchecked[:]):
		layout = LayoutUnchecked
	case bytes.Equal(raw[MagicOffset:VersionOffset], magicChecked[:]):
		layout = LayoutChecked
	default:
		return 0, fmt.Errorf("%w: unknown magic %q", ErrDecode, raw[MagicOffset:VersionOffset])
	}

	if version := raw[VersionOffset]; Layout(version) != layout {
		return 0, fmt.Errorf("%w: version %d does not match %s layout", ErrDecode, version, layout)
	}

	if len(raw) != layout.Size() {
		return 0, fmt.Errorf("%w: %s account must be %d bytes, got %d", ErrDecode, layout, layout.Size(), len(raw))
	}

	return layout, nil
}

// reader reads fixed offset fields from a length checked account.
type reader struct {
	raw     []byte
	address AddressEncoder
}

func (r reader) u64(offset int) uint64 {
	return binary.LittleEndian.Uint64(r.raw[offset : offset+8])
}

func (r reader) amount(offset int) *big.Int {
	return new(big.Int).SetUint64(r.u64(offset))
}

func (r reader) percent(offset int) float64 {
	return float64(binary.LittleEndian.Uint32(r.raw[offset:offset+4])) / feeBasisScale
}

func (r reader) flag(offset int) bool {
	return r.raw[offset] != 0
}

func (r reader) addr(offset int) string {
	var key [addressSize]byte
	copy(key[:], r.raw[offset:offset+addressSize])
	return r.address(key)
}

func (r reader) name() string {
	name := strings.TrimRight(string(r.raw[NameOffset:NameOffset+NameSize]), "\x00")
	if !utf8.ValidString(name) {
		name = strings.ToValidUTF8(name, string(utf8.RuneError))
	}
	return name
}

// Decode reads a stream account. The layout is chosen by the magic and version
// bytes, and a length, magic or version mismatch fails with ErrDecode. So does
// an account whose withdrawn or rate change checkpoint exceeds the deposit.
//
// The returned Stream has no ID; the caller knows the account address.
func Decode(raw []byte, encode AddressEncoder) (Stream, error) {
	layout, err := detectLayout(raw)
	if err != nil {
		return Stream{}, err
	}

	r := reader{raw: raw, address: encode}
	s := Stream{
		Name:      r.name(),
		Layout:    layout,
		CreatedAt: r.u64(CreatedAtOffset),

		Sender:          r.addr(SenderOffset),
		SenderTokens:    r.addr(SenderTokensOffset),
		Recipient:       r.addr(RecipientOffset),
		RecipientTokens: r.addr(RecipientTokensOffset),
		Mint:            r.addr(MintOffset),
		EscrowTokens:    r.addr(EscrowTokensOffset),
		Treasury:        r.addr(TreasuryOffset),
		TreasuryTokens:  r.addr(TreasuryTokensOffset),
		Partner:         r.addr(PartnerOffset),
		PartnerTokens:   r.addr(PartnerTokensOffset),

		Start:           r.u64(StartOffset),
		End:             r.u64(EndOffset),
		Period:          r.u64(PeriodOffset),
		Cliff:           r.u64(CliffOffset),
		CliffAmount:     r.amount(CliffAmountOffset),
		AmountPerPeriod: r.amount(AmountPerPeriodOffset),
		DepositedAmount: r.amount(DepositedAmountOffset),

		WithdrawnAmount: r.amount(WithdrawnAmountOffset),
		CanceledAt:      r.u64(CanceledAtOffset),
		LastWithdrawnAt: r.u64(LastWithdrawnAtOffset),

		LastRateChangeTime:            r.u64(LastRateChangeTimeOffset),
		FundsUnlockedAtLastRateChange: r.amount(FundsUnlockedAtLastRateChangeOffset),

		StreamflowFeeTotal:     r.amount(StreamflowFeeTotalOffset),
		StreamflowFeeWithdrawn: r.amount(StreamflowFeeWithdrawnOffset),
		StreamflowFeePercent:   r.percent(StreamflowFeePercentOffset),
		PartnerFeeTotal:        r.amount(PartnerFeeTotalOffset),
		PartnerFeeWithdrawn:    r.amount(PartnerFeeWithdrawnOffset),
		PartnerFeePercent:      r.percent(PartnerFeePercentOffset),

		CancelableBySender:      r.flag(CancelableBySenderOffset),
		CancelableByRecipient:   r.flag(CancelableByRecipientOffset),
		AutomaticWithdrawal:     r.flag(AutomaticWithdrawalOffset),
		TransferableBySender:    r.flag(TransferableBySenderOffset),
		TransferableByRecipient: r.flag(TransferableByRecipientOffset),
		CanTopup:                r.flag(CanTopupOffset),
		WithdrawalFrequency:     r.u64(WithdrawFrequencyOffset),
		Closed:                  r.flag(ClosedOffset),
	}

	if layout == LayoutChecked {
		s.CurrentPauseStart = r.u64(CurrentPauseStartOffset)
		s.PauseCumulative = r.u64(PauseCumulativeOffset)
		s.Pausable = r.flag(PausableOffset)
		s.CanUpdateRate = r.flag(CanUpdateRateOffset)
	}

	if s.WithdrawnAmount.Cmp(s.DepositedAmount) > 0 {
		return Stream{}, fmt.Errorf("%w: withdrawn %s exceeds deposited %s", ErrDecode, s.WithdrawnAmount, s.DepositedAmount)
	}
	if s.FundsUnlockedAtLastRateChange.Cmp(s.DepositedAmount) > 0 {
		return Stream{}, fmt.Errorf("%w: funds unlocked at last rate change %s exceed deposited %s", ErrDecode, s.FundsUnlockedAtLastRateChange, s.DepositedAmount)
	}

	return s, nil
}

// writer fills a zeroed account buffer.
type writer struct {
	raw     []byte
	address AddressDecoder
	err     error
}

func (w *writer) u64(offset int, v uint64) {
	binary.LittleEndian.PutUint64(w.raw[offset:offset+8], v)
}

func (w *writer) amount(offset int, field string, v *big.Int) {
	if v == nil {
		return
	}
	if !v.IsUint64() {
		w.fail(fmt.Errorf("%s %s does not fit in u64", field, v))
		return
	}
	w.u64(offset, v.Uint64())
}

func (w *writer) percent(offset int, p float64) {
	binary.LittleEndian.PutUint32(w.raw[offset:offset+4], uint32(math.Round(p*feeBasisScale)))
}

func (w *writer) flag(offset int, v bool) {
	if v {
		w.raw[offset] = 1
	}
}

func (w *writer) addr(offset int, field, text string) {
	if text == "" {
		return
	}
	key, err := w.address(text)
	if err != nil {
		w.fail(fmt.Errorf("%s: %w", field, err))
		return
	}
	copy(w.raw[offset:offset+addressSize], key[:])
}

func (w *writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Encode serializes s in its Layout (LayoutUnchecked when unset). Empty
// addresses are written as zero bytes. It mirrors Decode and is meant for
// fixtures and tooling; accounts on a ledger are written by the program.
func Encode(s Stream, decode AddressDecoder) ([]byte, error) {
	layout := s.Layout
	if layout == 0 {
		layout = LayoutUnchecked
	}
	if layout.Size() == 0 {
		return nil, fmt.Errorf("unknown layout %d", layout)
	}
	if len(s.Name) > NameSize {
		return nil, fmt.Errorf("name is %d bytes, at most %d fit", len(s.Name), NameSize)
	}

	w := &writer{raw: make([]byte, layout.Size()), address: decode}

	magic := layout.magic()
	copy(w.raw[MagicOffset:], magic[:])
	w.raw[VersionOffset] = byte(layout)

	w.u64(CreatedAtOffset, s.CreatedAt)
	w.amount(WithdrawnAmountOffset, "withdrawn amount", s.WithdrawnAmount)
	w.u64(CanceledAtOffset, s.CanceledAt)
	w.u64(EndOffset, s.End)
	w.u64(LastWithdrawnAtOffset, s.LastWithdrawnAt)

	w.addr(SenderOffset, "sender", s.Sender)
	w.addr(SenderTokensOffset, "sender tokens", s.SenderTokens)
	w.addr(RecipientOffset, "recipient", s.Recipient)
	w.addr(RecipientTokensOffset, "recipient tokens", s.RecipientTokens)
	w.addr(MintOffset, "mint", s.Mint)
	w.addr(EscrowTokensOffset, "escrow tokens", s.EscrowTokens)
	w.addr(TreasuryOffset, "treasury", s.Treasury)
	w.addr(TreasuryTokensOffset, "treasury tokens", s.TreasuryTokens)

	w.amount(StreamflowFeeTotalOffset, "streamflow fee total", s.StreamflowFeeTotal)
	w.amount(StreamflowFeeWithdrawnOffset, "streamflow fee withdrawn", s.StreamflowFeeWithdrawn)
	w.percent(StreamflowFeePercentOffset, s.StreamflowFeePercent)

	w.addr(PartnerOffset, "partner", s.Partner)
	w.addr(PartnerTokensOffset, "partner tokens", s.PartnerTokens)
	w.amount(PartnerFeeTotalOffset, "partner fee total", s.PartnerFeeTotal)
	w.amount(PartnerFeeWithdrawnOffset, "partner fee withdrawn", s.PartnerFeeWithdrawn)
	w.percent(PartnerFeePercentOffset, s.PartnerFeePercent)

	w.u64(StartOffset, s.Start)
	w.amount(DepositedAmountOffset, "deposited amount", s.DepositedAmount)
	w.u64(PeriodOffset, s.Period)
	w.amount(AmountPerPeriodOffset, "amount per period", s.AmountPerPeriod)
	w.u64(CliffOffset, s.Cliff)
	w.amount(CliffAmountOffset, "cliff amount", s.CliffAmount)

	w.flag(CancelableBySenderOffset, s.CancelableBySender)
	w.flag(CancelableByRecipientOffset, s.CancelableByRecipient)
	w.flag(AutomaticWithdrawalOffset, s.AutomaticWithdrawal)
	w.flag(TransferableBySenderOffset, s.TransferableBySender)
	w.flag(TransferableByRecipientOffset, s.TransferableByRecipient)
	w.flag(CanTopupOffset, s.CanTopup)

	copy(w.raw[NameOffset:NameOffset+NameSize], s.Name)
	w.u64(WithdrawFrequencyOffset, s.WithdrawalFrequency)
	w.flag(ClosedOffset, s.Closed)
	w.u64(LastRateChangeTimeOffset, s.LastRateChangeTime)
	w.amount(FundsUnlockedAtLastRateChangeOffset, "funds unlocked at last rate change", s.FundsUnlockedAtLastRateChange)

	if layout == LayoutChecked {
		w.u64(CurrentPauseStartOffset, s.CurrentPauseStart)
		w.u64(PauseCumulativeOffset, s.PauseCumulative)
		w.flag(PausableOffset, s.Pausable)
		w.flag(CanUpdateRateOffset, s.CanUpdateRate)
	}

	if w.err != nil {
		return nil, w.err
	}
	return w.raw, nil
}
