// Package stream holds the ledger-agnostic model of a token vesting/payment
// stream: the decoded account snapshot, the unlock schedule calculation, the
// binary account codec, the error taxonomy and the lifecycle contract every
// ledger backend implements.
package stream

import "math/big"

// Layout identifies which on-ledger account variant a Stream was decoded from.
type Layout uint8

const (
	// LayoutUnchecked is the account created by the unchecked create instruction.
	LayoutUnchecked Layout = 1
	// LayoutChecked is the account created by the checked create instruction.
	// It carries the pause block and the rate update flag.
	LayoutChecked Layout = 2
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case LayoutUnchecked:
		return "unchecked"
	case LayoutChecked:
		return "checked"
	default:
		return "unknown"
	}
}

// Type classifies streams by whether they can be topped up.
type Type string

const (
	TypeAll     Type = "all"
	TypeStream  Type = "stream"  // can be topped up
	TypeVesting Type = "vesting" // fixed deposit
)

// Direction selects streams by the role the queried address plays in them.
type Direction string

const (
	DirectionAll      Direction = "all"
	DirectionIncoming Direction = "incoming" // address is the recipient
	DirectionOutgoing Direction = "outgoing" // address is the sender
)

// Stream is an immutable snapshot of a stream account. Amounts are smallest
// units and timestamps are unix seconds. The *big.Int fields must not be
// mutated; every method returns fresh values.
type Stream struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Layout    Layout `json:"layout"`
	CreatedAt uint64 `json:"createdAt"`

	Sender          string `json:"sender"`
	SenderTokens    string `json:"senderTokens"`
	Recipient       string `json:"recipient"`
	RecipientTokens string `json:"recipientTokens"`
	Mint            string `json:"mint"`
	EscrowTokens    string `json:"escrowTokens"`
	Treasury        string `json:"treasury"`
	TreasuryTokens  string `json:"treasuryTokens"`
	Partner         string `json:"partner"`
	PartnerTokens   string `json:"partnerTokens"`

	Start           uint64   `json:"start"`
	End             uint64   `json:"end"`
	Period          uint64   `json:"period"`
	Cliff           uint64   `json:"cliff"`
	CliffAmount     *big.Int `json:"cliffAmount"`
	AmountPerPeriod *big.Int `json:"amountPerPeriod"`
	DepositedAmount *big.Int `json:"depositedAmount"`

	WithdrawnAmount *big.Int `json:"withdrawnAmount"`
	CanceledAt      uint64   `json:"canceledAt"`
	LastWithdrawnAt uint64   `json:"lastWithdrawnAt"`

	LastRateChangeTime            uint64   `json:"lastRateChangeTime"`
	FundsUnlockedAtLastRateChange *big.Int `json:"fundsUnlockedAtLastRateChange"`

	CurrentPauseStart uint64 `json:"currentPauseStart"`
	PauseCumulative   uint64 `json:"pauseCumulative"`

	StreamflowFeeTotal     *big.Int `json:"streamflowFeeTotal"`
	StreamflowFeeWithdrawn *big.Int `json:"streamflowFeeWithdrawn"`
	StreamflowFeePercent   float64  `json:"streamflowFeePercent"`
	PartnerFeeTotal        *big.Int `json:"partnerFeeTotal"`
	PartnerFeeWithdrawn    *big.Int `json:"partnerFeeWithdrawn"`
	PartnerFeePercent      float64  `json:"partnerFeePercent"`

	CancelableBySender      bool   `json:"cancelableBySender"`
	CancelableByRecipient   bool   `json:"cancelableByRecipient"`
	TransferableBySender    bool   `json:"transferableBySender"`
	TransferableByRecipient bool   `json:"transferableByRecipient"`
	CanTopup                bool   `json:"canTopup"`
	AutomaticWithdrawal     bool   `json:"automaticWithdrawal"`
	WithdrawalFrequency     uint64 `json:"withdrawalFrequency"`
	Closed                  bool   `json:"closed"`
	Pausable                bool   `json:"pausable"`
	CanUpdateRate           bool   `json:"canUpdateRate"`
}

// Type reports TypeStream for streams that accept top-ups and TypeVesting otherwise.
func (s Stream) Type() Type {
	if s.CanTopup {
		return TypeStream
	}
	return TypeVesting
}

// Canceled reports whether the stream was canceled.
func (s Stream) Canceled() bool {
	return s.CanceledAt > 0
}

// Paused reports whether the stream is currently paused.
func (s Stream) Paused() bool {
	return s.CurrentPauseStart > 0
}

// Unlocked returns the amount unlocked at now. See the package level Unlocked.
func (s Stream) Unlocked(now uint64) *big.Int {
	return Unlocked(s, now)
}

// Available returns what the recipient can still withdraw at now.
func (s Stream) Available(now uint64) *big.Int {
	available := Unlocked(s, now)
	available.Sub(available, orZero(s.WithdrawnAmount))
	if available.Sign() < 0 {
		return new(big.Int)
	}
	return available
}

// Matches reports whether the stream passes the type filter.
func (s Stream) Matches(t Type) bool {
	return t == "" || t == TypeAll || s.Type() == t
}

var zero = new(big.Int)

// orZero returns v, or a shared zero value when v is nil. The result is read only.
func orZero(v *big.Int) *big.Int {
	if v == nil {
		return zero
	}
	return v
}
