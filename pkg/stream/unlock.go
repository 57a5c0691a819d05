package stream

import "math/big"

// Unlocked computes how much of the deposited amount is unlocked at now.
//
// Time stops at CanceledAt for canceled streams. Closed streams and streams
// past their end are fully unlocked. Before the cliff nothing is unlocked. At
// the cliff CliffAmount unlocks (or FundsUnlockedAtLastRateChange once the rate
// was changed), then AmountPerPeriod unlocks at every whole Period elapsed since
// the later of the cliff and the last rate change. Paused seconds do not count
// as elapsed. A zero Period unlocks everything at the cliff. The result never
// exceeds DepositedAmount and is never negative.
//
// Unlocked is pure and never panics, whatever the snapshot holds.
func Unlocked(s Stream, now uint64) *big.Int {
	deposited := orZero(s.DepositedAmount)

	t := now
	if s.CanceledAt > 0 && s.CanceledAt < t {
		t = s.CanceledAt
	}

	if s.Closed || t >= s.End {
		return new(big.Int).Set(deposited)
	}
	if t < s.Cliff {
		return new(big.Int)
	}
	if s.Period == 0 {
		return new(big.Int).Set(deposited)
	}

	elapsed := activeSeconds(s, t)

	baseline := orZero(s.CliffAmount)
	if s.LastRateChangeTime > 0 {
		baseline = orZero(s.FundsUnlockedAtLastRateChange)
	}

	unlocked := new(big.Int).SetUint64(elapsed / s.Period)
	unlocked.Mul(unlocked, orZero(s.AmountPerPeriod))
	unlocked.Add(unlocked, baseline)

	switch {
	case unlocked.Sign() < 0:
		return new(big.Int)
	case unlocked.Cmp(deposited) > 0:
		return new(big.Int).Set(deposited)
	default:
		return unlocked
	}
}

// activeSeconds returns the unpaused seconds between the reference point and t.
// The pause counters are relative to the reference point.
func activeSeconds(s Stream, t uint64) uint64 {
	ref := max(s.Cliff, s.Start)
	if s.LastRateChangeTime > ref {
		ref = s.LastRateChangeTime
	}
	if t <= ref {
		return 0
	}
	elapsed := t - ref

	paused := s.PauseCumulative
	if s.CurrentPauseStart > 0 && t > s.CurrentPauseStart {
		paused += t - s.CurrentPauseStart
		if paused < s.PauseCumulative {
			return 0
		}
	}

	if paused >= elapsed {
		return 0
	}
	return elapsed - paused
}
