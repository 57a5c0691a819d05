// Package amount converts token amounts between their human-facing decimal
// form and the integer smallest-unit form stored on a ledger.
//
// Smallest-unit amounts are arbitrary precision (*big.Int) so that values
// beyond 2^53-1 survive every conversion.
package amount

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is returned for negative decimals, non-finite values,
// nil integers and unparsable input.
var ErrInvalidArgument = errors.New("invalid argument")

// nanoDigits is the fractional precision kept by ToSmallestUnits.
const nanoDigits = 9

// maxExactFloat is the largest integer a float64 represents exactly.
const maxExactFloat = 1<<53 - 1

// maxExactPow10 is the largest n for which 10^n is an exact float64.
const maxExactPow10 = 22

// maxDecimals bounds the scale accepted by every conversion.
const maxDecimals = 255

var (
	nano        = big.NewInt(1_000_000_000)
	maxExactInt = big.NewInt(maxExactFloat)
	minExactInt = big.NewInt(-maxExactFloat)
)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func checkDecimals(decimals int) error {
	if decimals < 0 || decimals > maxDecimals {
		return fmt.Errorf("%w: decimals must be in [0, %d], got %d", ErrInvalidArgument, maxDecimals, decimals)
	}
	return nil
}

// ToSmallestUnits converts a decimal value into smallest units for a token
// with the given number of decimals.
//
// The integer part is converted exactly. The fractional part is taken from the
// shortest decimal representation that round-trips to value, not from its
// binary expansion, and rounded to nano-units (9 digits) before being scaled,
// so digits beyond the ninth are not preserved. The final division by 1e9
// truncates toward zero.
func ToSmallestUnits(value float64, decimals int) (*big.Int, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: value must be finite, got %v", ErrInvalidArgument, value)
	}

	intPart, frac := math.Modf(value)

	integer, _ := big.NewFloat(intPart).Int(nil)

	total := new(big.Int).Mul(integer, nano)
	if frac != 0 {
		// The shortest decimal representation of value is what the caller wrote,
		// as far as float64 allows.
		fracDec := decimal.NewFromFloat(value).Sub(decimal.NewFromBigInt(integer, 0))
		total.Add(total, fracDec.Shift(nanoDigits).Round(0).BigInt())
	}

	total.Mul(total, pow10(decimals))
	return total.Quo(total, nano), nil
}

// ToDecimal converts a smallest-unit amount into a float64.
//
// Values within the exact float64 integer range take a direct division when
// the divisor 10^decimals is itself exact. Everything else is divided with
// arbitrary precision first, so the only error is the final rounding to float64.
func ToDecimal(value *big.Int, decimals int) (float64, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: value is nil", ErrInvalidArgument)
	}
	if err := checkDecimals(decimals); err != nil {
		return 0, err
	}

	if decimals <= maxExactPow10 && value.Cmp(maxExactInt) <= 0 && value.Cmp(minExactInt) >= 0 {
		return float64(value.Int64()) / math.Pow10(decimals), nil
	}

	f, _ := decimal.NewFromBigInt(value, -int32(decimals)).Float64()
	return f, nil
}

// ParseSmallestUnits parses a decimal string ("12.5", "-3", "0.000001")
// exactly into smallest units. Input carrying more fractional digits than the
// token supports is rejected rather than truncated.
func ParseSmallestUnits(s string, decimals int) (*big.Int, error) {
	if err := checkDecimals(decimals); err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a decimal number: %w", ErrInvalidArgument, s, err)
	}

	scaled := d.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidArgument, s, decimals)
	}

	return scaled.BigInt(), nil
}

// FormatDecimal renders a smallest-unit amount as a decimal string without
// losing precision. Trailing fractional zeros are dropped.
func FormatDecimal(value *big.Int, decimals int) string {
	if value == nil {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}
