package domain

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits an Amount carries.
const AmountScale = 4

// unitsPerWhole is 10^AmountScale.
const unitsPerWhole = 10000

// Amount parsing errors
var (
	ErrAmountSyntax = errors.New("invalid amount syntax")
	ErrTooLarge     = errors.New("amount is too large")
	ErrMultipleDots = errors.New("wrong amount format: multiple dots")
	ErrTooPrecise   = errors.New("unsupported amount precision of more than 4 digits")
)

// Amount is a non-negative monetary quantity stored as a count of minor
// units (1/10000 of a whole unit). The zero value is 0.
type Amount struct {
	units uint64
}

// AmountFromUnits builds an Amount from a raw count of minor units.
func AmountFromUnits(units uint64) Amount {
	return Amount{units: units}
}

// ParseAmount parses a decimal string such as "12.5" or "+.0001".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimPrefix(s, "+")

	parts := strings.Split(s, ".")
	switch len(parts) {
	case 1:
		whole, err := parseDigits(parts[0])
		if err != nil {
			return Amount{}, err
		}
		return combine(whole, 0)
	case 2:
		var whole uint64
		if parts[0] != "" {
			var err error
			if whole, err = parseDigits(parts[0]); err != nil {
				return Amount{}, err
			}
		}

		frac, err := parseFraction(parts[1])
		if err != nil {
			return Amount{}, err
		}
		return combine(whole, frac)
	default:
		return Amount{}, ErrMultipleDots
	}
}

// MustParseAmount is like ParseAmount but panics on malformed input.
// Intended for tests and constants.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("domain: MustParseAmount(%q): %v", s, err))
	}
	return a
}

func parseDigits(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAmountSyntax, err)
	}
	return n, nil
}

// parseFraction returns the fractional digits scaled to minor units.
func parseFraction(s string) (uint64, error) {
	s = strings.TrimRight(s, "0")
	if len(s) > AmountScale {
		return 0, ErrTooPrecise
	}
	if s == "" {
		return 0, nil
	}

	frac, err := parseDigits(s)
	if err != nil {
		return 0, err
	}
	for i := len(s); i < AmountScale; i++ {
		frac *= 10
	}
	return frac, nil
}

func combine(whole, frac uint64) (Amount, error) {
	hi, lo := bits.Mul64(whole, unitsPerWhole)
	if hi != 0 {
		return Amount{}, ErrTooLarge
	}
	sum, carry := bits.Add64(lo, frac, 0)
	if carry != 0 {
		return Amount{}, ErrTooLarge
	}
	return Amount{units: sum}, nil
}

// Units returns the raw count of minor units.
func (a Amount) Units() uint64 {
	return a.units
}

// IsZero reports whether a is 0.
func (a Amount) IsZero() bool {
	return a.units == 0
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.units < b.units:
		return -1
	case a.units > b.units:
		return 1
	default:
		return 0
	}
}

// CheckedAdd returns a+b, or false if the sum does not fit.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum, carry := bits.Add64(a.units, b.units, 0)
	if carry != 0 {
		return Amount{}, false
	}
	return Amount{units: sum}, true
}

// CheckedSub returns a-b, or false if b is greater than a.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff, borrow := bits.Sub64(a.units, b.units, 0)
	if borrow != 0 {
		return Amount{}, false
	}
	return Amount{units: diff}, true
}

// String formats a with trailing fractional zeros removed: 12300 units is "1.23".
func (a Amount) String() string {
	whole := strconv.FormatUint(a.units/unitsPerWhole, 10)
	frac := a.units % unitsPerWhole
	if frac == 0 {
		return whole
	}

	width := AmountScale
	for frac%10 == 0 {
		frac /= 10
		width--
	}
	return fmt.Sprintf("%s.%0*d", whole, width, frac)
}

// Decimal converts a to an arbitrary-precision decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(a.units), -AmountScale)
}
