// Package amount implements a fixed-point, non-negative currency quantity.
//
// An Amount is a count of nano-units, the smallest representable quantum of
// the currency. One full unit (SEM) is 1e9 nano-units (NANO_SEM). All
// arithmetic is checked: Sum and Sub never wrap silently, they report
// ErrOverflow / ErrUnderflow instead. There is no way to construct a
// negative Amount.
package amount

import (
	"fmt"
	"strconv"

	"golang.org/x/xerrors"
)

// NanoPerUnit is the number of nano-units (NANO_SEM) in one full unit (SEM).
const NanoPerUnit = 1_000_000_000

// ErrOverflow is returned by Sum when the true sum exceeds the
// representable range.
var ErrOverflow = xerrors.New("arithmetic overflow")

// ErrUnderflow is returned by Sub when the subtrahend exceeds the
// minuend.
var ErrUnderflow = xerrors.New("arithmetic underflow")

// Amount is a non-negative integer number of nano-units. The zero value is
// the additive identity.
type Amount struct {
	nano uint64
}

// Zero is the additive identity.
var Zero = Amount{}

// NanoSEM returns the Amount corresponding to n nano-units.
func NanoSEM(n uint64) Amount {
	return Amount{nano: n}
}

// SEM returns the Amount corresponding to n full units (n * NanoPerUnit
// nano-units). It panics on overflow since it is meant for literals, not
// for arithmetic on untrusted input.
func SEM(n uint64) Amount {
	nano, ok := mulOK(n, NanoPerUnit)
	if !ok {
		panic(fmt.Sprintf("amount: %d SEM overflows nano-unit representation", n))
	}

	return Amount{nano: nano}
}

func mulOK(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	r := a * b
	if r/a != b {
		return 0, false
	}

	return r, true
}

// Nano returns the number of nano-units this Amount represents.
func (a Amount) Nano() uint64 {
	return a.nano
}

// Sum returns a + b, or ErrOverflow if it does not fit in the
// representation.
func Sum(a, b Amount) (Amount, error) {
	r := a.nano + b.nano
	if r < a.nano {
		return Amount{}, xerrors.Errorf("%w: %d + %d", ErrOverflow, a.nano, b.nano)
	}

	return Amount{nano: r}, nil
}

// Sub returns a - b, or ErrUnderflow if b > a.
func Sub(a, b Amount) (Amount, error) {
	if b.nano > a.nano {
		return Amount{}, xerrors.Errorf("%w: %d - %d", ErrUnderflow, a.nano, b.nano)
	}

	return Amount{nano: a.nano - b.nano}, nil
}

// Cmp returns -1, 0 or 1 depending on whether a is less than, equal to, or
// greater than b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.nano < b.nano:
		return -1
	case a.nano > b.nano:
		return 1
	default:
		return 0
	}
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.Cmp(b) < 0
}

// GreaterOrEqual returns true if a >= b.
func (a Amount) GreaterOrEqual(b Amount) bool {
	return a.Cmp(b) >= 0
}

// IsZero returns true if the amount is the additive identity.
func (a Amount) IsZero() bool {
	return a.nano == 0
}

// String implements fmt.Stringer. It writes the amount as an integer
// number of nano-units, e.g. "5000000000".
func (a Amount) String() string {
	return strconv.FormatUint(a.nano, 10)
}

// Parse reads an Amount back from the representation produced by String.
func Parse(s string) (Amount, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Amount{}, xerrors.Errorf("couldn't parse amount: %v", err)
	}

	return Amount{nano: n}, nil
}
