package currencytext

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// MaxDigits is the maximum number of decimal digits in the minor units of
// an [Amount].
// It is chosen so that any digit sequence a user can type still fits into
// an int64: 10^18 - 1 < 2^63 - 1.
const MaxDigits = 18

const (
	// maxUnits is the largest minor-unit count with MaxDigits digits.
	maxUnits = 1_000_000_000_000_000_000 - 1
	// maxAccum is the largest count another digit can be appended to
	// without exceeding maxUnits.
	maxAccum = (maxUnits - 9) / 10
)

// Amount represents the canonical value of a currency text field:
// a non-negative count of minor units (e.g. cents, pennies, fens) and
// a separate negative flag.
// Keeping the count in an int64 makes parsing and formatting exact;
// no floating-point arithmetic is involved at any point.
//
// The sign is tracked separately from the count so that negative zero is
// representable: the state of a field where only the sign marker has been
// typed. Constructors never produce negative zero; it arises only from
// [Format.ParseAmount] and disappears once a digit is typed or the field
// is committed.
//
// The zero value is a plain zero amount, ready to use.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	units int64 // minor units, never negative
	neg   bool  // sign, carried separately to allow negative zero
}

// NewAmount returns an amount equal to the given count of minor units.
// A negative count produces a negative amount.
//
// NewAmount returns an error if the count has more than [MaxDigits] digits.
func NewAmount(units int64) (Amount, error) {
	if units > maxUnits || units < -maxUnits {
		return Amount{}, fmt.Errorf("converting minor units: %w", errAmountOverflow)
	}
	if units < 0 {
		return Amount{units: -units, neg: true}, nil
	}
	return Amount{units: units}, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be
// constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(units int64) Amount {
	a, err := NewAmount(units)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%v) failed: %v", units, err))
	}
	return a
}

// NewAmountFromDecimal converts a decimal to an amount in minor units at
// the given scale.
// If the decimal has more fractional digits than the scale allows, the
// excess is rounded using [rounding half to even] (banker's rounding).
// A zero decimal always converts to plain zero, never to negative zero.
// See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the result has more than [MaxDigits] digits of minor units.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewAmountFromDecimal(d decimal.Decimal, scale int) (Amount, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return Amount{}, fmt.Errorf("converting decimal: scale %v is out of range [0, %v]", scale, decimal.MaxScale)
	}
	whole, frac, ok := d.Int64(scale)
	if !ok {
		return Amount{}, fmt.Errorf("converting decimal: %w", errAmountOverflow)
	}
	if whole < 0 {
		whole = -whole
	}
	if frac < 0 {
		frac = -frac
	}
	var units int64
	if scale > MaxDigits {
		if whole != 0 || frac > maxUnits {
			return Amount{}, fmt.Errorf("converting decimal: %w", errAmountOverflow)
		}
		units = frac
	} else {
		p := pow10(scale)
		if whole > (maxUnits-frac)/p {
			return Amount{}, fmt.Errorf("converting decimal: %w", errAmountOverflow)
		}
		units = whole*p + frac
	}
	return Amount{units: units, neg: d.IsNeg() && units != 0}, nil
}

// ParseAmount converts raw text-field content to an amount.
//
// The parser is total: it never fails, whatever the input. Every
// character that is not a digit or a sign marker is discarded, so
// formatted text, partial input, and garbage all reduce to a valid
// amount:
//   - ASCII digits accumulate from left to right into minor units, so
//     fractional digits need no explicit decimal separator: "123" at
//     scale 2 is 1.23;
//   - a '-' or '−' before the first digit marks the amount negative, as
//     does a '(' when the format renders [NegativeParens]; sign markers
//     after the first digit are discarded;
//   - digits beyond [MaxDigits] significant digits are dropped on the
//     right;
//   - input with a sign marker and no digits yields negative zero, the
//     state of a field where only the sign has been typed so far.
//
// See also method [Format.Display].
func (f Format) ParseAmount(raw string) Amount {
	var units int64
	neg, digit := false, false
	for _, r := range raw {
		switch {
		case isDigit(r):
			if units <= maxAccum {
				units = units*10 + int64(r-'0')
			}
			digit = true
		case r == '-' || r == '−':
			if !digit {
				neg = true
			}
		case r == '(' && f.negStyle == NegativeParens:
			if !digit {
				neg = true
			}
		}
	}
	return Amount{units: units, neg: neg}
}

// MinorUnits returns the count of minor units in the amount.
// The count is never negative; the sign is reported separately by
// [Amount.IsNeg].
func (a Amount) MinorUnits() int64 {
	return a.units
}

// IsNeg returns true if the amount carries a negative sign.
// Unlike [Amount.Sign], IsNeg reports true for negative zero.
func (a Amount) IsNeg() bool {
	return a.neg
}

// IsZero returns:
//
//	true  if a = 0 or a = -0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.units == 0
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0 or a = -0
//	+1 if a > 0
//
// See also method [Amount.IsNeg].
func (a Amount) Sign() int {
	switch {
	case a.units == 0:
		return 0
	case a.neg:
		return -1
	default:
		return 1
	}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{units: a.units}
}

// Neg returns an amount with the opposite sign.
// Negating a zero amount produces negative zero and vice versa.
func (a Amount) Neg() Amount {
	return Amount{units: a.units, neg: !a.neg}
}

// Decimal returns the amount as a decimal equal to units / 10^scale.
// Negative zero converts to plain zero, as decimals do not distinguish
// the two.
// See also constructor [NewAmountFromDecimal].
//
// Decimal returns an error if the scale is negative or greater than
// [decimal.MaxScale].
func (a Amount) Decimal(scale int) (decimal.Decimal, error) {
	d, err := decimal.New(a.signed(), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting minor units: %w", err)
	}
	return d, nil
}

// signed returns the minor units with the sign applied.
// Negative zero collapses to 0.
func (a Amount) signed() int64 {
	if a.neg {
		return -a.units
	}
	return a.units
}

// rescale converts the count between two fraction-digit scales,
// truncating toward zero when the scale shrinks and zero-padding when it
// grows, so the numeric value carries over.
//
// rescale returns an error if the padded count would exceed [MaxDigits]
// digits.
func (a Amount) rescale(from, to int) (Amount, error) {
	switch {
	case to < from:
		if d := from - to; d > MaxDigits {
			a.units = 0
		} else {
			a.units /= pow10(d)
		}
	case to > from && a.units != 0:
		d := to - from
		if d > MaxDigits || a.units > maxUnits/pow10(d) {
			return Amount{}, fmt.Errorf("rescaling from %v to %v fraction digits: %w", from, to, errAmountOverflow)
		}
		a.units *= pow10(d)
	}
	return a, nil
}

// String implements the [fmt.Stringer] interface and returns the signed
// count of minor units.
// Negative zero renders as "-0".
// See also method [Format.Display] for locale-aware rendering.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	if a.neg {
		return "-" + strconv.FormatInt(a.units, 10)
	}
	return strconv.FormatInt(a.units, 10)
}

// isDigit reports whether the rune is an ASCII decimal digit.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// pow10 returns 10^n. The argument must be in [0, MaxDigits].
func pow10(n int) int64 {
	p := int64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
