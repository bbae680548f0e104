package currencytext

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

var errInvalidFormat = errors.New("invalid format")

// NegativeStyle selects how a negative amount is rendered.
type NegativeStyle uint8

const (
	// NegativeMinus renders a leading minus sign: -$5.00.
	NegativeMinus NegativeStyle = iota
	// NegativeParens renders enclosing parentheses: ($5.00).
	NegativeParens
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s NegativeStyle) String() string {
	switch s {
	case NegativeMinus:
		return "minus"
	case NegativeParens:
		return "parens"
	}
	return "unknown"
}

// Format holds the settings that drive parsing and formatting of currency
// text: the currency, the locale tag, the number of fraction digits, the
// grouping and decimal separators, the display symbol with its placement,
// and the negative style.
//
// Format is an immutable value: construct it with [NewFormat], which
// derives the settings from a currency and a locale tag, then adjust
// individual settings with the With methods, each of which returns a new
// value. Settings that can break the parse-format round trip are
// validated on construction; the parsing and formatting methods
// themselves never fail.
//
// The zero value renders bare digits: no symbol, no grouping, no fraction
// digits, minus-style negatives. It is ready to use.
// Format is designed to be safe for concurrent use by multiple goroutines.
type Format struct {
	curr     Currency      // ISO 4217 currency
	locale   string        // normalized BCP 47 tag
	scale    int           // number of fraction digits
	group    rune          // grouping separator, 0 disables grouping
	decimal  rune          // decimal separator
	symbol   string        // display symbol, empty hides it
	joiner   string        // text between the symbol and the number
	suffix   bool          // symbol follows the number
	negStyle NegativeStyle // how negative amounts render
}

// NewFormat returns a format for the given currency and locale.
// The locale supplies the separators, the symbol placement, and the
// joiner; the currency supplies the fraction digits and the display
// symbol.
//
// The locale tag is normalized and matched exactly first, then by its
// bare language subtag, so "en-PH" falls back to "en". An unknown tag is
// an error, never a silent default.
//
// NewFormat returns an error if the locale tag is not supported.
func NewFormat(curr Currency, locale string) (Format, error) {
	tag, info, err := resolveLocale(locale)
	if err != nil {
		return Format{}, fmt.Errorf("resolving locale: %w", err)
	}
	f := Format{
		curr:    curr,
		locale:  tag,
		scale:   curr.Scale(),
		group:   info.group,
		decimal: info.decimal,
		symbol:  curr.Symbol(),
		joiner:  info.joiner,
		suffix:  info.suffix,
	}
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MustNewFormat is like [NewFormat] but panics if the format cannot be
// constructed.
// It simplifies safe initialization of global variables holding formats.
func MustNewFormat(curr Currency, locale string) Format {
	f, err := NewFormat(curr, locale)
	if err != nil {
		panic(fmt.Sprintf("NewFormat(%v, %q) failed: %v", curr, locale, err))
	}
	return f
}

// validate checks the invariants that keep parsing and formatting a round
// trip: separators, symbol, and joiner must not contain characters the
// parser claims for itself, the separators must differ, and a positive
// scale requires a decimal separator.
func (f Format) validate() error {
	switch {
	case f.scale < 0 || f.scale > decimal.MaxScale:
		return fmt.Errorf("%w: scale %v is out of range [0, %v]", errInvalidFormat, f.scale, decimal.MaxScale)
	case f.group != 0 && f.group == f.decimal:
		return fmt.Errorf("%w: grouping and decimal separators are both %q", errInvalidFormat, f.group)
	case f.scale > 0 && f.decimal == 0:
		return fmt.Errorf("%w: scale %v requires a decimal separator", errInvalidFormat, f.scale)
	case f.group != 0 && reserved(f.group):
		return fmt.Errorf("%w: grouping separator %q", errInvalidFormat, f.group)
	case f.decimal != 0 && reserved(f.decimal):
		return fmt.Errorf("%w: decimal separator %q", errInvalidFormat, f.decimal)
	case !validAffix(f.symbol):
		return fmt.Errorf("%w: symbol %q", errInvalidFormat, f.symbol)
	case !validAffix(f.joiner):
		return fmt.Errorf("%w: joiner %q", errInvalidFormat, f.joiner)
	case f.negStyle > NegativeParens:
		return fmt.Errorf("%w: negative style %v", errInvalidFormat, uint8(f.negStyle))
	}
	return nil
}

// reserved reports whether the rune has meaning to the parser and may
// therefore not appear in separators, symbols, or joiners.
func reserved(r rune) bool {
	return isDigit(r) || r == '-' || r == '−' || r == '(' || r == ')'
}

// validAffix reports whether the string is free of reserved runes.
func validAffix(s string) bool {
	for _, r := range s {
		if reserved(r) {
			return false
		}
	}
	return true
}

// WithScale returns a format with the given number of fraction digits.
// See also method [Format.WithoutDecimals].
//
// WithScale returns an error if the scale is negative or greater than
// [decimal.MaxScale].
func (f Format) WithScale(scale int) (Format, error) {
	f.scale = scale
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithoutDecimals returns a format that renders whole units only.
func (f Format) WithoutDecimals() Format {
	f.scale = 0
	return f
}

// WithSeparators returns a format with the given grouping and decimal
// separators.
// A zero grouping rune disables grouping; see also method
// [Format.WithoutGrouping].
//
// WithSeparators returns an error if the separators are equal, if a
// separator is a digit or a sign marker, or if the decimal separator is
// dropped while the format still renders fraction digits.
func (f Format) WithSeparators(group, decimal rune) (Format, error) {
	f.group, f.decimal = group, decimal
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithoutGrouping returns a format that renders integer digits without
// grouping separators.
func (f Format) WithoutGrouping() Format {
	f.group = 0
	return f
}

// WithSymbol returns a format with the given display symbol.
// An empty symbol hides it altogether.
//
// WithSymbol returns an error if the symbol contains a digit or a sign
// marker.
func (f Format) WithSymbol(symbol string) (Format, error) {
	f.symbol = symbol
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithSymbolSuffix returns a format that places the symbol after the
// number if suffix is true and before it otherwise.
func (f Format) WithSymbolSuffix(suffix bool) Format {
	f.suffix = suffix
	return f
}

// WithJoiner returns a format with the given text between the number and
// the symbol.
//
// WithJoiner returns an error if the joiner contains a digit or a sign
// marker.
func (f Format) WithJoiner(joiner string) (Format, error) {
	f.joiner = joiner
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithNegativeStyle returns a format that renders negative amounts in the
// given style.
//
// WithNegativeStyle returns an error if the style is not one of
// [NegativeMinus] and [NegativeParens].
func (f Format) WithNegativeStyle(style NegativeStyle) (Format, error) {
	f.negStyle = style
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// WithCurrency returns a format for a different currency, taking the
// fraction digits and the display symbol from it while keeping the locale
// conventions.
//
// WithCurrency returns an error if the new currency renders fraction
// digits but the format has no decimal separator.
func (f Format) WithCurrency(curr Currency) (Format, error) {
	f.curr = curr
	f.scale = curr.Scale()
	f.symbol = curr.Symbol()
	if err := f.validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// Curr returns the currency of the format.
func (f Format) Curr() Currency {
	return f.curr
}

// Locale returns the normalized locale tag the format was built from.
// The zero value of Format has no locale and returns "".
func (f Format) Locale() string {
	return f.locale
}

// Scale returns the number of digits after the decimal separator.
func (f Format) Scale() int {
	return f.scale
}

// GroupingSeparator returns the rune inserted between groups of three
// integer digits, or 0 when grouping is disabled.
func (f Format) GroupingSeparator() rune {
	return f.group
}

// DecimalSeparator returns the rune between the integer and fractional
// digits.
func (f Format) DecimalSeparator() rune {
	return f.decimal
}

// Symbol returns the symbol the format displays.
// It may differ from [Currency.Symbol] after [Format.WithSymbol].
func (f Format) Symbol() string {
	return f.symbol
}

// Joiner returns the text placed between the symbol and the number.
func (f Format) Joiner() string {
	return f.joiner
}

// SymbolSuffix returns true if the symbol follows the number.
func (f Format) SymbolSuffix() bool {
	return f.suffix
}

// NegativeStyle returns how negative amounts render.
func (f Format) NegativeStyle() NegativeStyle {
	return f.negStyle
}
