package currencytext

import "unicode/utf8"

// Display is the rendering of an amount: the text a field should show and
// the byte index of the decimal separator within it.
// When the format renders no fraction digits, DecimalMark is the index at
// which the separator would be inserted, right after the last integer
// digit.
type Display struct {
	Text        string
	DecimalMark int
}

// Display renders the amount according to the format:
//
//   - the minor units are split into integer and fractional parts by
//     [Format.Scale], using integer arithmetic only;
//   - the grouping separator is inserted between groups of three integer
//     digits;
//   - the fractional part is zero-padded to the full scale;
//   - the symbol is joined on the configured side;
//   - a negative amount takes a leading minus or enclosing parentheses
//     per [Format.NegativeStyle]; the sign of negative zero is
//     suppressed, as a bare sign marker is input, not a rendering.
//
// See also method [Format.ParseAmount], for which Display is a right
// inverse: parsing the rendered text restores the amount, up to the sign
// of zero, which the rendering drops.
func (f Format) Display(a Amount) Display {
	var whole, frac int64
	if f.scale > MaxDigits {
		whole, frac = 0, a.units
	} else {
		p := pow10(f.scale)
		whole, frac = a.units/p, a.units%p
	}

	neg := a.neg && a.units != 0
	text := make([]byte, 0, 32)

	if neg {
		if f.negStyle == NegativeParens {
			text = append(text, '(')
		} else {
			text = append(text, '-')
		}
	}
	if f.symbol != "" && !f.suffix {
		text = append(text, f.symbol...)
		text = append(text, f.joiner...)
	}

	// Integer digits, extracted right to left, then appended with
	// grouping separators.
	var buf [MaxDigits]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = byte(whole%10) + '0'
		whole /= 10
		if whole == 0 {
			break
		}
	}
	for i := pos; i < len(buf); i++ {
		if i > pos && f.group != 0 && (len(buf)-i)%3 == 0 {
			text = utf8.AppendRune(text, f.group)
		}
		text = append(text, buf[i])
	}

	mark := len(text)

	if f.scale > 0 {
		text = utf8.AppendRune(text, f.decimal)
		// Fractional digits, zero-padded to the scale. The scale is
		// at most decimal.MaxScale, so 20 bytes suffice.
		var buf [20]byte
		pos := len(buf)
		for i := 0; i < f.scale; i++ {
			pos--
			buf[pos] = byte(frac%10) + '0'
			frac /= 10
		}
		text = append(text, buf[pos:]...)
	}

	if f.symbol != "" && f.suffix {
		text = append(text, f.joiner...)
		text = append(text, f.symbol...)
	}
	if neg && f.negStyle == NegativeParens {
		text = append(text, ')')
	}

	return Display{Text: string(text), DecimalMark: mark}
}
