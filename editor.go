package currencytext

import (
	"fmt"

	"github.com/govalues/decimal"
)

// State identifies the editing phase of an [Editor].
type State uint8

const (
	// StateEmpty is a field with no content: nothing has been typed yet,
	// or the content was cleared.
	StateEmpty State = iota
	// StateEditing is a focused field being typed into.
	StateEditing
	// StateCommitted is a field whose content was finalized by a focus
	// loss or a programmatic set.
	StateCommitted
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateCommitted:
		return "committed"
	}
	return "unknown"
}

// Edit is the outcome of an edit event: the text the field should show
// and the byte offset at which it should place the caret.
type Edit struct {
	Text  string
	Caret int
}

// Change is the notification delivered to the observer registered with
// [Editor.Notify] after every accepted event.
type Change struct {
	Text        string              // display text
	Caret       int                 // caret byte offset within Text
	Unformatted string              // canonical digit string with leading sign
	Amount      decimal.NullDecimal // value at the format's scale, null when empty
	State       State               // phase after the event
}

// Editor drives one currency text field. Feed it every edit event through
// [Editor.TextChanged] and every focus transition through
// [Editor.FocusChanged], apply the [Edit] each call returns, and read the
// resulting value from [Editor.Amount] or from the published [Change].
//
// A field starts in [StateEmpty]. The first digit or sign typed moves it
// to [StateEditing], where every keystroke is reparsed and reformatted in
// place and the caret keeps its position among the digits while
// separators and padding reflow around it. Losing focus commits the field
// to [StateCommitted]; regaining focus resumes editing.
//
// An Editor is single-owner and synchronous: every operation completes
// within the call that delivered it, nothing is retained or deferred, and
// an instance must not be shared between goroutines. Each text field owns
// one Editor. Calls back into an editor from its own observer panic.
type Editor struct {
	format     Format
	amount     Amount
	state      State
	text       string
	caret      int
	clearsZero bool
	maxDigits  int
	notify     func(Change)
	notifying  bool
}

// NewEditor returns an editor for one text field, starting empty.
// Zero-clearing is enabled and the digit cap is [MaxDigits]; adjust them
// with [Editor.SetClearsZero] and [Editor.SetMaxDigits].
func NewEditor(f Format) *Editor {
	return &Editor{
		format:     f,
		clearsZero: true,
		maxDigits:  MaxDigits,
		notify:     func(Change) {},
	}
}

// TextChanged handles an edit event: raw is the complete content of the
// field after the edit and caret is the byte offset right after the
// edited spot. The content is reparsed, reformatted, and returned with a
// caret offset that keeps the same digits on the caret's right as in raw,
// so reflowing separators and padding never make the caret jump.
//
// Special cases, in order:
//   - content whose significant digits exceed the digit cap is rejected:
//     the previous text and caret come back unchanged and no [Change] is
//     published;
//   - an edit that removed only formatting characters, which is what a
//     backspace over a separator or a symbol delivers, deletes the digit
//     left of the caret as well;
//   - content with no digits and no sign clears the field back to
//     [StateEmpty];
//   - content with a sign and no digits renders as a bare "-", the
//     negative zero state.
//
// TextChanged never fails; any input reduces to a valid amount.
// It panics when called from a [Change] observer.
func (e *Editor) TextChanged(raw string, caret int) Edit {
	e.checkReentry("TextChanged")
	if caret < 0 {
		caret = 0
	}
	if caret > len(raw) {
		caret = len(raw)
	}
	if countDigits(raw) > e.maxDigits {
		return Edit{Text: e.text, Caret: e.caret}
	}

	a := e.format.ParseAmount(raw)
	digits := digitString(raw)
	right := digitCount(raw[caret:])

	// A shrunken text with the digit sequence intact means the edit
	// removed formatting characters only. The user meant to delete the
	// digit left of the caret.
	if len(raw) < len(e.text) && digits != "" && digits == digitString(e.text) {
		if k := digitCount(raw[:caret]); k > 0 {
			digits = digits[:k-1] + digits[k:]
			a = Amount{units: e.format.ParseAmount(digits).units, neg: a.neg}
			right = len(digits) - (k - 1)
		}
	}

	switch {
	case digits == "" && !a.IsNeg():
		e.amount = Amount{}
		e.state = StateEmpty
		e.text, e.caret = "", 0
	case digits == "":
		e.amount = a
		e.state = StateEditing
		e.text, e.caret = "-", 1
	default:
		if a.IsZero() {
			a.neg = false
		}
		disp := e.format.Display(a)
		e.amount = a
		e.state = StateEditing
		e.text = disp.Text
		e.caret = caretLeaving(disp.Text, right)
	}
	return e.publish()
}

// FocusChanged handles a focus transition. Losing focus finalizes the
// content: a zero amount clears the field entirely when zero-clearing is
// enabled (see [Editor.SetClearsZero]); anything else is reformatted in
// full, which also resolves a dangling sign into a formatted zero.
// Regaining focus resumes editing where the commit left off.
//
// A transition with no effect, such as losing focus while already
// committed, returns the current text and caret without publishing.
//
// FocusChanged panics when called from a [Change] observer.
func (e *Editor) FocusChanged(focused bool) Edit {
	e.checkReentry("FocusChanged")
	if focused {
		if e.state != StateCommitted {
			return Edit{Text: e.text, Caret: e.caret}
		}
		if e.text == "" {
			e.state = StateEmpty
		} else {
			e.state = StateEditing
		}
		return e.publish()
	}
	if e.state != StateEditing {
		return Edit{Text: e.text, Caret: e.caret}
	}
	e.state = StateCommitted
	if e.clearsZero && e.amount.IsZero() {
		e.amount = Amount{}
		e.text, e.caret = "", 0
		return e.publish()
	}
	if e.amount.IsZero() {
		e.amount = Amount{} // a dangling sign resolves to plain zero
	}
	disp := e.format.Display(e.amount)
	e.text = disp.Text
	e.caret = caretLeaving(disp.Text, 0)
	return e.publish()
}

// SetFormat replaces the format and reformats the current content, the
// caret moving to the end of the number. The amount is rescaled to the
// new fraction-digit count: shrinking the scale truncates toward zero,
// growing it zero-pads on the right, so the numeric value carries over.
//
// SetFormat returns an error if the rescaled amount would exceed
// [MaxDigits] digits of minor units; the editor is left unchanged.
// It panics when called from a [Change] observer.
func (e *Editor) SetFormat(f Format) (Edit, error) {
	e.checkReentry("SetFormat")
	a, err := e.amount.rescale(e.format.scale, f.scale)
	if err != nil {
		return Edit{Text: e.text, Caret: e.caret}, fmt.Errorf("replacing format: %w", err)
	}
	e.format = f
	e.amount = a
	if e.text != "" && !(a.IsZero() && a.IsNeg()) {
		disp := f.Display(a)
		e.text = disp.Text
		e.caret = caretLeaving(disp.Text, 0)
	}
	return e.publish(), nil
}

// SetAmount replaces the content with a programmatic value, as when a
// form is prefilled. The decimal is converted at the format's scale with
// banker's rounding, the text is formatted in full, and the editor lands
// in [StateCommitted], or cleared entirely when the value is zero and
// zero-clearing is enabled.
//
// SetAmount returns an error if the value does not fit in [MaxDigits]
// digits of minor units; the editor is left unchanged.
// It panics when called from a [Change] observer.
func (e *Editor) SetAmount(d decimal.Decimal) (Edit, error) {
	e.checkReentry("SetAmount")
	a, err := NewAmountFromDecimal(d, e.format.scale)
	if err != nil {
		return Edit{Text: e.text, Caret: e.caret}, fmt.Errorf("setting amount: %w", err)
	}
	e.state = StateCommitted
	if e.clearsZero && a.IsZero() {
		e.amount = Amount{}
		e.text, e.caret = "", 0
		return e.publish(), nil
	}
	e.amount = a
	disp := e.format.Display(a)
	e.text = disp.Text
	e.caret = caretLeaving(disp.Text, 0)
	return e.publish(), nil
}

// SetClearsZero controls whether committing a zero amount clears the
// field and publishes a null value. It is enabled by default.
//
// SetClearsZero panics when called from a [Change] observer.
func (e *Editor) SetClearsZero(clear bool) {
	e.checkReentry("SetClearsZero")
	e.clearsZero = clear
}

// SetMaxDigits caps the significant digits a field accepts; edits
// exceeding the cap are rejected. The cap is clamped to [1, MaxDigits]
// and starts at MaxDigits.
//
// SetMaxDigits panics when called from a [Change] observer.
func (e *Editor) SetMaxDigits(n int) {
	e.checkReentry("SetMaxDigits")
	if n < 1 {
		n = 1
	}
	if n > MaxDigits {
		n = MaxDigits
	}
	e.maxDigits = n
}

// Notify registers the observer that receives a [Change] after every
// accepted edit, focus transition, format replacement, and programmatic
// set. A nil observer restores the default no-op.
//
// The observer runs synchronously on the caller's goroutine and must not
// call back into the editor.
func (e *Editor) Notify(fn func(Change)) {
	e.checkReentry("Notify")
	if fn == nil {
		fn = func(Change) {}
	}
	e.notify = fn
}

// Text returns the current display text.
func (e *Editor) Text() string {
	return e.text
}

// Amount returns the current value as a nullable decimal: null when the
// field has no content, the exact value at the format's scale otherwise.
// A field holding a bare sign reports zero.
func (e *Editor) Amount() decimal.NullDecimal {
	if e.text == "" {
		return decimal.NullDecimal{}
	}
	d, err := e.amount.Decimal(e.format.scale)
	if err != nil {
		// The scale was validated when the format was constructed.
		panic(fmt.Sprintf("converting %v at scale %v failed: %v", e.amount, e.format.scale, err))
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// UnformattedText returns the canonical digit string of the content: the
// minor-unit digits with a leading minus when negative, a bare "-" for
// the negative zero state, and "" when the field is empty.
func (e *Editor) UnformattedText() string {
	switch {
	case e.text == "":
		return ""
	case e.amount.IsZero() && e.amount.IsNeg():
		return "-"
	default:
		return e.amount.String()
	}
}

// State returns the editing phase.
func (e *Editor) State() State {
	return e.state
}

// Format returns the active format.
func (e *Editor) Format() Format {
	return e.format
}

// publish delivers the current state to the observer and returns the edit
// the field should apply. The reentrancy flag is held while the observer
// runs.
func (e *Editor) publish() Edit {
	ch := Change{
		Text:        e.text,
		Caret:       e.caret,
		Unformatted: e.UnformattedText(),
		Amount:      e.Amount(),
		State:       e.state,
	}
	e.notifying = true
	defer func() { e.notifying = false }()
	e.notify(ch)
	return Edit{Text: e.text, Caret: e.caret}
}

// checkReentry panics if the editor is already inside its own observer.
func (e *Editor) checkReentry(op string) {
	if e.notifying {
		panic(op + " called from a Change observer")
	}
}

// caretLeaving returns the byte offset in text that keeps n digits on the
// caret's right. The offset lands immediately after a digit, or before
// the first digit when n covers them all; text without digits places the
// caret at the end.
func caretLeaving(text string, n int) int {
	total := digitCount(text)
	if total == 0 {
		return len(text)
	}
	m := total - n // digits on the caret's left
	seen := 0
	for i := 0; i < len(text); i++ {
		if isDigit(rune(text[i])) {
			if m <= 0 {
				return i
			}
			seen++
			if seen == m {
				return i + 1
			}
		}
	}
	return len(text)
}

// digitCount returns the number of digit characters in s, leading zeros
// included.
func digitCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isDigit(rune(s[i])) {
			n++
		}
	}
	return n
}

// digitString returns the digit characters of s, in order.
func digitString(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isDigit(rune(s[i])) {
			b = append(b, s[i])
		}
	}
	return string(b)
}

// countDigits returns the number of significant digits in s, skipping
// leading zeros.
func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if isDigit(r) && (n > 0 || r != '0') {
			n++
		}
	}
	return n
}
