/*
Package currencytext implements live formatting of currency text input.
It reparses and reformats the content of a text field on every keystroke,
applying locale-aware grouping, decimal separators, currency symbols, and
negative styles, while the caret keeps its position among the digits.

# Features

  - Immutable format settings derived from a currency and a locale tag
  - Total parsing: any input, including garbage, reduces to a valid amount
  - Exact integer arithmetic on minor units, no floating-point involved
  - Caret positions that survive reflowing separators and padding
  - A three-state editing model with commit-on-blur and zero-clearing
  - Nullable decimal values at the editing boundary, via the [decimal] package

# Representation

The package consists of three main types: Amount, Format, and Editor.
An Amount is the canonical value of a field: a non-negative count of minor
units in an int64 and a separate negative flag, which makes negative zero,
the state of a field holding only a sign marker, representable.
A Format holds the rendering settings and is derived from a Currency, an
integer index into an in-memory array containing information such as code,
symbol, and scale, combined with a locale tag that supplies separators and
symbol placement.
An Editor ties the two together for one text field.

# Editing

Feed the Editor every edit event and focus transition, and apply the text
and caret it returns. A field starts empty, enters editing on the first
keystroke, and commits on focus loss. Each accepted event synchronously
publishes the display text, the canonical digit string, and the value as
a nullable decimal. An Editor is single-owner: it must not be shared
between goroutines, and its observer must not call back into it.

# Errors

Errors may occur during the construction of Format and Amount values, such
as an unsupported locale tag, a separator the parser reserves for itself,
or a value exceeding the minor-unit capacity.
Parsing and formatting themselves never fail: the parser is total and the
formatter accepts every amount the constructors can produce.
The package returns errors or panics, depending on the situation.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package currencytext
