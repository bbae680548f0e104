package currencytext

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"unsafe"

	"github.com/govalues/decimal"
)

func TestAmount_ZeroValue(t *testing.T) {
	got := Amount{}
	want := MustNewAmount(0)
	if got != want {
		t.Errorf("Amount{} = %q, want %q", got, want)
	}
}

func TestAmount_Size(t *testing.T) {
	a := Amount{}
	got := unsafe.Sizeof(a)
	want := uintptr(16)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", a, got, want)
	}
}

func TestAmount_Interfaces(t *testing.T) {
	var i any = Amount{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestNewAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units     int64
			wantUnits int64
			wantNeg   bool
		}{
			{0, 0, false},
			{1, 1, false},
			{-1, 1, true},
			{123456, 123456, false},
			{-123456, 123456, true},
			{999999999999999999, 999999999999999999, false},
			{-999999999999999999, 999999999999999999, true},
		}
		for _, tt := range tests {
			got, err := NewAmount(tt.units)
			if err != nil {
				t.Errorf("NewAmount(%v) failed: %v", tt.units, err)
				continue
			}
			want := Amount{units: tt.wantUnits, neg: tt.wantNeg}
			if got != want {
				t.Errorf("NewAmount(%v) = %q, want %q", tt.units, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]int64{
			"overflow 1": 1000000000000000000,
			"overflow 2": -1000000000000000000,
			"overflow 3": math.MaxInt64,
			"overflow 4": math.MinInt64,
		}
		for name, units := range tests {
			_, err := NewAmount(units)
			if err == nil {
				t.Errorf("%s: NewAmount(%v) did not fail", name, units)
				continue
			}
			if !errors.Is(err, errAmountOverflow) {
				t.Errorf("%s: NewAmount(%v) = %v, want %v", name, units, err, errAmountOverflow)
			}
		}
	})
}

func TestMustNewAmount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewAmount(%v) did not panic", int64(math.MaxInt64))
		}
	}()
	MustNewAmount(math.MaxInt64)
}

func TestNewAmountFromDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d         string
			scale     int
			wantUnits int64
			wantNeg   bool
		}{
			{"0", 0, 0, false},
			{"0", 2, 0, false},
			{"1.23", 2, 123, false},
			{"-1.23", 2, 123, true},
			{"5", 2, 500, false},
			{"-5", 0, 5, true},
			{"1234.56", 2, 123456, false},
			// Banker's rounding of excess fractional digits
			{"1.234", 2, 123, false},
			{"1.236", 2, 124, false},
			{"1.235", 2, 124, false},
			{"1.245", 2, 124, false},
			{"0.5", 0, 0, false},
			{"1.5", 0, 2, false},
			{"2.5", 0, 2, false},
			// A zero result never keeps the sign
			{"-0.004", 2, 0, false},
			// Scales beyond the minor-unit capacity
			{"0.0000000000000000001", 19, 1, false},
			{"-0.0000000000000000001", 19, 1, true},
			{"999999999999999999", 0, 999999999999999999, false},
			{"9999999999999999.99", 2, 999999999999999999, false},
		}
		for _, tt := range tests {
			d := decimal.MustParse(tt.d)
			got, err := NewAmountFromDecimal(d, tt.scale)
			if err != nil {
				t.Errorf("NewAmountFromDecimal(%q, %v) failed: %v", d, tt.scale, err)
				continue
			}
			want := Amount{units: tt.wantUnits, neg: tt.wantNeg}
			if got != want {
				t.Errorf("NewAmountFromDecimal(%q, %v) = %q, want %q", d, tt.scale, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d     string
			scale int
		}{
			"scale 1":    {"1", -1},
			"scale 2":    {"1", 20},
			"overflow 1": {"1000000000000000000", 0},
			"overflow 2": {"-1000000000000000000", 0},
			"overflow 3": {"99999999999999999.99", 2},
			"overflow 4": {"1", 19},
		}
		for name, tt := range tests {
			d := decimal.MustParse(tt.d)
			_, err := NewAmountFromDecimal(d, tt.scale)
			if err == nil {
				t.Errorf("%s: NewAmountFromDecimal(%q, %v) did not fail", name, d, tt.scale)
			}
		}
	})
}

func TestFormat_ParseAmount(t *testing.T) {
	minus := MustNewFormat(USD, "en-US")
	parens, err := minus.WithNegativeStyle(NegativeParens)
	if err != nil {
		t.Fatalf("WithNegativeStyle(%v) failed: %v", NegativeParens, err)
	}

	tests := []struct {
		f         Format
		raw       string
		wantUnits int64
		wantNeg   bool
	}{
		{minus, "", 0, false},
		{minus, "abc", 0, false},
		{minus, "0", 0, false},
		{minus, "00012", 12, false},
		{minus, "ab1c2", 12, false},
		{minus, "1.23", 123, false},
		{minus, "$1,234.56", 123456, false},
		{minus, "12 345,67", 1234567, false},
		{minus, "-5", 5, true},
		{minus, "−5", 5, true},
		{minus, "-$5.00", 500, true},
		{minus, "-", 0, true},
		{minus, "--5", 5, true},
		// Sign markers after the first digit are discarded
		{minus, "5-", 5, false},
		{minus, "5(", 5, false},
		// Parentheses mark the sign only under NegativeParens
		{minus, "(5)", 5, false},
		{parens, "(5)", 5, true},
		{parens, "($5.00)", 500, true},
		{parens, "(", 0, true},
		{parens, "-5", 5, true},
		// Digits beyond MaxDigits significant ones are dropped
		{minus, "999999999999999999", 999999999999999999, false},
		{minus, "9999999999999999999", 999999999999999999, false},
		{minus, "1234567890123456789012", 123456789012345678, false},
		{minus, "0009999999999999999999", 999999999999999999, false},
	}
	for _, tt := range tests {
		got := tt.f.ParseAmount(tt.raw)
		want := Amount{units: tt.wantUnits, neg: tt.wantNeg}
		if got != want {
			t.Errorf("ParseAmount(%q) = %q, want %q", tt.raw, got, want)
		}
	}
}

func TestAmount_Sign(t *testing.T) {
	tests := []struct {
		a        Amount
		wantSign int
		wantNeg  bool
		wantZero bool
	}{
		{Amount{}, 0, false, true},
		{Amount{units: 5}, 1, false, false},
		{Amount{units: 5, neg: true}, -1, true, false},
		{Amount{neg: true}, 0, true, true},
	}
	for _, tt := range tests {
		if got := tt.a.Sign(); got != tt.wantSign {
			t.Errorf("%q.Sign() = %v, want %v", tt.a, got, tt.wantSign)
		}
		if got := tt.a.IsNeg(); got != tt.wantNeg {
			t.Errorf("%q.IsNeg() = %v, want %v", tt.a, got, tt.wantNeg)
		}
		if got := tt.a.IsZero(); got != tt.wantZero {
			t.Errorf("%q.IsZero() = %v, want %v", tt.a, got, tt.wantZero)
		}
	}
}

func TestAmount_Abs(t *testing.T) {
	tests := []struct {
		a, want Amount
	}{
		{Amount{}, Amount{}},
		{Amount{neg: true}, Amount{}},
		{Amount{units: 5}, Amount{units: 5}},
		{Amount{units: 5, neg: true}, Amount{units: 5}},
	}
	for _, tt := range tests {
		if got := tt.a.Abs(); got != tt.want {
			t.Errorf("%q.Abs() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestAmount_Neg(t *testing.T) {
	tests := []struct {
		a, want Amount
	}{
		{Amount{}, Amount{neg: true}},
		{Amount{neg: true}, Amount{}},
		{Amount{units: 5}, Amount{units: 5, neg: true}},
		{Amount{units: 5, neg: true}, Amount{units: 5}},
	}
	for _, tt := range tests {
		if got := tt.a.Neg(); got != tt.want {
			t.Errorf("%q.Neg() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestAmount_MinorUnits(t *testing.T) {
	tests := []struct {
		units int64
		want  int64
	}{
		{0, 0},
		{5, 5},
		{-5, 5},
		{-999999999999999999, 999999999999999999},
	}
	for _, tt := range tests {
		a := MustNewAmount(tt.units)
		if got := a.MinorUnits(); got != tt.want {
			t.Errorf("%q.MinorUnits() = %v, want %v", a, got, tt.want)
		}
	}
}

func TestAmount_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a     Amount
			scale int
			want  string
		}{
			{Amount{}, 0, "0"},
			{Amount{}, 2, "0.00"},
			{Amount{neg: true}, 2, "0.00"},
			{Amount{units: 123}, 2, "1.23"},
			{Amount{units: 123, neg: true}, 2, "-1.23"},
			{Amount{units: 5}, 0, "5"},
			{Amount{units: 123456}, 3, "123.456"},
		}
		for _, tt := range tests {
			got, err := tt.a.Decimal(tt.scale)
			if err != nil {
				t.Errorf("%q.Decimal(%v) failed: %v", tt.a, tt.scale, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("%q.Decimal(%v) = %q, want %q", tt.a, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]int{
			"scale 1": -1,
			"scale 2": 20,
		}
		for name, scale := range tests {
			a := MustNewAmount(5)
			if _, err := a.Decimal(scale); err == nil {
				t.Errorf("%s: %q.Decimal(%v) did not fail", name, a, scale)
			}
		}
	})
}

func TestAmount_Rescale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a        Amount
			from, to int
			want     Amount
		}{
			{Amount{units: 123}, 2, 2, Amount{units: 123}},
			{Amount{units: 123}, 2, 0, Amount{units: 1}},
			{Amount{units: 129}, 2, 0, Amount{units: 1}},
			{Amount{units: 123, neg: true}, 2, 0, Amount{units: 1, neg: true}},
			{Amount{units: 123}, 2, 4, Amount{units: 12300}},
			{Amount{units: 123}, 19, 0, Amount{}},
			{Amount{}, 0, 19, Amount{}},
			{Amount{neg: true}, 0, 19, Amount{neg: true}},
			{Amount{units: 9}, 0, 17, Amount{units: 900000000000000000}},
			{Amount{units: 999999999999999999}, 1, 0, Amount{units: 99999999999999999}},
		}
		for _, tt := range tests {
			got, err := tt.a.rescale(tt.from, tt.to)
			if err != nil {
				t.Errorf("%q.rescale(%v, %v) failed: %v", tt.a, tt.from, tt.to, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.rescale(%v, %v) = %q, want %q", tt.a, tt.from, tt.to, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a        Amount
			from, to int
		}{
			"overflow 1": {Amount{units: 999999999999999999}, 0, 1},
			"overflow 2": {Amount{units: 1}, 0, 18},
			"overflow 3": {Amount{units: 1}, 0, 19},
			"overflow 4": {Amount{units: 10}, 2, 19},
		}
		for name, tt := range tests {
			_, err := tt.a.rescale(tt.from, tt.to)
			if err == nil {
				t.Errorf("%s: %q.rescale(%v, %v) did not fail", name, tt.a, tt.from, tt.to)
				continue
			}
			if !errors.Is(err, errAmountOverflow) {
				t.Errorf("%s: %q.rescale(%v, %v) = %v, want %v", name, tt.a, tt.from, tt.to, err, errAmountOverflow)
			}
		}
	})
}

func TestAmount_String(t *testing.T) {
	tests := []struct {
		a    Amount
		want string
	}{
		{Amount{}, "0"},
		{Amount{neg: true}, "-0"},
		{Amount{units: 5}, "5"},
		{Amount{units: 5, neg: true}, "-5"},
		{Amount{units: 123456}, "123456"},
		{Amount{units: 999999999999999999}, "999999999999999999"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}
