package currencytext

import (
	"errors"
	"testing"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		locale, want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en-US"},
		{"en_us", "en-US"},
		{"De-de", "de-DE"},
		{"fr_CA", "fr-CA"},
		{"PT_br", "pt-BR"},
		{"sv", "sv"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeLocale(tt.locale); got != tt.want {
			t.Errorf("normalizeLocale(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			locale  string
			wantTag string
			want    localeInfo
		}{
			{"en-US", "en-US", localeInfo{',', '.', false, ""}},
			{"en_us", "en-US", localeInfo{',', '.', false, ""}},
			{"en-AU", "en-AU", localeInfo{',', '.', false, ""}},
			// Unlisted regions resolve through the bare language subtag
			{"en-XA", "en-XA", localeInfo{',', '.', false, ""}},
			{"de_de", "de-DE", localeInfo{'.', ',', true, " "}},
			{"ja", "ja", localeInfo{',', '.', false, ""}},
			{"fr-CH", "fr-CH", localeInfo{' ', '.', false, " "}},
			{"sv-SE", "sv-SE", localeInfo{' ', ',', true, " "}},
		}
		for _, tt := range tests {
			tag, info, err := resolveLocale(tt.locale)
			if err != nil {
				t.Errorf("resolveLocale(%q) failed: %v", tt.locale, err)
				continue
			}
			if tag != tt.wantTag || info != tt.want {
				t.Errorf("resolveLocale(%q) = %q, %v, want %q, %v", tt.locale, tag, info, tt.wantTag, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"xx", "xx-YY", "", "-", "123"}
		for _, locale := range tests {
			_, _, err := resolveLocale(locale)
			if err == nil {
				t.Errorf("resolveLocale(%q) did not fail", locale)
				continue
			}
			if !errors.Is(err, errInvalidLocale) {
				t.Errorf("resolveLocale(%q) = %v, want %v", locale, err, errInvalidLocale)
			}
		}
	})
}
