package currencytext

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidLocale = errors.New("invalid locale")

// localeInfo captures the numeric conventions of a locale that matter for
// money input: the two separators, the symbol position, and the joiner
// placed between the symbol and the number.
type localeInfo struct {
	group   rune
	decimal rune
	suffix  bool   // symbol follows the number
	joiner  string // between symbol and number
}

// localeLookup maps normalized BCP 47 tags to formatting conventions.
// Grouping is always in threes; locales with other grouping conventions
// (for example hi-IN) are carried with western grouping.
// The no-break space U+00A0 stands in wherever a locale separates groups or
// joins the symbol with a space, so a display string never contains a
// breaking space.
var localeLookup = map[string]localeInfo{
	"cs":    {' ', ',', true, " "},
	"cs-CZ": {' ', ',', true, " "},
	"da":    {'.', ',', true, " "},
	"da-DK": {'.', ',', true, " "},
	"de":    {'.', ',', true, " "},
	"de-AT": {'.', ',', false, " "},
	"de-CH": {'\'', '.', false, " "},
	"de-DE": {'.', ',', true, " "},
	"el":    {'.', ',', true, " "},
	"el-GR": {'.', ',', true, " "},
	"en":    {',', '.', false, ""},
	"en-AU": {',', '.', false, ""},
	"en-CA": {',', '.', false, ""},
	"en-GB": {',', '.', false, ""},
	"en-IE": {',', '.', false, ""},
	"en-IN": {',', '.', false, ""},
	"en-NZ": {',', '.', false, ""},
	"en-US": {',', '.', false, ""},
	"en-ZA": {' ', ',', false, " "},
	"es":    {'.', ',', true, " "},
	"es-AR": {'.', ',', false, " "},
	"es-ES": {'.', ',', true, " "},
	"es-MX": {',', '.', false, ""},
	"fi":    {' ', ',', true, " "},
	"fi-FI": {' ', ',', true, " "},
	"fr":    {' ', ',', true, " "},
	"fr-CA": {' ', ',', true, " "},
	"fr-CH": {' ', '.', false, " "},
	"fr-FR": {' ', ',', true, " "},
	"he":    {',', '.', true, " "},
	"he-IL": {',', '.', true, " "},
	"hi":    {',', '.', false, ""},
	"hi-IN": {',', '.', false, ""},
	"hu":    {' ', ',', true, " "},
	"hu-HU": {' ', ',', true, " "},
	"id":    {'.', ',', false, ""},
	"id-ID": {'.', ',', false, ""},
	"it":    {'.', ',', true, " "},
	"it-CH": {'\'', '.', false, " "},
	"it-IT": {'.', ',', true, " "},
	"ja":    {',', '.', false, ""},
	"ja-JP": {',', '.', false, ""},
	"ko":    {',', '.', false, ""},
	"ko-KR": {',', '.', false, ""},
	"nb":    {' ', ',', false, " "},
	"nb-NO": {' ', ',', false, " "},
	"nl":    {'.', ',', false, " "},
	"nl-NL": {'.', ',', false, " "},
	"pl":    {' ', ',', true, " "},
	"pl-PL": {' ', ',', true, " "},
	"pt":    {'.', ',', false, " "},
	"pt-BR": {'.', ',', false, " "},
	"pt-PT": {' ', ',', true, " "},
	"ro":    {'.', ',', true, " "},
	"ro-RO": {'.', ',', true, " "},
	"ru":    {' ', ',', true, " "},
	"ru-RU": {' ', ',', true, " "},
	"sv":    {' ', ',', true, " "},
	"sv-SE": {' ', ',', true, " "},
	"th":    {',', '.', false, ""},
	"th-TH": {',', '.', false, ""},
	"tr":    {'.', ',', false, ""},
	"tr-TR": {'.', ',', false, ""},
	"uk":    {' ', ',', true, " "},
	"uk-UA": {' ', ',', true, " "},
	"vi":    {'.', ',', true, " "},
	"vi-VN": {'.', ',', true, " "},
	"zh":    {',', '.', false, ""},
	"zh-CN": {',', '.', false, ""},
	"zh-TW": {',', '.', false, ""},
}

// normalizeLocale brings a tag into the canonical xx or xx-XX form:
// underscores become hyphens, the language subtag is lowercased, and the
// region subtag is uppercased.
func normalizeLocale(locale string) string {
	locale = strings.ReplaceAll(locale, "_", "-")
	lang, region, found := strings.Cut(locale, "-")
	lang = strings.ToLower(lang)
	if !found {
		return lang
	}
	return lang + "-" + strings.ToUpper(region)
}

// resolveLocale returns the formatting conventions for a tag.
// The exact normalized tag is tried first, then the bare language subtag.
// An unknown tag is an error, never a silent fallback.
func resolveLocale(locale string) (string, localeInfo, error) {
	tag := normalizeLocale(locale)
	if info, ok := localeLookup[tag]; ok {
		return tag, info, nil
	}
	if lang, _, found := strings.Cut(tag, "-"); found {
		if info, ok := localeLookup[lang]; ok {
			return tag, info, nil
		}
	}
	return "", localeInfo{}, fmt.Errorf("%w: unsupported tag %q", errInvalidLocale, locale)
}
