// Package i18n resolves localized bot texts. Lookups never fail: an
// unknown locale falls back to Uzbek, an unknown key falls back to the
// key itself so a missing translation is visible in chat instead of
// breaking the flow.
package i18n

import "strings"

// Locale identifies one of the supported interface languages.
type Locale string

const (
	Uzbek   Locale = "uz"
	Russian Locale = "ru"
	English Locale = "en"
)

// DefaultLocale is used for users who have not picked a language yet.
const DefaultLocale = Uzbek

// Locales returns the supported locales in picker order.
func Locales() []Locale {
	return []Locale{Uzbek, Russian, English}
}

// ParseLocale maps a raw code to a supported Locale.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case Uzbek:
		return Uzbek, true
	case Russian:
		return Russian, true
	case English:
		return English, true
	}
	return "", false
}

// Params carries named placeholder values for text templates.
type Params map[string]string

// T resolves (locale, key) to a template and fills {name} placeholders.
func T(loc Locale, key string, params ...Params) string {
	table, ok := tables[loc]
	if !ok {
		table = tables[DefaultLocale]
	}
	text, ok := table[key]
	if !ok {
		text = key
	}
	if len(params) == 0 {
		return text
	}
	for name, value := range params[0] {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}
