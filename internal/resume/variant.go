// Package resume manages the resume PDF blobs on disk, one file per
// language variant.
package resume

import "strings"

// Variant identifies a resume language variant. The codes are wire
// tokens used in callback data, so they stay stable even though they do
// not match the interface locale codes one-to-one.
type Variant string

const (
	VariantUz  Variant = "uz"
	VariantEng Variant = "eng"
	VariantRus Variant = "rus"
)

// Variants returns all known variants in menu order.
func Variants() []Variant {
	return []Variant{VariantUz, VariantEng, VariantRus}
}

// ParseVariant maps a raw token to a known Variant.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantUz:
		return VariantUz, true
	case VariantEng:
		return VariantEng, true
	case VariantRus:
		return VariantRus, true
	}
	return "", false
}

// Label returns a short human-readable name for reports.
func (v Variant) Label() string {
	switch v {
	case VariantUz:
		return "O'zbekcha"
	case VariantEng:
		return "English"
	case VariantRus:
		return "Русский"
	}
	return string(v)
}
