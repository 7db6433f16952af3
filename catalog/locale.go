package catalog

import (
	"strings"

	"github.com/themoonexports/catalog-site/models"
)

// Locale selects which localized product fields to display
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
	LocaleFR Locale = "fr"
)

// MatchLocale maps a document language tag ("de", "fr-FR", ...) to a
// supported locale, defaulting to English for anything unset or unrecognized.
func MatchLocale(tag string) Locale {
	switch lang := strings.ToLower(tag); {
	case strings.HasPrefix(lang, "de"):
		return LocaleDE
	case strings.HasPrefix(lang, "fr"):
		return LocaleFR
	default:
		return LocaleEN
	}
}

// LocalizedName returns the product name for the locale, falling back to the
// base name so the caller never renders empty text.
func LocalizedName(p *models.Product, loc Locale) string {
	if loc == LocaleDE && p.NameDE != "" {
		return p.NameDE
	}
	if loc == LocaleFR && p.NameFR != "" {
		return p.NameFR
	}
	return p.Name
}

// LocalizedDescription returns the product description for the locale with
// the same fallback rule as LocalizedName.
func LocalizedDescription(p *models.Product, loc Locale) string {
	if loc == LocaleDE && p.DescriptionDE != "" {
		return p.DescriptionDE
	}
	if loc == LocaleFR && p.DescriptionFR != "" {
		return p.DescriptionFR
	}
	return p.Description
}
