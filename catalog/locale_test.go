package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/themoonexports/catalog-site/models"
)

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, LocaleDE, MatchLocale("de"))
	assert.Equal(t, LocaleDE, MatchLocale("de-AT"))
	assert.Equal(t, LocaleFR, MatchLocale("fr-FR"))
	assert.Equal(t, LocaleEN, MatchLocale("en"))
	assert.Equal(t, LocaleEN, MatchLocale(""))
	assert.Equal(t, LocaleEN, MatchLocale("es"))
}

func TestLocalizedFieldsFallBack(t *testing.T) {
	p := &models.Product{
		Name:        "Horn Comb",
		NameDE:      "Hornkamm",
		Description: "A handmade horn comb.",
		// DescriptionDE deliberately empty
	}

	assert.Equal(t, "Hornkamm", LocalizedName(p, LocaleDE))
	assert.Equal(t, "A handmade horn comb.", LocalizedDescription(p, LocaleDE))

	// No French fields at all: base text, never empty
	assert.Equal(t, "Horn Comb", LocalizedName(p, LocaleFR))
	assert.Equal(t, "A handmade horn comb.", LocalizedDescription(p, LocaleFR))

	assert.Equal(t, "Horn Comb", LocalizedName(p, LocaleEN))
}
