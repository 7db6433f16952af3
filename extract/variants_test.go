package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPlateLabel(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"milk-white-buffalo-horn-plates.jpg", "Milk White"},
		{"black-buffalo-horn-plates.jpg", "Black"},
		{"black1-buffalo-horn-plates.jpg", "Black"}, // trailing digits stripped
		{"black-with-white-buffalo-horn-plates.jpg", "Black With White"},
		{"dark-brown-buffalo-horn-plates.png", "Dark Brown"},
		// Known limitation: embedded digits survive the cleanup
		{"black2white-buffalo-horn-plates.jpg", "Black2white"},
		{"buffalo-horn-plates.jpg", "Natural"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanPlateLabel(tt.file), tt.file)
	}
}

func TestPlateVariantOrdering(t *testing.T) {
	inv := NewInventory([]string{
		"brown-buffalo-horn-plates.jpg",
		"black-buffalo-horn-plates.jpg",
		"amber-buffalo-horn-plates.jpg",
		"milk-white-buffalo-horn-plates.jpg",
		"dark-brown-buffalo-horn-plates.jpg",
		"light-white-buffalo-horn-plates.jpg",
		"bowl.jpg",
	})

	variants := plateVariants("buffalo-horn-plate", inv)
	require.Len(t, variants, 6)

	var names []string
	for _, v := range variants {
		names = append(names, v.Name)
	}
	// Semantic weight first, alphabetical for the rest
	assert.Equal(t, []string{"Milk White", "Light White", "Black", "Dark Brown", "Brown", "Amber"}, names)

	assert.Equal(t, "buffalo-horn-plate-milk-white", variants[0].ID)
	assert.Equal(t, "images/milk-white-buffalo-horn-plates.jpg", variants[0].Image)
}

func TestPlatePrimaryPromotion(t *testing.T) {
	inv := NewInventory([]string{
		"milk-white-buffalo-horn-plates.jpg",
		"black-buffalo-horn-plates.jpg",
	})
	b := &Builder{Inventory: inv, Descriptions: map[string]string{}}

	// Primary deliberately points at the black plate so promotion has to move
	// the milk white file to the front
	p := b.BuildProduct("Buffalo Horn Plate", "Horn Crafts", "black-buffalo-horn-plates.jpg")

	require.NotEmpty(t, p.Images)
	assert.Equal(t, "images/milk-white-buffalo-horn-plates.jpg", p.Images[0])
	assert.Equal(t, p.Images[0], p.Image)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, "Milk White", p.Variants[0].Name)
	assert.Equal(t, "Black", p.Variants[1].Name)
}

func TestVariantsOnlyForPlateFamily(t *testing.T) {
	inv := NewInventory([]string{"bowl.jpg", "black-buffalo-horn-plates.jpg"})
	b := &Builder{Inventory: inv, Descriptions: map[string]string{}}

	p := b.BuildProduct("Buffalo Horn Bowl", "Horn Crafts", "bowl.jpg")
	assert.Empty(t, p.Variants)
}

func TestVariantImagesFoldIntoGallery(t *testing.T) {
	inv := NewInventory([]string{
		"milk-white-buffalo-horn-plates.jpg",
		"black-buffalo-horn-plates.jpg",
		"brown-buffalo-horn-plates.jpg",
	})
	b := &Builder{Inventory: inv, Descriptions: map[string]string{}}

	p := b.BuildProduct("Buffalo Horn Plate", "Horn Crafts", "milk-white-buffalo-horn-plates.jpg")

	// Every variant image appears exactly once in the gallery
	seen := make(map[string]int)
	for _, img := range p.Images {
		seen[img]++
	}
	for _, v := range p.Variants {
		assert.Equal(t, 1, seen[v.Image], v.Image)
	}
	assert.Equal(t, "images/milk-white-buffalo-horn-plates.jpg", p.Images[0])
}
