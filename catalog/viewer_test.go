package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themoonexports/catalog-site/models"
)

func plateProduct() *models.Product {
	return &models.Product{
		ID:    "buffalo-horn-plate",
		Name:  "Buffalo Horn Plate",
		Image: "images/milk-white-buffalo-horn-plates.jpg",
		Images: []string{
			"images/milk-white-buffalo-horn-plates.jpg",
			"images/black-buffalo-horn-plates.jpg",
			"images/brown-buffalo-horn-plates.jpg",
		},
		Variants: []models.Variant{
			{ID: "buffalo-horn-plate-milk-white", Name: "Milk White", Image: "images/milk-white-buffalo-horn-plates.jpg"},
			{ID: "buffalo-horn-plate-black", Name: "Black", Image: "images/black-buffalo-horn-plates.jpg"},
			{ID: "buffalo-horn-plate-brown", Name: "Brown", Image: "images/brown-buffalo-horn-plates.jpg"},
		},
	}
}

func TestSessionNavigationClamps(t *testing.T) {
	var s Session
	p := plateProduct()
	s.Open(p)

	n := len(p.Images)
	// Pressing next well past the end clamps at the last image
	for i := 0; i < n+5; i++ {
		s.Next()
	}
	assert.Equal(t, n-1, s.ImageIndex())

	// And prev clamps at the first
	for i := 0; i < n+5; i++ {
		s.Prev()
	}
	assert.Equal(t, 0, s.ImageIndex())
}

func TestSessionEmptyGallery(t *testing.T) {
	var s Session
	s.Open(&models.Product{ID: "empty"})

	assert.Equal(t, 0, s.ImageIndex())
	_, ok := s.CurrentImage()
	assert.False(t, ok)

	// Navigation must not panic or move
	s.Next()
	s.Prev()
	assert.Equal(t, 0, s.ImageIndex())
}

func TestSessionOpenResetsState(t *testing.T) {
	var s Session
	p := plateProduct()
	s.Open(p)
	s.Next()
	s.SelectVariant("images/black-buffalo-horn-plates.jpg")
	s.Close()

	s.Open(p)
	assert.Equal(t, 0, s.ImageIndex())
	assert.Equal(t, "", s.ActiveVariantImage())
	img, ok := s.CurrentImage()
	require.True(t, ok)
	assert.Equal(t, "images/milk-white-buffalo-horn-plates.jpg", img)
}

func TestSessionVariantSelection(t *testing.T) {
	var s Session
	s.Open(plateProduct())
	s.Next()

	s.SelectVariant("images/brown-buffalo-horn-plates.jpg")
	assert.Equal(t, 0, s.ImageIndex())

	g := s.Gallery()
	require.Len(t, g, 3)
	assert.Equal(t, "images/brown-buffalo-horn-plates.jpg", g[0])

	// Idempotent: selecting the same variant again keeps the same order
	s.SelectVariant("images/brown-buffalo-horn-plates.jpg")
	assert.Equal(t, g, s.Gallery())

	img, ok := s.CurrentImage()
	require.True(t, ok)
	assert.Equal(t, "images/brown-buffalo-horn-plates.jpg", img)
}

func TestSessionKeyboard(t *testing.T) {
	var s Session
	s.Open(plateProduct())

	assert.True(t, s.HandleKey(KeyArrowRight))
	assert.Equal(t, 1, s.ImageIndex())
	assert.True(t, s.HandleKey(KeyArrowLeft))
	assert.Equal(t, 0, s.ImageIndex())
	assert.False(t, s.HandleKey("Enter"))

	assert.True(t, s.HandleKey(KeyEscape))
	assert.False(t, s.IsOpen())

	// Closed sessions ignore keys entirely
	assert.False(t, s.HandleKey(KeyArrowRight))
	assert.Equal(t, 0, s.ImageIndex())
}

func TestDisplayGalleryIsPure(t *testing.T) {
	base := []string{"a.jpg", "b.jpg", "c.jpg"}

	got := DisplayGallery(base, "c.jpg")
	assert.Equal(t, []string{"c.jpg", "a.jpg", "b.jpg"}, got)
	// The base slice is untouched
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, base)

	// A variant already at the front leaves the order alone
	assert.Equal(t, base, DisplayGallery(base, "a.jpg"))
	// Unknown variants change nothing
	assert.Equal(t, base, DisplayGallery(base, "zz.jpg"))
	// No selection passes straight through
	assert.Equal(t, base, DisplayGallery(base, ""))
}

func TestSessionGoTo(t *testing.T) {
	var s Session
	s.Open(plateProduct())

	s.GoTo(2)
	assert.Equal(t, 2, s.ImageIndex())

	// Out of range targets are ignored
	s.GoTo(17)
	assert.Equal(t, 2, s.ImageIndex())
	s.GoTo(-1)
	assert.Equal(t, 2, s.ImageIndex())
}

func TestSessionFallsBackToPrimaryImage(t *testing.T) {
	var s Session
	s.Open(&models.Product{ID: "solo", Image: "images/solo.jpg"})

	g := s.Gallery()
	require.Len(t, g, 1)
	assert.Equal(t, "images/solo.jpg", g[0])
}
