package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themoonexports/catalog-site/models"
)

func TestNormalizeBackfillsEmptyGallery(t *testing.T) {
	products := []models.Product{
		{ID: "a", Image: "x.jpg", Images: []string{}},
	}

	norm := Normalize(products)
	require.Len(t, norm, 1)
	assert.Equal(t, []string{"x.jpg"}, norm[0].Images)
	assert.Equal(t, norm[0].Image, norm[0].Images[0])
}

func TestNormalizeMovesPrimaryToFront(t *testing.T) {
	products := []models.Product{
		{ID: "a", Image: "b.jpg", Images: []string{"a.jpg", "b.jpg", "c.jpg"}},
	}

	norm := Normalize(products)
	assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, norm[0].Images)
}

func TestNormalizeDropsDuplicatePrimary(t *testing.T) {
	products := []models.Product{
		{ID: "a", Image: "a.jpg", Images: []string{"b.jpg", "a.jpg", "a.jpg"}},
	}

	norm := Normalize(products)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, norm[0].Images)
}

func TestNormalizeSortsByProductNumber(t *testing.T) {
	products := []models.Product{
		{ID: "c", ProductID: "TME-10", Image: "c.jpg"},
		{ID: "broken", ProductID: "oops", Image: "d.jpg"},
		{ID: "a", ProductID: "TME-02", Image: "a.jpg"},
		{ID: "b", ProductID: "TME-03", Image: "b.jpg"},
	}

	norm := Normalize(products)
	require.Len(t, norm, 4, "unparseable productId sorts last, never dropped")
	assert.Equal(t, "a", norm[0].ID)
	assert.Equal(t, "b", norm[1].ID)
	assert.Equal(t, "c", norm[2].ID)
	assert.Equal(t, "broken", norm[3].ID)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	products := []models.Product{
		{ID: "a", Image: "b.jpg", Images: []string{"a.jpg", "b.jpg"}},
	}

	Normalize(products)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, products[0].Images)
}

func TestCatalogIndices(t *testing.T) {
	c := New([]models.Product{
		{ID: "horn-comb", ProductID: "TME-02", Image: "c.jpg", Category: "Horn Crafts"},
		{ID: "buffalo-horn-bowl", ProductID: "TME-01", Image: "b.jpg", Category: "Horn Crafts"},
		{ID: "wooden-spoon", ProductID: "TME-03", Image: "s.jpg", Category: "Wooden Crafts"},
	})

	p, ok := c.ByID("horn-comb")
	require.True(t, ok)
	assert.Equal(t, "TME-02", p.ProductID)

	p, ok = c.ByProductID("TME-03")
	require.True(t, ok)
	assert.Equal(t, "wooden-spoon", p.ID)

	_, ok = c.ByID("nope")
	assert.False(t, ok)

	horn := c.Category("Horn Crafts")
	require.Len(t, horn, 2)
	// Grouping preserves the normalized sort order
	assert.Equal(t, "buffalo-horn-bowl", horn[0].ID)
	assert.Equal(t, "horn-comb", horn[1].ID)

	assert.Equal(t, []string{"Horn Crafts", "Wooden Crafts"}, c.Categories())
}

func TestLoaderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"a","image":"x.jpg","images":[],"name":"A","description":"","price":0,"category":"Horn Crafts","tags":[],"featured":false,"available":true}]`))
	}))
	defer srv.Close()

	c, err := NewLoader(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, c.Products, 1)
	assert.Equal(t, []string{"x.jpg"}, c.Products[0].Images)
}

func TestLoaderFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewLoader(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load products.json")
}

func TestLoaderFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(srv.URL).Fetch(ctx)
	assert.Error(t, err)
}
