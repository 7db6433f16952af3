package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/themoonexports/catalog-site/models"
)

// Catalog is the normalized, indexed, read-only view of the products.json
// artifact. It is built once per load and never mutated afterwards.
type Catalog struct {
	Products []models.Product

	byID        map[string]*models.Product
	byProductID map[string]*models.Product
	byCategory  map[string][]*models.Product
	categories  []string
}

// New normalizes and indexes a raw product list
func New(products []models.Product) *Catalog {
	c := &Catalog{
		Products:    Normalize(products),
		byID:        make(map[string]*models.Product),
		byProductID: make(map[string]*models.Product),
		byCategory:  make(map[string][]*models.Product),
	}
	for i := range c.Products {
		p := &c.Products[i]
		c.byID[p.ID] = p
		if p.ProductID != "" {
			c.byProductID[p.ProductID] = p
		}
		if _, ok := c.byCategory[p.Category]; !ok {
			c.categories = append(c.categories, p.Category)
		}
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}
	return c
}

// ByID looks a product up by its slug id
func (c *Catalog) ByID(id string) (*models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByProductID looks a product up by its TME-NN business id
func (c *Catalog) ByProductID(pid string) (*models.Product, bool) {
	p, ok := c.byProductID[pid]
	return p, ok
}

// Category returns the products of one category in display order
func (c *Catalog) Category(name string) []*models.Product {
	return c.byCategory[name]
}

// Categories lists category names in first-appearance order
func (c *Catalog) Categories() []string {
	return c.categories
}

var productNumberRe = regexp.MustCompile(`(?i)TME-(\d+)`)

// productNumber extracts the numeric suffix of a TME-NN id; records without
// a parseable id sort last, they are never dropped.
func productNumber(pid string) int {
	m := productNumberRe.FindStringSubmatch(pid)
	if m == nil {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

// Normalize repairs each record so images[0] == image (backfilling a missing
// gallery from the primary and dropping duplicate primaries), then sorts by
// the numeric suffix of productId for deterministic display.
func Normalize(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)

	for i := range out {
		p := &out[i]
		images := make([]string, 0, len(p.Images)+1)
		images = append(images, p.Images...)
		if p.Image != "" && (len(images) == 0 || images[0] != p.Image) {
			withoutPrimary := make([]string, 0, len(images))
			for _, img := range images {
				if img != p.Image {
					withoutPrimary = append(withoutPrimary, img)
				}
			}
			images = append([]string{p.Image}, withoutPrimary...)
		}
		p.Images = images
	}

	sort.SliceStable(out, func(i, j int) bool {
		return productNumber(out[i].ProductID) < productNumber(out[j].ProductID)
	})
	return out
}

// Loader fetches the artifact exactly once per call. There is no automatic
// retry; callers re-invoke Fetch to try again.
type Loader struct {
	URL    string
	Client *http.Client
}

// NewLoader returns a loader for the artifact at url
func NewLoader(url string) *Loader {
	return &Loader{URL: url, Client: http.DefaultClient}
}

// Fetch issues a single GET for the artifact and returns the normalized,
// indexed catalog. The context cancels the request on caller teardown.
func (l *Loader) Fetch(ctx context.Context) (*Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load products.json: %w", err)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load products.json: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load products.json: status %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to parse products.json: %w", err)
	}
	return New(products), nil
}

// LoadFile reads the artifact from disk; used by the server, which sits next
// to the file the builder wrote.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return New(products), nil
}
