package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"github.com/themoonexports/catalog-site/models"
)

const placeholderImage = "placeholder.png"

// CanonicalProducts is the hand-maintained seed list. Image is the preferred
// basename, Fallback the alternative to use when the preferred file is
// missing from the images directory.
var CanonicalProducts = []models.CanonicalProduct{
	{Name: "Horn Comb", Category: "Horn Crafts", Image: "horn-comb.jpg", Fallback: placeholderImage},
	{Name: "Wooden Spoon", Category: "Wooden Crafts", Image: "wooden-spoons.jpg", Fallback: "spoon.jpg"},
	{Name: "Resin Bangle", Category: "Resin Products", Image: "resin-bangle2.jpg", Fallback: "resin-bangle.jpg"},
	{Name: "Wooden Pizza Cutter", Category: "Wooden Crafts", Image: "pizza-cutter.jpg"},
	{Name: "Buffalo Horn Bowl", Category: "Horn Crafts", Image: "bowl.jpg", Fallback: "Horn-Crafts.JPG"},
	{Name: "Buffalo Horn Plate", Category: "Horn Crafts", Image: "milk-white-buffalo-horn-plates.jpg"},
	{Name: "Horn Button Blank", Category: "Horn Crafts", Image: "button-blank.jpg"},
	{Name: "Horn Bangle", Category: "Horn Crafts", Image: "hornbracelets.jpg", Fallback: "bracelet.jpg"},
	{Name: "Horn Necklace", Category: "Horn Crafts", Image: "necklace.jpg"},
	{Name: "Horn Pendant", Category: "Horn Crafts", Image: "horn-pendant.jpg"},
	{Name: "Horn Scale", Category: "Horn Crafts", Image: "hornmtplates.jpg", Fallback: "light-white-buffalo-horn-plates.jpg"},
	{Name: "Horn Walking Stick", Category: "Horn Crafts", Image: "walking-stick.jpg"},
	{Name: "Horn Shoehorn", Category: "Horn Crafts", Image: "shoeshorn.jpg"},
	{Name: "Horn Mug", Category: "Horn Crafts", Image: placeholderImage},
	{Name: "Horn Decor", Category: "Horn Crafts", Image: "decor.jpg"},
	{Name: "Wooden Bowl", Category: "Wooden Crafts", Image: "wooden-bowl.jpg"},
	{Name: "Wooden Button", Category: "Wooden Crafts", Image: "wooden-button.jpg"},
	{Name: "Wooden Board", Category: "Wooden Crafts", Image: "cutting-board-500x500.jpg", Fallback: "baguette-slicing-board-500x500.jpg"},
	{Name: "Wooden Jewelry Box", Category: "Wooden Crafts", Image: placeholderImage},
	{Name: "Wooden Decor", Category: "Wooden Crafts", Image: "decor.jpg"},
	{Name: "Resin Button", Category: "Resin Products", Image: "finished-button.jpg", Fallback: "finished-button2.jpg"},
	{Name: "Resin Toggle", Category: "Resin Products", Image: "resin-toggles.jpg"},
	{Name: "Resin Bead", Category: "Resin Products", Image: "resin-beads.jpg"},
}

// Builder assembles the products.json artifact from the canonical list, the
// image inventory and the mined category pages.
type Builder struct {
	Inventory    *Inventory
	Descriptions map[string]string
	Defs         []models.CanonicalProduct
}

// NewBuilder wires a builder for a site rooted at root: images/ for the
// inventory and the category pages alongside it.
func NewBuilder(root string) *Builder {
	return &Builder{
		Inventory:    LoadInventory(filepath.Join(root, "images")),
		Descriptions: MineDescriptions(root, CategoryPages),
		Defs:         CanonicalProducts,
	}
}

// ResolveImage picks the basename to use for a definition: the preferred
// image when present in the inventory, else the declared fallback, else the
// placeholder.
func ResolveImage(inv *Inventory, def models.CanonicalProduct) string {
	if def.Image != "" && inv.Has(def.Image) {
		return def.Image
	}
	if def.Fallback != "" {
		return def.Fallback
	}
	return placeholderImage
}

// imagePath maps a basename to its served path; absolute URLs pass through
func imagePath(name string) string {
	if strings.HasPrefix(name, "http") {
		return name
	}
	return "images/" + name
}

// BuildProduct assembles one artifact record. Variant discovery and primary
// promotion apply only to the buffalo horn plate family.
func (b *Builder) BuildProduct(name, category, imageBase string) models.Product {
	description := b.Descriptions[category]
	if description == "" {
		description = fmt.Sprintf("%s by The Moon Exports.", name)
	}

	var images []string
	for _, img := range b.Inventory.GalleryImages(imageBase) {
		images = append(images, imagePath(img))
	}

	p := models.Product{
		ID:            slug.Make(name),
		Name:          name,
		NameDE:        name,
		NameFR:        name,
		Image:         imagePath(imageBase),
		Images:        images,
		Description:   description,
		DescriptionDE: description,
		DescriptionFR: description,
		Price:         0,
		Category:      category,
		Tags:          strings.Fields(strings.ToLower(name)),
		Featured:      false,
		Available:     true,
	}

	if strings.Contains(strings.ToLower(name), "buffalo horn plate") {
		attachPlateVariants(&p, b.Inventory)
	}
	return p
}

// Build produces the final product list: canonical entries deduplicated by id
// (last definition wins), sorted by (category, name), then numbered TME-NN.
// Adding or removing a product renumbers everything after it; that is the
// documented contract of the business id.
func (b *Builder) Build() []models.Product {
	byID := make(map[string]models.Product)
	var order []string
	for _, def := range b.Defs {
		img := ResolveImage(b.Inventory, def)
		// Category pages sometimes carry an absolute product image in
		// embedded JSON; prefer it for the plate family.
		if def.Name == "Buffalo Horn Plate" {
			if abs := b.Descriptions["Horn Crafts:image"]; abs != "" {
				img = abs
			}
		}
		p := b.BuildProduct(def.Name, def.Category, img)
		if _, ok := byID[p.ID]; !ok {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}

	products := make([]models.Product, 0, len(order))
	for _, id := range order {
		products = append(products, byID[id])
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})

	for i := range products {
		products[i].ProductID = fmt.Sprintf("TME-%02d", i+1)
	}
	return products
}

// WriteArtifact serializes the product list to outFile, creating parent
// directories as needed.
func WriteArtifact(outFile string, products []models.Product) error {
	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	return nil
}
