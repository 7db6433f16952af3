package models

// Variant represents a named sub-option of a product with its own image.
// Only the buffalo horn plate family carries variants.
type Variant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Product is one record of the products.json artifact
type Product struct {
	ID            string    `json:"id"`                  // slug of the name, stable across rebuilds
	ProductID     string    `json:"productId,omitempty"` // sequential business id TME-NN
	Name          string    `json:"name"`
	NameDE        string    `json:"name_de,omitempty"`
	NameFR        string    `json:"name_fr,omitempty"`
	Image         string    `json:"image"`  // primary, always images[0] after normalization
	Images        []string  `json:"images"` // gallery, primary first
	Description   string    `json:"description"`
	DescriptionDE string    `json:"description_de,omitempty"`
	DescriptionFR string    `json:"description_fr,omitempty"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Featured      bool      `json:"featured"`
	Available     bool      `json:"available"`
	Variants      []Variant `json:"variants,omitempty"` // hidden if empty
}

// CanonicalProduct is a hand-maintained seed definition. Image is the
// preferred basename in the images directory; Fallback is tried when the
// preferred file is absent.
type CanonicalProduct struct {
	Name     string
	Category string
	Image    string
	Fallback string
}
