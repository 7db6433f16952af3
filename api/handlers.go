package api

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/themoonexports/catalog-site/catalog"
)

// Handlers carries every dependency the HTTP handlers need. Wiring happens
// once in main; handlers never reach for ambient globals.
type Handlers struct {
	Catalog *catalog.Store
	DB      *mongo.Database

	// SiteRoot and ArtifactPath tell the admin rebuild where the images,
	// category pages and output artifact live.
	SiteRoot     string
	ArtifactPath string
}
