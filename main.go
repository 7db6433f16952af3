package main

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/themoonexports/catalog-site/api"
	"github.com/themoonexports/catalog-site/catalog"
	"github.com/themoonexports/catalog-site/config"
	"github.com/themoonexports/catalog-site/utils"
)

func main() {
	config.LoadConfig()

	// Initialize MongoDB
	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	artifactPath := filepath.Join(config.SiteRoot, "public", "products.json")

	// Load the built artifact into the serving catalog. A missing artifact
	// is not fatal: the admin rebuild endpoint can produce one later.
	store := catalog.NewStore(nil)
	if c, err := catalog.LoadFile(artifactPath); err != nil {
		log.Printf("Warning: catalog not loaded: %v", err)
	} else {
		store.Set(c)
		log.Printf("Loaded catalog with %d products", len(c.Products))
	}

	handlers := &api.Handlers{
		Catalog:      store,
		DB:           utils.Client.Database(config.DBName),
		SiteRoot:     config.SiteRoot,
		ArtifactPath: artifactPath,
	}

	http.HandleFunc("/api/products", api.CORSMiddleware(handlers.ProductsHandler))
	http.HandleFunc("/api/products/", api.CORSMiddleware(handlers.ProductHandler))
	http.HandleFunc("/api/contact", api.CORSMiddleware(handlers.ContactHandler))
	http.HandleFunc("/api/newsletter", api.CORSMiddleware(handlers.NewsletterHandler))

	// Admin Routes
	http.HandleFunc("/api/admin/login", api.CORSMiddleware(handlers.AdminLoginHandler))
	http.HandleFunc("/api/admin/rebuild", api.CORSMiddleware(api.AuthMiddleware(handlers.RebuildHandler)))

	// Serve the static site, product images and the artifact itself
	http.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(filepath.Join(config.SiteRoot, "images")))))
	http.HandleFunc("/products.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, artifactPath)
	})
	http.Handle("/", http.FileServer(http.Dir(config.SiteRoot)))

	port := config.Port
	fmt.Printf("Server starting on port %s...\n", port)
	if err := http.ListenAndServe(":"+port, utils.LatencyMiddleware(http.DefaultServeMux)); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
