package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/themoonexports/catalog-site/utils"
)

// ProductsHandler serves the normalized catalog, optionally filtered by
// category: GET /api/products?category=Horn+Crafts
func (h *Handlers) ProductsHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Products API]")

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c := h.Catalog.Get()
	if c == nil {
		utils.RespondError(w, &logMessageBuilder, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	if category := r.URL.Query().Get("category"); category != "" {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Category filter: %s", category))
		utils.RespondJSON(w, http.StatusOK, c.Category(category))
		return
	}

	utils.RespondJSON(w, http.StatusOK, c.Products)
}

// ProductHandler serves one product by slug id or TME business id:
// GET /api/products/buffalo-horn-bowl or GET /api/products/TME-01
func (h *Handlers) ProductHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Product API]")

	if r.Method != http.MethodGet {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if key == "" || strings.Contains(key, "/") {
		utils.RespondError(w, &logMessageBuilder, "Product key is required", http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Lookup: %s", key))

	c := h.Catalog.Get()
	if c == nil {
		utils.RespondError(w, &logMessageBuilder, "Catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	if p, ok := c.ByID(key); ok {
		utils.RespondJSON(w, http.StatusOK, p)
		return
	}
	if p, ok := c.ByProductID(strings.ToUpper(key)); ok {
		utils.RespondJSON(w, http.StatusOK, p)
		return
	}

	utils.RespondError(w, &logMessageBuilder, "Product not found", http.StatusNotFound)
}
