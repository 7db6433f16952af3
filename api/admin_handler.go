package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/themoonexports/catalog-site/catalog"
	"github.com/themoonexports/catalog-site/config"
	"github.com/themoonexports/catalog-site/extract"
	"github.com/themoonexports/catalog-site/utils"
)

// AdminLoginHandler checks the admin password against the configured bcrypt
// hash and returns a JWT for the rebuild endpoint.
func (h *Handlers) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Admin Login API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if config.AdminPasswordHash == "" {
		utils.RespondError(w, &logMessageBuilder, "Admin access is not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		utils.RespondError(w, &logMessageBuilder, "Password is required", http.StatusBadRequest)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Invalid password", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Token generation error: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, "Admin login successful")
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// RebuildHandler reruns the catalog builder against the site directory,
// rewrites the artifact and swaps the served catalog.
func (h *Handlers) RebuildHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Rebuild API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	builder := extract.NewBuilder(h.SiteRoot)
	products := builder.Build()

	if err := extract.WriteArtifact(h.ArtifactPath, products); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Artifact write failed: %v", err))
		utils.RespondError(w, &logMessageBuilder, "Failed to write artifact", http.StatusInternalServerError)
		return
	}

	h.Catalog.Set(catalog.New(products))
	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Rebuilt catalog with %d products", len(products)))

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Catalog rebuilt",
		"count":   len(products),
	})
}
