package api

import (
	"net/http"
	"strings"

	"github.com/themoonexports/catalog-site/utils"
)

// AuthMiddleware guards admin endpoints with a Bearer JWT
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(w, nil, "Authorization token required", http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil || !token.Valid {
			utils.RespondError(w, nil, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}

// CORSMiddleware allows the static site to call the API from any origin
func CORSMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next(w, r)
	}
}
