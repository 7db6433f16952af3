package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/themoonexports/catalog-site/config"
	"github.com/themoonexports/catalog-site/models"
	"github.com/themoonexports/catalog-site/utils"
)

// ContactHandler handles contact form submissions: the message is stored
// first, then relayed by email to the site owner. A failed relay is logged
// but does not fail the request once the message is stored.
func (h *Handlers) ContactHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Contact API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))
	countryCode := r.FormValue("country_code")
	mobileNumber := r.FormValue("mobile_number")

	if name == "" || email == "" || message == "" {
		utils.RespondError(w, &logMessageBuilder, "Name, email, and message are required", http.StatusBadRequest)
		return
	}

	contact := models.ContactMessage{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Email:        email,
		CountryCode:  countryCode,
		MobileNumber: mobileNumber,
		Message:      message,
		CreatedAt:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := h.DB.Collection("contact_messages")
	if _, err := collection.InsertOne(ctx, contact); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error saving message", http.StatusInternalServerError)
		return
	}
	utils.AddToLogMessage(&logMessageBuilder, "Contact message stored")

	subject := fmt.Sprintf("Website inquiry from %s", name)
	body := fmt.Sprintf("From: %s <%s>\nPhone: %s %s\n\n%s", name, email, countryCode, mobileNumber, message)
	if err := utils.SendEmail("The Moon Exports", config.ContactEmail, subject, body, ""); err != nil {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Relay email failed: %v", err))
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Message received"})
}

// NewsletterHandler handles newsletter signups, deduplicated by email
func (h *Handlers) NewsletterHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer func() {
		fmt.Println(logMessageBuilder.String())
	}()
	utils.AddToLogMessage(&logMessageBuilder, "[Newsletter API]")

	if r.Method != http.MethodPost {
		utils.RespondError(w, &logMessageBuilder, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error parsing form data", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	if email == "" || !strings.Contains(email, "@") {
		utils.RespondError(w, &logMessageBuilder, "A valid email is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	collection := h.DB.Collection("subscribers")
	update := bson.M{"$setOnInsert": models.Subscriber{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Locale:    r.FormValue("locale"),
		CreatedAt: time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	res, err := collection.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		utils.RespondError(w, &logMessageBuilder, "Error saving subscription", http.StatusInternalServerError)
		return
	}

	if res.UpsertedCount == 0 {
		utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Already subscribed: %s", email))
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Already subscribed"})
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("New subscriber: %s", email))
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"message": "Subscribed"})
}
