package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	CountryCode  string             `bson:"country_code,omitempty" json:"country_code,omitempty"`
	MobileNumber string             `bson:"mobile_number,omitempty" json:"mobile_number,omitempty"`
	Message      string             `bson:"message" json:"message"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

// Subscriber represents a newsletter signup, deduplicated by email
type Subscriber struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Locale    string             `bson:"locale,omitempty" json:"locale,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
