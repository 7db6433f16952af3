package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	ContactEmail string
	SenderEmail  string

	// Bcrypt digest of the admin password, set once at deploy time.
	// The rebuild endpoint is disabled when empty.
	AdminPasswordHash string

	AWSRegion     string
	AWSBucketName string

	// SiteRoot is the directory holding the static site: images/, the
	// category HTML pages and public/products.json.
	SiteRoot string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	DBName = os.Getenv("DB_NAME")
	if DBName == "" {
		DBName = "moonexports"
	}

	JWTSecret = os.Getenv("JWT_SECRET")

	ContactEmail = os.Getenv("CONTACT_EMAIL")
	if ContactEmail == "" {
		ContactEmail = "info@themoonexports.com"
	}

	SenderEmail = os.Getenv("SENDER_EMAIL")
	if SenderEmail == "" {
		SenderEmail = "no-reply@themoonexports.com"
	}

	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	SiteRoot = os.Getenv("SITE_ROOT")
	if SiteRoot == "" {
		SiteRoot = "."
	}
}
