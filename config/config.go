package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI      string
	Port          string
	GeminiAPIKey  string
	AWSRegion     string
	AWSBucketName string
	JWTSecret     string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "us-east-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	JWTSecret = os.Getenv("JWT_SECRET")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
}
