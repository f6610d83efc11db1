package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile represents a user's style profile used for outfit recommendations
type Profile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"user_id" json:"user_id"`
	Gender          string             `bson:"gender" json:"gender"` // male, female, unspecified
	BodyType        string             `bson:"body_type" json:"body_type"`
	SkinTone        string             `bson:"skin_tone" json:"skin_tone"`
	HairColor       string             `bson:"hair_color" json:"hair_color"`
	HairStyle       string             `bson:"hair_style" json:"hair_style"`
	StylePreference string             `bson:"style_preference" json:"style_preference"`
	PreferredColors []string           `bson:"preferred_colors" json:"preferred_colors"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProfileAnalysis is the result of AI photo analysis used to prefill a profile
type ProfileAnalysis struct {
	Gender     string  `json:"gender"`
	BodyType   string  `json:"body_type"`
	SkinTone   string  `json:"skin_tone"`
	HairColor  string  `json:"hair_color"`
	HairStyle  string  `json:"hair_style"`
	Confidence float64 `json:"confidence"`
}
