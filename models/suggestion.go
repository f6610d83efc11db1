package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Outfit holds the individual pieces of a suggested look.
// Outerwear and Accessories are pointers so the AI can return an explicit null.
type Outfit struct {
	Top         string  `bson:"top" json:"top"`
	Bottom      string  `bson:"bottom" json:"bottom"`
	Outerwear   *string `bson:"outerwear" json:"outerwear"`
	Shoes       string  `bson:"shoes" json:"shoes"`
	Accessories *string `bson:"accessories" json:"accessories"`
}

// OutfitSuggestion is the full structured recommendation returned to the client
type OutfitSuggestion struct {
	Outfit       Outfit   `bson:"outfit" json:"outfit"`
	Explanation  string   `bson:"explanation" json:"explanation"`
	StylingTips  []string `bson:"styling_tips" json:"styling_tips"`
	ColorHarmony string   `bson:"color_harmony" json:"color_harmony"`
	ImagePrompt  string   `bson:"image_prompt,omitempty" json:"image_prompt,omitempty"`
	OutfitImage  *string  `bson:"outfit_image,omitempty" json:"outfit_image,omitempty"`
}

// SavedOutfit is a suggestion the user chose to keep.
// SuggestionData is persisted verbatim as an opaque blob.
type SavedOutfit struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Occasion       string             `bson:"occasion" json:"occasion"`
	SuggestionData OutfitSuggestion   `bson:"suggestion_data" json:"suggestion_data"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
