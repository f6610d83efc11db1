package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WardrobeItem represents a single garment owned by a user
type WardrobeItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Name       string             `bson:"name" json:"name"`
	Category   string             `bson:"category" json:"category"` // shirt, pants, jacket, dress, shoes, accessories, cap
	Color      string             `bson:"color" json:"color"`
	Brand      string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Size       string             `bson:"size,omitempty" json:"size,omitempty"`
	ImageURL   string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	IsFavorite bool               `bson:"is_favorite" json:"is_favorite"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
