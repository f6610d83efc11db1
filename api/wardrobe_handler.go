package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const wardrobeCollection = "wardrobe_items"

// ListWardrobeHandler returns the caller's wardrobe, newest first.
func (a *API) ListWardrobeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := utils.GetCollection(wardrobeCollection).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to list wardrobe")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load wardrobe")
		return
	}

	items := []models.WardrobeItem{}
	if err := cursor.All(ctx, &items); err != nil {
		a.Log.Error().Err(err).Msg("failed to decode wardrobe items")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load wardrobe")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

// AddWardrobeItemHandler inserts a new wardrobe item for the caller.
func (a *API) AddWardrobeItemHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var item models.WardrobeItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if item.Name == "" || item.Category == "" || item.Color == "" {
		utils.RespondError(w, http.StatusBadRequest, "name, category and color are required")
		return
	}

	item.ID = primitive.NewObjectID()
	item.UserID = userID
	item.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := utils.GetCollection(wardrobeCollection).InsertOne(ctx, item); err != nil {
		a.Log.Error().Err(err).Msg("failed to insert wardrobe item")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save item")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"item": item})
}

// DeleteWardrobeItemHandler removes one of the caller's wardrobe items.
func (a *API) DeleteWardrobeItemHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := utils.GetCollection(wardrobeCollection).DeleteOne(ctx,
		bson.M{"_id": itemID, "user_id": userID})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to delete wardrobe item")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item deleted"})
}

// SetFavoriteHandler flips or sets the favorite flag on a wardrobe item.
func (a *API) SetFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itemID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := utils.GetCollection(wardrobeCollection).UpdateOne(ctx,
		bson.M{"_id": itemID, "user_id": userID},
		bson.M{"$set": bson.M{"is_favorite": req.IsFavorite}})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to update favorite flag")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Item updated"})
}
