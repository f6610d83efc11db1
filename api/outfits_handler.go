package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/stylist"
	"github.com/styleai-app/styleai-server/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const outfitsCollection = "outfit_suggestions"

// ListSavedOutfitsHandler returns the caller's saved looks, newest first.
func (a *API) ListSavedOutfitsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := utils.GetCollection(outfitsCollection).Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to list saved outfits")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load saved outfits")
		return
	}

	outfits := []models.SavedOutfit{}
	if err := cursor.All(ctx, &outfits); err != nil {
		a.Log.Error().Err(err).Msg("failed to decode saved outfits")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load saved outfits")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"outfits": outfits})
}

// SaveOutfitHandler persists a suggestion verbatim as an opaque blob. Only the
// overall shape is checked; the suggestion is stored exactly as generated.
func (a *API) SaveOutfitHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Occasion       string                  `json:"occasion"`
		SuggestionData models.OutfitSuggestion `json:"suggestion_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := stylist.ValidateSuggestion(&req.SuggestionData); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Incomplete suggestion data")
		return
	}

	saved := models.SavedOutfit{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		Occasion:       stylist.Sanitize(req.Occasion, 50),
		SuggestionData: req.SuggestionData,
		CreatedAt:      time.Now(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := utils.GetCollection(outfitsCollection).InsertOne(ctx, saved); err != nil {
		a.Log.Error().Err(err).Msg("failed to save outfit")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save outfit")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{"outfit": saved})
}

// DeleteSavedOutfitHandler removes one of the caller's saved looks.
func (a *API) DeleteSavedOutfitHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	outfitID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid outfit id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := utils.GetCollection(outfitsCollection).DeleteOne(ctx,
		bson.M{"_id": outfitID, "user_id": userID})
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to delete saved outfit")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete outfit")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Outfit not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Outfit deleted"})
}
