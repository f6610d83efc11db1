package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profilesCollection = "profiles"

// GetProfileHandler returns the caller's style profile.
func (a *API) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err = utils.GetCollection(profilesCollection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		utils.RespondError(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to load profile")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// UpsertProfileHandler creates or replaces the caller's style profile.
func (a *API) UpsertProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile.ID = primitive.NilObjectID
	profile.UserID = userID
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	_, err = utils.GetCollection(profilesCollection).ReplaceOne(ctx,
		bson.M{"user_id": userID}, profile, options.Replace().SetUpsert(true))
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to save profile")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
