package api

import (
	"encoding/json"
	"net/http"

	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/stylist"
	"github.com/styleai-app/styleai-server/utils"
)

// SuggestRequest is the body of POST /api/suggest-outfit
type SuggestRequest struct {
	Profile  *models.Profile       `json:"profile"`
	Wardrobe []models.WardrobeItem `json:"wardrobe"`
	Occasion string                `json:"occasion"`
}

// SuggestOutfitHandler runs the recommend-then-illustrate flow. Illustration
// only starts once a valid (possibly fallback) suggestion exists, and its
// failure never invalidates the suggestion.
func (a *API) SuggestOutfitHandler(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	suggestion, err := a.Engine.Recommend(r.Context(), req.Profile, req.Wardrobe, req.Occasion)
	if err != nil {
		status, message := utils.StatusForError(err)
		a.Log.Error().Err(err).Int("status", status).Msg("outfit suggestion failed")
		utils.RespondError(w, status, message)
		return
	}

	gender := stylist.GenderOf(req.Profile)
	if image := a.Engine.Illustrate(r.Context(), suggestion, req.Occasion, gender); image != "" {
		suggestion.OutfitImage = &image
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"suggestion": suggestion})
}
