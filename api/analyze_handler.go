package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/styleai-app/styleai-server/utils"
	"github.com/styleai-app/styleai-server/vision"
)

// AnalyzeRequest is the body of POST /api/analyze-profile-image
type AnalyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

// AnalyzeProfileImageHandler derives profile attributes from an uploaded photo.
func (a *API) AnalyzeProfileImageHandler(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ImageBase64 == "" {
		utils.RespondError(w, http.StatusBadRequest, "Image is required")
		return
	}

	analysis, err := a.Analyzer.AnalyzeProfileImage(r.Context(), req.ImageBase64)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrInvalidImage):
			utils.RespondError(w, http.StatusBadRequest, "Invalid image format. Please upload a valid image.")
		case errors.Is(err, vision.ErrUnreadableAnalysis):
			a.Log.Error().Err(err).Msg("profile image analysis unreadable")
			utils.RespondError(w, http.StatusInternalServerError, "Failed to analyze image. Please try again.")
		default:
			status, message := utils.StatusForError(err)
			a.Log.Error().Err(err).Int("status", status).Msg("profile image analysis failed")
			utils.RespondError(w, status, message)
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"analysis": analysis})
}
