package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/styleai-app/styleai-server/utils"
	"github.com/styleai-app/styleai-server/vision"
)

// DetectRequest is the body of POST /api/detect-clothing
type DetectRequest struct {
	Image string `json:"image"`
}

// DetectClothingHandler returns zero or more clothing hotspots for an image.
func (a *API) DetectClothingHandler(w http.ResponseWriter, r *http.Request) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Image == "" {
		utils.RespondError(w, http.StatusBadRequest, "No image provided")
		return
	}

	items, err := a.Detector.Detect(r.Context(), req.Image)
	if err != nil {
		if errors.Is(err, vision.ErrInvalidImage) {
			utils.RespondError(w, http.StatusBadRequest, "Invalid image format")
			return
		}
		status, message := utils.StatusForError(err)
		a.Log.Error().Err(err).Int("status", status).Msg("clothing detection failed")
		utils.RespondError(w, status, message)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}
