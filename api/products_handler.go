package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/styleai-app/styleai-server/shops"
	"github.com/styleai-app/styleai-server/utils"
)

// SearchProductsRequest is the body of POST /api/search-products
type SearchProductsRequest struct {
	Item shops.Item `json:"item"`
}

// SearchProductsHandler resolves a detected item to shoppable candidates.
func (a *API) SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	products, err := a.Resolver.Resolve(r.Context(), req.Item)
	if err != nil {
		if errors.Is(err, shops.ErrMissingLabel) {
			utils.RespondError(w, http.StatusBadRequest, "No item provided")
			return
		}
		status, message := utils.StatusForError(err)
		a.Log.Error().Err(err).Int("status", status).Msg("product search failed")
		utils.RespondError(w, status, message)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}
