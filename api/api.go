package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/styleai-app/styleai-server/shops"
	"github.com/styleai-app/styleai-server/stylist"
	"github.com/styleai-app/styleai-server/vision"
)

// API bundles the pipeline services behind the HTTP surface.
type API struct {
	Engine   *stylist.Engine
	Detector *vision.Detector
	Analyzer *vision.Analyzer
	Resolver shops.Resolver
	Log      zerolog.Logger
}

// RegisterRoutes wires every endpoint onto the router. The AI pipelines are
// public (matching the hosted edge functions they replace); the record-store
// routes require a bearer token carrying the caller's opaque user id.
func RegisterRoutes(r *mux.Router, a *API) {
	s := r.PathPrefix("/api").Subrouter()

	s.HandleFunc("/suggest-outfit", a.SuggestOutfitHandler).Methods("POST")
	s.HandleFunc("/detect-clothing", a.DetectClothingHandler).Methods("POST")
	s.HandleFunc("/search-products", a.SearchProductsHandler).Methods("POST")
	s.HandleFunc("/analyze-profile-image", a.AnalyzeProfileImageHandler).Methods("POST")

	authed := s.NewRoute().Subrouter()
	authed.Use(RequireAuth)
	authed.HandleFunc("/profile", a.GetProfileHandler).Methods("GET")
	authed.HandleFunc("/profile", a.UpsertProfileHandler).Methods("PUT")
	authed.HandleFunc("/wardrobe", a.ListWardrobeHandler).Methods("GET")
	authed.HandleFunc("/wardrobe", a.AddWardrobeItemHandler).Methods("POST")
	authed.HandleFunc("/wardrobe/{id}", a.DeleteWardrobeItemHandler).Methods("DELETE")
	authed.HandleFunc("/wardrobe/{id}/favorite", a.SetFavoriteHandler).Methods("PATCH")
	authed.HandleFunc("/outfits", a.ListSavedOutfitsHandler).Methods("GET")
	authed.HandleFunc("/outfits", a.SaveOutfitHandler).Methods("POST")
	authed.HandleFunc("/outfits/{id}", a.DeleteSavedOutfitHandler).Methods("DELETE")
	authed.HandleFunc("/upload-image", a.UploadImageHandler).Methods("POST")
}
