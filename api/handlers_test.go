package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/api"
	"github.com/styleai-app/styleai-server/config"
	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/shops"
	"github.com/styleai-app/styleai-server/stylist"
	"github.com/styleai-app/styleai-server/utils"
	"github.com/styleai-app/styleai-server/vision"
)

type fakeGenerator struct {
	textReply  string
	textErr    error
	imageReply string
	imageErr   error

	textCalls   int
	visionCalls int
	imageCalls  int
}

func (f *fakeGenerator) GenerateText(context.Context, string, string) (string, error) {
	f.textCalls++
	return f.textReply, f.textErr
}

func (f *fakeGenerator) GenerateVision(context.Context, string, string, string, []byte) (string, error) {
	f.visionCalls++
	return f.textReply, f.textErr
}

func (f *fakeGenerator) GenerateImage(context.Context, string) (string, error) {
	f.imageCalls++
	return f.imageReply, f.imageErr
}

func newTestRouter(gen ai.Generator) *mux.Router {
	a := &api.API{
		Engine:   stylist.NewEngine(gen, zerolog.Nop()),
		Detector: vision.NewDetector(gen, zerolog.Nop()),
		Analyzer: vision.NewAnalyzer(gen, zerolog.Nop()),
		Resolver: shops.NewSearchLinkResolver(nil),
		Log:      zerolog.Nop(),
	}
	r := mux.NewRouter()
	api.RegisterRoutes(r, a)
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSuggestOutfitHandler(t *testing.T) {
	t.Parallel()

	t.Run("garbage model reply still returns a complete suggestion", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: "no JSON here at all", imageErr: ai.ErrUpstreamUnavailable}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit",
			`{"profile": {"gender": "female"}, "wardrobe": [], "occasion": "work"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Suggestion models.OutfitSuggestion `json:"suggestion"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Suggestion.Outfit.Top)
		assert.NotEmpty(t, body.Suggestion.Outfit.Bottom)
		assert.NotEmpty(t, body.Suggestion.Outfit.Shoes)
		assert.NotEmpty(t, body.Suggestion.Explanation)
		assert.NotEmpty(t, body.Suggestion.ColorHarmony)
		assert.NotEmpty(t, body.Suggestion.StylingTips)
		assert.Nil(t, body.Suggestion.OutfitImage)
	})

	t.Run("successful illustration is attached", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: "garbage", imageReply: "data:image/png;base64,aGVsbG8="}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit", `{"occasion": "brunch"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Suggestion models.OutfitSuggestion `json:"suggestion"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Suggestion.OutfitImage)
		assert.Equal(t, "data:image/png;base64,aGVsbG8=", *body.Suggestion.OutfitImage)
	})

	t.Run("rate limited maps to 429", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textErr: ai.ErrRateLimited}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit", `{"occasion": "work"}`)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "Rate limit")
		assert.Zero(t, gen.imageCalls)
	})

	t.Run("quota exhausted maps to 402", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textErr: ai.ErrQuotaExhausted}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit", `{"occasion": "work"}`)
		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	})

	t.Run("missing credentials map to 500", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textErr: ai.ErrMisconfigured}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit", `{"occasion": "work"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "GEMINI")
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/suggest-outfit", `{"occasion": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.textCalls)
	})
}

func TestDetectClothingHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns detected hotspots", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: `[{"label": "Denim Jacket", "category": "Outerwear", "x": 40, "y": 25, "color": "blue", "style": "casual"}]`}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/detect-clothing", `{"image": "data:image/png;base64,aGVsbG8="}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Items []models.DetectedItem `json:"items"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Items, 1)
		assert.Equal(t, "Denim Jacket", body.Items[0].Label)
	})

	t.Run("oversized raw payload rejected without an upstream call", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		r := newTestRouter(gen)

		payload := fmt.Sprintf(`{"image": %q}`, strings.Repeat("x", 6*1024*1024))
		rec := postJSON(t, r, "/api/detect-clothing", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.visionCalls)
	})

	t.Run("missing image maps to 400", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/detect-clothing", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.visionCalls)
	})

	t.Run("unparseable reply returns an empty list", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: "nothing to see"}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/detect-clothing", `{"image": "data:image/png;base64,aGVsbG8="}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items": []}`, rec.Body.String())
	})
}

func TestSearchProductsHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns one candidate per store", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(&fakeGenerator{})

		rec := postJSON(t, r, "/api/search-products",
			`{"item": {"label": "Navy Blazer", "category": "Outerwear", "color": "navy"}}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Products []models.ProductCandidate `json:"products"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Products, len(shops.DefaultStores()))
	})

	t.Run("missing label maps to 400", func(t *testing.T) {
		t.Parallel()
		r := newTestRouter(&fakeGenerator{})

		rec := postJSON(t, r, "/api/search-products", `{"item": {"label": ""}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No item provided")
	})
}

func TestAnalyzeProfileImageHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns parsed analysis", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: `{"gender":"male","body_type":"slim","skin_tone":"fair","hair_color":"brown","hair_style":"short","confidence":90}`}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/analyze-profile-image", `{"imageBase64": "data:image/jpeg;base64,aGVsbG8="}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Analysis models.ProfileAnalysis `json:"analysis"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "male", body.Analysis.Gender)
	})

	t.Run("https URL maps to 400 for this endpoint", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/analyze-profile-image", `{"imageBase64": "https://cdn.example.com/me.jpg"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, gen.visionCalls)
	})

	t.Run("unreadable reply maps to 500", func(t *testing.T) {
		t.Parallel()
		gen := &fakeGenerator{textReply: "cannot comply"}
		r := newTestRouter(gen)

		rec := postJSON(t, r, "/api/analyze-profile-image", `{"imageBase64": "data:image/jpeg;base64,aGVsbG8="}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	config.JWTSecret = "test-secret"

	protected := api.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := api.GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		utils.RespondJSON(w, http.StatusOK, map[string]string{"user_id": userID})
	}))

	t.Run("valid token passes the user id through", func(t *testing.T) {
		token, err := utils.GenerateToken("user-42")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/wardrobe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user_id": "user-42"}`, rec.Body.String())
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/wardrobe", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/wardrobe", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with a different secret rejected", func(t *testing.T) {
		token, err := utils.GenerateToken("user-42")
		require.NoError(t, err)

		config.JWTSecret = "rotated-secret"
		defer func() { config.JWTSecret = "test-secret" }()

		req := httptest.NewRequest(http.MethodGet, "/api/wardrobe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestStatusForError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    error
		status int
	}{
		{ai.ErrRateLimited, http.StatusTooManyRequests},
		{ai.ErrQuotaExhausted, http.StatusPaymentRequired},
		{ai.ErrMisconfigured, http.StatusInternalServerError},
		{ai.ErrUpstreamUnavailable, http.StatusInternalServerError},
		{bytes.ErrTooLarge, http.StatusInternalServerError},
	}
	for _, c := range cases {
		status, message := utils.StatusForError(c.err)
		assert.Equal(t, c.status, status, "error %v", c.err)
		assert.NotEmpty(t, message)
		assert.NotContains(t, message, c.err.Error())
	}
}
