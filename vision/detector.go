package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/models"
)

const detectSystemPrompt = `You are a fashion AI that detects clothing items in images. Analyze the image and identify all visible clothing items and accessories.

For each item, provide:
- label: The specific name of the item (e.g., "Navy Blue Blazer", "White Sneakers")
- category: The category (Tops, Bottoms, Outerwear, Shoes, Accessories, Bags, Jewelry)
- x: Horizontal position as percentage (0-100) where the item is centered
- y: Vertical position as percentage (0-100) where the item is centered
- color: Primary color of the item
- style: Style description (casual, formal, sporty, etc.)

Return ONLY a valid JSON array of items. Example:
[
  {"label": "Navy Blue Blazer", "category": "Outerwear", "x": 50, "y": 30, "color": "navy", "style": "formal"},
  {"label": "White T-Shirt", "category": "Tops", "x": 50, "y": 45, "color": "white", "style": "casual"}
]

Be precise with positions - consider where items are actually located in the image.`

const detectUserPrompt = "Detect all clothing items and accessories in this image. Return only the JSON array."

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// Detector segments an uploaded photo into labeled clothing hotspots.
// Stateless; one upstream multimodal call per Detect.
type Detector struct {
	gen        ai.Generator
	httpClient *http.Client
	log        zerolog.Logger
}

// NewDetector creates a Detector backed by the given vision capability.
func NewDetector(gen ai.Generator, log zerolog.Logger) *Detector {
	return &Detector{
		gen:        gen,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

// Detect returns zero or more detected items for the image (a data URL or an
// HTTPS URL). Invalid input is rejected with ErrInvalidImage before any
// upstream call. A reply that cannot be parsed yields an empty list, not an
// error: at this layer "could not parse" is indistinguishable from "found
// nothing", which is the documented caller contract.
func (d *Detector) Detect(ctx context.Context, image string) ([]models.DetectedItem, error) {
	if err := ValidateImageInput(image); err != nil {
		return nil, err
	}

	format, data, err := d.imageBytes(ctx, image)
	if err != nil {
		return nil, err
	}

	content, err := d.gen.GenerateVision(ctx, detectSystemPrompt, detectUserPrompt, format, data)
	if err != nil {
		return nil, err
	}

	items := []models.DetectedItem{}
	raw := jsonArrayRe.FindString(content)
	if raw == "" {
		d.log.Warn().Msg("no JSON array in detection reply, returning empty result")
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		d.log.Warn().Err(err).Msg("unparseable detection reply, returning empty result")
		return []models.DetectedItem{}, nil
	}
	return items, nil
}

// imageBytes resolves the image input to raw bytes: data URLs are decoded
// locally, HTTPS URLs are fetched.
func (d *Detector) imageBytes(ctx context.Context, image string) (string, []byte, error) {
	if dataURLRe.MatchString(image) {
		return DecodeDataURL(image)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, image, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: failed to fetch image: %v", ErrInvalidImage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("%w: image fetch returned status %d", ErrInvalidImage, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImagePayload))
	if err != nil {
		return "", nil, fmt.Errorf("%w: reading image body: %v", ErrInvalidImage, err)
	}
	return "jpeg", data, nil
}
