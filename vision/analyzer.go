package vision

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/models"
)

const analyzeSystemPrompt = `You are an AI fashion stylist assistant that analyzes photos to determine physical attributes for fashion recommendations. Your primary task is to accurately identify the person's GENDER and other attributes to provide appropriate fashion recommendations.

CRITICAL: Pay close attention to identifying gender correctly:
- Look for facial features: jawline, facial hair, adam's apple
- Consider hairstyle patterns
- Look at clothing style if visible
- Consider overall body structure

You MUST respond with a valid JSON object with these exact fields:
{
  "gender": "male" | "female" | "unspecified",
  "body_type": "slim" | "athletic" | "average" | "curvy" | "plus",
  "skin_tone": "fair" | "light" | "medium" | "olive" | "tan" | "dark",
  "hair_color": "blonde" | "brown" | "black" | "red" | "gray" | "other",
  "hair_style": "short" | "medium" | "long" | "bald",
  "confidence": number between 0 and 100
}

IMPORTANT NOTES:
- Gender detection is CRUCIAL for appropriate fashion recommendations
- If the person appears to be male, set gender to "male"
- If the person appears to be female, set gender to "female"
- Only use "unspecified" if you truly cannot determine
- Be respectful and inclusive in your analysis
- If you cannot determine an attribute clearly, make your best estimation

Only return the JSON object, no other text.`

const analyzeUserPrompt = "Analyze this photo and determine the person's gender, body type, skin tone, hair color, and hair style for personalized fashion recommendations. Pay special attention to correctly identifying gender."

var jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)

// ErrUnreadableAnalysis means the model replied but no analysis object could
// be parsed from it. Unlike detection, this surfaces as an error: there is no
// meaningful empty result for a profile analysis.
var ErrUnreadableAnalysis = errors.New("vision: analysis response unreadable")

// Analyzer derives profile attributes from an uploaded photo.
type Analyzer struct {
	gen ai.Generator
	log zerolog.Logger
}

// NewAnalyzer creates an Analyzer backed by the given vision capability.
func NewAnalyzer(gen ai.Generator, log zerolog.Logger) *Analyzer {
	return &Analyzer{gen: gen, log: log}
}

// AnalyzeProfileImage analyzes an uploaded photo (base64 data URL only) and
// returns the detected profile attributes. Input is validated before any
// upstream call.
func (a *Analyzer) AnalyzeProfileImage(ctx context.Context, imageBase64 string) (*models.ProfileAnalysis, error) {
	if !dataURLRe.MatchString(imageBase64) {
		return nil, ErrInvalidImage
	}
	if len(imageBase64) > maxImagePayload {
		return nil, ErrInvalidImage
	}

	format, data, err := DecodeDataURL(imageBase64)
	if err != nil {
		return nil, err
	}

	content, err := a.gen.GenerateVision(ctx, analyzeSystemPrompt, analyzeUserPrompt, format, data)
	if err != nil {
		return nil, err
	}

	raw := jsonObjectRe.FindString(content)
	if raw == "" {
		a.log.Warn().Msg("no JSON object in analysis reply")
		return nil, ErrUnreadableAnalysis
	}
	var analysis models.ProfileAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		a.log.Warn().Err(err).Msg("unparseable analysis reply")
		return nil, ErrUnreadableAnalysis
	}
	return &analysis, nil
}
