package stylist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/models"
)

const defaultOccasion = "casual everyday"

// Engine produces structured outfit recommendations. It is stateless and safe
// for concurrent use; each Recommend call makes exactly one upstream text call.
type Engine struct {
	gen ai.Generator
	log zerolog.Logger
}

// NewEngine creates an Engine backed by the given generation capability.
func NewEngine(gen ai.Generator, log zerolog.Logger) *Engine {
	return &Engine{gen: gen, log: log}
}

// Recommend builds a gender-aware prompt pair from the sanitized inputs,
// invokes the text capability once and returns a schema-valid suggestion.
// Transport failures surface as ai package errors; a malformed model reply is
// absorbed by the deterministic fallback and never reaches the caller as an
// error. OutfitImage is left unset; Illustrate populates it separately.
func (e *Engine) Recommend(ctx context.Context, profile *models.Profile, wardrobe []models.WardrobeItem, occasion string) (*models.OutfitSuggestion, error) {
	occ := Sanitize(occasion, 50)
	if occ == "" {
		occ = defaultOccasion
	}

	input := Normalize(profile, wardrobe)

	content, err := e.gen.GenerateText(ctx, systemPrompt(input), userPrompt(occ, input))
	if err != nil {
		return nil, err
	}

	suggestion, perr := ParseSuggestion(content)
	if perr != nil {
		e.log.Warn().Err(perr).Str("gender", input.Gender).
			Msg("model reply failed suggestion validation, using fallback outfit")
		suggestion = FallbackSuggestion(input.Gender)
	}
	return suggestion, nil
}

func systemPrompt(input NormalizedInput) string {
	return fmt.Sprintf(`You are StyleAI, an expert fashion stylist AI. Your role is to suggest perfect outfit combinations based on the user's profile, wardrobe, and occasion.

CRITICAL INSTRUCTION - GENDER-APPROPRIATE OUTFITS:
%s

Always respond with a JSON object in this exact format:
{
  "outfit": {
    "top": "specific description with color and style",
    "bottom": "specific description with color and style",
    "outerwear": "description or null if not needed",
    "shoes": "specific description with color and style",
    "accessories": "description or null"
  },
  "explanation": "Brief friendly explanation of why this outfit works",
  "styling_tips": ["tip 1", "tip 2", "tip 3"],
  "color_harmony": "explanation of color coordination",
  "image_prompt": "A detailed fashion photography prompt describing a complete outfit for a %s: [describe the full outfit with all colors, textures, and style details]"
}

IMPORTANT: Make sure ALL clothing items are appropriate for the user's gender. Do not suggest gender-inappropriate categories.`,
		input.GenderContext, genderNoun(input.Gender))
}

func userPrompt(occasion string, input NormalizedInput) string {
	policy := "Suggest items I should consider purchasing."
	if input.HasWardrobe {
		policy = "Prioritize items from my wardrobe when possible."
	}
	return fmt.Sprintf(`Please suggest an outfit for: %s

USER PROFILE: %s
WARDROBE: %s

%s

Remember: Suggest %s clothing items only.`,
		occasion, input.ProfileDescription, input.WardrobeDescription, policy, genderVocabulary(input.Gender))
}

func genderNoun(gender string) string {
	switch gender {
	case "male":
		return "man"
	case "female":
		return "woman"
	default:
		return "person"
	}
}

// genderWord is the possessive form used in image prompts ("men's outfit").
func genderWord(gender string) string {
	switch gender {
	case "male":
		return "men's"
	case "female":
		return "women's"
	default:
		return ""
	}
}

func genderVocabulary(gender string) string {
	switch gender {
	case "male":
		return "MEN'S"
	case "female":
		return "WOMEN'S"
	default:
		return "gender-neutral"
	}
}
