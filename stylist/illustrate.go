package stylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/styleai-app/styleai-server/models"
)

// Illustrate generates a flat-lay image for an already-validated suggestion.
// Best effort: any failure returns the empty string and the suggestion stays
// valid, so illustration can never invalidate a recommendation.
func (e *Engine) Illustrate(ctx context.Context, suggestion *models.OutfitSuggestion, occasion, gender string) string {
	if suggestion == nil {
		return ""
	}

	occ := Sanitize(occasion, 50)
	if occ == "" {
		occ = defaultOccasion
	}

	prompt := suggestion.ImagePrompt
	if prompt == "" {
		prompt = flatLayPrompt(suggestion, occ, gender)
	}

	word := genderWord(gender)
	if word == "" {
		word = "gender-neutral"
	}
	full := fmt.Sprintf("Generate a high-quality fashion flat lay image: %s. Make it look like a professional fashion magazine photoshoot with clean styling. This is %s clothing.", prompt, word)

	image, err := e.gen.GenerateImage(ctx, full)
	if err != nil {
		e.log.Warn().Err(err).Msg("outfit illustration failed, continuing without image")
		return ""
	}
	return image
}

// flatLayPrompt deterministically assembles an image prompt from the outfit
// components, used when the model did not supply its own image_prompt.
func flatLayPrompt(suggestion *models.OutfitSuggestion, occasion, gender string) string {
	pieces := []string{
		suggestion.Outfit.Top,
		suggestion.Outfit.Bottom,
		suggestion.Outfit.Shoes,
	}
	if suggestion.Outfit.Outerwear != nil && *suggestion.Outfit.Outerwear != "" {
		pieces = append(pieces, *suggestion.Outfit.Outerwear)
	}
	if suggestion.Outfit.Accessories != nil && *suggestion.Outfit.Accessories != "" {
		pieces = append(pieces, *suggestion.Outfit.Accessories)
	}

	return fmt.Sprintf("Fashion photography flat lay of a complete %s %s outfit: %s, styled professionally on a clean background, high-end fashion editorial style",
		genderWord(gender), occasion, strings.Join(pieces, ", "))
}
