package stylist

import "github.com/styleai-app/styleai-server/models"

// FallbackSuggestion returns the deterministic outfit used when the model's
// reply cannot be validated. One fixed, schema-valid look per gender, so the
// recommendation flow always yields a usable result.
func FallbackSuggestion(gender string) *models.OutfitSuggestion {
	switch gender {
	case "male":
		return &models.OutfitSuggestion{
			Outfit: models.Outfit{
				Top:         "Classic white button-down shirt",
				Bottom:      "Navy blue chinos",
				Outerwear:   nil,
				Shoes:       "Brown leather loafers",
				Accessories: strPtr("Simple leather watch"),
			},
			Explanation: "A timeless combination that works for most occasions.",
			StylingTips: []string{
				"Keep accessories minimal",
				"Ensure proper fit",
				"Iron clothes for a crisp look",
			},
			ColorHarmony: "Navy and white is a classic pairing that suits most skin tones.",
			ImagePrompt:  "Fashion flat lay photography of a complete men's outfit: white button-down shirt, navy blue chinos, brown leather loafers, arranged elegantly on a neutral background",
		}
	case "female":
		return &models.OutfitSuggestion{
			Outfit: models.Outfit{
				Top:         "Elegant white blouse",
				Bottom:      "High-waisted navy trousers",
				Outerwear:   nil,
				Shoes:       "Nude pointed-toe heels",
				Accessories: strPtr("Gold pendant necklace"),
			},
			Explanation: "A timeless combination that works for most occasions.",
			StylingTips: []string{
				"Keep accessories minimal",
				"Ensure proper fit",
				"Iron clothes for a crisp look",
			},
			ColorHarmony: "Navy and white is a classic pairing that suits most skin tones.",
			ImagePrompt:  "Fashion flat lay photography of a complete women's outfit: white blouse, navy trousers, nude heels, arranged elegantly on a neutral background",
		}
	default:
		return &models.OutfitSuggestion{
			Outfit: models.Outfit{
				Top:         "Crisp white crew-neck t-shirt",
				Bottom:      "Straight-leg dark-wash jeans",
				Outerwear:   nil,
				Shoes:       "Clean white low-top sneakers",
				Accessories: strPtr("Minimal silver watch"),
			},
			Explanation: "A versatile gender-neutral look that works for most occasions.",
			StylingTips: []string{
				"Keep accessories minimal",
				"Ensure proper fit",
				"Choose well-fitting basics in neutral tones",
			},
			ColorHarmony: "White and dark denim is a balanced pairing that suits most skin tones.",
			ImagePrompt:  "Fashion flat lay photography of a complete outfit: white crew-neck t-shirt, dark-wash jeans, white sneakers, arranged elegantly on a neutral background",
		}
	}
}

func strPtr(s string) *string { return &s }
