package stylist

import (
	"fmt"
	"strings"

	"github.com/styleai-app/styleai-server/models"
)

const (
	maxWardrobeItems   = 50
	maxPreferredColors = 10

	emptyWardrobeDescription = "No items in wardrobe yet"
	emptyProfileDescription  = "No profile information available"
)

// NormalizedInput is the bounded, sanitized view of a profile and wardrobe
// that the recommendation prompts are built from.
type NormalizedInput struct {
	Gender              string // male, female or unspecified
	ProfileDescription  string
	WardrobeDescription string
	GenderContext       string
	HasWardrobe         bool
}

// GenderOf returns the caller's gender coerced to the three-way enum.
// Anything other than male or female maps to unspecified; no guessing.
func GenderOf(profile *models.Profile) string {
	if profile == nil {
		return "unspecified"
	}
	switch g := Sanitize(profile.Gender, 20); g {
	case "male", "female":
		return g
	default:
		return "unspecified"
	}
}

// Normalize converts the caller's profile and wardrobe into the sanitized
// descriptions embedded in the recommendation prompts. The wardrobe is capped
// at maxWardrobeItems; excess items are silently ignored, not deleted.
func Normalize(profile *models.Profile, wardrobe []models.WardrobeItem) NormalizedInput {
	gender := GenderOf(profile)

	profileDescription := emptyProfileDescription
	if profile != nil {
		colors := profile.PreferredColors
		if len(colors) > maxPreferredColors {
			colors = colors[:maxPreferredColors]
		}
		var cleanColors []string
		for _, c := range colors {
			if s := Sanitize(c, 20); s != "" {
				cleanColors = append(cleanColors, s)
			}
		}

		profileDescription = fmt.Sprintf(
			"Gender: %s, Body type: %s, Skin tone: %s, Hair color: %s, Hair style: %s, Style preference: %s, Preferred colors: %s",
			gender,
			orNotSpecified(Sanitize(profile.BodyType, 30)),
			orNotSpecified(Sanitize(profile.SkinTone, 30)),
			orNotSpecified(Sanitize(profile.HairColor, 30)),
			orNotSpecified(Sanitize(profile.HairStyle, 30)),
			orNotSpecified(Sanitize(profile.StylePreference, 50)),
			orNotSpecified(strings.Join(cleanColors, ", ")),
		)
	}

	if len(wardrobe) > maxWardrobeItems {
		wardrobe = wardrobe[:maxWardrobeItems]
	}
	var pieces []string
	for _, item := range wardrobe {
		color := Sanitize(item.Color, 30)
		category := Sanitize(item.Category, 30)
		name := Sanitize(item.Name, 50)
		pieces = append(pieces, fmt.Sprintf("%s %s (%s)", color, category, name))
	}

	wardrobeDescription := emptyWardrobeDescription
	hasWardrobe := len(pieces) > 0
	if hasWardrobe {
		wardrobeDescription = strings.Join(pieces, ", ")
	}

	return NormalizedInput{
		Gender:              gender,
		ProfileDescription:  profileDescription,
		WardrobeDescription: wardrobeDescription,
		GenderContext:       genderContextFor(gender),
		HasWardrobe:         hasWardrobe,
	}
}

// genderContextFor yields the natural-language constraint that keeps the
// generated outfit gender-consistent. The asymmetry between the male and
// female instructions is intentional.
func genderContextFor(gender string) string {
	switch gender {
	case "male":
		return "The user is MALE. Suggest masculine clothing items like: men's shirts, trousers, suits, blazers, jeans, t-shirts, polo shirts, chinos, leather jackets, etc. Do NOT suggest feminine items or feminine-exclusive garments."
	case "female":
		return "The user is FEMALE. Suggest feminine clothing items like: dresses, skirts, blouses, women's jeans, heels, flats, cardigans, etc."
	default:
		return "Gender not specified. Suggest gender-neutral or versatile clothing items."
	}
}

func orNotSpecified(s string) string {
	if s == "" {
		return "not specified"
	}
	return s
}
