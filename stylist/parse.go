package stylist

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/styleai-app/styleai-server/models"
)

var (
	fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedRe     = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON pulls the JSON payload out of a model reply that may wrap it in
// a fenced code block or surrounding prose. The result is only a candidate;
// strict validation happens in ParseSuggestion.
func ExtractJSON(content string) string {
	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if start := strings.Index(content, "{"); start >= 0 {
		if end := strings.LastIndex(content, "}"); end > start {
			return content[start : end+1]
		}
	}
	return strings.TrimSpace(content)
}

// ParseSuggestion runs the two-stage parse of a model reply: candidate JSON
// extraction, then strict shape validation. Any failure returns an error so
// the engine can substitute the deterministic fallback.
func ParseSuggestion(content string) (*models.OutfitSuggestion, error) {
	var s models.OutfitSuggestion
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &s); err != nil {
		return nil, fmt.Errorf("unmarshal suggestion: %w", err)
	}
	if err := ValidateSuggestion(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateSuggestion checks the suggestion's shape: every required field
// present and non-empty. Outerwear and accessories may be explicit null.
func ValidateSuggestion(s *models.OutfitSuggestion) error {
	switch {
	case strings.TrimSpace(s.Outfit.Top) == "":
		return errors.New("suggestion missing outfit.top")
	case strings.TrimSpace(s.Outfit.Bottom) == "":
		return errors.New("suggestion missing outfit.bottom")
	case strings.TrimSpace(s.Outfit.Shoes) == "":
		return errors.New("suggestion missing outfit.shoes")
	case strings.TrimSpace(s.Explanation) == "":
		return errors.New("suggestion missing explanation")
	case strings.TrimSpace(s.ColorHarmony) == "":
		return errors.New("suggestion missing color_harmony")
	case len(s.StylingTips) == 0:
		return errors.New("suggestion missing styling_tips")
	}
	for i, tip := range s.StylingTips {
		if strings.TrimSpace(tip) == "" {
			return fmt.Errorf("suggestion has empty styling tip at index %d", i)
		}
	}
	return nil
}
