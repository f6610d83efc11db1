package models

// DetectedItem is a clothing item found in an uploaded photo.
// X and Y are percentage coordinates (0-100) of the item's visual center,
// used for hotspot placement. A point, not a box.
type DetectedItem struct {
	Label    string  `json:"label"`
	Category string  `json:"category"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Color    string  `json:"color,omitempty"`
	Style    string  `json:"style,omitempty"`
}

// ProductCandidate is a shoppable match for a detected item.
// Price, OriginalPrice and Rating are only set by the generative strategy
// and are synthetic illustrative values, never live retail data.
type ProductCandidate struct {
	Name          string   `json:"name"`
	Store         string   `json:"store"`
	URL           string   `json:"url"`
	Image         string   `json:"image"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}
