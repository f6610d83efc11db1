package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/styleai-app/styleai-server/models"
	"github.com/styleai-app/styleai-server/stylist"
)

// Item is the detected or manually selected garment to shop for.
type Item struct {
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
	Style    string `json:"style,omitempty"`
}

// ErrMissingLabel means the item had no usable label after sanitization.
var ErrMissingLabel = errors.New("shops: item label is required")

// Resolver produces ranked purchase candidates for an item. Two strategies
// implement it: SearchLinkResolver (the default) and GenerativeResolver.
type Resolver interface {
	Resolve(ctx context.Context, item Item) ([]models.ProductCandidate, error)
}

// SearchLinkResolver builds one templated search link per registered store.
// Fully deterministic and idempotent: the same item always yields the same
// URLs, and no price or rating data is fabricated.
type SearchLinkResolver struct {
	stores []Store
}

// NewSearchLinkResolver creates the deterministic resolver. A nil or empty
// store list falls back to the built-in registry.
func NewSearchLinkResolver(stores []Store) *SearchLinkResolver {
	if len(stores) == 0 {
		stores = DefaultStores()
	}
	return &SearchLinkResolver{stores: stores}
}

func (r *SearchLinkResolver) Resolve(_ context.Context, item Item) ([]models.ProductCandidate, error) {
	clean := sanitizeItem(item)
	if clean.Label == "" {
		return nil, ErrMissingLabel
	}

	query := searchQuery(clean)
	products := make([]models.ProductCandidate, 0, len(r.stores))
	for _, store := range r.stores {
		products = append(products, models.ProductCandidate{
			Name:  fmt.Sprintf("%s on %s", clean.Label, store.Name),
			Store: store.Name,
			URL:   store.SearchURL(query),
			Image: placeholderImage(clean.Category),
		})
	}
	return products, nil
}

// sanitizeItem strips control and bracket characters from every field before
// it reaches a URL or prompt. Query-string encoding alone is not enough.
func sanitizeItem(item Item) Item {
	return Item{
		Label:    stylist.Sanitize(item.Label, 80),
		Category: stylist.Sanitize(item.Category, 40),
		Color:    stylist.Sanitize(item.Color, 30),
		Style:    stylist.Sanitize(item.Style, 30),
	}
}

func searchQuery(item Item) string {
	terms := []string{item.Label}
	if item.Color != "" {
		terms = append(terms, item.Color)
	}
	if item.Style != "" {
		terms = append(terms, item.Style)
	}
	return strings.Join(terms, " ")
}
