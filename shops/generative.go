package shops

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/styleai-app/styleai-server/ai"
	"github.com/styleai-app/styleai-server/models"
)

const generativeProductCount = 4

const generativeSystemPrompt = `You are a fashion shopping assistant. Given a clothing item, suggest plausible matching products a shopper could buy.

Respond ONLY with a JSON array of exactly %d products in this format:
[
  {"name": "product name", "store": "retailer name", "price": 49.99, "originalPrice": 69.99, "rating": 4.5}
]

Rules:
- store must be one of: Amazon, Flipkart, Myntra, ASOS, H&M, Zara, Nordstrom, SHEIN
- price and originalPrice are USD numbers, rating is 0-5
- No text outside the JSON array.`

var productArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// GenerativeResolver asks the text capability for plausible product listings.
// The prices and ratings it returns are synthetic illustrative values invented
// by the model, never live retail data; they are passed through unchanged and
// the client is expected to present them as estimates.
type GenerativeResolver struct {
	gen    ai.Generator
	stores []Store
	log    zerolog.Logger
}

// NewGenerativeResolver creates the generative resolver. The store registry is
// used to attach a real search URL to each generated listing.
func NewGenerativeResolver(gen ai.Generator, stores []Store, log zerolog.Logger) *GenerativeResolver {
	if len(stores) == 0 {
		stores = DefaultStores()
	}
	return &GenerativeResolver{gen: gen, stores: stores, log: log}
}

type generatedProduct struct {
	Name          string  `json:"name"`
	Store         string  `json:"store"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
}

// Resolve makes one upstream text call and parses the reply. A reply that
// cannot be parsed yields an empty list, same policy as clothing detection.
func (r *GenerativeResolver) Resolve(ctx context.Context, item Item) ([]models.ProductCandidate, error) {
	clean := sanitizeItem(item)
	if clean.Label == "" {
		return nil, ErrMissingLabel
	}

	user := fmt.Sprintf("Suggest products matching: %s", searchQuery(clean))
	if clean.Category != "" {
		user += fmt.Sprintf(" (category: %s)", clean.Category)
	}

	content, err := r.gen.GenerateText(ctx, fmt.Sprintf(generativeSystemPrompt, generativeProductCount), user)
	if err != nil {
		return nil, err
	}

	products := []models.ProductCandidate{}
	raw := productArrayRe.FindString(content)
	if raw == "" {
		r.log.Warn().Msg("no JSON array in product reply, returning empty result")
		return products, nil
	}
	var generated []generatedProduct
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		r.log.Warn().Err(err).Msg("unparseable product reply, returning empty result")
		return products, nil
	}

	query := searchQuery(clean)
	for _, g := range generated {
		if g.Name == "" {
			continue
		}
		price, originalPrice, rating := g.Price, g.OriginalPrice, g.Rating
		products = append(products, models.ProductCandidate{
			Name:          g.Name,
			Store:         g.Store,
			URL:           r.storeSearchURL(g.Store, query),
			Image:         placeholderImage(clean.Category),
			Price:         &price,
			OriginalPrice: &originalPrice,
			Rating:        &rating,
		})
	}
	return products, nil
}

// storeSearchURL finds the named store in the registry, falling back to the
// first registered store when the model invents an unknown retailer.
func (r *GenerativeResolver) storeSearchURL(name, query string) string {
	for _, store := range r.stores {
		if store.Name == name {
			return store.SearchURL(query)
		}
	}
	return r.stores[0].SearchURL(query)
}
