package shops

import (
	"net/url"
	"strings"
)

// Store is one retailer the resolver can link to: a display name plus a
// search-URL template. The registry is injected at construction time so tests
// can swap in fixtures.
type Store struct {
	Name      string
	SearchURL func(query string) string
}

// DefaultStores returns the built-in retailer registry.
func DefaultStores() []Store {
	return []Store{
		{Name: "Amazon", SearchURL: func(q string) string {
			return "https://www.amazon.com/s?k=" + url.QueryEscape(q)
		}},
		{Name: "Flipkart", SearchURL: func(q string) string {
			return "https://www.flipkart.com/search?q=" + url.QueryEscape(q)
		}},
		{Name: "Myntra", SearchURL: func(q string) string {
			// Myntra uses slug-style search paths
			return "https://www.myntra.com/" + url.PathEscape(strings.Join(strings.Fields(strings.ToLower(q)), "-"))
		}},
		{Name: "ASOS", SearchURL: func(q string) string {
			return "https://www.asos.com/search/?q=" + url.QueryEscape(q)
		}},
		{Name: "H&M", SearchURL: func(q string) string {
			return "https://www2.hm.com/en_us/search-results.html?q=" + url.QueryEscape(q)
		}},
		{Name: "Zara", SearchURL: func(q string) string {
			return "https://www.zara.com/us/en/search?searchTerm=" + url.QueryEscape(q)
		}},
		{Name: "Nordstrom", SearchURL: func(q string) string {
			return "https://www.nordstrom.com/sr?keyword=" + url.QueryEscape(q)
		}},
		{Name: "SHEIN", SearchURL: func(q string) string {
			return "https://us.shein.com/pdsearch/" + url.PathEscape(q)
		}},
	}
}

// placeholderImage picks a category-matched stock image for a candidate.
func placeholderImage(category string) string {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "top") || strings.Contains(c, "shirt") || strings.Contains(c, "blouse"):
		return "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=300&h=400&fit=crop"
	case strings.Contains(c, "bottom") || strings.Contains(c, "pant") || strings.Contains(c, "jean") || strings.Contains(c, "trouser"):
		return "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=300&h=400&fit=crop"
	case strings.Contains(c, "dress"):
		return "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=300&h=400&fit=crop"
	case strings.Contains(c, "jacket") || strings.Contains(c, "coat") || strings.Contains(c, "outerwear"):
		return "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=300&h=400&fit=crop"
	case strings.Contains(c, "shoe") || strings.Contains(c, "footwear") || strings.Contains(c, "sneaker") || strings.Contains(c, "boot"):
		return "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300&h=400&fit=crop"
	default:
		return "https://images.unsplash.com/photo-1611923134239-b9be5816e23e?w=300&h=400&fit=crop"
	}
}
