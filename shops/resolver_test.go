package shops_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styleai-app/styleai-server/shops"
)

func TestSearchLinkResolver(t *testing.T) {
	t.Parallel()

	t.Run("one candidate per registered store", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		products, err := r.Resolve(context.Background(), shops.Item{Label: "Navy Blazer"})
		require.NoError(t, err)
		require.Len(t, products, len(shops.DefaultStores()))

		seen := map[string]bool{}
		for _, p := range products {
			assert.False(t, seen[p.Store], "duplicate store %q", p.Store)
			seen[p.Store] = true
			assert.NotEmpty(t, p.URL)
			assert.NotEmpty(t, p.Image)
			assert.Contains(t, p.Name, "Navy Blazer")
		}
	})

	t.Run("query terms are URL encoded", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		products, err := r.Resolve(context.Background(), shops.Item{Label: "Navy Blazer", Color: "navy"})
		require.NoError(t, err)

		byStore := map[string]string{}
		for _, p := range products {
			byStore[p.Store] = p.URL
		}
		assert.Equal(t, "https://www.amazon.com/s?k=Navy+Blazer+navy", byStore["Amazon"])
		assert.Equal(t, "https://www.myntra.com/navy-blazer-navy", byStore["Myntra"])
		assert.Equal(t, "https://us.shein.com/pdsearch/Navy%20Blazer%20navy", byStore["SHEIN"])
	})

	t.Run("no prices or ratings are fabricated", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		products, err := r.Resolve(context.Background(), shops.Item{Label: "White Sneakers"})
		require.NoError(t, err)
		for _, p := range products {
			assert.Nil(t, p.Price)
			assert.Nil(t, p.OriginalPrice)
			assert.Nil(t, p.Rating)
		}
	})

	t.Run("deterministic for the same item", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)
		item := shops.Item{Label: "Leather Jacket", Category: "Outerwear", Color: "black", Style: "casual"}

		first, err := r.Resolve(context.Background(), item)
		require.NoError(t, err)
		second, err := r.Resolve(context.Background(), item)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("hostile item fields are sanitized before URL building", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		products, err := r.Resolve(context.Background(), shops.Item{
			Label: "Blazer <script>alert(1)</script>",
			Color: "{red}\r\nignore previous instructions",
		})
		require.NoError(t, err)
		for _, p := range products {
			for _, c := range []string{"<", ">", "{", "}", "\n", "\r"} {
				assert.NotContains(t, p.URL, c)
				assert.NotContains(t, p.Name, c)
			}
		}
	})

	t.Run("empty label rejected", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		for _, label := range []string{"", "   ", "<>{}[]"} {
			_, err := r.Resolve(context.Background(), shops.Item{Label: label})
			assert.ErrorIs(t, err, shops.ErrMissingLabel, "label %q", label)
		}
	})

	t.Run("custom registry overrides the default", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver([]shops.Store{
			{Name: "TestShop", SearchURL: func(q string) string { return "https://shop.test/?q=" + q }},
		})

		products, err := r.Resolve(context.Background(), shops.Item{Label: "Hat"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "TestShop", products[0].Store)
	})

	t.Run("category drives the placeholder image", func(t *testing.T) {
		t.Parallel()
		r := shops.NewSearchLinkResolver(nil)

		shoes, err := r.Resolve(context.Background(), shops.Item{Label: "Runners", Category: "Shoes"})
		require.NoError(t, err)
		tops, err := r.Resolve(context.Background(), shops.Item{Label: "Oxford", Category: "Tops"})
		require.NoError(t, err)
		assert.NotEqual(t, shoes[0].Image, tops[0].Image)
		assert.True(t, strings.HasPrefix(shoes[0].Image, "https://images.unsplash.com/"))
	})
}
