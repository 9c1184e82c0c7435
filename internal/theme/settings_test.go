package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Struct(Defaults()))
}

func TestDefaultsJSONKeys(t *testing.T) {
	raw, err := json.Marshal(Defaults())
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Len(t, doc, 9)
	assert.Equal(t, "default", doc["layout"]["header_style"])
	assert.Equal(t, "#4F46E5", doc["colors"]["primary"])
	assert.InDelta(t, 4, doc["homepage"]["products_per_row"], 0)
	assert.Equal(t, "thumbnails", doc["product_page"]["gallery_style"])
	assert.Equal(t, true, doc["product_page"]["show_sku"])
	assert.InDelta(t, 4, doc["footer"]["columns"], 0)
}

func TestDefaultsReturnsFreshValue(t *testing.T) {
	a := Defaults()
	a.Homepage.ProductsPerRow = 1

	assert.Equal(t, 4, Defaults().Homepage.ProductsPerRow)
}

func TestValidatorRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
		field  string
	}{
		{
			name:   "header style not in enum",
			mutate: func(s *Settings) { s.Layout.HeaderStyle = "fancy" },
			field:  "header_style",
		},
		{
			name:   "color not hex",
			mutate: func(s *Settings) { s.Colors.Primary = "indigo" },
			field:  "primary",
		},
		{
			name:   "products per row zero",
			mutate: func(s *Settings) { s.Homepage.ProductsPerRow = 0 },
			field:  "products_per_row",
		},
		{
			name:   "font size without unit",
			mutate: func(s *Settings) { s.Typography.FontSizeBase = "16" },
			field:  "font_size_base",
		},
		{
			name:   "mini cart style unknown",
			mutate: func(s *Settings) { s.Cart.MiniCartStyle = "popup" },
			field:  "mini_cart_style",
		},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)

			err := v.Struct(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()

	assert.Equal(t, Slug, m.Slug)
	assert.Equal(t, "themes", m.Type)
	assert.True(t, m.IsCore)
	assert.Equal(t, []string{"css/theme.css"}, m.Assets.CSS)
	assert.Equal(t, []string{"js/theme.js"}, m.Assets.JS)
}
