// Package theme defines the default storefront theme: its manifest and the
// typed settings document with compiled-in defaults.
package theme

const (
	// Slug identifies the theme in installed module records and admin routes.
	Slug = "default-theme"

	// Name is the module name used for view namespaces and asset paths.
	Name = "DefaultTheme"

	// LowerName is the lower-case module name.
	LowerName = "defaulttheme"
)

// Assets lists the stylesheets and scripts the theme ships.
type Assets struct {
	CSS []string `json:"css"`
	JS  []string `json:"js"`
}

// Screenshots references preview images relative to the asset root.
type Screenshots struct {
	Preview   string `json:"preview"`
	Thumbnail string `json:"thumbnail"`
}

// Manifest describes the theme to the host platform.
type Manifest struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Version     string      `json:"version"`
	Author      string      `json:"author"`
	Type        string      `json:"type"`
	IsCore      bool        `json:"is_core"`
	Assets      Assets      `json:"assets"`
	Screenshots Screenshots `json:"screenshots"`
}

// DefaultManifest returns the manifest of the default theme.
func DefaultManifest() Manifest {
	return Manifest{
		Name:        Name,
		Slug:        Slug,
		Description: "The default Cartismo storefront theme. Clean, fast, and fully responsive.",
		Version:     "1.0.0",
		Author:      "Cartismo",
		Type:        "themes",
		IsCore:      true,
		Assets: Assets{
			CSS: []string{"css/theme.css"},
			JS:  []string{"js/theme.js"},
		},
		Screenshots: Screenshots{
			Preview:   "images/preview.png",
			Thumbnail: "images/thumbnail.png",
		},
	}
}
