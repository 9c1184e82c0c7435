package theme

// Layout controls the page chrome.
type Layout struct {
	HeaderStyle     string `json:"header_style"     validate:"oneof=default centered minimal"`
	FooterStyle     string `json:"footer_style"     validate:"oneof=default minimal expanded"`
	SidebarPosition string `json:"sidebar_position" validate:"oneof=left right none"`
	ContainerWidth  string `json:"container_width"  validate:"oneof=default wide full"`
}

// Colors are CSS hex colors exposed as custom properties.
type Colors struct {
	Primary   string `json:"primary"   validate:"hexcolor"`
	Secondary string `json:"secondary" validate:"hexcolor"`
	Accent    string `json:"accent"    validate:"hexcolor"`
	Success   string `json:"success"   validate:"hexcolor"`
	Warning   string `json:"warning"   validate:"hexcolor"`
	Danger    string `json:"danger"    validate:"hexcolor"`
	Info      string `json:"info"      validate:"hexcolor"`
}

// Typography sets the font stacks.
type Typography struct {
	FontFamily        string `json:"font_family"         validate:"required,max=100"`
	FontSizeBase      string `json:"font_size_base"      validate:"required,fontsize"`
	HeadingFontFamily string `json:"heading_font_family" validate:"required,max=100"`
}

// Homepage toggles the homepage sections.
type Homepage struct {
	ShowSlider             bool `json:"show_slider"`
	ShowFeaturedCategories bool `json:"show_featured_categories"`
	ShowFeaturedProducts   bool `json:"show_featured_products"`
	ShowNewArrivals        bool `json:"show_new_arrivals"`
	ShowBestsellers        bool `json:"show_bestsellers"`
	ShowBrands             bool `json:"show_brands"`
	ShowNewsletter         bool `json:"show_newsletter"`
	ProductsPerRow         int  `json:"products_per_row"        validate:"min=1,max=6"`
	FeaturedProductsLimit  int  `json:"featured_products_limit" validate:"min=1,max=48"`
}

// ProductListing configures category and search result pages.
type ProductListing struct {
	DefaultView     string `json:"default_view"      validate:"oneof=grid list"`
	ProductsPerPage int    `json:"products_per_page" validate:"min=1,max=96"`
	ShowFilters     bool   `json:"show_filters"`
	ShowSorting     bool   `json:"show_sorting"`
	ShowCompare     bool   `json:"show_compare"`
	ShowWishlist    bool   `json:"show_wishlist"`
	ShowQuickView   bool   `json:"show_quick_view"`
}

// ProductPage configures the product detail page.
type ProductPage struct {
	GalleryStyle         string `json:"gallery_style"          validate:"oneof=thumbnails dots vertical"`
	ShowRelatedProducts  bool   `json:"show_related_products"`
	ShowReviews          bool   `json:"show_reviews"`
	ShowStockStatus      bool   `json:"show_stock_status"`
	ShowSKU              bool   `json:"show_sku"`
	ShowSocialShare      bool   `json:"show_social_share"`
	RelatedProductsLimit int    `json:"related_products_limit" validate:"min=1,max=24"`
}

// Cart configures the mini cart and cart page.
type Cart struct {
	ShowMiniCart           bool   `json:"show_mini_cart"`
	MiniCartStyle          string `json:"mini_cart_style" validate:"oneof=dropdown sidebar"`
	ShowCartTotals         bool   `json:"show_cart_totals"`
	ShowShippingCalculator bool   `json:"show_shipping_calculator"`
}

// Header toggles header widgets.
type Header struct {
	ShowTopBar         bool `json:"show_top_bar"`
	ShowSearch         bool `json:"show_search"`
	ShowAccount        bool `json:"show_account"`
	ShowWishlist       bool `json:"show_wishlist"`
	ShowCart           bool `json:"show_cart"`
	StickyHeader       bool `json:"sticky_header"`
	ShowCategoriesMenu bool `json:"show_categories_menu"`
}

// Footer toggles footer widgets.
type Footer struct {
	ShowNewsletter   bool `json:"show_newsletter"`
	ShowSocialLinks  bool `json:"show_social_links"`
	ShowPaymentIcons bool `json:"show_payment_icons"`
	Columns          int  `json:"columns" validate:"min=1,max=6"`
}

// Settings is the theme settings document. JSON names are the keys
// administrators send and the storefront templates read.
type Settings struct {
	Layout         Layout         `json:"layout"`
	Colors         Colors         `json:"colors"`
	Typography     Typography     `json:"typography"`
	Homepage       Homepage       `json:"homepage"`
	ProductListing ProductListing `json:"product_listing"`
	ProductPage    ProductPage    `json:"product_page"`
	Cart           Cart           `json:"cart"`
	Header         Header         `json:"header"`
	Footer         Footer         `json:"footer"`
}

// Defaults returns the compiled-in settings. Every call returns a fresh value.
func Defaults() Settings {
	return Settings{
		Layout: Layout{
			HeaderStyle:     "default",
			FooterStyle:     "default",
			SidebarPosition: "left",
			ContainerWidth:  "default",
		},
		Colors: Colors{
			Primary:   "#4F46E5", // indigo
			Secondary: "#6B7280", // gray
			Accent:    "#F59E0B", // amber
			Success:   "#10B981", // emerald
			Warning:   "#F59E0B", // amber
			Danger:    "#EF4444", // red
			Info:      "#3B82F6", // blue
		},
		Typography: Typography{
			FontFamily:        "Inter",
			FontSizeBase:      "16px",
			HeadingFontFamily: "Inter",
		},
		Homepage: Homepage{
			ShowSlider:             true,
			ShowFeaturedCategories: true,
			ShowFeaturedProducts:   true,
			ShowNewArrivals:        true,
			ShowBestsellers:        true,
			ShowBrands:             true,
			ShowNewsletter:         true,
			ProductsPerRow:         4,
			FeaturedProductsLimit:  8,
		},
		ProductListing: ProductListing{
			DefaultView:     "grid",
			ProductsPerPage: 12,
			ShowFilters:     true,
			ShowSorting:     true,
			ShowCompare:     true,
			ShowWishlist:    true,
			ShowQuickView:   true,
		},
		ProductPage: ProductPage{
			GalleryStyle:         "thumbnails",
			ShowRelatedProducts:  true,
			ShowReviews:          true,
			ShowStockStatus:      true,
			ShowSKU:              true,
			ShowSocialShare:      true,
			RelatedProductsLimit: 4,
		},
		Cart: Cart{
			ShowMiniCart:           true,
			MiniCartStyle:          "dropdown",
			ShowCartTotals:         true,
			ShowShippingCalculator: true,
		},
		Header: Header{
			ShowTopBar:         true,
			ShowSearch:         true,
			ShowAccount:        true,
			ShowWishlist:       true,
			ShowCart:           true,
			StickyHeader:       true,
			ShowCategoriesMenu: true,
		},
		Footer: Footer{
			ShowNewsletter:   true,
			ShowSocialLinks:  true,
			ShowPaymentIcons: true,
			Columns:          4,
		},
	}
}
