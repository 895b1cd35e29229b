package types

// Profile is a single gutter product from the catalog.
// Profiles are read-only once they leave the catalog provider.
type Profile struct {
	// Description is the product name, e.g. "Quad 115 Hi-Front"; shape
	// filtering matches against it
	Description string `json:"description"`

	// Supplier is the name of the supplier
	Supplier string `json:"supplier"`

	// SupplierCode is the supplier's product code (empty if unknown)
	SupplierCode string `json:"supplier_code,omitempty"`

	Base float64 `json:"base"`
	Face float64 `json:"face"`
	Back float64 `json:"back"`

	// State lists the regions the product is sold in, e.g. "QLD, NSW"
	State string `json:"state"`

	// SellPrice is the retail price including GST (nil if price on application)
	SellPrice *float64 `json:"sell_price,omitempty"`

	// BuyPrice is the wholesale price including GST. Visibility is decided
	// by the presentation layer.
	BuyPrice *float64 `json:"buy_price,omitempty"`

	// SpecURL links to the product spec sheet
	SpecURL string `json:"spec_url,omitempty"`

	// ImagePath is a local path to a product image
	ImagePath string `json:"image_path,omitempty"`

	// Source identifies the catalog file the profile was loaded from
	Source string `json:"-"`
}

// Category returns the text used for shape filtering
func (p *Profile) Category() string {
	return p.Description
}

// Dimensions returns the profile's dimensions as a Measurement
func (p *Profile) Dimensions() Measurement {
	return Measurement{Base: p.Base, Face: p.Face, Back: p.Back}
}

// HasSellPrice reports whether the profile has a sell price
func (p *Profile) HasSellPrice() bool {
	return p.SellPrice != nil
}
