package domain

// PlaceholderImage is served when a product carries no images.
const PlaceholderImage = "/api/placeholder/800/500"

// Product represents a product in the catalog
type Product struct {
	ID          int      `json:"id" db:"id"`
	Brand       string   `json:"brand" db:"brand"`
	Title       string   `json:"title" db:"title"`
	Price       string   `json:"price" db:"price"`
	OldPrice    string   `json:"old_price,omitempty" db:"old_price"`
	Description string   `json:"description" db:"description"`
	Colors      []string `json:"colors" db:"colors"`
	Sizes       []string `json:"sizes" db:"sizes"`
	Images      []string `json:"images" db:"images"`
	Badge       *Badge   `json:"badge,omitempty" db:"badge"`
	Category    string   `json:"category" db:"category"`
	Featured    bool     `json:"featured" db:"featured"`
	TopSeller   bool     `json:"top_seller" db:"top_seller"`
	Tags        []string `json:"tags,omitempty" db:"tags"`
}

// Badge is a promotional label shown on a product card
type Badge struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// PrimaryImage returns the thumbnail reference, falling back to the placeholder.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return PlaceholderImage
	}
	return p.Images[0]
}

// HasOldPrice reports whether the product carries a pre-discount reference price.
func (p Product) HasOldPrice() bool {
	return p.OldPrice != ""
}

// Clone returns a deep copy so callers can never alias repository state.
func (p Product) Clone() Product {
	c := p
	c.Colors = cloneStrings(p.Colors)
	c.Sizes = cloneStrings(p.Sizes)
	c.Images = cloneStrings(p.Images)
	c.Tags = cloneStrings(p.Tags)
	if p.Badge != nil {
		b := *p.Badge
		c.Badge = &b
	}
	return c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
