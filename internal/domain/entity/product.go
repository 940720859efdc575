// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// LocalizedText is a bilingual value pair. English is the default locale,
// Amharic the secondary one.
type LocalizedText struct {
	En string `json:"en"` // English text.
	Am string `json:"am"` // Amharic text.
}

// Product is a catalog entry for a traditional garment.
type Product struct {
	ID          string        `json:"id"`          // Stable unique identifier, immutable once created.
	Name        LocalizedText `json:"name"`        // Display name in both locales.
	Description LocalizedText `json:"description"` // Long description in both locales.
	Price       int           `json:"price"`       // Price in whole birr, always positive.
	Image       string        `json:"image"`       // Image URI.
	Category    Category      `json:"category"`    // Catalog section.
	Sizes       []string      `json:"sizes"`       // Available sizes, ordered; non-empty for purchasable items.
	Colors      []string      `json:"colors"`      // Available colors, ordered.
	IsFeatured  bool          `json:"isFeatured"`  // Shown on the home page masterpiece section.
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

// HasColor reports whether the product is offered in the given color.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}

	return false
}
