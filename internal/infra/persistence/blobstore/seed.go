package blobstore

import "suq/internal/domain/entity"

// initialCatalog is the fixed catalog persisted on first run, before the
// admin has created anything.
func initialCatalog() []*entity.Product {
	return []*entity.Product{
		{
			ID: "wollo-01",
			Name: entity.LocalizedText{
				En: "Wollo Kemis - Traditional Chic",
				Am: "የወሎ ባህል ቀሚስ",
			},
			Description: entity.LocalizedText{
				En: "Authentic Wollo embroidery featuring the iconic colorful Tilet patterns on premium hand-spun cotton.",
				Am: "በጥጥ የተሰራ የወሎ ባህል ቀሚስ በደማቅ ጥበብ የተሸለመ።",
			},
			Price:      8500,
			Image:      "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=1000&auto=format&fit=crop",
			Category:   entity.CategoryWomen,
			Sizes:      []string{"S", "M", "L"},
			Colors:     []string{"White", "Cream"},
			IsFeatured: true,
		},
		{
			ID: "gondar-01",
			Name: entity.LocalizedText{
				En: "Gondar Royal Kemis",
				Am: "የጎንደር ባህል ቀሚስ",
			},
			Description: entity.LocalizedText{
				En: "Inspired by the royalty of Gondar, this dress features thick, elegant embroidery patterns.",
				Am: "የጎንደር ነገስታት የሚለብሱት አይነት ጥበብ ያለው ቀሚስ።",
			},
			Price:      12000,
			Image:      "https://images.unsplash.com/photo-1518770660439-4636190af475?q=80&w=1000&auto=format&fit=crop",
			Category:   entity.CategoryWomen,
			Sizes:      []string{"M", "L", "XL"},
			Colors:     []string{"White"},
			IsFeatured: true,
		},
	}
}
