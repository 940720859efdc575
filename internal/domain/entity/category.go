// Package entity contains the core business objects of the project.
package entity

// Category represents a catalog section.
type Category string

const (
	// CategoryMen is the men's clothing section.
	CategoryMen Category = "Men"
	// CategoryWomen is the women's clothing section.
	CategoryWomen Category = "Women"
	// CategoryKids is the kids' clothing section.
	CategoryKids Category = "Kids"
	// CategoryAccessories is the accessories section.
	CategoryAccessories Category = "Accessories"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories:
		return true
	default:
		return false
	}
}
