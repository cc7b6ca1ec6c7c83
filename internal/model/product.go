package model

// Category is the grouping key the catalog uses for products.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryDrinks Category = "drinks"
	CategoryFood   Category = "food"
)

// Categories lists the concrete categories in catalog order.
var Categories = []Category{CategoryDrinks, CategoryFood}

// Product represents an item on the coffee shop menu.
type Product struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       string   `json:"price" yaml:"price"` // display string, symbol placement varies
	Image       string   `json:"image" yaml:"image"`
	Category    Category `json:"category,omitempty" yaml:"category,omitempty"`
}
