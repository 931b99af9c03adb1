package domain

// CategoryType classifies what kind of products a category holds. Beverage
// categories feed the beverage-sales aggregate on range summaries.
type CategoryType string

const (
	CategoryFood     CategoryType = "food"
	CategoryBeverage CategoryType = "beverage"
	CategoryOther    CategoryType = "other"
)

// Category groups products on the menu.
type Category struct {
	CategoryID  string       `json:"categoryID"` // Primary Key (UUID)
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	AuditFields              // Embed common audit fields
}

// Product is a sellable menu item. Price is in whole rupiah.
type Product struct {
	ProductID   string `json:"productID"` // Primary Key (UUID)
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	IsActive    bool   `json:"isActive"`
	AuditFields        // Embed common audit fields
}
