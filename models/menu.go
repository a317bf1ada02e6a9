package models

// RawMenuCategory is one entry of a restaurant's embedded menuCategories
// array: a category name plus its items in display order.
type RawMenuCategory struct {
	Name  string        `json:"name" bson:"name"`
	Items []RawMenuItem `json:"items" bson:"items"`
}

// RawMenuItem is a menu item as it appears in source data, before any
// defaulting. Source documents are loosely typed: every field may be missing,
// and _id can be an ObjectID, a string, or absent depending on which shape
// produced it.
type RawMenuItem struct {
	ID           interface{} `json:"_id,omitempty" bson:"_id,omitempty"`
	RestaurantID string      `json:"restaurantId,omitempty" bson:"restaurantId,omitempty"`
	Name         string      `json:"name,omitempty" bson:"name,omitempty"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64     `json:"price,omitempty" bson:"price,omitempty"`
	Image        string      `json:"image,omitempty" bson:"image,omitempty"`
	Category     string      `json:"category,omitempty" bson:"category,omitempty"`
}

// MenuItem is the normalized shape every raw menu source resolves to.
// All defaulting rules have been applied: Name is never empty, Category is
// never empty, Image stays "" when the source has none (the client decides
// what to show for missing images).
type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
}

// Normalized-field fallbacks.
const (
	DefaultItemName = "Unnamed Item"
	DefaultCategory = "Uncategorized"
)
