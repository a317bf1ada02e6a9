package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultThemeColor is the fallback accent color (amber-600) for restaurants
// that have not picked one.
const DefaultThemeColor = "#D97706"

// Restaurant is a directory entry as stored in the "restaurants" collection.
// A restaurant may embed its menu in one of two optional shapes
// (MenuCategories or MenuItems); when both are absent the menu lives in the
// separate "menuItems" collection keyed by restaurant id.
type Restaurant struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Logo           string             `json:"logo" bson:"logo"`
	CoverPhoto     string             `json:"coverPhoto,omitempty" bson:"coverPhoto,omitempty"`
	Location       string             `json:"location" bson:"location"`
	Description    string             `json:"description" bson:"description"`
	ThemeColor     string             `json:"themeColor,omitempty" bson:"themeColor,omitempty"`
	Locked         bool               `json:"locked,omitempty" bson:"locked,omitempty"`
	MenuCategories []RawMenuCategory  `json:"menuCategories,omitempty" bson:"menuCategories,omitempty"`
	MenuItems      []RawMenuItem      `json:"menuItems,omitempty" bson:"menuItems,omitempty"`
	CreatedAt      time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ThemeColorOrDefault returns the restaurant's chosen theme color, or
// DefaultThemeColor when none is set.
func (r *Restaurant) ThemeColorOrDefault() string {
	if r.ThemeColor == "" {
		return DefaultThemeColor
	}
	return r.ThemeColor
}
