package models

import "time"

// Category classifies a marketplace listing. Open-ended in practice; these
// are the values offered by the sell form.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryOther       Category = "other"
)

// Condition describes the wear state of a listed item.
type Condition string

const (
	ConditionExcellent   Condition = "excellent"
	ConditionGood        Condition = "good"
	ConditionFair        Condition = "fair"
	ConditionNeedsRepair Condition = "needs-repair"
)

// Categories lists all sell-form categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFurniture,
		CategoryClothing,
		CategoryBooks,
		CategorySports,
		CategoryOther,
	}
}

// Conditions lists all sell-form conditions in display order.
func Conditions() []Condition {
	return []Condition{
		ConditionExcellent,
		ConditionGood,
		ConditionFair,
		ConditionNeedsRepair,
	}
}

// Listing is an item offered for sale. Listings are created by the sell
// action and never updated or deleted; only the view counter moves.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Condition   Condition `json:"condition"`
	Location    string    `json:"location"`
	Phone       string    `json:"phone"`
	ImagePath   string    `json:"image,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
	Views       int64     `json:"views"`
}

// TableName returns the name of the database table
// associated with the Listing model.
func (l Listing) TableName() string {
	return "listings"
}
