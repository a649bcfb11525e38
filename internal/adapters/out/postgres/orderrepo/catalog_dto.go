package orderrepo

import "github.com/shopspring/decimal"

// Catalog tables referenced by orders. Rows are written by the seed tool;
// the service only reads them (restaurant fields joined into the order
// history view, menu item ids referenced by line items).

// RestaurantDTO represents a restaurant row.
type RestaurantDTO struct {
	ID       int64  `gorm:"column:restaurant_id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Location string `gorm:"column:location;not null"`
	Cuisine  string `gorm:"column:cuisine"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// CategoryDTO represents a menu category row.
type CategoryDTO struct {
	ID   int64  `gorm:"column:category_id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO represents a menu item row with its current price. Orders
// snapshot this price into order_items at ingestion.
type MenuItemDTO struct {
	ID           int64           `gorm:"column:menu_item_id;primaryKey"`
	RestaurantID int64           `gorm:"column:restaurant_id;index;not null"`
	CategoryID   int64           `gorm:"column:category_id;not null"`
	Name         string          `gorm:"column:name;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	IsAvailable  bool            `gorm:"column:is_available;not null;default:true"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}
