package entity

import (
	"gorm.io/gorm"
)

// CartItem keeps the client-submitted cart row verbatim: the name is the
// client's copy (not cross-checked) and the quantity stays the raw string
// from the request body.
type CartItem struct {
	gorm.Model
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
