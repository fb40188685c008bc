package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
)

// ----- DTOs from Controller -----

type CartItemIn struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
}

type DeliveryDetailsIn struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
}

type CheckoutSessionRequest struct {
	CartItems       []CartItemIn      `json:"cartItems"`
	DeliveryDetails DeliveryDetailsIn `json:"deliveryDetails"`
	RestaurantID    uint              `json:"restaurantId"`
}

// LineItem is the server-resolved (name, quantity) pair derived from a
// cart row. The name comes from the menu, never from the client.
type LineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// BuildLineItems resolves every cart row against the restaurant's menu.
// One unresolved reference or malformed quantity fails the whole cart —
// this doubles as the validation pass before an order is persisted.
func BuildLineItems(cart []CartItemIn, menu []entity.MenuItem) ([]LineItem, error) {
	out := make([]LineItem, 0, len(cart))
	for _, ci := range cart {
		mi := findMenuItem(menu, ci.MenuItemID)
		if mi == nil {
			return nil, fmt.Errorf("Menu item not found: %d", ci.MenuItemID)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(ci.Quantity))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q for menu item %d", ci.Quantity, ci.MenuItemID)
		}
		out = append(out, LineItem{Name: mi.Name, Quantity: qty})
	}
	return out, nil
}

// ServicePointsFor sums food weight × quantity over the order's stored
// cart rows. Unlike BuildLineItems this is lenient: rows that do not
// resolve (or do not parse) contribute zero instead of failing.
func ServicePointsFor(cart []entity.CartItem, menu []entity.MenuItem) int64 {
	var total int64
	for _, ci := range cart {
		mi := findMenuItem(menu, ci.MenuItemID)
		if mi == nil {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(ci.Quantity))
		if err != nil {
			continue
		}
		total += mi.FoodWeight * int64(qty)
	}
	return total
}

func findMenuItem(menu []entity.MenuItem, id uint) *entity.MenuItem {
	for i := range menu {
		if menu[i].ID == id {
			return &menu[i]
		}
	}
	return nil
}
