package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name  string `json:"name"`
	Price int64  `json:"price"`

	// per-unit weight used for the owner's service-points accrual
	FoodWeight int64 `json:"foodWeight"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload only when needed
}
