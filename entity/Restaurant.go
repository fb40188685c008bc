package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name                  string `json:"restaurantName"`
	City                  string `json:"city"`
	Country               string `json:"country"`
	DeliveryPrice         int64  `json:"deliveryPrice"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime"`
	ImageURL              string `json:"imageUrl"`

	// owner (users.id); nullable — a restaurant can exist before an owner
	// account is linked
	UserID *uint `json:"userId"`
	User   *User `json:"-"`

	MenuItems []MenuItem `json:"menuItems"`
	Orders    []Order    `json:"-"`
}
