package entity

import (
	"gorm.io/gorm"
)

// DeliveryDetails is snapshotted onto the order at checkout time.
type DeliveryDetails struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
}

type Order struct {
	gorm.Model
	Status string `gorm:"not null;default:placed" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"user"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"restaurant"`

	DeliveryDetails DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryDetails"`

	// raw cart rows as submitted by the client
	CartItems []CartItem `json:"cartItems"`
}
