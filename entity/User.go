package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `json:"-"`
	Name         string `json:"name"`
	AddressLine1 string `json:"addressLine1"`
	City         string `json:"city"`
	Country      string `json:"country"`
	Role         string `gorm:"not null;default:customer" json:"role"`

	// loyalty balance credited to restaurant owners; NULL reads as zero
	ServicePoints int64 `gorm:"default:0" json:"servicePoints"`

	// Relations — preload only when needed
	RestaurantsOwned []Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Orders           []Order      `json:"-"`
}
