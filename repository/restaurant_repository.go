// repository/restaurant_repository.go
package repository

import (
	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// FindAll lists restaurants with their menus for browsing.
func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("MenuItems").
		Find(&rests).Error
	return rests, err
}

// FindByID loads one restaurant with its menu; checkout resolves cart
// references against MenuItems loaded here.
func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("MenuItems").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}
