package repository

import (
	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder inserts the order plus its cart rows (association insert).
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ListForUser returns every order of the user, each with its restaurant
// and user records expanded (read-time join, no stored denormalization).
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.
		Preload("Restaurant").
		Preload("Restaurant.MenuItems").
		Preload("User").
		Preload("CartItems").
		Where("user_id = ?", userID).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CountForUser(userID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}
