package repository

import (
	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"gorm.io/gorm"
)

// UserRepository owns all access to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreditServicePoints adds delta to the balance in one UPDATE so two
// concurrent checkouts against the same owner cannot lose a credit.
// A NULL balance counts as zero.
func (r *UserRepository) CreditServicePoints(userID uint, delta int64) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("service_points", gorm.Expr("COALESCE(service_points, 0) + ?", delta)).Error
}
