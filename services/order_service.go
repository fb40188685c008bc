package services

import (
	"errors"

	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"github.com/GoldenGeneration/Food-Connect-Backend/repository"
	"github.com/GoldenGeneration/Food-Connect-Backend/ws"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	UserRepo *repository.UserRepository

	// optional live feed for restaurant owners
	Feed *ws.OrderFeed

	frontendURL string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	userRepo *repository.UserRepository,
	frontendURL string,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		RestRepo:    restRepo,
		UserRepo:    userRepo,
		frontendURL: frontendURL,
	}
}

// ----- List -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// ----- Checkout -----

// CreateCheckoutSession turns a cart into a persisted order, credits the
// restaurant owner's service points, and returns the success redirect URL.
//
// The order insert and the points credit are two independent writes: a
// failed credit leaves the order in place and surfaces the error.
func (s *OrderService) CreateCheckoutSession(userID uint, req *CheckoutSessionRequest) (string, error) {
	rest, err := s.RestRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("Restaurant not found")
		}
		return "", err
	}

	if rest.UserID == nil {
		return "", errors.New("Restaurant owner not found")
	}

	order := entity.Order{
		Status:       "placed",
		UserID:       userID,
		RestaurantID: rest.ID,
		DeliveryDetails: entity.DeliveryDetails{
			Email:        req.DeliveryDetails.Email,
			Name:         req.DeliveryDetails.Name,
			AddressLine1: req.DeliveryDetails.AddressLine1,
			City:         req.DeliveryDetails.City,
		},
		CartItems: toCartRows(req.CartItems),
	}

	// validation pass: every cart reference must resolve and every
	// quantity must parse before anything is written
	if _, err := BuildLineItems(req.CartItems, rest.MenuItems); err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, &order)
	})
	if err != nil {
		return "", err
	}

	points, err := s.CreditOwnerPoints(*rest.UserID, &order, rest.MenuItems)
	if err != nil {
		return "", err
	}

	if s.Feed != nil {
		s.Feed.Publish(*rest.UserID, ws.OrderEvent{
			OrderID:       order.ID,
			RestaurantID:  rest.ID,
			Status:        order.Status,
			PointsAwarded: points,
			PlacedAt:      order.CreatedAt,
		})
	}

	// placeholder for a real payment redirect
	return s.frontendURL + "/order-status?success=true", nil
}

// CreditOwnerPoints looks up the owner and adds the weight-weighted cart
// total to their balance. Returns the delta that was credited.
func (s *OrderService) CreditOwnerPoints(ownerID uint, order *entity.Order, menu []entity.MenuItem) (int64, error) {
	user, err := s.UserRepo.FindByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("User not found")
		}
		return 0, err
	}

	points := ServicePointsFor(order.CartItems, menu)
	if err := s.UserRepo.CreditServicePoints(user.ID, points); err != nil {
		return 0, err
	}
	return points, nil
}

func toCartRows(in []CartItemIn) []entity.CartItem {
	rows := make([]entity.CartItem, 0, len(in))
	for _, ci := range in {
		rows = append(rows, entity.CartItem{
			MenuItemID: ci.MenuItemID,
			Name:       ci.Name,
			Quantity:   ci.Quantity,
		})
	}
	return rows
}
