package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"github.com/GoldenGeneration/Food-Connect-Backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testFrontendURL = "http://front.test"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Order{}, &entity.CartItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
		testFrontendURL,
	)
}

// creates an owner, their restaurant and a small menu; returns both
func seedRestaurant(t *testing.T, db *gorm.DB) (*entity.User, *entity.Restaurant) {
	t.Helper()
	owner := entity.User{Email: "owner@test.local", Name: "Owner", Role: "owner"}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	rest := entity.Restaurant{
		Name:   "Test Kitchen",
		City:   "Bangkok",
		UserID: &owner.ID,
		MenuItems: []entity.MenuItem{
			{Name: "Pad Thai", Price: 120, FoodWeight: 5},
			{Name: "Green Curry", Price: 150, FoodWeight: 7},
		},
	}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return &owner, &rest
}

func cartFor(rest *entity.Restaurant, qty string) []CartItemIn {
	return []CartItemIn{
		{MenuItemID: rest.MenuItems[0].ID, Name: "client name", Quantity: qty},
	}
}

func orderCount(t *testing.T, svc *OrderService) int64 {
	t.Helper()
	cnt, err := svc.Repo.CountForUser(42)
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return cnt
}

func TestCreateCheckoutSession_RestaurantNotFound(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	_, err := svc.CreateCheckoutSession(42, &CheckoutSessionRequest{RestaurantID: 123})
	if err == nil || err.Error() != "Restaurant not found" {
		t.Fatalf("want Restaurant not found, got %v", err)
	}
	if n := orderCount(t, svc); n != 0 {
		t.Errorf("want no orders persisted, got %d", n)
	}
}

func TestCreateCheckoutSession_OwnerMissingOnRestaurant(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	rest := entity.Restaurant{Name: "Orphan Diner"}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	_, err := svc.CreateCheckoutSession(42, &CheckoutSessionRequest{RestaurantID: rest.ID})
	if err == nil || err.Error() != "Restaurant owner not found" {
		t.Fatalf("want Restaurant owner not found, got %v", err)
	}
	if n := orderCount(t, svc); n != 0 {
		t.Errorf("want no orders persisted, got %d", n)
	}
}

func TestCreateCheckoutSession_UnknownMenuItemAbortsBeforeSave(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	_, rest := seedRestaurant(t, db)

	req := &CheckoutSessionRequest{
		RestaurantID: rest.ID,
		CartItems:    []CartItemIn{{MenuItemID: 9999, Quantity: "1"}},
	}
	_, err := svc.CreateCheckoutSession(42, req)
	if err == nil || !strings.Contains(err.Error(), "Menu item not found") {
		t.Fatalf("want Menu item not found, got %v", err)
	}
	if n := orderCount(t, svc); n != 0 {
		t.Errorf("want no orders persisted, got %d", n)
	}
}

func TestCreateCheckoutSession_MalformedQuantityAbortsBeforeSave(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	_, rest := seedRestaurant(t, db)

	req := &CheckoutSessionRequest{
		RestaurantID: rest.ID,
		CartItems:    cartFor(rest, "a lot"),
	}
	if _, err := svc.CreateCheckoutSession(42, req); err == nil {
		t.Fatal("want error for malformed quantity")
	}
	if n := orderCount(t, svc); n != 0 {
		t.Errorf("want no orders persisted, got %d", n)
	}
}

func TestCreateCheckoutSession_Success(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	owner, rest := seedRestaurant(t, db)

	// Pad Thai has weight 5; quantity 2 must credit exactly 10
	req := &CheckoutSessionRequest{
		RestaurantID: rest.ID,
		CartItems:    cartFor(rest, "2"),
		DeliveryDetails: DeliveryDetailsIn{
			Email: "cust@test.local", Name: "Customer",
			AddressLine1: "1 Test Rd", City: "Bangkok",
		},
	}

	url, err := svc.CreateCheckoutSession(42, req)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if want := testFrontendURL + "/order-status?success=true"; url != want {
		t.Errorf("url = %q, want %q", url, want)
	}

	var order entity.Order
	if err := db.Preload("CartItems").Where("user_id = ?", 42).First(&order).Error; err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if order.Status != "placed" {
		t.Errorf("status = %q, want placed", order.Status)
	}
	if order.DeliveryDetails.AddressLine1 != "1 Test Rd" {
		t.Errorf("delivery details not snapshotted: %+v", order.DeliveryDetails)
	}
	if len(order.CartItems) != 1 || order.CartItems[0].Quantity != "2" {
		t.Errorf("raw cart rows not stored: %+v", order.CartItems)
	}

	var got entity.User
	if err := db.First(&got, owner.ID).Error; err != nil {
		t.Fatalf("reload owner: %v", err)
	}
	if got.ServicePoints != 10 {
		t.Errorf("servicePoints = %d, want 10", got.ServicePoints)
	}

	// a second checkout keeps accruing on top of the balance
	if _, err := svc.CreateCheckoutSession(42, req); err != nil {
		t.Fatalf("second checkout failed: %v", err)
	}
	db.First(&got, owner.ID)
	if got.ServicePoints != 20 {
		t.Errorf("servicePoints after second checkout = %d, want 20", got.ServicePoints)
	}
}

func TestCreateCheckoutSession_MissingOwnerUserLeavesOrder(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)
	_, rest := seedRestaurant(t, db)

	// point the restaurant at a user record that does not exist
	missing := uint(9999)
	if err := db.Model(rest).Update("user_id", missing).Error; err != nil {
		t.Fatalf("update restaurant owner: %v", err)
	}

	req := &CheckoutSessionRequest{
		RestaurantID: rest.ID,
		CartItems:    cartFor(rest, "2"),
	}
	_, err := svc.CreateCheckoutSession(42, req)
	if err == nil || err.Error() != "User not found" {
		t.Fatalf("want User not found, got %v", err)
	}

	// the two writes are independent: the order survives the failed credit
	if n := orderCount(t, svc); n != 1 {
		t.Errorf("want order persisted despite failed credit, got %d", n)
	}
}

func TestListForUser(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(db)

	t.Run("no orders gives an empty slice, not an error", func(t *testing.T) {
		orders, err := svc.ListForUser(42)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if orders == nil || len(orders) != 0 {
			t.Errorf("want empty non-nil slice, got %v", orders)
		}
	})

	t.Run("orders come back with restaurant and user expanded", func(t *testing.T) {
		_, rest := seedRestaurant(t, db)
		cust := entity.User{Email: "cust@test.local", Name: "Customer"}
		if err := db.Create(&cust).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}

		req := &CheckoutSessionRequest{RestaurantID: rest.ID, CartItems: cartFor(rest, "1")}
		if _, err := svc.CreateCheckoutSession(cust.ID, req); err != nil {
			t.Fatalf("checkout: %v", err)
		}

		orders, err := svc.ListForUser(cust.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("want 1 order, got %d", len(orders))
		}
		if orders[0].Restaurant.Name != "Test Kitchen" {
			t.Errorf("restaurant not expanded: %+v", orders[0].Restaurant)
		}
		if orders[0].User.Email != "cust@test.local" {
			t.Errorf("user not expanded: %+v", orders[0].User)
		}
		if len(orders[0].CartItems) != 1 {
			t.Errorf("cart rows not loaded: %+v", orders[0].CartItems)
		}
	})
}
