package routes

import (
	"github.com/GoldenGeneration/Food-Connect-Backend/configs"
	"github.com/GoldenGeneration/Food-Connect-Backend/controllers"
	"github.com/GoldenGeneration/Food-Connect-Backend/middlewares"
	"github.com/GoldenGeneration/Food-Connect-Backend/repository"
	"github.com/GoldenGeneration/Food-Connect-Backend/services"
	"github.com/GoldenGeneration/Food-Connect-Backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Live order feed for restaurant owners
	feed := ws.NewOrderFeed()
	go feed.Run()

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, userRepo, cfg.FrontendURL)
	orderSvc.Feed = feed

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	restCtrl := controllers.NewRestaurantController(restRepo)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Orders (user)
	o := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		o.GET("", orderCtrl.ListMine)
		o.POST("/checkout/create-checkout-session", orderCtrl.CreateCheckoutSession)
	}

	// Owner order feed (owner/admin)
	r.GET("/ws/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"), feed.HandleWebSocket)
}
