package controllers

import (
	"log"
	"net/http"

	"github.com/GoldenGeneration/Food-Connect-Backend/services"
	"github.com/GoldenGeneration/Food-Connect-Backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Service *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// GET /orders
//
// Responds with a bare JSON array of the caller's orders, each with its
// restaurant and user expanded. The error shape here is fixed by the
// frontend contract, so resp helpers are not used.
func (oc *OrderController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Service.ListForUser(uid)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "something went wrong"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// POST /orders/checkout/create-checkout-session
func (oc *OrderController) CreateCheckoutSession(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	url, err := oc.Service.CreateCheckoutSession(uid, &req)
	if err != nil {
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
