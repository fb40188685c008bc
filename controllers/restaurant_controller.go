package controllers

import (
	"errors"
	"strconv"

	"github.com/GoldenGeneration/Food-Connect-Backend/pkg/resp"
	"github.com/GoldenGeneration/Food-Connect-Backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RestaurantController struct{ Repo *repository.RestaurantRepository }

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{Repo: repo}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	rests, err := rc.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rests)
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := rc.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}
