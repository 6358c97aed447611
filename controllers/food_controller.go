package controllers

import (
	"net/http"

	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

func (fc *FoodController) SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}

	results, err := fc.foods.Search(query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "food search unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// LookupBarcode treats an unknown barcode as informational, not an error.
func (fc *FoodController) LookupBarcode(c *gin.Context) {
	code := c.Param("code")

	result, found, err := fc.foods.LookupBarcode(code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "barcode lookup unavailable"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false, "message": "product not in catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "product": result})
}
