package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durcevicjuraj/calorie-tracker-web/middlewares"
	"github.com/durcevicjuraj/calorie-tracker-web/models"
	"github.com/durcevicjuraj/calorie-tracker-web/services"
)

type ConsumptionController struct {
	log *services.ConsumptionService
}

func NewConsumptionController(log *services.ConsumptionService) *ConsumptionController {
	return &ConsumptionController{log: log}
}

// ManualNutrients uses pointers for the required fields so "missing" is
// distinguishable from an explicit zero.
type ManualNutrients struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
	Sugar    *float64 `json:"sugar"`
	Fiber    *float64 `json:"fiber"`
}

// LogInput carries one of three sources: a saved meal reference, an ad hoc
// food list, or manually entered nutrients.
type LogInput struct {
	Date  string `json:"date" binding:"required"`
	Notes string `json:"notes"`
	Name  string `json:"name"`

	// Quantity is a pointer so an omitted value (defaults to 1 serving)
	// is distinguishable from an explicit zero, which is rejected.
	MealID   *uint    `json:"meal_id"`
	Quantity *float64 `json:"quantity"`

	Items      []services.MealItemInput `json:"items"`
	SaveAsMeal bool                     `json:"save_as_meal"`

	Manual *ManualNutrients `json:"manual"`
}

func (ctl *ConsumptionController) Log(c *gin.Context) {
	var input LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middlewares.UserID(c)

	var (
		entry *models.ConsumptionLog
		err   error
	)
	switch {
	case input.MealID != nil:
		qty := 1.0
		if input.Quantity != nil {
			qty = *input.Quantity
		}
		entry, err = ctl.log.LogMeal(userID, *input.MealID, qty, input.Date, input.Notes)
	case input.Manual != nil:
		if input.Manual.Calories == nil || input.Manual.Protein == nil ||
			input.Manual.Carbs == nil || input.Manual.Fat == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "manual entries require calories, protein, carbs and fat"})
			return
		}
		n := models.Nutrients{
			Calories: *input.Manual.Calories,
			Protein:  *input.Manual.Protein,
			Carbs:    *input.Manual.Carbs,
			Fat:      *input.Manual.Fat,
			Sugar:    input.Manual.Sugar,
			Fiber:    input.Manual.Fiber,
		}
		entry, err = ctl.log.LogManual(userID, input.Name, n, input.Date, input.Notes)
	case len(input.Items) > 0:
		entry, err = ctl.log.LogAdHoc(userID, input.Name, input.Items, input.SaveAsMeal, input.Date, input.Notes)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "one of meal_id, items or manual is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctl *ConsumptionController) List(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}
	out, err := ctl.log.List(middlewares.UserID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *ConsumptionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.log.Delete(middlewares.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
