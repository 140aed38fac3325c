package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durcevicjuraj/calorie-tracker-web/middlewares"
	"github.com/durcevicjuraj/calorie-tracker-web/services"
)

type GoalController struct {
	goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{goals: goals}
}

func (ctl *GoalController) Get(c *gin.Context) {
	goal, err := ctl.goals.Get(middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (ctl *GoalController) Update(c *gin.Context) {
	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := ctl.goals.Upsert(middlewares.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}
