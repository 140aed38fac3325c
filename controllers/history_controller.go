package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/durcevicjuraj/calorie-tracker-web/middlewares"
	"github.com/durcevicjuraj/calorie-tracker-web/services"
)

type HistoryController struct {
	history *services.HistoryService
}

func NewHistoryController(history *services.HistoryService) *HistoryController {
	return &HistoryController{history: history}
}

// Reconcile materializes missing days and purges expired rows. The
// frontend calls it before rendering the history screen.
func (ctl *HistoryController) Reconcile(c *gin.Context) {
	if err := ctl.history.Reconcile(middlewares.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctl *HistoryController) List(c *gin.Context) {
	out, err := ctl.history.List(middlewares.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (ctl *HistoryController) UpdateConsumed(c *gin.Context) {
	var input services.ConsumedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := ctl.history.UpdateConsumed(middlewares.UserID(c), c.Param("date"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
