package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/controllers"
	"github.com/durcevicjuraj/calorie-tracker-web/middlewares"
	"github.com/durcevicjuraj/calorie-tracker-web/services"
)

// SetupRouter wires services and controllers against the given database
// handle and returns the configured engine.
func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	authSvc := services.NewAuthService(db)
	ingredientSvc := services.NewIngredientService(db)
	foodSvc := services.NewFoodService(db)
	mealSvc := services.NewMealService(db)
	logSvc := services.NewConsumptionService(db, mealSvc, hub)
	goalSvc := services.NewGoalService(db)
	historySvc := services.NewHistoryService(db, goalSvc)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(authSvc)
	ingredientCtl := controllers.NewIngredientController(ingredientSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	logCtl := controllers.NewConsumptionController(logSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	historyCtl := controllers.NewHistoryController(historySvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)

		api.GET("/ingredients", ingredientCtl.List)
		api.GET("/ingredients/:id", ingredientCtl.Get)
		api.POST("/ingredients", ingredientCtl.Create)
		api.PUT("/ingredients/:id", ingredientCtl.Update)
		api.DELETE("/ingredients/:id", ingredientCtl.Delete)

		api.GET("/foods", foodCtl.List)
		api.GET("/foods/:id", foodCtl.Get)
		api.POST("/foods", foodCtl.Create)
		api.PUT("/foods/:id", foodCtl.Update)
		api.DELETE("/foods/:id", foodCtl.Delete)

		api.GET("/meals", mealCtl.List)
		api.GET("/meals/:id", mealCtl.Get)
		api.POST("/meals", mealCtl.Create)
		api.PUT("/meals/:id", mealCtl.Update)
		api.DELETE("/meals/:id", mealCtl.Delete)

		api.POST("/log", logCtl.Log)
		api.GET("/log", logCtl.List)
		api.DELETE("/log/:id", logCtl.Delete)

		api.GET("/goals", goalCtl.Get)
		api.PUT("/goals", goalCtl.Update)

		api.POST("/history/reconcile", historyCtl.Reconcile)
		api.GET("/history", historyCtl.List)
		api.PUT("/history/:date", historyCtl.UpdateConsumed)

		api.GET("/ws/progress", realtimeCtl.Connect)
	}

	return r
}
