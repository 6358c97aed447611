package routes

import (
	"github.com/dhaval-dalia/personal-diet-tracker-master/controllers"
	"github.com/dhaval-dalia/personal-diet-tracker-master/middlewares"
	"github.com/dhaval-dalia/personal-diet-tracker-master/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewRealtimeHub()
	services.InitRealtime(hub)

	mealSvc := services.NewMealService()
	foodSvc := services.NewFoodService()
	hookSvc := services.NewWebhookService()
	chatSvc := services.NewChatService(hookSvc)
	recSvc := services.NewRecService(hookSvc)

	mealCtl := controllers.NewMealController(mealSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	chatCtl := controllers.NewChatController(chatSvc)
	hookCtl := controllers.NewWebhookController(hookSvc)
	dashCtl := controllers.NewDashboardController(mealSvc, recSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Webhook proxy: same-origin forwarding, CORS only, no auth by design
	webhook := r.Group("/webhook")
	webhook.Use(middlewares.CORSMiddleware())
	{
		webhook.POST("/chat", hookCtl.ProxyChat)
		webhook.POST("/recommendations", hookCtl.ProxyRecommendations)
		// preflights must match a route for the group middleware to run
		webhook.OPTIONS("/chat", hookCtl.Preflight)
		webhook.OPTIONS("/recommendations", hookCtl.Preflight)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/session", controllers.Session)
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.DELETE("/account", controllers.DeleteAccount)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.POST("/quick-add", mealCtl.QuickAdd)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/recent", mealCtl.RecentMeals)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/search", foodCtl.SearchFoods)
		foods.GET("/barcode/:code", foodCtl.LookupBarcode)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.UpdateGoals)
		goals.GET("/by-date", controllers.GetGoalsByDate)
	}

	prefs := r.Group("/preferences")
	prefs.Use(middlewares.AuthMiddleware())
	{
		prefs.GET("", controllers.GetPreferences)
		prefs.PUT("", controllers.UpdatePreferences)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("", dashCtl.GetDashboard)
		dashboard.GET("/history", dashCtl.GetHistory)
		dashboard.GET("/recommendations/ai", dashCtl.GetAIRecommendations)
	}

	chat := r.Group("/chat")
	chat.Use(middlewares.AuthMiddleware())
	{
		chat.POST("", chatCtl.SendMessage)
		chat.GET("/history", chatCtl.History)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rtCtl.EventsWS)
	}

	return r
}
