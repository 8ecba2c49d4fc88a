// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	WorkoutHandler   *handler.WorkoutHandler
	NutritionHandler *handler.NutritionHandler
	ProfileHandler   *handler.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	workoutHandler   *handler.WorkoutHandler
	nutritionHandler *handler.NutritionHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		workoutHandler:   params.WorkoutHandler,
		nutritionHandler: params.NutritionHandler,
		profileHandler:   params.ProfileHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Everything below requires a valid bearer token.
	auth := r.authMiddleware.Authenticate

	e.POST("/logout", r.authHandler.Logout, auth)
	e.GET("/dashboard", r.profileHandler.Dashboard, auth)

	workoutGroup := e.Group("/workouts", auth)
	{
		workoutGroup.GET("", r.workoutHandler.List)
		workoutGroup.POST("", r.workoutHandler.Create)
		// Static segments before :id so they never shadow each other.
		workoutGroup.GET("/weekly-calories", r.workoutHandler.WeeklyCalories)
		workoutGroup.GET("/frequency", r.workoutHandler.Frequency)
		workoutGroup.GET("/:id", r.workoutHandler.Get)
		workoutGroup.PUT("/:id", r.workoutHandler.Update)
		workoutGroup.DELETE("/:id", r.workoutHandler.Delete)
	}

	mealGroup := e.Group("/meals", auth)
	{
		mealGroup.GET("", r.nutritionHandler.List)
		mealGroup.POST("", r.nutritionHandler.Create)
		mealGroup.GET("/macros", r.nutritionHandler.Macros)
		mealGroup.GET("/:id", r.nutritionHandler.Get)
		mealGroup.PUT("/:id", r.nutritionHandler.Update)
		mealGroup.DELETE("/:id", r.nutritionHandler.Delete)
	}

	weightGroup := e.Group("/weights", auth)
	{
		weightGroup.GET("", r.profileHandler.ListWeights)
		weightGroup.POST("", r.profileHandler.CreateWeight)
		weightGroup.GET("/:id", r.profileHandler.GetWeight)
		weightGroup.PUT("/:id", r.profileHandler.UpdateWeight)
		weightGroup.DELETE("/:id", r.profileHandler.DeleteWeight)
	}
}
