package routes

import (
	"net/http"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter assembles the full REST surface over the three repositories.
func SetupRouter(
	users *services.UserService,
	rc *controllers.RecipeController,
	uc *controllers.UserController,
	mc *controllers.MealPlannerController,
) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Mobile App Backend")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	recipes := r.Group("/recipes")
	{
		recipes.GET("", rc.ListRecipes)
		recipes.GET("/search", rc.SearchRecipes)
		recipes.GET("/:id", rc.GetRecipe)
		recipes.POST("", rc.CreateRecipe)
		recipes.PUT("/:id", rc.UpdateRecipe)
		recipes.DELETE("/:id", rc.DeleteRecipe)
	}

	userRoutes := r.Group("/users")
	{
		userRoutes.POST("/register", uc.Register)
		userRoutes.POST("/login", uc.Login)

		me := userRoutes.Group("/me")
		me.Use(middlewares.AuthMiddleware(users))
		{
			me.GET("", uc.Me)
			me.PUT("/preferences", uc.UpdatePreferences)
		}
	}

	planner := r.Group("/mealPlanner")
	{
		planner.GET("", mc.List)
		planner.GET("/:date", middlewares.OptionalAuthMiddleware(users), mc.GetByDate)
		planner.POST("/:date", mc.AddMeal)
		planner.DELETE("/meals", mc.RemoveMeal)
	}

	return r
}
