package main

import (
	"path/filepath"

	"backend/config"
	"backend/controllers"
	"backend/logger"
	"backend/routes"
	"backend/services"
	"backend/store"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	recipeStore, err := store.New(filepath.Join(cfg.DataDir, "recipesDB.json"))
	if err != nil {
		logger.Fatal("failed to open recipe store", "error", err)
	}
	userStore, err := store.New(filepath.Join(cfg.DataDir, "userDB.json"))
	if err != nil {
		logger.Fatal("failed to open user store", "error", err)
	}
	plannerStore, err := store.New(filepath.Join(cfg.DataDir, "mealPlannerDB.json"))
	if err != nil {
		logger.Fatal("failed to open meal planner store", "error", err)
	}

	recipeSvc, err := services.NewRecipeService(recipeStore)
	if err != nil {
		logger.Fatal("failed to load recipes", "error", err)
	}
	userSvc, err := services.NewUserService(userStore, []byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		logger.Fatal("failed to load users", "error", err)
	}
	plannerSvc, err := services.NewMealPlannerService(plannerStore)
	if err != nil {
		logger.Fatal("failed to load meal planner", "error", err)
	}

	r := routes.SetupRouter(
		userSvc,
		controllers.NewRecipeController(recipeSvc),
		controllers.NewUserController(userSvc),
		controllers.NewMealPlannerController(plannerSvc),
	)

	logger.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
