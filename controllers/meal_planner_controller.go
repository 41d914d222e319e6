package controllers

import (
	"errors"
	"net/http"

	"backend/middlewares"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealPlannerController struct {
	Service *services.MealPlannerService
}

func NewMealPlannerController(service *services.MealPlannerService) *MealPlannerController {
	return &MealPlannerController{Service: service}
}

// GetByDate returns the planner entry for a date. Authenticated callers get
// their own entry; anonymous callers get the shared view.
func (mc *MealPlannerController) GetByDate(c *gin.Context) {
	date := c.Param("date")

	var userID *int
	if v, ok := c.Get(middlewares.UserIDKey); ok {
		if id, ok := v.(int); ok {
			userID = &id
		}
	}

	c.JSON(http.StatusOK, mc.Service.GetByDate(userID, date))
}

type AddMealInput struct {
	Type           string `json:"type"`
	RecipeID       int    `json:"recipeId"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
}

func (mc *MealPlannerController) AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Type == "" || input.RecipeID == 0 || input.Title == "" || input.Image == "" || input.ReadyInMinutes == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal type, recipe ID, and recipe title are required"})
		return
	}

	meal := models.PlannedMeal{
		RecipeID:       input.RecipeID,
		Title:          input.Title,
		Image:          input.Image,
		ReadyInMinutes: input.ReadyInMinutes,
	}
	if err := mc.Service.AddOrUpdate(c.Param("date"), input.Type, meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal added successfully"})
}

type RemoveMealInput struct {
	MealID   int    `json:"mealId"`
	MealType string `json:"mealType"`
}

func (mc *MealPlannerController) RemoveMeal(c *gin.Context) {
	var input RemoveMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.MealID == 0 || input.MealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal ID and type are required"})
		return
	}

	if err := mc.Service.Remove(input.MealID, input.MealType); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		// Not-found is reported as a server error on this route, with the
		// message in the body. Other failures carry their own message so a
		// persistence problem is not misreported as a missing meal.
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}

func (mc *MealPlannerController) List(c *gin.Context) {
	entries, err := mc.Service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
