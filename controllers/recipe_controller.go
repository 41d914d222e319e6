package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Service *services.RecipeService
}

func NewRecipeController(service *services.RecipeService) *RecipeController {
	return &RecipeController{Service: service}
}

func (rc *RecipeController) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Service.ListAll())
}

// GetRecipe returns a single recipe. An optional servings query parameter
// scales the ingredient amounts to the requested serving count.
func (rc *RecipeController) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := rc.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if v := c.Query("servings"); v != "" {
		if servings, err := strconv.Atoi(v); err == nil {
			scaled := services.ScaledTo(*recipe, servings)
			c.JSON(http.StatusOK, scaled)
			return
		}
	}

	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var input models.Recipe
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := rc.Service.Add(input)
	if err != nil {
		// Validation failures on this route have always surfaced as a
		// server error to the client.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var input models.RecipeUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := rc.Service.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe, err := rc.Service.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (rc *RecipeController) SearchRecipes(c *gin.Context) {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, rc.Service.Search(query))
}
