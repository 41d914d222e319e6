package services

import (
	"fmt"
	"strings"
	"sync"

	"backend/models"
	"backend/store"
)

// RecipeService owns the recipe collection and its backing file.
type RecipeService struct {
	mu      sync.Mutex
	store   *store.Store
	recipes []models.Recipe
	nextID  int
}

// NewRecipeService loads the recipe collection from st. The id counter is
// seeded past the highest stored id so deletions never cause id reuse.
func NewRecipeService(st *store.Store) (*RecipeService, error) {
	s := &RecipeService{store: st, nextID: 1}
	if err := st.Load(&s.recipes); err != nil {
		return nil, err
	}
	for _, r := range s.recipes {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s, nil
}

// ListAll projects every stored recipe to its summary shape.
func (s *RecipeService) ListAll() []models.RecipeSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]models.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		summaries = append(summaries, r.Summary())
	}
	return summaries
}

// GetByID returns the recipe with the given id, or ErrNotFound.
func (s *RecipeService) GetByID(id int) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID == id {
			r := s.recipes[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
}

// Add validates, assigns an id, appends and persists the recipe.
func (s *RecipeService) Add(recipe models.Recipe) (*models.Recipe, error) {
	if recipe.Title == "" || recipe.ReadyInMinutes == 0 {
		return nil, &ValidationError{Message: "Title and readyInMinutes are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe.ID = s.nextID
	s.nextID++
	s.recipes = append(s.recipes, recipe)

	if err := s.store.Flush(s.recipes); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Update shallow-merges the non-nil fields of upd onto the stored recipe.
func (s *RecipeService) Update(id int, upd models.RecipeUpdate) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID != id {
			continue
		}
		s.recipes[i].Merge(upd)
		if err := s.store.Flush(s.recipes); err != nil {
			return nil, err
		}
		r := s.recipes[i]
		return &r, nil
	}
	return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
}

// Delete removes the recipe with the given id and returns it.
func (s *RecipeService) Delete(id int) (*models.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.recipes {
		if s.recipes[i].ID != id {
			continue
		}
		deleted := s.recipes[i]
		s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
		if err := s.store.Flush(s.recipes); err != nil {
			return nil, err
		}
		return &deleted, nil
	}
	return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
}

// Search matches the query case-insensitively anywhere in the title. A blank
// query returns an empty result set, not the whole collection.
func (s *RecipeService) Search(query string) []models.Recipe {
	matches := []models.Recipe{}
	if strings.TrimSpace(query) == "" {
		return matches
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(query)
	for _, r := range s.recipes {
		if strings.Contains(strings.ToLower(r.Title), lower) {
			matches = append(matches, r)
		}
	}
	return matches
}

// ScaledTo returns a copy of recipe with ingredient amounts scaled to the
// requested serving count. Amounts are left untouched when either serving
// value is not positive.
func ScaledTo(recipe models.Recipe, servings int) models.Recipe {
	if recipe.Servings <= 0 || servings <= 0 || servings == recipe.Servings {
		return recipe
	}

	ratio := float64(servings) / float64(recipe.Servings)
	scaled := make([]models.Ingredient, len(recipe.ExtendedIngredients))
	for i, ing := range recipe.ExtendedIngredients {
		ing.Amount *= ratio
		scaled[i] = ing
	}
	recipe.ExtendedIngredients = scaled
	recipe.Servings = servings
	return recipe
}
