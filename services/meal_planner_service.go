package services

import (
	"fmt"
	"sync"

	"backend/models"
	"backend/store"
)

// MealPlannerService owns the date-keyed planner collection. Dates are opaque
// string keys; the client sends weekday names.
type MealPlannerService struct {
	mu      sync.Mutex
	store   *store.Store
	entries []models.MealPlannerEntry
}

func NewMealPlannerService(st *store.Store) (*MealPlannerService, error) {
	s := &MealPlannerService{store: st}
	if err := st.Load(&s.entries); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByDate returns the entry for date, filtered by user when userID is
// given. When nothing matches it returns a synthetic empty entry rather than
// a not-found failure. The returned entry is a snapshot: its meal map is
// detached from the collection so callers never share state guarded by the
// service mutex.
func (s *MealPlannerService) GetByDate(userID *int, date string) models.MealPlannerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Date != date {
			continue
		}
		if userID != nil && (e.UserID == nil || *e.UserID != *userID) {
			continue
		}

		meals := make(map[string]models.PlannedMeal, len(e.Meals))
		for mealType, meal := range e.Meals {
			meals[mealType] = meal
		}
		return models.MealPlannerEntry{Date: e.Date, UserID: e.UserID, Meals: meals}
	}
	return models.MealPlannerEntry{Date: date, Meals: map[string]models.PlannedMeal{}}
}

// AddOrUpdate assigns a meal to (date, mealType), creating the entry on first
// assignment and overwriting any existing meal of that type. Writes match on
// date only; they do not filter by user the way GetByDate does.
func (s *MealPlannerService) AddOrUpdate(date, mealType string, meal models.PlannedMeal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Date == date {
			s.entries[i].Meals[mealType] = meal
			return s.store.Flush(s.entries)
		}
	}

	s.entries = append(s.entries, models.MealPlannerEntry{
		Date:  date,
		Meals: map[string]models.PlannedMeal{mealType: meal},
	})
	return s.store.Flush(s.entries)
}

// Remove deletes the meal of the given type whose snapshot points at
// recipeID. The day entry is pruned once its last meal is removed.
func (s *MealPlannerService) Remove(recipeID int, mealType string) error {
	if mealType == "" {
		return &ValidationError{Message: "Meal type is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		meal, ok := s.entries[i].Meals[mealType]
		if !ok || meal.RecipeID != recipeID {
			continue
		}

		delete(s.entries[i].Meals, mealType)
		if len(s.entries[i].Meals) == 0 {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
		}
		return s.store.Flush(s.entries)
	}
	return fmt.Errorf("meal not found: %w", ErrNotFound)
}

// ListAll re-reads the backing file and returns the full collection. Unlike
// the other reads this goes to disk every call, so a malformed or non-array
// file surfaces here as a persistence failure.
func (s *MealPlannerService) ListAll() ([]models.MealPlannerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.MealPlannerEntry{}
	if err := s.store.Load(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
