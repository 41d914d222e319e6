package models

// PlannedMeal is the snapshot of a recipe assigned to a planner slot. The
// fields are copied at assignment time; later recipe edits do not propagate.
type PlannedMeal struct {
	RecipeID       int    `json:"recipeId"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes"`
}

// MealPlannerEntry holds the meals planned for one date key. The date is an
// opaque string (the client sends weekday names); no calendar semantics are
// attached to it. An entry with an empty Meals map is never persisted.
type MealPlannerEntry struct {
	Date   string                 `json:"date"`
	UserID *int                   `json:"userId,omitempty"`
	Meals  map[string]PlannedMeal `json:"meals"`
}
