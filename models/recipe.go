package models

// Ingredient is one line of a recipe's ingredient list. Measures carries the
// per-unit-system breakdown verbatim from the source data.
type Ingredient struct {
	Name     string         `json:"name"`
	Amount   float64        `json:"amount"`
	Image    string         `json:"image,omitempty"`
	Measures map[string]any `json:"measures,omitempty"`
}

type Recipe struct {
	ID                  int          `json:"id"`
	Title               string       `json:"title"`
	Image               string       `json:"image,omitempty"`
	ReadyInMinutes      int          `json:"readyInMinutes"`
	Vegan               bool         `json:"vegan"`
	Vegetarian          bool         `json:"vegetarian"`
	DairyFree           bool         `json:"dairyFree"`
	GlutenFree          bool         `json:"glutenFree"`
	ExtendedIngredients []Ingredient `json:"extendedIngredients,omitempty"`
	Servings            int          `json:"servings,omitempty"`
	SourceURL           string       `json:"sourceUrl,omitempty"`
}

// RecipeSummary is the list-view projection of a recipe.
type RecipeSummary struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image,omitempty"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Vegan          bool   `json:"vegan"`
	Vegetarian     bool   `json:"vegetarian"`
	DairyFree      bool   `json:"dairyFree"`
	GlutenFree     bool   `json:"glutenFree"`
}

// RecipeUpdate is a partial recipe; nil fields are left unchanged on merge.
type RecipeUpdate struct {
	Title               *string       `json:"title"`
	Image               *string       `json:"image"`
	ReadyInMinutes      *int          `json:"readyInMinutes"`
	Vegan               *bool         `json:"vegan"`
	Vegetarian          *bool         `json:"vegetarian"`
	DairyFree           *bool         `json:"dairyFree"`
	GlutenFree          *bool         `json:"glutenFree"`
	ExtendedIngredients *[]Ingredient `json:"extendedIngredients"`
	Servings            *int          `json:"servings"`
	SourceURL           *string       `json:"sourceUrl"`
}

// Summary projects the recipe to its list shape.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:             r.ID,
		Title:          r.Title,
		Image:          r.Image,
		ReadyInMinutes: r.ReadyInMinutes,
		Vegan:          r.Vegan,
		Vegetarian:     r.Vegetarian,
		DairyFree:      r.DairyFree,
		GlutenFree:     r.GlutenFree,
	}
}

// Merge applies the non-nil fields of u onto r.
func (r *Recipe) Merge(u RecipeUpdate) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Image != nil {
		r.Image = *u.Image
	}
	if u.ReadyInMinutes != nil {
		r.ReadyInMinutes = *u.ReadyInMinutes
	}
	if u.Vegan != nil {
		r.Vegan = *u.Vegan
	}
	if u.Vegetarian != nil {
		r.Vegetarian = *u.Vegetarian
	}
	if u.DairyFree != nil {
		r.DairyFree = *u.DairyFree
	}
	if u.GlutenFree != nil {
		r.GlutenFree = *u.GlutenFree
	}
	if u.ExtendedIngredients != nil {
		r.ExtendedIngredients = *u.ExtendedIngredients
	}
	if u.Servings != nil {
		r.Servings = *u.Servings
	}
	if u.SourceURL != nil {
		r.SourceURL = *u.SourceURL
	}
}
