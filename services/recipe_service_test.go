package services

import (
	"errors"
	"path/filepath"
	"testing"

	"backend/models"
	"backend/store"
)

func newRecipeService(t *testing.T) *RecipeService {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "recipesDB.json"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	svc, err := NewRecipeService(st)
	if err != nil {
		t.Fatalf("NewRecipeService: %v", err)
	}
	return svc
}

func TestRecipeService_AddThenGet(t *testing.T) {
	svc := newRecipeService(t)

	in := models.Recipe{
		Title:          "Lentil Curry",
		ReadyInMinutes: 35,
		Vegan:          true,
		Servings:       4,
		ExtendedIngredients: []models.Ingredient{
			{Name: "red lentils", Amount: 200},
		},
	}
	added, err := svc.Add(in)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.ID != 1 {
		t.Errorf("Add() assigned id = %d, want 1", added.ID)
	}

	got, err := svc.GetByID(added.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != in.Title || got.ReadyInMinutes != in.ReadyInMinutes || !got.Vegan {
		t.Errorf("GetByID() = %+v, want input plus id", got)
	}
}

func TestRecipeService_AddValidation(t *testing.T) {
	tests := []struct {
		name   string
		recipe models.Recipe
	}{
		{"missing title", models.Recipe{ReadyInMinutes: 10}},
		{"missing readyInMinutes", models.Recipe{Title: "Toast"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newRecipeService(t)
			_, err := svc.Add(tt.recipe)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("Add() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestRecipeService_DeleteThenGet(t *testing.T) {
	svc := newRecipeService(t)

	added, err := svc.Add(models.Recipe{Title: "Ramen", ReadyInMinutes: 20})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	deleted, err := svc.Delete(added.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.Title != "Ramen" {
		t.Errorf("Delete() returned %+v, want the removed recipe", deleted)
	}

	if _, err := svc.GetByID(added.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestRecipeService_IDsNotReusedAfterDelete(t *testing.T) {
	svc := newRecipeService(t)

	first, _ := svc.Add(models.Recipe{Title: "One", ReadyInMinutes: 1})
	second, _ := svc.Add(models.Recipe{Title: "Two", ReadyInMinutes: 2})
	if _, err := svc.Delete(second.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	third, err := svc.Add(models.Recipe{Title: "Three", ReadyInMinutes: 3})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if third.ID == second.ID || third.ID <= first.ID {
		t.Errorf("Add() after delete assigned id %d, want a fresh id above %d", third.ID, second.ID)
	}
}

func TestRecipeService_Search(t *testing.T) {
	svc := newRecipeService(t)
	for _, title := range []string{"Chicken Soup", "chicken curry", "Beef Stew"} {
		if _, err := svc.Add(models.Recipe{Title: title, ReadyInMinutes: 30}); err != nil {
			t.Fatalf("Add(%q) error = %v", title, err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"blank query", "", 0},
		{"whitespace query", "   ", 0},
		{"lowercase match", "chicken", 2},
		{"uppercase match", "CHICKEN", 2},
		{"substring anywhere", "stew", 1},
		{"no match", "tofu", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.query)
			if len(got) != tt.want {
				t.Errorf("Search(%q) returned %d recipes, want %d", tt.query, len(got), tt.want)
			}
		})
	}
}

func TestRecipeService_UpdateShallowMerge(t *testing.T) {
	svc := newRecipeService(t)
	added, _ := svc.Add(models.Recipe{Title: "Pancakes", ReadyInMinutes: 15, Servings: 2})

	newTitle := "Blueberry Pancakes"
	vegetarian := true
	got, err := svc.Update(added.ID, models.RecipeUpdate{Title: &newTitle, Vegetarian: &vegetarian})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if got.Title != newTitle || !got.Vegetarian {
		t.Errorf("Update() did not apply fields: %+v", got)
	}
	if got.ReadyInMinutes != 15 || got.Servings != 2 {
		t.Errorf("Update() touched fields it should not have: %+v", got)
	}
}

func TestRecipeService_PersistsAcrossReload(t *testing.T) {
	st, err := store.New(filepath.Join(t.TempDir(), "recipesDB.json"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	svc, err := NewRecipeService(st)
	if err != nil {
		t.Fatalf("NewRecipeService: %v", err)
	}
	added, err := svc.Add(models.Recipe{Title: "Chili", ReadyInMinutes: 45})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	reloaded, err := NewRecipeService(st)
	if err != nil {
		t.Fatalf("NewRecipeService after reload: %v", err)
	}
	got, err := reloaded.GetByID(added.ID)
	if err != nil {
		t.Fatalf("GetByID() after reload error = %v", err)
	}
	if got.Title != "Chili" {
		t.Errorf("reloaded recipe = %+v", got)
	}
}

func TestScaledTo(t *testing.T) {
	base := models.Recipe{
		Title:    "Risotto",
		Servings: 2,
		ExtendedIngredients: []models.Ingredient{
			{Name: "rice", Amount: 150},
			{Name: "stock", Amount: 500},
		},
	}

	t.Run("scales amounts by ratio", func(t *testing.T) {
		got := ScaledTo(base, 4)
		if got.Servings != 4 {
			t.Errorf("Servings = %d, want 4", got.Servings)
		}
		if got.ExtendedIngredients[0].Amount != 300 || got.ExtendedIngredients[1].Amount != 1000 {
			t.Errorf("scaled amounts = %+v", got.ExtendedIngredients)
		}
		// Input must not be mutated.
		if base.ExtendedIngredients[0].Amount != 150 {
			t.Errorf("ScaledTo mutated its input: %+v", base.ExtendedIngredients)
		}
	})

	t.Run("invalid target servings is a no-op", func(t *testing.T) {
		got := ScaledTo(base, 0)
		if got.ExtendedIngredients[0].Amount != 150 {
			t.Errorf("amounts changed: %+v", got.ExtendedIngredients)
		}
	})

	t.Run("recipe without servings is a no-op", func(t *testing.T) {
		noServings := base
		noServings.Servings = 0
		got := ScaledTo(noServings, 4)
		if got.ExtendedIngredients[0].Amount != 150 {
			t.Errorf("amounts changed: %+v", got.ExtendedIngredients)
		}
	})
}
