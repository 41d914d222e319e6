package models

type User struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Password    string      `json:"password"` // bcrypt hash, never plaintext
	Preferences Preferences `json:"preferences"`
}

// Preferences are the dietary toggles a user can set.
type Preferences struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`
	DairyFree  bool `json:"dairyFree"`
	Ketogenic  bool `json:"ketogenic"`
}

// PreferencesUpdate is a partial preference set; nil fields keep their value.
type PreferencesUpdate struct {
	Vegetarian *bool `json:"vegetarian"`
	Vegan      *bool `json:"vegan"`
	GlutenFree *bool `json:"glutenFree"`
	DairyFree  *bool `json:"dairyFree"`
	Ketogenic  *bool `json:"ketogenic"`
}

// PublicUser is the client-facing user shape with the password omitted.
type PublicUser struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Preferences: u.Preferences}
}

// Merge applies the non-nil fields of upd onto p.
func (p *Preferences) Merge(upd PreferencesUpdate) {
	if upd.Vegetarian != nil {
		p.Vegetarian = *upd.Vegetarian
	}
	if upd.Vegan != nil {
		p.Vegan = *upd.Vegan
	}
	if upd.GlutenFree != nil {
		p.GlutenFree = *upd.GlutenFree
	}
	if upd.DairyFree != nil {
		p.DairyFree = *upd.DairyFree
	}
	if upd.Ketogenic != nil {
		p.Ketogenic = *upd.Ketogenic
	}
}
