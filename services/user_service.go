package services

import (
	"fmt"
	"sync"
	"time"

	"backend/models"
	"backend/store"
	"backend/utils"
)

// UserService owns the user collection, password hashing and session tokens.
type UserService struct {
	mu     sync.Mutex
	store  *store.Store
	users  []models.User
	nextID int

	secret   []byte
	tokenTTL time.Duration
}

func NewUserService(st *store.Store, secret []byte, tokenTTL time.Duration) (*UserService, error) {
	s := &UserService{store: st, nextID: 1, secret: secret, tokenTTL: tokenTTL}
	if err := st.Load(&s.users); err != nil {
		return nil, err
	}
	for _, u := range s.users {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s, nil
}

// Register creates a user with a hashed password and default preferences.
func (s *UserService) Register(email, password string) (*models.PublicUser, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateUser
		}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:       s.nextID,
		Email:    email,
		Password: hashed,
	}
	s.nextID++
	s.users = append(s.users, user)

	if err := s.store.Flush(s.users); err != nil {
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// Login verifies the credentials and issues a session token. Unknown emails
// and wrong passwords fail identically.
func (s *UserService) Login(email, password string) (string, int, error) {
	s.mu.Lock()
	user := s.findByEmail(email)
	s.mu.Unlock()

	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", 0, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return token, user.ID, nil
}

// Authenticate verifies a session token and returns the user id it asserts.
func (s *UserService) Authenticate(token string) (int, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	id, err := utils.ParseUserID(token, s.secret)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// GetDetails returns the public view of the user with the given id.
func (s *UserService) GetDetails(id int) (*models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			public := u.Public()
			return &public, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// UpdatePreferences shallow-merges upd onto the user's preference set.
func (s *UserService) UpdatePreferences(id int, upd models.PreferencesUpdate) (*models.PublicUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		s.users[i].Preferences.Merge(upd)
		if err := s.store.Flush(s.users); err != nil {
			return nil, err
		}
		public := s.users[i].Public()
		return &public, nil
	}
	return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// findByEmail returns a copy of the matching user; caller holds the lock.
func (s *UserService) findByEmail(email string) *models.User {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u
		}
	}
	return nil
}
