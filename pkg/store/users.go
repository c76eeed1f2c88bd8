package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"event-reminder-service/pkg/models"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore holds registered accounts
type UserStore interface {
	Register(username, password string) error
	Verify(username, password string) (*models.User, error)
}

// Users is the default UserStore. With a data directory it persists
// accounts as JSON; with an empty one all state is volatile.
type Users struct {
	dataDir string
	mu      sync.RWMutex
	users   []models.User
}

// NewUsers creates a new Users store rooted at dataDir
func NewUsers(dataDir string) (*Users, error) {
	s := &Users{
		dataDir: dataDir,
		users:   make([]models.User, 0),
	}

	if dataDir == "" {
		return s, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Users) usersFile() string {
	return filepath.Join(s.dataDir, "users.json")
}

func (s *Users) load() error {
	data, err := os.ReadFile(s.usersFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No data yet
		}
		return err
	}
	return json.Unmarshal(data, &s.users)
}

func (s *Users) save() error {
	if s.dataDir == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.usersFile(), data, 0644)
}

// Register adds a new account. Usernames are compared case-sensitively;
// a taken name fails with ErrDuplicateUser and leaves the store untouched.
// Only the bcrypt hash of the password is kept.
func (s *Users) Register(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return ErrDuplicateUser
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.users = append(s.users, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	return s.save()
}

// Verify checks a username/password pair and returns the matching user,
// or ErrInvalidCredentials on any mismatch
func (s *Users) Verify(username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return nil, ErrInvalidCredentials
			}
			user := u
			return &user, nil
		}
	}
	return nil, ErrInvalidCredentials
}
