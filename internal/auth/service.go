package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	store *memstore.Collection[User]
}

// NewService constructs a new Service.
func NewService(store *memstore.Collection[User]) *Service {
	return &Service{store: store}
}

// Authenticate validates email/password credentials. Every failure path
// returns the same sentinel so responses do not reveal which part was
// wrong.
func (s *Service) Authenticate(_ context.Context, email, password string) (User, error) {
	for _, user := range s.store.List() {
		if !strings.EqualFold(user.Email, email) {
			continue
		}
		if !user.Active {
			return User{}, shared.ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return User{}, shared.ErrInvalidCredentials
		}
		return user, nil
	}
	return User{}, shared.ErrInvalidCredentials
}

// Get returns one user by id.
func (s *Service) Get(_ context.Context, id string) (User, error) {
	user, ok := s.store.Get(id)
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return user, nil
}

// Register stores a demo account with a freshly hashed password.
func (s *Service) Register(_ context.Context, user User, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	user.PasswordHash = string(hash)
	user.Active = true
	return s.store.Create(user), nil
}
