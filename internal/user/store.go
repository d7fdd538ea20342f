package user

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// Store persists users. List returns users in creation order.
type Store interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, f Fields) (User, error)
	Update(ctx context.Context, id string, f Fields) (User, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps users in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryStore(seed ...User) *MemoryStore {
	s := &MemoryStore{}
	for _, u := range seed {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		s.users = append(s.users, u)
	}
	return s
}

func (s *MemoryStore) List(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, f Fields) (User, error) {
	u := User{ID: uuid.NewString(), Name: f.Name, Email: f.Email, Phone: f.Phone}
	s.mu.Lock()
	s.users = append(s.users, u)
	s.mu.Unlock()
	return u, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, f Fields) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Name = f.Name
			s.users[i].Email = f.Email
			s.users[i].Phone = f.Phone
			return s.users[i], nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
