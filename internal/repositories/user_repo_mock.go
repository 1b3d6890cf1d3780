package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"userorders/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository and
// OrderRepository. Every mutation holds the write lock, so the gate and the
// mutation cannot interleave with another request.
type MockUserRepository struct {
	users       map[int64]models.User
	nextID      uint
	nextOrderID uint
	mu          sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[int64]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken(user, 0) {
		return ErrDuplicate
	}
	r.nextID++
	user.ID = r.nextID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	for i := range user.Orders {
		r.nextOrderID++
		user.Orders[i].ID = r.nextOrderID
		user.Orders[i].OwnerID = user.ID
	}
	r.users[user.UserID] = clone(*user)
	return nil
}

// GetAll returns all users ordered by creation, without password and orders.
func (r *MockUserRepository) GetAll(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, projection(u))
	}
	sort.Slice(userList, func(i, j int) bool { return userList[i].ID < userList[j].ID })
	return userList, nil
}

// GetByUserID returns a user by userId, without password and orders.
func (r *MockUserRepository) GetByUserID(_ context.Context, userID int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	p := projection(u)
	return &p, nil
}

// Exists reports whether userId is stored.
func (r *MockUserRepository) Exists(_ context.Context, userID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok, nil
}

// Replace overwrites an existing user.
func (r *MockUserRepository) Replace(_ context.Context, userID int64, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[userID]
	if !ok {
		return ErrNotFound
	}
	if r.taken(user, current.ID) {
		return ErrDuplicate
	}
	user.ID = current.ID
	user.CreatedAt = current.CreatedAt
	user.UpdatedAt = time.Now()
	if user.Orders == nil {
		user.Orders = current.Orders
	} else {
		for i := range user.Orders {
			r.nextOrderID++
			user.Orders[i].ID = r.nextOrderID
			user.Orders[i].OwnerID = current.ID
		}
	}
	delete(r.users, userID)
	r.users[user.UserID] = clone(*user)
	return nil
}

// Delete removes a user and returns it.
func (r *MockUserRepository) Delete(_ context.Context, userID int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.users, userID)
	p := projection(u)
	return &p, nil
}

// taken reports whether another user (internal id != self) already holds
// user's userId, username or email.
func (r *MockUserRepository) taken(user *models.User, self uint) bool {
	for _, u := range r.users {
		if u.ID == self {
			continue
		}
		if u.UserID == user.UserID || u.Username == user.Username || u.Email == user.Email {
			return true
		}
	}
	return false
}

func projection(u models.User) models.User {
	p := clone(u)
	p.Password = ""
	p.Orders = nil
	return p
}

func clone(u models.User) models.User {
	if u.Hobbies != nil {
		u.Hobbies = append(models.Hobbies(nil), u.Hobbies...)
	}
	if u.Orders != nil {
		u.Orders = append([]models.Order(nil), u.Orders...)
	}
	return u
}
