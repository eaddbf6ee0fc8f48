// Package directory decides login and registration outcomes against a
// user directory. The directory itself sits behind a small interface so
// the in-memory demo backend can be swapped for a real credential store
// without touching the session or guard layers.
package directory

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/rescuemap/internal/common"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Directory is the capability a credential backend must provide.
//
// Contract:
//   - FindByEmail matches the email exactly (case-sensitive) and returns
//     the user together with its bcrypt password hash, or common.ErrNotFound.
//   - Insert adds a new user; common.ErrEmailTaken if the email exists.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, string, error)
	Insert(ctx context.Context, user *models.User, passwordHash string) error
}

// SeedUser describes one account to pre-populate a directory with.
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

// DefaultSeed returns the demo accounts the application ships with.
func DefaultSeed() []SeedUser {
	return []SeedUser{
		{Name: "Admin", Email: "admin@rescue.com", Password: "password123"},
		{Name: "Demo User", Email: "demo@rescue.com", Password: "demo123"},
	}
}

// InMemoryDirectory is the demo Directory: a process-lifetime map keyed
// by exact email. It is safe for concurrent use.
type InMemoryDirectory struct {
	mu     sync.Mutex
	users  map[string]*models.User
	hashes map[string]string
	nextID int
}

func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{
		users:  make(map[string]*models.User),
		hashes: make(map[string]string),
	}
}

// NewSeededDirectory builds an InMemoryDirectory pre-populated with the
// given accounts. Seed users get small sequential ids, matching the demo
// data the application historically shipped with.
func NewSeededDirectory(seed []SeedUser) (*InMemoryDirectory, error) {
	d := NewInMemoryDirectory()
	for _, su := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		d.nextID++
		user := &models.User{ID: strconv.Itoa(d.nextID), Email: su.Email, Name: su.Name}
		if err := d.Insert(context.Background(), user, string(hash)); err != nil {
			// Duplicate seed emails: the first entry wins.
			if errors.Is(err, common.ErrEmailTaken) {
				d.nextID--
				continue
			}
			return nil, err
		}
	}
	return d, nil
}

func (d *InMemoryDirectory) FindByEmail(_ context.Context, email string) (*models.User, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[email]
	if !ok {
		return nil, "", common.ErrNotFound
	}
	u := *user
	return &u, d.hashes[email], nil
}

func (d *InMemoryDirectory) Insert(_ context.Context, user *models.User, passwordHash string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[user.Email]; ok {
		return common.ErrEmailTaken
	}
	u := *user
	d.users[user.Email] = &u
	d.hashes[user.Email] = passwordHash
	return nil
}
