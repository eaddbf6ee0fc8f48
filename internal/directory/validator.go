package directory

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/common"
	"github.com/dmitrijs2005/rescuemap/internal/logging"
	"github.com/dmitrijs2005/rescuemap/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Validator checks submitted credentials against a Directory.
type Validator struct {
	dir     Directory
	log     logging.Logger
	latency time.Duration
}

// NewValidator returns a Validator. latency is an artificial delay applied
// before each operation to mimic a remote credential service; pass 0 to
// disable it (tests do).
func NewValidator(dir Directory, log logging.Logger, latency time.Duration) *Validator {
	return &Validator{dir: dir, log: log, latency: latency}
}

// Login returns the user for an email/password pair that exactly matches a
// directory entry. Every failure is common.ErrInvalidCredentials: whether
// the email is unknown or the password wrong is not revealed.
func (v *Validator) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := v.simulateLatency(ctx); err != nil {
		return nil, err
	}

	user, hash, err := v.dir.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a new account. The email must not already exist
// (case-sensitive match); the new user gets a random UUID.
func (v *Validator) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if err := v.simulateLatency(ctx); err != nil {
		return nil, err
	}

	if _, _, err := v.dir.FindByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{ID: uuid.NewString(), Email: email, Name: name}
	if err := v.dir.Insert(ctx, user, string(hash)); err != nil {
		return nil, err
	}

	v.log.Info(ctx, "user registered", "id", user.ID)
	return user, nil
}

func (v *Validator) simulateLatency(ctx context.Context) error {
	if v.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(v.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
