package repository

import (
	"context"
	"strings"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
)

// IUserRepository stores staff accounts and their sessions.
type IUserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error

	FindSession(ctx context.Context, token string) (*models.Session, error)
	SaveSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, token string) error
}

// UserRepository implements IUserRepository on a DocumentStore.
type UserRepository struct {
	users    collection[models.User]
	sessions collection[models.Session]
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(store DocumentStore) IUserRepository {
	return &UserRepository{
		users:    collection[models.User]{store: store, name: models.CollectionUsers},
		sessions: collection[models.Session]{store: store, name: models.CollectionSessions},
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.users.all(ctx)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.users.get(ctx, id)
}

// FindByEmail compares addresses case-insensitively over the whole collection.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.users.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.users.store.Set(ctx, r.users.name, user.ID, user)
}

func (r *UserRepository) FindSession(ctx context.Context, token string) (*models.Session, error) {
	return r.sessions.get(ctx, token)
}

func (r *UserRepository) SaveSession(ctx context.Context, session *models.Session) error {
	return r.sessions.store.Set(ctx, r.sessions.name, session.ID, session)
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	return r.sessions.store.Delete(ctx, r.sessions.name, token)
}
