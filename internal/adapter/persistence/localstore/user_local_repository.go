package localstore

import (
	"context"
	"strings"
	"time"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/usecase/interfaces"
)

// storedUser is the on-disk user shape. PasswordHash needs an explicit JSON
// tag here because the entity hides it from API payloads.
type storedUser struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// UserLocalRepository keeps registered users as one JSON array under UsersKey.
type UserLocalRepository struct {
	store *Store
}

var _ interfaces.IUserRepository = (*UserLocalRepository)(nil)

func NewUserLocalRepository(store *Store) *UserLocalRepository {
	return &UserLocalRepository{store: store}
}

func (r *UserLocalRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	users = append(users, toStoredUser(u))
	if err := r.store.SetItem(ctx, UsersKey, users); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserLocalRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, su := range users {
		if strings.EqualFold(su.Email, email) {
			return fromStoredUser(su), nil
		}
	}
	return entities.User{}, nil
}

func (r *UserLocalRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	users, err := r.readAll(ctx)
	if err != nil {
		return entities.User{}, err
	}
	for _, su := range users {
		if su.ID == id {
			return fromStoredUser(su), nil
		}
	}
	return entities.User{}, nil
}

func toStoredUser(u entities.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromStoredUser(su storedUser) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, su.CreatedAt)
	return entities.User{
		ID:           su.ID,
		Name:         su.Name,
		Email:        su.Email,
		PasswordHash: su.PasswordHash,
		CreatedAt:    createdAt,
	}
}

func (r *UserLocalRepository) readAll(ctx context.Context) ([]storedUser, error) {
	var users []storedUser
	if _, err := r.store.GetItem(ctx, UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}
