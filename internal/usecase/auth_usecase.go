package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/usecase/interfaces"
	"laminasycortes/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidName        = errors.New("name must have at least 2 characters")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password must have at least 8 characters")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ITokenIssuer mints and verifies the session tokens handed to clients after
// login. Implemented by the JWT manager in infrastructure/auth.
type ITokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}

// IAuthUseCase covers registration, login and identity resolution.
//
// Outcomes are typed sentinels, never message text: callers that need to
// branch (such as the demo bootstrap auto-provisioning a user) test with
// errors.Is against ErrInvalidCredentials and friends.
type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (entities.User, error) {
	if !validate.Name(name) {
		return entities.User{}, ErrInvalidName
	}
	if !validate.Email(email) {
		return entities.User{}, ErrInvalidEmail
	}
	if !validate.Password(password) {
		return entities.User{}, ErrWeakPassword
	}

	email = normalizeEmail(email)

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	return u.users.Create(ctx, user)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	if !validate.Required(email) || !validate.Required(password) {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrUserNotFound
	}

	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
