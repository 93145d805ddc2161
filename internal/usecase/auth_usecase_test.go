package usecase

import (
	"context"
	"errors"
	"testing"

	"laminasycortes/internal/domain/entities"
	mock_interfaces "laminasycortes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type staticTokenIssuer struct {
	token string
	err   error
}

func (s staticTokenIssuer) Issue(string) (string, error)  { return s.token, s.err }
func (s staticTokenIssuer) Verify(string) (string, error) { return "", errors.New("not implemented") }

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("short name", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "A", "ana@example.com", "secret123")
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "Ana Ruiz", "ana@@example", "secret123")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Register(context.Background(), "Ana Ruiz", "ana@example.com", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("email already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.Register(context.Background(), "Ana Ruiz", "ana@example.com", "secret123")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("success normalizes email and hashes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, user entities.User) (entities.User, error) {
				if user.ID == "" || user.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamp: %+v", user)
				}
				if user.Email != "ana@example.com" {
					t.Fatalf("expected normalized email, got %s", user.Email)
				}
				if user.PasswordHash == "secret123" || user.PasswordHash == "" {
					t.Fatalf("password must be stored hashed")
				}
				if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
					t.Fatalf("hash does not match the password")
				}
				return user, nil
			},
		)

		user, err := uc.Register(context.Background(), "  Ana Ruiz  ", " Ana@Example.com ", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Name != "Ana Ruiz" {
			t.Fatalf("expected trimmed name, got %q", user.Name)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.User{ID: "user-1", Name: "Ana Ruiz", Email: "ana@example.com", PasswordHash: string(hash)}

	t.Run("empty credentials", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, _, err := uc.Login(context.Background(), "", "")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		_, _, err := uc.Login(context.Background(), "ana@example.com", "wrong-pass")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, staticTokenIssuer{token: "tok-123"})

		users.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)

		user, token, err := uc.Login(context.Background(), "Ana@Example.com", "secret123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "tok-123" {
			t.Fatalf("expected issued token, got %q", token)
		}
		if user.ID != "user-1" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}

func TestAuthUseCase_GetUser(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.GetUser(context.Background(), "  ")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.GetUser(context.Background(), "ghost")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		user, err := uc.GetUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "user-1" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})
}
