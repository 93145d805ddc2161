package interfaces

import (
	"context"

	"laminasycortes/internal/domain/entities"
)

// IUserRepository abstracts account persistence for the auth service.
//
// GetByEmail and GetByID report not-found as a zero-value User with a nil
// error, matching IQuoteRepository semantics.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}
