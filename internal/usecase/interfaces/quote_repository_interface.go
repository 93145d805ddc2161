package interfaces

import (
	"context"

	"laminasycortes/internal/domain/entities"
)

// IQuoteRepository abstracts quote persistence.
//
// Scoping: every operation receives the owning user id. The local (SQLite
// blob) implementation runs a single global scope and ignores the owner; the
// DynamoDB implementation restricts reads and writes to rows whose owner_id
// matches.
//
// Not-found is reported as a zero-value Quote with a nil error; errors are
// reserved for storage failures.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Quote, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	DeleteByID(ctx context.Context, ownerID, id string) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID string) error
	// ListNumbers returns the display numbers already issued in the scope,
	// feeding the snapshot numbering policy.
	ListNumbers(ctx context.Context, ownerID string) ([]string, error)
}

// IQuoteSequencer is optionally implemented by repositories whose backend can
// issue quote numbers through an atomic sequence (the DynamoDB counter table).
// When present, the use case delegates numbering to it instead of computing
// the next number from a snapshot, which closes the duplicate-number race
// under concurrent writers.
type IQuoteSequencer interface {
	NextNumber(ctx context.Context, ownerID string) (string, error)
}
