package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/domain/numbering"
	"laminasycortes/internal/domain/pricing"
	"laminasycortes/internal/usecase/interfaces"
	"laminasycortes/internal/validate"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound              = errors.New("quote not found")
	ErrQuoteDataRequired          = errors.New("quote data is required")
	ErrClientNameRequired         = errors.New("client name is required")
	ErrProductDescriptionRequired = errors.New("product description is required")
	ErrInvalidQuantity            = errors.New("valid product quantity is required")
	ErrInvalidUnitPrice           = errors.New("valid product unit price is required")
	ErrInvalidClientEmail         = errors.New("valid client email is required")
	ErrAuthRequired               = errors.New("authentication required")
)

// IQuoteUseCase exposes the quote engine operations.
//
// Every method takes the acting owner id; an empty owner means the caller is
// unauthenticated. What happens then depends on the engine mode: the local
// single-user engine attributes the quote to "anonymous" and keeps working,
// the multi-user engine rejects with ErrAuthRequired. ClearAll exists for
// administrative/testing flows only.
type IQuoteUseCase interface {
	Create(ctx context.Context, ownerID string, input entities.QuoteInput) (entities.Quote, error)
	List(ctx context.Context, ownerID string) ([]entities.Quote, error)
	GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error)
	Update(ctx context.Context, ownerID, id string, patch entities.QuotePatch) (entities.Quote, error)
	Delete(ctx context.Context, ownerID, id string) (bool, error)
	ClearAll(ctx context.Context, ownerID string) error
}

type QuoteUseCase struct {
	repo           interfaces.IQuoteRepository
	allowAnonymous bool
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase builds the engine. allowAnonymous selects the local
// single-user behavior (missing identity becomes the anonymous sentinel
// instead of an error).
func NewQuoteUseCase(repo interfaces.IQuoteRepository, allowAnonymous bool) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, allowAnonymous: allowAnonymous}
}

func (u *QuoteUseCase) Create(ctx context.Context, ownerID string, input entities.QuoteInput) (entities.Quote, error) {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := validateInput(input); err != nil {
		return entities.Quote{}, err
	}

	number, err := u.nextNumber(ctx, owner)
	if err != nil {
		return entities.Quote{}, err
	}

	totals := pricing.Compute(input.Product.Quantity, input.Product.UnitPrice)

	createdBy := owner
	if createdBy == "" {
		createdBy = entities.AnonymousAuthor
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:     uuid.NewString(),
		Number: number,
		Client: entities.QuoteClient{
			Name:  input.Client.Name,
			Email: input.Client.Email,
			Phone: input.Client.Phone,
		},
		Product: entities.QuoteProduct{
			Description: input.Product.Description,
			Quantity:    input.Product.Quantity,
			UnitPrice:   input.Product.UnitPrice,
			Subtotal:    totals.Subtotal,
			IVA:         totals.IVA,
			Total:       totals.Total,
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
		OwnerID:   owner,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) List(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return nil, err
	}

	quotes, err := u.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	// Newest-first is a presentation ordering layered on the read, not a
	// storage invariant.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, ownerID, id string) (entities.Quote, error) {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return entities.Quote{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	q, err := u.repo.GetByID(ctx, owner, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, ownerID, id string, patch entities.QuotePatch) (entities.Quote, error) {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return entities.Quote{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	if err := validatePatch(patch); err != nil {
		return entities.Quote{}, err
	}

	stored, err := u.repo.GetByID(ctx, owner, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if stored.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	merged := applyPatch(stored, patch)
	merged.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, merged)
}

func (u *QuoteUseCase) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return false, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}
	return u.repo.DeleteByID(ctx, owner, id)
}

func (u *QuoteUseCase) ClearAll(ctx context.Context, ownerID string) error {
	owner, err := u.resolveOwner(ownerID)
	if err != nil {
		return err
	}
	return u.repo.DeleteByOwner(ctx, owner)
}

// resolveOwner normalizes the acting identity. An empty owner is only legal
// in anonymous (local single-user) mode.
func (u *QuoteUseCase) resolveOwner(ownerID string) (string, error) {
	owner := strings.TrimSpace(ownerID)
	if owner == "" && !u.allowAnonymous {
		return "", ErrAuthRequired
	}
	return owner, nil
}

// nextNumber prefers an atomic storage-side sequence when the repository
// offers one; otherwise it falls back to the snapshot policy, which is only
// safe with a single writer per scope.
func (u *QuoteUseCase) nextNumber(ctx context.Context, owner string) (string, error) {
	if seq, ok := u.repo.(interfaces.IQuoteSequencer); ok {
		return seq.NextNumber(ctx, owner)
	}
	numbers, err := u.repo.ListNumbers(ctx, owner)
	if err != nil {
		return "", err
	}
	return numbering.Next(numbers), nil
}

// validateInput enforces the creation rules in a fixed order: data presence,
// client name, product description, quantity, unit price, then the optional
// client email. Zero unit price is accepted (free samples and no-charge line
// items exist); negative is not.
func validateInput(input entities.QuoteInput) error {
	if input == (entities.QuoteInput{}) {
		return ErrQuoteDataRequired
	}
	if !validate.Required(input.Client.Name) {
		return ErrClientNameRequired
	}
	if !validate.Required(input.Product.Description) {
		return ErrProductDescriptionRequired
	}
	if input.Product.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if input.Product.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if validate.Required(input.Client.Email) && !validate.Email(input.Client.Email) {
		return ErrInvalidClientEmail
	}
	return nil
}

func validatePatch(patch entities.QuotePatch) error {
	if patch.Product.Quantity != nil && *patch.Product.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if patch.Product.UnitPrice != nil && *patch.Product.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if patch.Client.Email != nil && validate.Required(*patch.Client.Email) && !validate.Email(*patch.Client.Email) {
		return ErrInvalidClientEmail
	}
	return nil
}

// applyPatch merges the patch over the stored quote. Nil patch fields keep
// stored values. Any change to quantity or unit price recomputes all derived
// totals from the merged inputs.
func applyPatch(stored entities.Quote, patch entities.QuotePatch) entities.Quote {
	q := stored

	if patch.Client.Name != nil {
		q.Client.Name = *patch.Client.Name
	}
	if patch.Client.Email != nil {
		q.Client.Email = *patch.Client.Email
	}
	if patch.Client.Phone != nil {
		q.Client.Phone = *patch.Client.Phone
	}

	if patch.Product.Description != nil {
		q.Product.Description = *patch.Product.Description
	}
	if patch.Product.Quantity != nil {
		q.Product.Quantity = *patch.Product.Quantity
	}
	if patch.Product.UnitPrice != nil {
		q.Product.UnitPrice = *patch.Product.UnitPrice
	}

	if patch.Product.Quantity != nil || patch.Product.UnitPrice != nil {
		totals := pricing.Compute(q.Product.Quantity, q.Product.UnitPrice)
		q.Product.Subtotal = totals.Subtotal
		q.Product.IVA = totals.IVA
		q.Product.Total = totals.Total
	}

	return q
}
