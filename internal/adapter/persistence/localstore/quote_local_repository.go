package localstore

import (
	"context"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/usecase/interfaces"
)

// QuoteLocalRepository keeps all quotes as one JSON array under QuotesKey.
//
// This is the local single-user backend: there is one global scope, the owner
// id parameters are ignored, and every operation is a full read-modify-write
// of the array. It deliberately does not implement IQuoteSequencer; numbering
// stays a snapshot policy in the use case, which is safe here because the
// store is single-writer.
type QuoteLocalRepository struct {
	store *Store
}

var _ interfaces.IQuoteRepository = (*QuoteLocalRepository)(nil)

func NewQuoteLocalRepository(store *Store) *QuoteLocalRepository {
	return &QuoteLocalRepository{store: store}
}

func (r *QuoteLocalRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	quotes = append(quotes, q)
	if err := r.writeAll(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteLocalRepository) ListByOwner(ctx context.Context, _ string) ([]entities.Quote, error) {
	return r.readAll(ctx)
}

func (r *QuoteLocalRepository) GetByID(ctx context.Context, _ string, id string) (entities.Quote, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteLocalRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for i := range quotes {
		if quotes[i].ID == q.ID {
			quotes[i] = q
			if err := r.writeAll(ctx, quotes); err != nil {
				return entities.Quote{}, err
			}
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (r *QuoteLocalRepository) DeleteByID(ctx context.Context, _ string, id string) (bool, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return false, err
	}
	kept := quotes[:0]
	for _, q := range quotes {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(quotes) {
		return false, nil
	}
	if err := r.writeAll(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *QuoteLocalRepository) DeleteByOwner(ctx context.Context, _ string) error {
	return r.writeAll(ctx, []entities.Quote{})
}

func (r *QuoteLocalRepository) ListNumbers(ctx context.Context, _ string) ([]string, error) {
	quotes, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(quotes))
	for _, q := range quotes {
		numbers = append(numbers, q.Number)
	}
	return numbers, nil
}

func (r *QuoteLocalRepository) readAll(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote
	if _, err := r.store.GetItem(ctx, QuotesKey, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteLocalRepository) writeAll(ctx context.Context, quotes []entities.Quote) error {
	return r.store.SetItem(ctx, QuotesKey, quotes)
}
