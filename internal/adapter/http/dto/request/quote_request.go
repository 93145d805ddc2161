package request

import "laminasycortes/internal/domain/entities"

// QuoteRequest is the creation payload. Field-level validation (required
// name, positive quantity, ...) happens in the use case so the error order
// stays stable regardless of transport.
type QuoteRequest struct {
	Client  QuoteClientRequest  `json:"client"`
	Product QuoteProductRequest `json:"product"`
}

type QuoteClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type QuoteProductRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

func (r QuoteRequest) ToInput() entities.QuoteInput {
	return entities.QuoteInput{
		Client: entities.QuoteClientInput{
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		},
		Product: entities.QuoteProductInput{
			Description: r.Product.Description,
			Quantity:    r.Product.Quantity,
			UnitPrice:   r.Product.UnitPrice,
		},
	}
}

// QuoteUpdateRequest is the PATCH payload. Pointer fields distinguish "field
// absent, keep stored value" from an explicit new value; derived totals are
// never accepted from the wire.
type QuoteUpdateRequest struct {
	Client  *QuoteClientUpdateRequest  `json:"client"`
	Product *QuoteProductUpdateRequest `json:"product"`
}

type QuoteClientUpdateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type QuoteProductUpdateRequest struct {
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
}

func (r QuoteUpdateRequest) ToPatch() entities.QuotePatch {
	var patch entities.QuotePatch
	if r.Client != nil {
		patch.Client = entities.QuoteClientPatch{
			Name:  r.Client.Name,
			Email: r.Client.Email,
			Phone: r.Client.Phone,
		}
	}
	if r.Product != nil {
		patch.Product = entities.QuoteProductPatch{
			Description: r.Product.Description,
			Quantity:    r.Product.Quantity,
			UnitPrice:   r.Product.UnitPrice,
		}
	}
	return patch
}
