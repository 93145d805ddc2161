package response

import (
	"time"

	"laminasycortes/internal/domain/entities"
)

// QuoteResponse is the nested application-facing shape: client and product
// grouped, derived totals included.
type QuoteResponse struct {
	ID        string               `json:"id"`
	Number    string               `json:"number"`
	Client    QuoteClientResponse  `json:"client"`
	Product   QuoteProductResponse `json:"product"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
	CreatedBy string               `json:"createdBy"`
}

type QuoteClientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type QuoteProductResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	IVA         float64 `json:"iva"`
	Total       float64 `json:"total"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:     q.ID,
		Number: q.Number,
		Client: QuoteClientResponse{
			Name:  q.Client.Name,
			Email: q.Client.Email,
			Phone: q.Client.Phone,
		},
		Product: QuoteProductResponse{
			Description: q.Product.Description,
			Quantity:    q.Product.Quantity,
			UnitPrice:   q.Product.UnitPrice,
			Subtotal:    q.Product.Subtotal,
			IVA:         q.Product.IVA,
			Total:       q.Product.Total,
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
		CreatedBy: q.CreatedBy,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
