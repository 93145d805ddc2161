package entities

import "time"

// AnonymousAuthor is recorded as CreatedBy when the local engine accepts a
// quote without an authenticated user.
const AnonymousAuthor = "anonymous"

// Quote is a priced offer (cotización) combining client and product data with
// the derived monetary totals.
//
// Storage model:
//   - DynamoDB: PK id, owner scoping via owner_id attribute
//   - SQLite (local mode): JSON array under a single storage key
//
// Monetary representation:
//   - Subtotal = Quantity * UnitPrice
//   - IVA      = Subtotal * 0.16
//   - Total    = Subtotal * 1.16
//
// The three derived fields are always recomputed together whenever Quantity or
// UnitPrice changes; they are never accepted from callers.
type Quote struct {
	ID        string       `json:"id"`
	Number    string       `json:"number"`
	Client    QuoteClient  `json:"client"`
	Product   QuoteProduct `json:"product"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	CreatedBy string       `json:"createdBy"`
	OwnerID   string       `json:"-"`
}

type QuoteClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type QuoteProduct struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	IVA         float64 `json:"iva"`
	Total       float64 `json:"total"`
}

// QuoteInput carries the caller-supplied fields for quote creation. Derived
// fields, id, number and timestamps are assigned by the use case.
type QuoteInput struct {
	Client  QuoteClientInput
	Product QuoteProductInput
}

type QuoteClientInput struct {
	Name  string
	Email string
	Phone string
}

type QuoteProductInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// QuotePatch enumerates the fields an update may override. A nil field means
// "keep the stored value"; it never means "clear".
type QuotePatch struct {
	Client  QuoteClientPatch
	Product QuoteProductPatch
}

type QuoteClientPatch struct {
	Name  *string
	Email *string
	Phone *string
}

type QuoteProductPatch struct {
	Description *string
	Quantity    *float64
	UnitPrice   *float64
}

// IsZero reports whether the patch carries no changes at all.
func (p QuotePatch) IsZero() bool {
	return p.Client.Name == nil && p.Client.Email == nil && p.Client.Phone == nil &&
		p.Product.Description == nil && p.Product.Quantity == nil && p.Product.UnitPrice == nil
}
