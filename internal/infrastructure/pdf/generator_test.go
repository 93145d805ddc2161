package pdf

import (
	"bytes"
	"testing"
	"time"

	"laminasycortes/internal/domain/entities"
)

func TestGenerator_Generate(t *testing.T) {
	g := New("")

	q := entities.Quote{
		ID:     "q-1",
		Number: "COT-001",
		Client: entities.QuoteClient{Name: "Carlos Mendoza", Email: "carlos@example.com", Phone: "555-0101"},
		Product: entities.QuoteProduct{
			Description: "Lámina galvanizada calibre 22",
			Quantity:    5,
			UnitPrice:   1500,
			Subtotal:    7500,
			IVA:         1200,
			Total:       8700,
		},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: "demo@laminasycortes.com",
	}

	doc, err := g.Generate(q)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatalf("expected a non-empty document")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF")) {
		t.Fatalf("expected a PDF header, got %q", doc[:8])
	}
}

func TestGenerator_MinimalQuote(t *testing.T) {
	// No email, no phone, fractional quantity.
	g := New("Taller Norte")

	q := entities.Quote{
		Number:    "COT-002",
		Client:    entities.QuoteClient{Name: "Ana"},
		Product:   entities.QuoteProduct{Description: "Corte", Quantity: 2.5, UnitPrice: 10, Subtotal: 25, IVA: 4, Total: 29},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: entities.AnonymousAuthor,
	}

	doc, err := g.Generate(q)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(doc) == 0 {
		t.Fatalf("expected a non-empty document")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := formatQuantity(3); got != "3" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := formatQuantity(2.5); got != "2.50" {
		t.Fatalf("unexpected: %q", got)
	}
}
