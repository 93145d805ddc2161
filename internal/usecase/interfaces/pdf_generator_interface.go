package interfaces

import "laminasycortes/internal/domain/entities"

// IPDFGenerator renders a quote as a printable PDF document.
type IPDFGenerator interface {
	Generate(q entities.Quote) ([]byte, error)
}
