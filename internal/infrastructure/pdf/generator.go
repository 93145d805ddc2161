package pdf

import (
	"bytes"
	"fmt"

	"laminasycortes/internal/domain/entities"
	"laminasycortes/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders a quote as an A4 document with the client block, the
// product line and the totals. Core fonts only; the cp1252 translator covers
// the accented characters Spanish client names carry.
type Generator struct {
	companyName string
}

var _ interfaces.IPDFGenerator = (*Generator)(nil)

func New(companyName string) *Generator {
	if companyName == "" {
		companyName = "Láminas y Cortes"
	}
	return &Generator{companyName: companyName}
}

func (g *Generator) Generate(q entities.Quote) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Cotización "+q.Number, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, tr(g.companyName))
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 7, tr(fmt.Sprintf("Cotización %s", q.Number)))
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 5, tr(fmt.Sprintf("Fecha: %s", q.CreatedAt.Format("02/01/2006"))))
	doc.Ln(8)

	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Cliente")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 5, tr(q.Client.Name))
	doc.Ln(5)
	if q.Client.Email != "" {
		doc.Cell(0, 5, tr(q.Client.Email))
		doc.Ln(5)
	}
	if q.Client.Phone != "" {
		doc.Cell(0, 5, tr(q.Client.Phone))
		doc.Ln(5)
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(95, 7, tr("Descripción"))
	doc.Cell(25, 7, "Cantidad")
	doc.Cell(35, 7, "Precio unitario")
	doc.Cell(35, 7, "Importe")
	doc.Ln(7)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(95, 6, tr(truncate(q.Product.Description, 55)))
	doc.Cell(25, 6, formatQuantity(q.Product.Quantity))
	doc.Cell(35, 6, formatMoney(q.Product.UnitPrice))
	doc.Cell(35, 6, formatMoney(q.Product.Subtotal))
	doc.Ln(10)

	doc.SetX(115)
	doc.Cell(40, 6, "Subtotal")
	doc.Cell(35, 6, formatMoney(q.Product.Subtotal))
	doc.Ln(6)
	doc.SetX(115)
	doc.Cell(40, 6, "IVA (16%)")
	doc.Cell(35, 6, formatMoney(q.Product.IVA))
	doc.Ln(6)
	doc.SetX(115)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(40, 7, "Total")
	doc.Cell(35, 7, formatMoney(q.Product.Total))
	doc.Ln(10)

	doc.SetFont("Helvetica", "I", 8)
	doc.Cell(0, 5, tr(fmt.Sprintf("Generada por %s", q.CreatedBy)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatQuantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
