package letter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/avoandes/avomarket/internal/domain/model"
)

// deliveryOffset is the promised delivery window after the order date.
const deliveryOffset = 7 * 24 * time.Hour

// Filename derives the download name from the order date as DDMMYY.
func Filename(orderDate time.Time) string {
	return fmt.Sprintf("letterofintent-%s.pdf", orderDate.Format("020106"))
}

// DeliveryDate returns the committed delivery date for an order.
func DeliveryDate(orderDate time.Time) time.Time {
	return orderDate.Add(deliveryOffset)
}

// Generator renders letters of intent confirming an accepted order's terms.
type Generator struct{}

// NewGenerator constructs Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces the PDF letter and its filename for an accepted order.
func (g *Generator) Render(order *model.Order, vendor, buyer *model.User) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Letter of Intent", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Date: "+formatDate(time.Now()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.CellFormat(0, 6, fmt.Sprintf("Dear %s,", vendor.Name), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"We are pleased to inform you that %s has accepted your proposal for the following avocado order:",
		buyer.CompanyName), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Order Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	rows := [][2]string{
		{"Order ID:", "#" + order.ID},
		{"Product:", fmt.Sprintf("%s Avocados - Caliber %s", order.Type, order.Caliber)},
		{"Quantity:", fmt.Sprintf("%d boxes", order.QuantityBoxes)},
		{"Price per Box:", "$" + order.UnitPrice().StringFixed(2)},
		{"Total Amount:", "$" + order.TotalAmount.StringFixed(2)},
		{"Order Date:", formatDate(order.OrderDate)},
		{"Delivery Date:", formatDate(DeliveryDate(order.OrderDate))},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Terms and Conditions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	terms := []string{
		"Payment terms: Net 30 days from delivery",
		"Quality standards: Grade A avocados, properly ripened",
		"Packaging: Standard avocado boxes, properly labeled",
		"Delivery: FOB destination, buyer's warehouse",
		"Inspection: 48-hour inspection period upon delivery",
		"Force majeure: Standard agricultural force majeure clauses apply",
	}
	for _, term := range terms {
		pdf.CellFormat(0, 6, "- "+term, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.MultiCell(0, 6,
		"This letter of intent confirms our commitment to proceed with this transaction subject to "+
			"the terms outlined above. A formal purchase order will follow within 48 hours.", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Buyer Information:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		buyer.CompanyName,
		"Contact: " + buyer.ContactName,
		"Email: " + buyer.Email,
		"Phone: " + buyer.Phone,
		"Address: " + buyer.Address,
	} {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.CellFormat(0, 6, "Sincerely,", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, buyer.ContactName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Procurement Manager", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, buyer.CompanyName, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render letter: %w", err)
	}
	return buf.Bytes(), Filename(order.OrderDate), nil
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
