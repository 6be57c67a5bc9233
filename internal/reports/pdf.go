package reports

import (
	"fmt"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/SscSPs/jewellery_billing_app/internal/utils"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	mutedColor  = &props.Color{Red: 90, Green: 90, Blue: 90}
	headerColor = &props.Color{Red: 33, Green: 37, Blue: 41}
	white       = &props.Color{Red: 255, Green: 255, Blue: 255}
	totalBg     = &props.Color{Red: 240, Green: 240, Blue: 240}
)

// BillPDF renders one saved estimate as an A4 bill.
// The standard PDF fonts have no rupee glyph, so amounts are written as "Rs.".
func BillPDF(shopName string, e *domain.Estimate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)
	addBillHeader(m, shopName, e)
	addItemSection(m, e)
	addStoneTable(m, e.Breakdown.StoneLines)
	addTotals(m, &e.Breakdown)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate bill PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func billTitle(kind domain.EstimateKind) string {
	if kind == domain.KindBill {
		return "TAX INVOICE"
	}
	return "ESTIMATE"
}

func rupees(d decimal.Decimal) string {
	return "Rs. " + utils.FormatIndianGrouping(d)
}

func addBillHeader(m core.Maroto, shopName string, e *domain.Estimate) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(text.New(shopName, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center})),
		),
		row.New(8).Add(
			col.New(12).Add(text.New(billTitle(e.Kind), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center})),
		),
		row.New(7).Add(
			col.New(6).Add(text.New("No: "+e.Number, props.Text{Size: 9, Color: mutedColor})),
			col.New(6).Add(text.New("Date: "+e.EstimateDate.Format("02 Jan 2006"), props.Text{Size: 9, Align: align.Right, Color: mutedColor})),
		),
	)

	customer := "Customer: " + e.CustomerName
	if e.CustomerPhone != "" {
		customer += " (" + e.CustomerPhone + ")"
	}
	m.AddRows(
		row.New(7).Add(col.New(12).Add(text.New(customer, props.Text{Size: 9}))),
		row.New(4),
	)
}

func addItemSection(m core.Maroto, e *domain.Estimate) {
	b := &e.Breakdown
	item := e.ItemName
	if e.ItemCode != "" {
		item = fmt.Sprintf("%s (%s)", e.ItemName, e.ItemCode)
	}
	m.AddRows(tableHeader("Item", "Purity", "Net Wt (g)", "Fine Wt (g)"))
	m.AddRows(row.New(7).Add(
		col.New(6).Add(text.New(item, props.Text{Size: 9})),
		col.New(2).Add(text.New(fmt.Sprintf("%dK", b.Purity), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(b.NetWeight.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		col.New(2).Add(text.New(b.FineWeight.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
	))
	m.AddRows(row.New(4))

	m.AddRows(
		amountRow(fmt.Sprintf("Gold value @ %s/g", rupees(b.GoldPricePerGram)), rupees(b.GoldValue), false),
		amountRow("Wastage", rupees(b.WastageAmount), false),
		amountRow("Making charges", rupees(b.MakingAmount), false),
		amountRow("Total gold amount", rupees(b.TotalGoldAmount), true),
	)
}

func addStoneTable(m core.Maroto, stones []domain.StoneLineCost) {
	if len(stones) == 0 {
		return
	}
	m.AddRows(row.New(4), tableHeader("Stone", "Carats", "Rate/ct", "Cost"))
	for _, s := range stones {
		name := s.Name
		if name == "" {
			name = s.Code
		}
		m.AddRows(row.New(6).Add(
			col.New(6).Add(text.New(name, props.Text{Size: 8})),
			col.New(2).Add(text.New(s.WeightCarats.String(), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(utils.FormatIndianGrouping(s.RatePerCarat), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(utils.FormatIndianGrouping(s.Cost), props.Text{Size: 8, Align: align.Right})),
		))
	}
}

func addTotals(m core.Maroto, b *domain.PricingBreakdown) {
	m.AddRows(row.New(4))
	m.AddRows(amountRow("Stones", rupees(b.StoneTotal), false))
	if b.CertificationCharge.IsPositive() {
		m.AddRows(amountRow(fmt.Sprintf("Certification (%s ct)", b.DiamondCarats.StringFixed(domain.CaratPlaces)), rupees(b.CertificationCharge), false))
	}
	m.AddRows(amountRow("Subtotal", rupees(b.Subtotal), true))

	if b.Mode == domain.ModeUSD && b.GrandTotalUSD != nil {
		m.AddRows(
			amountRow("Exchange rate (Rs. per USD)", b.USDToINRRate.String(), false),
			amountRow("Subtotal (USD)", utils.FormatUSD(*b.SubtotalUSD), false),
			amountRow(fmt.Sprintf("Customs duty + state tax (%s%%)", b.TaxPercent.String()), utils.FormatUSD(*b.TaxAmountUSD), false),
			amountRow("Grand total (USD)", utils.FormatUSD(*b.GrandTotalUSD), true),
			amountRow("Tax (INR)", rupees(b.TaxAmount), false),
			amountRow("Grand total (INR)", rupees(b.GrandTotal), true),
		)
		return
	}
	m.AddRows(
		amountRow(fmt.Sprintf("GST (%s%%)", b.TaxPercent.String()), rupees(b.TaxAmount), false),
		amountRow("Grand total", rupees(b.GrandTotal), true),
	)
}

func tableHeader(first, second, third, fourth string) core.Row {
	style := props.Text{Size: 8, Style: fontstyle.Bold, Color: white, Align: align.Right}
	left := style
	left.Align = align.Left
	cell := &props.Cell{BackgroundColor: headerColor}
	return row.New(7).Add(
		col.New(6).Add(text.New(first, left)).WithStyle(cell),
		col.New(2).Add(text.New(second, style)).WithStyle(cell),
		col.New(2).Add(text.New(third, style)).WithStyle(cell),
		col.New(2).Add(text.New(fourth, style)).WithStyle(cell),
	)
}

func amountRow(label, value string, emphasised bool) core.Row {
	labelStyle := props.Text{Size: 9, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}
	labelCol := col.New(8)
	valueCol := col.New(4)
	if emphasised {
		labelStyle.Style = fontstyle.Bold
		valueStyle.Style = fontstyle.Bold
		cell := &props.Cell{BackgroundColor: totalBg}
		labelCol.WithStyle(cell)
		valueCol.WithStyle(cell)
	}
	return row.New(7).Add(
		labelCol.Add(text.New(label, labelStyle)),
		valueCol.Add(text.New(value, valueStyle)),
	)
}
