// Package reports renders saved estimates as spreadsheets and printable bills.
package reports

import (
	"fmt"

	"github.com/SscSPs/jewellery_billing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const estimatesSheet = "Estimates"

type excelColumn struct {
	header string
	width  float64
	money  bool
	value  func(e *domain.Estimate) any
}

func amount(d decimal.Decimal) any { return d.InexactFloat64() }

func optionalAmount(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}

var estimateColumns = []excelColumn{
	{header: "Number", width: 34, value: func(e *domain.Estimate) any { return e.Number }},
	{header: "Kind", width: 10, value: func(e *domain.Estimate) any { return string(e.Kind) }},
	{header: "Date", width: 12, value: func(e *domain.Estimate) any { return e.EstimateDate.Format("2006-01-02") }},
	{header: "Customer", width: 24, value: func(e *domain.Estimate) any { return sanitizeExcelCell(e.CustomerName) }},
	{header: "Phone", width: 14, value: func(e *domain.Estimate) any { return sanitizeExcelCell(e.CustomerPhone) }},
	{header: "Item Code", width: 12, value: func(e *domain.Estimate) any { return sanitizeExcelCell(e.ItemCode) }},
	{header: "Item Name", width: 24, value: func(e *domain.Estimate) any { return sanitizeExcelCell(e.ItemName) }},
	{header: "Mode", width: 7, value: func(e *domain.Estimate) any { return string(e.Breakdown.Mode) }},
	{header: "Purity (K)", width: 10, value: func(e *domain.Estimate) any { return e.Breakdown.Purity }},
	{header: "Net Wt (g)", width: 11, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.NetWeight) }},
	{header: "Gold Value", width: 14, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.GoldValue) }},
	{header: "Wastage", width: 12, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.WastageAmount) }},
	{header: "Making", width: 12, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.MakingAmount) }},
	{header: "Stones", width: 12, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.StoneTotal) }},
	{header: "Certification", width: 13, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.CertificationCharge) }},
	{header: "Subtotal", width: 14, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.Subtotal) }},
	{header: "Tax", width: 12, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.TaxAmount) }},
	{header: "Grand Total (INR)", width: 18, money: true, value: func(e *domain.Estimate) any { return amount(e.Breakdown.GrandTotal) }},
	{header: "Grand Total (USD)", width: 18, money: true, value: func(e *domain.Estimate) any { return optionalAmount(e.Breakdown.GrandTotalUSD) }},
}

// EstimatesWorkbook renders estimates as an xlsx workbook with one row per
// estimate and a closing row totalling the rupee grand totals.
func EstimatesWorkbook(estimates []domain.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), estimatesSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyFormat := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFormat, Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	textStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFormat})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	for i, column := range estimateColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(estimatesSheet, name, name, column.width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
		if err := f.SetCellValue(estimatesSheet, name+"1", column.header); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(estimateColumns))
	if err := f.SetCellStyle(estimatesSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(estimatesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	total := decimal.Zero
	for r := range estimates {
		e := &estimates[r]
		rowNum := r + 2
		for c, column := range estimateColumns {
			cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(estimatesSheet, cell, column.value(e)); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
			style := textStyle
			if column.money {
				style = moneyStyle
			}
			if err := f.SetCellStyle(estimatesSheet, cell, cell, style); err != nil {
				return nil, err
			}
		}
		total = total.Add(e.Breakdown.GrandTotal)
	}

	totalRow := len(estimates) + 2
	grandCol, _ := excelize.ColumnNumberToName(grandTotalINRColumn())
	labelCol, _ := excelize.ColumnNumberToName(grandTotalINRColumn() - 1)
	if err := f.SetCellValue(estimatesSheet, fmt.Sprintf("%s%d", labelCol, totalRow), "Total"); err != nil {
		return nil, err
	}
	totalCell := fmt.Sprintf("%s%d", grandCol, totalRow)
	if err := f.SetCellValue(estimatesSheet, totalCell, total.InexactFloat64()); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(estimatesSheet, fmt.Sprintf("%s%d", labelCol, totalRow), totalCell, totalStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func grandTotalINRColumn() int {
	for i, column := range estimateColumns {
		if column.header == "Grand Total (INR)" {
			return i + 1
		}
	}
	return len(estimateColumns)
}

// sanitizeExcelCell neutralises values a spreadsheet would evaluate as a formula.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
