// Package spreadsheet reads product listings from uploaded Excel workbooks.
package spreadsheet

import (
	"io"
	"strings"

	"agrifarma/internal/domain/service"
	"agrifarma/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Column order of the import sheet: name, category, price, description, stock.
const (
	colName = iota
	colCategory
	colPrice
	colDescription
	colStock
)

type excelProductParser struct{}

// NewProductSheetParser returns an excelize-backed parser.
func NewProductSheetParser() service.ProductSheetParser {
	return &excelProductParser{}
}

// Parse reads the first worksheet, skipping the header row and blank rows.
func (p *excelProductParser) Parse(r io.Reader) ([]service.ProductSheetRow, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}

	parsed := make([]service.ProductSheetRow, 0, len(rows))
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}

		parsed = append(parsed, service.ProductSheetRow{
			Line:        i + 1,
			Name:        cell(row, colName),
			Category:    cell(row, colCategory),
			Price:       cell(row, colPrice),
			Description: cell(row, colDescription),
			Stock:       cell(row, colStock),
		})
	}

	return parsed, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}
