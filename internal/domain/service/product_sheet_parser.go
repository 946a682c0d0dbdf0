package service

import "io"

// ProductSheetRow is one data row of an uploaded product spreadsheet.
type ProductSheetRow struct {
	Line        int // 1-based row number in the sheet
	Name        string
	Category    string
	Price       string
	Description string
	Stock       string
}

// ProductSheetParser reads product rows from a spreadsheet, header excluded.
type ProductSheetParser interface {
	Parse(r io.Reader) ([]ProductSheetRow, error)
}
