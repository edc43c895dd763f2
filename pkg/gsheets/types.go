package gsheets

import "fmt"

// ValueInputUserEntered parses input as if typed into the UI.
const ValueInputUserEntered = "USER_ENTERED"

// Row is one spreadsheet row, left to right.
type Row []string

// ColumnRange returns the A1 range covering whole columns, e.g. "Customers!A:E".
func ColumnRange(sheet, fromCol, toCol string) string {
	return fmt.Sprintf("%s!%s:%s", sheet, fromCol, toCol)
}

// RowRange returns the A1 range of one row, e.g. "Customers!A3:E3". Rows are 1-based.
func RowRange(sheet, fromCol, toCol string, row int) string {
	return fmt.Sprintf("%s!%s%d:%s%d", sheet, fromCol, row, toCol, row)
}
