package repository

// SheetOptions addresses the backing spreadsheet.
type SheetOptions struct {
	SpreadsheetID string
	CustomerSheet string // default "Customers"
	ChatLogSheet  string // default "ChatLogs"
}
