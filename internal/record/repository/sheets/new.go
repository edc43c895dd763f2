package sheets

import (
	"context"

	"delivery-agent/internal/record/repository"
	"delivery-agent/pkg/gsheets"
	pkgLog "delivery-agent/pkg/log"
)

const (
	firstColumn = "A"
	lastColumn  = "E"

	defaultCustomerSheet = "Customers"
	defaultChatLogSheet  = "ChatLogs"
)

// ValuesClient is the subset of the Sheets API the repositories use.
type ValuesClient interface {
	GetValues(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error)
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, rows []gsheets.Row) error
	UpdateValues(ctx context.Context, spreadsheetID, a1Range string, rows []gsheets.Row) error
}

type implRepository struct {
	client ValuesClient
	opt    repository.SheetOptions
	l      pkgLog.Logger
}

func newRepository(client ValuesClient, opt repository.SheetOptions, l pkgLog.Logger) *implRepository {
	if opt.CustomerSheet == "" {
		opt.CustomerSheet = defaultCustomerSheet
	}
	if opt.ChatLogSheet == "" {
		opt.ChatLogSheet = defaultChatLogSheet
	}
	return &implRepository{client: client, opt: opt, l: l}
}

// NewCustomerRepository creates the Sheets-backed customer repository.
// A nil client or an empty spreadsheet id yields a repository whose every call
// returns record.ErrNotConfigured.
func NewCustomerRepository(client ValuesClient, opt repository.SheetOptions, l pkgLog.Logger) repository.CustomerRepository {
	return newRepository(client, opt, l)
}

// NewChatLogRepository creates the Sheets-backed chat-log repository.
// Not-configured handling matches NewCustomerRepository.
func NewChatLogRepository(client ValuesClient, opt repository.SheetOptions, l pkgLog.Logger) repository.ChatLogRepository {
	return newRepository(client, opt, l)
}

func (r *implRepository) configured() bool {
	return r.client != nil && r.opt.SpreadsheetID != ""
}
