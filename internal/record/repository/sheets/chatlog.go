package sheets

import (
	"context"
	"time"

	"delivery-agent/internal/model"
	"delivery-agent/internal/record"
	"delivery-agent/pkg/gsheets"
)

func (r *implRepository) AppendChatLog(ctx context.Context, entry model.ChatLog) error {
	if !r.configured() {
		return record.ErrNotConfigured
	}

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	row := gsheets.Row{
		ts.UTC().Format(time.RFC3339Nano),
		entry.Name,
		entry.Phone,
		entry.Message,
		entry.Response,
	}

	a1 := gsheets.ColumnRange(r.opt.ChatLogSheet, firstColumn, lastColumn)
	return r.client.AppendValues(ctx, r.opt.SpreadsheetID, a1, []gsheets.Row{row})
}
