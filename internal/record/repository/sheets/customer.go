package sheets

import (
	"context"
	"fmt"

	"delivery-agent/internal/model"
	"delivery-agent/internal/record"
	"delivery-agent/internal/record/repository"
	"delivery-agent/pkg/gsheets"
)

const phoneColumn = 1

func (r *implRepository) FindByPhone(ctx context.Context, phone string) (repository.CustomerRow, error) {
	if !r.configured() {
		return repository.CustomerRow{}, record.ErrNotConfigured
	}

	rows, err := r.client.GetValues(ctx, r.opt.SpreadsheetID, gsheets.ColumnRange(r.opt.CustomerSheet, firstColumn, lastColumn))
	if err != nil {
		r.l.Errorf(ctx, "record repository: failed to read customers: %v", err)
		return repository.CustomerRow{}, err
	}

	for i, row := range rows {
		if len(row) > phoneColumn && row[phoneColumn] == phone {
			return repository.CustomerRow{Customer: rowToCustomer(row), Row: i + 1}, nil
		}
	}
	return repository.CustomerRow{}, record.ErrNotFound
}

func (r *implRepository) AppendCustomer(ctx context.Context, c model.Customer) error {
	if !r.configured() {
		return record.ErrNotConfigured
	}

	a1 := gsheets.ColumnRange(r.opt.CustomerSheet, firstColumn, lastColumn)
	if err := r.client.AppendValues(ctx, r.opt.SpreadsheetID, a1, []gsheets.Row{customerToRow(c)}); err != nil {
		r.l.Errorf(ctx, "record repository: failed to append customer: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) UpdateCustomer(ctx context.Context, row int, c model.Customer) error {
	if !r.configured() {
		return record.ErrNotConfigured
	}
	if row < 1 {
		return fmt.Errorf("invalid row number %d", row)
	}

	a1 := gsheets.RowRange(r.opt.CustomerSheet, firstColumn, lastColumn, row)
	if err := r.client.UpdateValues(ctx, r.opt.SpreadsheetID, a1, []gsheets.Row{customerToRow(c)}); err != nil {
		r.l.Errorf(ctx, "record repository: failed to update customer row %d: %v", row, err)
		return err
	}
	return nil
}

func customerToRow(c model.Customer) gsheets.Row {
	return gsheets.Row{c.Name, c.Phone, c.Email, c.Address, c.LastOrder}
}

func rowToCustomer(row []string) model.Customer {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return model.Customer{
		Name:      cell(0),
		Phone:     cell(1),
		Email:     cell(2),
		Address:   cell(3),
		LastOrder: cell(4),
	}
}
