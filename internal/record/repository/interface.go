package repository

import (
	"context"

	"delivery-agent/internal/model"
)

// CustomerRepository is row-oriented access to the customer table.
type CustomerRepository interface {
	// FindByPhone returns the first row whose phone column equals phone.
	FindByPhone(ctx context.Context, phone string) (CustomerRow, error)
	AppendCustomer(ctx context.Context, c model.Customer) error
	// UpdateCustomer replaces the row at the given 1-based row number.
	UpdateCustomer(ctx context.Context, row int, c model.Customer) error
}

// ChatLogRepository appends completed turns to the chat-log table.
type ChatLogRepository interface {
	AppendChatLog(ctx context.Context, entry model.ChatLog) error
}

// CustomerRow is a customer together with its sheet position.
type CustomerRow struct {
	Customer model.Customer
	Row      int
}
