package tools

import (
	"context"
	"errors"
	"time"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/model"
	"delivery-agent/internal/record"
	"delivery-agent/internal/record/repository"
)

// CustomerRecordTool reads and writes customer rows.
type CustomerRecordTool struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

var _ agent.Tool = (*CustomerRecordTool)(nil)

// NewCustomerRecordTool creates a new customer record tool.
func NewCustomerRecordTool(repo repository.CustomerRepository) agent.Tool {
	return &CustomerRecordTool{repo: repo, now: time.Now}
}

func (t *CustomerRecordTool) Name() string     { return CustomerRecordToolName }
func (t *CustomerRecordTool) Kind() agent.Kind { return agent.KindCustomerRecord }

func (t *CustomerRecordTool) Description() string {
	return customerRecordDescription
}

func (t *CustomerRecordTool) Parameters() map[string]interface{} {
	str := func(desc string) map[string]interface{} {
		return map[string]interface{}{"type": "string", "description": desc}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"action": map[string]interface{}{
				"type":        "string",
				"enum":        []string{ActionRead, ActionWrite, ActionUpdate},
				"description": "הפעולה לביצוע: read (קריאה), write (כתיבה), update (עדכון)",
			},
			"phone": str("מספר הטלפון של הלקוח"),
			"data": map[string]interface{}{
				"type":        "object",
				"description": "מידע נוסף על הלקוח (רק לכתיבה ועדכון)",
				"properties": map[string]interface{}{
					"name":      str("שם הלקוח"),
					"email":     str("אימייל"),
					"address":   str("כתובת"),
					"lastOrder": str("הזמנה אחרונה"),
				},
			},
		},
		"required": []string{"action", "phone"},
	}
}

func (t *CustomerRecordTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in CustomerRecordInput
	if err := agent.DecodeArgs(params, &in); err != nil {
		return nil, err
	}

	if in.Action == ActionRead {
		return t.read(ctx, in.Phone), nil
	}
	return t.write(ctx, in), nil
}

func (t *CustomerRecordTool) read(ctx context.Context, phone string) CustomerRecordResult {
	found, err := t.repo.FindByPhone(ctx, phone)
	if errors.Is(err, record.ErrNotFound) {
		return CustomerRecordResult{Success: false, Message: msgCustomerNotFound}
	}
	if err != nil {
		return storeFault(err)
	}
	return CustomerRecordResult{Success: true, Data: &found.Customer}
}

// write handles both write and update. Only update replaces an existing row;
// write appends even when the phone is already present.
func (t *CustomerRecordTool) write(ctx context.Context, in CustomerRecordInput) CustomerRecordResult {
	c := model.Customer{Phone: in.Phone}
	if in.Data != nil {
		c.Name = in.Data.Name
		c.Email = in.Data.Email
		c.Address = in.Data.Address
		c.LastOrder = in.Data.LastOrder
	}
	if c.LastOrder == "" {
		c.LastOrder = t.now().UTC().Format(time.RFC3339Nano)
	}

	existing, err := t.repo.FindByPhone(ctx, in.Phone)
	if err != nil && !errors.Is(err, record.ErrNotFound) {
		return storeFault(err)
	}

	if err == nil && in.Action == ActionUpdate {
		if err := t.repo.UpdateCustomer(ctx, existing.Row, c); err != nil {
			return storeFault(err)
		}
		return CustomerRecordResult{Success: true, Message: msgCustomerUpdated}
	}

	if err := t.repo.AppendCustomer(ctx, c); err != nil {
		return storeFault(err)
	}
	return CustomerRecordResult{Success: true, Message: msgCustomerAdded}
}

func storeFault(err error) CustomerRecordResult {
	if errors.Is(err, record.ErrNotConfigured) {
		return CustomerRecordResult{Error: errSheetsNotSet}
	}
	return CustomerRecordResult{Error: errSheetsAccess, Details: err.Error()}
}
