package tools

import "delivery-agent/internal/model"

// Tool names as exposed to the model.
const (
	DeliveryStatusToolName = "deliveryStatusTool"
	CustomerRecordToolName = "googleSheetsTool"
	TurnLoggerToolName     = "messageTool"
)

// Customer record actions.
const (
	ActionRead   = "read"
	ActionWrite  = "write"
	ActionUpdate = "update"
)

// LoggedToConsole marks a turn log that went to the local diagnostic sink.
const LoggedToConsole = "console"

// DeliveryStatusInput is the argument set of deliveryStatusTool.
type DeliveryStatusInput struct {
	ShipmentID string `json:"shipmentId" validate:"required"`
}

// DeliveryStatusResult is the payload of deliveryStatusTool.
type DeliveryStatusResult struct {
	Success bool            `json:"success"`
	Data    *model.Shipment `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details string          `json:"details,omitempty"`
}

// CustomerData is the optional customer payload of a write/update.
type CustomerData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	LastOrder string `json:"lastOrder"`
}

// CustomerRecordInput is the argument set of googleSheetsTool.
type CustomerRecordInput struct {
	Action string        `json:"action" validate:"required,oneof=read write update"`
	Phone  string        `json:"phone" validate:"required"`
	Data   *CustomerData `json:"data"`
}

// CustomerRecordResult is the payload of googleSheetsTool.
type CustomerRecordResult struct {
	Success bool            `json:"success"`
	Data    *model.Customer `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details string          `json:"details,omitempty"`
}

// TurnLoggerInput is the argument set of messageTool.
type TurnLoggerInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Message  string `json:"message" validate:"required"`
	Response string `json:"response" validate:"required"`
}

// TurnLoggerResult is the payload of messageTool.
type TurnLoggerResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
	LoggedTo  string `json:"logged_to,omitempty"`
	Details   string `json:"details,omitempty"`
}
