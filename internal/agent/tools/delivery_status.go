package tools

import (
	"context"
	"errors"
	"fmt"

	"delivery-agent/internal/agent"
	"delivery-agent/internal/shipment"
	"delivery-agent/internal/shipment/repository"
)

// DeliveryStatusTool looks up a shipment by id.
type DeliveryStatusTool struct {
	repo repository.ShipmentRepository
}

var _ agent.Tool = (*DeliveryStatusTool)(nil)

// NewDeliveryStatusTool creates a new delivery status tool.
func NewDeliveryStatusTool(repo repository.ShipmentRepository) agent.Tool {
	return &DeliveryStatusTool{repo: repo}
}

func (t *DeliveryStatusTool) Name() string     { return DeliveryStatusToolName }
func (t *DeliveryStatusTool) Kind() agent.Kind { return agent.KindDeliveryStatus }

func (t *DeliveryStatusTool) Description() string {
	return deliveryStatusDescription
}

func (t *DeliveryStatusTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"shipmentId": map[string]interface{}{
				"type":        "string",
				"description": "מספר המשלוח/מעקב",
			},
		},
		"required": []string{"shipmentId"},
	}
}

func (t *DeliveryStatusTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	var in DeliveryStatusInput
	if err := agent.DecodeArgs(params, &in); err != nil {
		return nil, err
	}

	s, err := t.repo.GetShipment(ctx, in.ShipmentID)
	switch {
	case err == nil:
		return DeliveryStatusResult{
			Success: true,
			Data:    &s,
			Message: fmt.Sprintf(msgShipmentFound, in.ShipmentID, s.Location, s.Status),
		}, nil
	case errors.Is(err, shipment.ErrNotFound), errors.Is(err, shipment.ErrEmptyID):
		return DeliveryStatusResult{
			Success: false,
			Message: fmt.Sprintf(msgShipmentNotFound, in.ShipmentID),
		}, nil
	default:
		return DeliveryStatusResult{Error: errShipmentLookup, Details: err.Error()}, nil
	}
}
