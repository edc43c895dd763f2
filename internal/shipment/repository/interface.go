package repository

import (
	"context"

	"delivery-agent/internal/model"
)

// ShipmentRepository looks up shipments by id.
type ShipmentRepository interface {
	GetShipment(ctx context.Context, id string) (model.Shipment, error)
}
