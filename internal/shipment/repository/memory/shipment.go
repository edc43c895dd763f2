package memory

import (
	"context"
	"strings"

	"delivery-agent/internal/model"
	"delivery-agent/internal/shipment"
	"delivery-agent/internal/shipment/repository"
)

// Seed is the built-in demo data set.
var Seed = []model.Shipment{
	{
		ID:                "12345",
		Status:            "בדרך",
		Location:          "תל אביב - מרכז חלוקה",
		EstimatedDelivery: "2025-11-10 14:00",
		LastUpdate:        "2025-11-09 10:30",
	},
	{
		ID:                "67890",
		Status:            "נמסר",
		Location:          "ירושלים - נמסר בכתובת",
		EstimatedDelivery: "2025-11-08 16:00",
		LastUpdate:        "2025-11-08 15:45",
	},
}

// implRepository is read-only after New.
type implRepository struct {
	shipments map[string]model.Shipment
}

// New creates an in-memory shipment repository holding the seed data plus extra.
// Extra rows override seed rows with the same id.
func New(extra []model.Shipment) repository.ShipmentRepository {
	r := &implRepository{shipments: make(map[string]model.Shipment, len(Seed)+len(extra))}
	for _, s := range Seed {
		r.shipments[s.ID] = s
	}
	for _, s := range extra {
		if s.ID == "" {
			continue
		}
		r.shipments[s.ID] = s
	}
	return r
}

func (r *implRepository) GetShipment(ctx context.Context, id string) (model.Shipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Shipment{}, shipment.ErrEmptyID
	}

	s, ok := r.shipments[id]
	if !ok {
		return model.Shipment{}, shipment.ErrNotFound
	}
	return s, nil
}
