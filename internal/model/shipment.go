package model

// Shipment is the tracking state of one delivery.
type Shipment struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	Location          string `json:"location"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	LastUpdate        string `json:"lastUpdate"`
}
