package model

import "time"

// Customer is one row of the customer table: name, phone, email, address, lastOrder.
type Customer struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	LastOrder string `json:"lastOrder"`
}

// ChatLog is one row of the chat-log table.
type ChatLog struct {
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
}
