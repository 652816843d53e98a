package dto

import "time"

// CreateCustomerRequest body para POST /api/customers.
// Los nombres de campo conservan el contrato de wire heredado (camelCase).
type CreateCustomerRequest struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeleteCustomerResponse respuesta de DELETE /api/customers/:customerId.
// Incluye el registro eliminado y cuántas facturas arrastró la cascada.
type DeleteCustomerResponse struct {
	Message           string            `json:"message"`
	DeletedCustomer   *CustomerResponse `json:"deletedCustomer"`
	DeletedBillsCount int64             `json:"deletedBillsCount"`
}
