package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateClientRequest body para PATCH /api/clients/:id. Solo se actualizan los campos presentes.
type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"company_name"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateServiceRequest body para POST /api/services.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	BaseValue   decimal.Decimal `json:"base_value"`
	BillingType string          `json:"billing_type"` // UNIQUE|MONTHLY
	Notes       string          `json:"notes,omitempty"`
}

// UpdateServiceRequest body para PATCH /api/services/:id.
type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	BaseValue   *decimal.Decimal `json:"base_value,omitempty"`
	BillingType *string          `json:"billing_type,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// ServiceResponse servicio del catálogo en respuestas.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BaseValue   decimal.Decimal `json:"base_value"`
	BillingType string          `json:"billing_type"`
	Notes       string          `json:"notes"`
}
