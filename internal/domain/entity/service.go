package entity

import "github.com/shopspring/decimal"

// BillingType modalidad de cobro de un servicio.
type BillingType string

const (
	BillingUnique  BillingType = "UNIQUE"  // pago único
	BillingMonthly BillingType = "MONTHLY" // recurrente mensual
)

// Valid indica si el tipo pertenece al catálogo.
func (t BillingType) Valid() bool {
	return t == BillingUnique || t == BillingMonthly
}

// Service representa un servicio del catálogo.
type Service struct {
	ID          string
	Name        string
	BaseValue   decimal.Decimal // nunca negativo
	BillingType BillingType
	Notes       string
}

// ServicePatch actualización parcial de un servicio.
type ServicePatch struct {
	Name        *string
	BaseValue   *decimal.Decimal
	BillingType *BillingType
	Notes       *string
}

// Changes devuelve las columnas a actualizar.
func (p ServicePatch) Changes() []FieldChange {
	var out []FieldChange
	if p.Name != nil {
		out = append(out, FieldChange{Column: "name", Value: *p.Name})
	}
	if p.BaseValue != nil {
		out = append(out, FieldChange{Column: "base_value", Value: *p.BaseValue})
	}
	if p.BillingType != nil {
		out = append(out, FieldChange{Column: "billing_type", Value: string(*p.BillingType)})
	}
	if p.Notes != nil {
		out = append(out, FieldChange{Column: "notes", Value: *p.Notes})
	}
	return out
}

// Apply aplica el patch sobre una copia en memoria.
func (p ServicePatch) Apply(s Service) Service {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.BaseValue != nil {
		s.BaseValue = *p.BaseValue
	}
	if p.BillingType != nil {
		s.BillingType = *p.BillingType
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	return s
}
