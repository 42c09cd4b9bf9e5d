package entity

import "time"

// Client representa un cliente del operador (CRM).
type Client struct {
	ID          string
	Name        string
	Email       string
	Phone       string // WhatsApp
	CompanyName string // opcional
	Notes       string
	CreatedAt   time.Time
}

// ClientPatch actualización parcial de un cliente. nil = sin cambio.
type ClientPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	CompanyName *string
	Notes       *string
}

// Changes devuelve las columnas a actualizar.
func (p ClientPatch) Changes() []FieldChange {
	var out []FieldChange
	if p.Name != nil {
		out = append(out, FieldChange{Column: "name", Value: *p.Name})
	}
	if p.Email != nil {
		out = append(out, FieldChange{Column: "email", Value: *p.Email})
	}
	if p.Phone != nil {
		out = append(out, FieldChange{Column: "phone", Value: *p.Phone})
	}
	if p.CompanyName != nil {
		out = append(out, FieldChange{Column: "company_name", Value: *p.CompanyName})
	}
	if p.Notes != nil {
		out = append(out, FieldChange{Column: "notes", Value: *p.Notes})
	}
	return out
}

// Apply aplica el patch sobre una copia en memoria.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}
