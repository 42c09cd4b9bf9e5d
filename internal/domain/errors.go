package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrPersistence       = errors.New("el almacén rechazó la operación")
	ErrInvoiceGeneration = errors.New("no se pudo generar la factura del negocio cerrado")
	ErrTerminalStage     = errors.New("el negocio ya está en una etapa final")
)

// ValidationError falta una selección o un campo obligatorio. Se detecta antes de
// llamar al puerto de datos: la operación simplemente no procede.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError atajo para construir errores de validación.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError el puerto de datos rechazó un create/update/delete/list.
// Nunca se reintenta automáticamente.
type PersistenceError struct {
	Op     string // list, create, update, delete
	Entity string // client, service, deal, invoice
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrPersistence).
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// InvoiceGenerationError la etapa CLOSED ya quedó persistida pero la factura no.
// El negocio permanece cerrado sin factura; no hay rollback compensatorio.
type InvoiceGenerationError struct {
	DealID string
	Err    error
}

func (e *InvoiceGenerationError) Error() string {
	return fmt.Sprintf("negocio %s cerrado sin factura: %v", e.DealID, e.Err)
}

func (e *InvoiceGenerationError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrInvoiceGeneration).
func (e *InvoiceGenerationError) Is(target error) bool { return target == ErrInvoiceGeneration }
