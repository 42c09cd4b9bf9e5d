package dto

import "github.com/jhoicas/pipeday-api/internal/domain/entity"

// DateLayout formato de fechas de vencimiento en la API.
const DateLayout = "2006-01-02"

// Funciones de mapeo entidad → respuesta. Los nombres de cliente/servicio los resuelve
// el caso de uso a partir de la caché del workspace.

func FromClient(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
	}
}

func FromService(s *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		BaseValue:   s.BaseValue,
		BillingType: string(s.BillingType),
		Notes:       s.Notes,
	}
}

func FromDeal(d *entity.Deal, clientName, serviceName string) DealResponse {
	return DealResponse{
		ID:            d.ID,
		ClientID:      d.ClientID,
		ClientName:    clientName,
		ServiceID:     d.ServiceID,
		ServiceName:   serviceName,
		Value:         d.Value,
		Stage:         string(d.Stage),
		StageLabel:    d.Stage.Label(),
		Temperature:   string(d.Temperature),
		Details:       d.Details,
		PaymentStatus: string(d.PaymentStatus),
		CreatedAt:     d.CreatedAt,
	}
}

func FromInvoice(inv *entity.Invoice, clientName, serviceName string) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		ClientID:    inv.ClientID,
		ClientName:  clientName,
		ServiceID:   inv.ServiceID,
		ServiceName: serviceName,
		Value:       inv.Value,
		DueDate:     inv.DueDate.Format(DateLayout),
		Status:      string(inv.Status),
		PixCode:     inv.PixCode,
		CreatedAt:   inv.CreatedAt,
	}
}

func FromSettings(s entity.Settings) SettingsDTO {
	return SettingsDTO{
		Profile:   ProfileDTO{Name: s.Profile.Name, Email: s.Profile.Email, PixKey: s.Profile.PixKey},
		Workspace: WorkspaceDTO{Name: s.Workspace.Name, Domain: s.Workspace.Domain},
		Notifications: NotificationsDTO{
			Payments: s.Notifications.Payments,
			Leads:    s.Notifications.Leads,
			Expired:  s.Notifications.Expired,
			Reports:  s.Notifications.Reports,
		},
		Theme: string(s.Theme),
	}
}
