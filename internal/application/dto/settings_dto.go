package dto

// SettingsDTO configuración del operador (GET/PUT /api/settings).
type SettingsDTO struct {
	Profile       ProfileDTO       `json:"profile"`
	Workspace     WorkspaceDTO     `json:"workspace"`
	Notifications NotificationsDTO `json:"notifications"`
	Theme         string           `json:"theme"` // light|dark
}

type ProfileDTO struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	PixKey string `json:"pix_key"`
}

type WorkspaceDTO struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

type NotificationsDTO struct {
	Payments bool `json:"payments"`
	Leads    bool `json:"leads"`
	Expired  bool `json:"expired"`
	Reports  bool `json:"reports"`
}

// UpdateSettingsRequest body para PUT /api/settings; las secciones ausentes no cambian.
type UpdateSettingsRequest struct {
	Profile       *ProfileDTO       `json:"profile,omitempty"`
	Workspace     *WorkspaceDTO     `json:"workspace,omitempty"`
	Notifications *NotificationsDTO `json:"notifications,omitempty"`
	Theme         *string           `json:"theme,omitempty"`
}
